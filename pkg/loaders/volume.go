// Package loaders reads volume datasets from disk: a line-oriented
// text metadata file describing the grid and a raw binary file holding
// one density byte per voxel.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/antonio-hus/Virtual-Reality/pkg/core"
	"github.com/antonio-hus/Virtual-Reality/pkg/geometry"
	"github.com/antonio-hus/Virtual-Reality/pkg/material"
)

// VolumeMetadata is the parsed content of a dataset metadata file
type VolumeMetadata struct {
	Resolution     [3]int    // Voxel counts: X, Y, Z
	SliceThickness core.Vec3 // Physical spacing per axis
}

// LoadVolumeMetadata parses a metadata file. Tokens are separated by
// any run of whitespace or colons; the recognized keys are Resolution
// (three integers) and SliceThickness (three floats). Both keys are
// required.
func LoadVolumeMetadata(filename string) (*VolumeMetadata, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open metadata file: %v", err)
	}
	defer file.Close()

	meta := &VolumeMetadata{}
	haveResolution := false
	haveThickness := false

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		tokens := splitTokens(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		switch tokens[0] {
		case "Resolution":
			if len(tokens) < 4 {
				return nil, fmt.Errorf("Resolution needs 3 values, got %d", len(tokens)-1)
			}
			for i := 0; i < 3; i++ {
				meta.Resolution[i], err = strconv.Atoi(tokens[i+1])
				if err != nil {
					return nil, fmt.Errorf("invalid Resolution value %q: %v", tokens[i+1], err)
				}
			}
			haveResolution = true
		case "SliceThickness":
			values := make([]float64, 3)
			if len(tokens) < 4 {
				return nil, fmt.Errorf("SliceThickness needs 3 values, got %d", len(tokens)-1)
			}
			for i := 0; i < 3; i++ {
				values[i], err = strconv.ParseFloat(tokens[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("invalid SliceThickness value %q: %v", tokens[i+1], err)
				}
			}
			meta.SliceThickness = core.NewVec3(values[0], values[1], values[2])
			haveThickness = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read metadata file: %v", err)
	}

	if !haveResolution {
		return nil, fmt.Errorf("metadata file %s is missing the Resolution key", filename)
	}
	if !haveThickness {
		return nil, fmt.Errorf("metadata file %s is missing the SliceThickness key", filename)
	}
	return meta, nil
}

// LoadVolumeDensity reads the raw density file for a grid of the given
// resolution. The file must hold exactly one byte per voxel, X
// fastest-varying and Z slowest; a short file is a fatal load error.
func LoadVolumeDensity(filename string, resolution [3]int) ([]uint8, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open density file: %v", err)
	}
	defer file.Close()

	voxels := resolution[0] * resolution[1] * resolution[2]
	density := make([]uint8, voxels)
	if _, err := io.ReadFull(file, density); err != nil {
		return nil, fmt.Errorf("density file %s shorter than %d voxels: %v", filename, voxels, err)
	}
	return density, nil
}

// LoadVolumeField loads metadata and density together and assembles a
// volume field placed at origin with the given scale and color map.
func LoadVolumeField(metaPath, rawPath string, origin core.Vec3, scale float64, colorMap *material.ColorMap) (*geometry.VolumeField, error) {
	meta, err := LoadVolumeMetadata(metaPath)
	if err != nil {
		return nil, err
	}
	density, err := LoadVolumeDensity(rawPath, meta.Resolution)
	if err != nil {
		return nil, err
	}
	return geometry.NewVolumeField(origin, meta.SliceThickness, meta.Resolution, scale, density, colorMap)
}

// splitTokens splits a metadata line on runs of whitespace and colons
func splitTokens(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ':'
	})
}
