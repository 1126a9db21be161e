package lights

import (
	"testing"

	"github.com/antonio-hus/Virtual-Reality/pkg/core"
)

func TestNewLight(t *testing.T) {
	light := NewLight(
		core.NewVec3(1, 2, 3),
		core.NewColor(0.1, 0.1, 0.1),
		core.NewColor(0.5, 0.5, 0.5),
		core.NewColor(0.9, 0.9, 0.9),
	)

	if light.Position != core.NewVec3(1, 2, 3) {
		t.Errorf("Expected position (1,2,3), got %v", light.Position)
	}
	if light.Diffuse.R != 0.5 {
		t.Errorf("Expected diffuse 0.5, got %f", light.Diffuse.R)
	}
}

func TestNewWhiteLight(t *testing.T) {
	light := NewWhiteLight(core.NewVec3(0, 5, 0), 0.8)

	for name, term := range map[string]core.Color{
		"ambient":  light.Ambient,
		"diffuse":  light.Diffuse,
		"specular": light.Specular,
	} {
		if term.R != 0.8 || term.G != 0.8 || term.B != 0.8 {
			t.Errorf("Expected white %s term of 0.8, got %v", name, term)
		}
	}
}
