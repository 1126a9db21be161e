package core

// Logger interface for renderer progress logging. Satisfied by
// *log.Logger and by test fakes.
type Logger interface {
	Printf(format string, args ...interface{})
}
