package core

// Logger interface for renderer progress output
type Logger interface {
	Printf(format string, args ...interface{})
}
