package types

import "github.com/rs/zerolog"

// DefaultVersion is the fallback version when AppContext is nil
const DefaultVersion = "dev"

// AppContext holds application-wide context information passed to commands
type AppContext struct {
	Version string
	Logger  zerolog.Logger
}

// VersionOrDefault returns the version, tolerating a nil context
func (a *AppContext) VersionOrDefault() string {
	if a == nil || a.Version == "" {
		return DefaultVersion
	}
	return a.Version
}

// Log returns the application logger, or a no-op logger for a nil context
func (a *AppContext) Log() zerolog.Logger {
	if a == nil {
		return zerolog.Nop()
	}
	return a.Logger
}
