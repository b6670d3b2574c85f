package sorter

import (
	"errors"
	"fmt"
)

// ConfigurationError means the run could not start. Nothing on disk was changed.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsConfigurationError reports whether err is a ConfigurationError
func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}

// FilesystemError wraps a failed directory creation, move or copy
type FilesystemError struct {
	Op   string // mkdir, move, copy, list
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// IsFilesystemError reports whether err is a FilesystemError
func IsFilesystemError(err error) bool {
	var e *FilesystemError
	return errors.As(err, &e)
}
