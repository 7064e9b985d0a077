package ttf2bmp

import "fmt"

// FontLoadError reports a failure to open, parse, or size the configured
// font. It is always raised before any pixel work happens.
type FontLoadError struct {
	Source string // file path, or "embedded" for the default font
	Err    error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("ttf2bmp: load font %s: %v", e.Source, e.Err)
}

func (e *FontLoadError) Unwrap() error { return e.Err }

// WriteError reports a failure to persist the finished atlas. It is raised
// only at the final write step, after all pixel work has succeeded, and
// means no output file was created.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("ttf2bmp: write atlas: %v", e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
