package main

import "errors"

// Sentinel errors for command operations
var (
	ErrNoSource       = errors.New("no source: pass it as an argument or with --file")
	ErrSourceConflict = errors.New("source argument and --file are mutually exclusive")
	ErrNoCodeBlocks   = errors.New("no calf code block found in markdown file")
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrNotFormatted   = errors.New("file is not formatted")
	ErrWriteNeedsFile = errors.New("--write needs a source file")
)

// SourceError is a lexing or parsing failure together with the text it happened in
type SourceError struct {
	Name string
	Text string
	Err  error
}

func (e *SourceError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
