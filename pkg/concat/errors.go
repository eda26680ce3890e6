package concat

import "errors"

// Sentinel errors for combine operations. All of them are fatal: the run
// aborts before any output is written.
var (
	// ErrNotFound indicates an input path that does not exist.
	ErrNotFound = errors.New("input path not found")
	// ErrEmptyInput indicates a directory input containing no files.
	ErrEmptyInput = errors.New("directory contains no files")
	// ErrRead indicates a file that cannot be read as plain text.
	ErrRead = errors.New("cannot read file as text")
	// ErrWrite indicates the combined output could not be written.
	ErrWrite = errors.New("cannot write output file")
	// ErrUnknownCodes indicates codes absent from the mapping file.
	ErrUnknownCodes = errors.New("codes missing from mapping file")
)
