package structure

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStructureType indicates a type name with no registered behavior.
	ErrUnknownStructureType = errors.New("structure: unknown structure type")
	// ErrDataParse indicates a malformed line in a structure data source.
	ErrDataParse = errors.New("structure: malformed data line")
)

// ParseError reports the line that stopped a load.
// It matches ErrDataParse with errors.Is and unwraps to the underlying cause.
type ParseError struct {
	Source string // file name or "<input>"
	Line   int    // 1-based
	Text   string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v: %q", e.Source, e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ErrDataParse as a match for every ParseError
func (e *ParseError) Is(target error) bool {
	return target == ErrDataParse
}
