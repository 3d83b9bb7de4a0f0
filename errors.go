package mdcore

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidUTF8 is returned by FromBytes when the input is not valid UTF-8.
// Construction is fatal: no partial Document is produced.
type ErrInvalidUTF8 struct {
	// Offset is the byte offset of the first invalid sequence.
	Offset int
}

func (e *ErrInvalidUTF8) Error() string {
	return fmt.Sprintf("mdcore: invalid UTF-8 at byte offset %d", e.Offset)
}

// ErrInvalidRange is returned when a command references a range whose
// endpoints are out of bounds or reversed. The command is rejected and
// the document is left unchanged; version is not incremented.
type ErrInvalidRange struct {
	Start, End int
	BufferLen  int
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("mdcore: invalid range [%d,%d) against buffer of length %d", e.Start, e.End, e.BufferLen)
}

// ParseFailureError reports the parse errors from the most recent parse
// of a Document's buffer (at construction, Clone, or the reparse inside
// Apply). The tree from that parse is still installed. Cause aggregates
// the errors via multierror.
type ParseFailureError struct {
	Cause error
}

func (e *ParseFailureError) Error() string {
	return fmt.Sprintf("mdcore: parser failure, recovered: %v", e.Cause)
}

func (e *ParseFailureError) Unwrap() error {
	return e.Cause
}

// newParseFailure aggregates parse errors via multierror, matching the
// engine's contract that recovery is total: the caller always gets a
// consistent tree back, with the failure surfaced alongside it.
func newParseFailure(errs []error) *ParseFailureError {
	if len(errs) == 0 {
		return nil
	}

	var merr *multierror.Error
	for _, e := range errs {
		merr = multierror.Append(merr, e)
	}

	return &ParseFailureError{Cause: merr.ErrorOrNil()}
}
