package tcx

import "fmt"

// ParseError reports input text that is not a well-formed TCX document:
// malformed XML, a wrong root element, or a mandatory field missing at a
// required node. A failed parse never yields a partially usable document.
type ParseError struct {
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse TCX: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("failed to parse TCX: %s", e.Detail)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IndexError reports trim indices that are out of bounds or inverted
// for some track. Length is the offending track's own length.
type IndexError struct {
	Start  int
	End    int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("invalid indices: start=%d, end=%d, total=%d", e.Start, e.End, e.Length)
}
