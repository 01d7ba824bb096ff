package fetch

import (
	"fmt"

	"github.com/vvka-141/mdconv/pkg/mdconv"
)

// Error reports a failed download.
type Error struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch %s (status %d): %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes Error match mdconv.ErrFetch.
func (e *Error) Is(target error) bool { return target == mdconv.ErrFetch }
