package posts

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("post not found")

// LoadError reports a failure to retrieve or parse the post collection.
type LoadError struct {
	Source     string
	Location   string
	StatusCode int
	Err        error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("load posts from %s %q", e.Source, e.Location)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLoadError reports whether err is, or wraps, a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
