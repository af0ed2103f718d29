package report

import (
	"errors"
	"fmt"
)

var (
	ErrImageNotFound    = errors.New("image not found")
	ErrImageUnreachable = errors.New("image unreachable")
	ErrFontUnavailable  = errors.New("font unavailable")
)

// AssetError describes why an optional asset could not be supplied.
// Kind is one of the sentinel errors above.
type AssetError struct {
	Ref   string
	Kind  error
	Cause error
}

func (e *AssetError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Ref, e.Cause)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Ref)
}

func (e *AssetError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// RenderError represents a failure while laying out or writing the document
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
