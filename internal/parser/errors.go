package parser

import "fmt"

// ParseError represents a matched block whose score could not be read as an integer
type ParseError struct {
	Message string
	Token   string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s %q: %v", e.Message, e.Token, e.Cause)
	}
	return fmt.Sprintf("parse error: %s %q", e.Message, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
