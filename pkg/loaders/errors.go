package loaders

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMissingField is wrapped by parse errors for required keys that are absent
var ErrMissingField = errors.New("missing field")

// ParseError reports a scene description node that could not be turned into
// the named type. Err holds the underlying cause, which may itself be a
// ParseError for a nested node.
type ParseError struct {
	TypeName string
	Node     *yaml.Node
	Err      error
}

func (e *ParseError) Error() string {
	msg := "error parsing " + e.TypeName
	if e.Node != nil {
		msg += fmt.Sprintf(" at line %d, column %d", e.Node.Line, e.Node.Column)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(typeName string, node *yaml.Node, err error) *ParseError {
	return &ParseError{TypeName: typeName, Node: node, Err: err}
}

func missingField(typeName string, node *yaml.Node, field string) *ParseError {
	return newParseError(typeName, node, fmt.Errorf("%w %q", ErrMissingField, field))
}
