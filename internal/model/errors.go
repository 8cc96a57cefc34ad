package model

import (
	"errors"
	"fmt"
)

// Precondition violations. The engine never repairs the model; any of these
// aborts an extraction run.
var (
	ErrUnknownPin      = errors.New("unknown pin")
	ErrMissingTemplate = errors.New("missing template")
	ErrVectorLength    = errors.New("vector length does not match pin list")
	ErrMalformedLoad   = errors.New("malformed output load list")
)

// ArcError identifies the cell and arc that violated a model precondition.
type ArcError struct {
	Cell string
	Arc  string
	Err  error
}

// NewArcError wraps err with the identity of arc inside cell.
func NewArcError(cell *CellSpec, arc *ArcSpec, err error) *ArcError {
	return &ArcError{Cell: cell.Name, Arc: arc.ID(), Err: err}
}

func (e *ArcError) Error() string {
	return fmt.Sprintf("cell %s arc %s: %v", e.Cell, e.Arc, e.Err)
}

func (e *ArcError) Unwrap() error {
	return e.Err
}
