package tmj

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to test for them; they are usually wrapped
// in a *StructuralError or *LookupError.
var (
	ErrNotJSON       = errors.New("map file is not .json")
	ErrImageNotFound = errors.New("tileset image not found")
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidField  = errors.New("invalid field value")
	ErrDataLength    = errors.New("tile data length does not match grid size")
	ErrUnknownLayer  = errors.New("unknown layer")
	ErrNoTileset     = errors.New("no tileset owns gid")
	ErrOutOfBounds   = errors.New("cell out of bounds")
)

// StructuralError reports a malformed map document. Path locates the
// offending value in JSON notation, e.g. "layers[2].opacity".
// A load that returns a StructuralError produces no TileMap.
type StructuralError struct {
	Path string
	Err  error
}

func (e *StructuralError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("tmj: %v", e.Err)
	}
	return fmt.Sprintf("tmj: %s: %v", e.Path, e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }

// LookupError reports a request for a tile layer that the map does not have.
type LookupError struct {
	Kind string // "tilelayer"
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("tmj: no %s named %q", e.Kind, e.Name)
}

func (e *LookupError) Unwrap() error { return ErrUnknownLayer }

func missing(path string) error {
	return &StructuralError{Path: path, Err: ErrMissingField}
}

func invalid(path string, format string, args ...any) error {
	return &StructuralError{Path: path, Err: fmt.Errorf("%w: "+format, append([]any{ErrInvalidField}, args...)...)}
}
