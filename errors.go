package main

import "errors"

var (
	ErrDiagramNotRendered = errors.New("diagram not rendered")
	ErrDiagramNotFound    = errors.New("diagram not found")
	ErrInvalidDiagram     = errors.New("invalid diagram")
	ErrUnknownVariant     = errors.New("unknown variant")
	ErrInvalidDirective   = errors.New("invalid directive")
	ErrDuplicateRule      = errors.New("duplicate rule")
)
