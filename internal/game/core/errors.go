package core

import "errors"

var (
	ErrEmptyLayout          = errors.New("layout has no rows or no columns")
	ErrNonRectangularLayout = errors.New("layout rows differ in length")
	ErrInvalidSource        = errors.New("distance source is not a movement-valid cell")
	ErrEmptyPaintedSource   = errors.New("painted source has no cells")
	ErrUnknownFaction       = errors.New("unknown faction")
)
