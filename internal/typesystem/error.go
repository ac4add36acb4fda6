package typesystem

import "fmt"

// DimensionError reports two shaped types whose known dimensions differ.
type DimensionError struct {
	Left  Type
	Right Type
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s and %s don't have the same sizes", e.Left, e.Right)
}

func NewDimensionError(left, right Type) *DimensionError {
	return &DimensionError{Left: left, Right: right}
}
