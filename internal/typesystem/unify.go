package typesystem

// UnifyDim joins two dimensions: a known one wins over UnknownDim.
func UnifyDim(a, b int) (int, bool) {
	switch {
	case a == UnknownDim:
		return b, true
	case b == UnknownDim, a == b:
		return a, true
	default:
		return UnknownDim, false
	}
}

// UnifyShape joins two vectors or two matrices. The result keeps the known
// dimensions of either side and drops element tracking. Mismatching known
// dimensions yield a *DimensionError.
func UnifyShape(left, right Type) (Type, error) {
	switch l := left.(type) {
	case Vector:
		r, ok := right.(Vector)
		if !ok {
			return Unknown{}, NewDimensionError(left, right)
		}
		size, ok := UnifyDim(l.Size, r.Size)
		if !ok {
			return Unknown{}, NewDimensionError(left, right)
		}
		return Vector{Size: size}, nil
	case Matrix:
		r, ok := right.(Matrix)
		if !ok {
			return Unknown{}, NewDimensionError(left, right)
		}
		width, okW := UnifyDim(l.Width, r.Width)
		height, okH := UnifyDim(l.Height, r.Height)
		if !okW || !okH {
			return Unknown{}, NewDimensionError(left, right)
		}
		return Matrix{Width: width, Height: height}, nil
	}
	return Unknown{}, NewDimensionError(left, right)
}

// Broadcast returns the shape of a shaped operand combined element-wise
// with a scalar.
func Broadcast(shaped Type) Type {
	switch s := shaped.(type) {
	case Vector:
		return Vector{Size: s.Size}
	case Matrix:
		return Matrix{Width: s.Width, Height: s.Height}
	}
	return Unknown{}
}

// SameRowSizes reports whether all rows have one compatible size, and
// that size.
func SameRowSizes(rows []Vector) (int, bool) {
	if len(rows) == 0 {
		return 0, true
	}
	size := rows[0].Size
	for _, r := range rows[1:] {
		joined, ok := UnifyDim(size, r.Size)
		if !ok {
			return UnknownDim, false
		}
		size = joined
	}
	return size, true
}
