package typesystem

// Kind classifies a Type without its dimensions or folded value.
type Kind int

const (
	KUnknown Kind = iota
	KVoid
	KInt
	KFloat
	KString
	KVector
	KMatrix
)

var kindNames = map[Kind]string{
	KUnknown: "Unknown",
	KVoid:    "Void",
	KInt:     "Int",
	KFloat:   "Float",
	KString:  "String",
	KVector:  "Vector",
	KMatrix:  "Matrix",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(?)"
}

// IsNumeric reports Int and Float.
func (k Kind) IsNumeric() bool {
	return k == KInt || k == KFloat
}

// IsScalar reports the kinds that broadcast over vectors and matrices.
func (k Kind) IsScalar() bool {
	return k.IsNumeric()
}

// IsShaped reports Vector and Matrix.
func (k Kind) IsShaped() bool {
	return k == KVector || k == KMatrix
}
