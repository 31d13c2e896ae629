package model

import (
	"strings"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the copy strategy family a declared type falls into.
type Kind int

const (
	KindUnsupported    Kind = iota // anything not in the recognized-name table
	KindPrimitive                  // boolean, char, byte, short, int, long, float, double
	KindBoxedPrimitive             // java.lang.Integer, ...
	KindText                       // java.lang.String
	KindDecimal                    // java.math.BigDecimal
	KindDateTime                   // java.util.Date
	KindArray                      // T[]
	KindList                       // java.util.List<E>
	KindMap                        // java.util.Map<K, V>

	// KindTotal is the number of kinds defined above.
	KindTotal = int(iota)
)

// Wildcard is the type name used for a missing or unbounded generic argument.
const Wildcard = "?"

// TypeExpr is a parsed Java type reference.
type TypeExpr struct {
	Name   string      // "java.util.Map", "int", "?"
	Params []*TypeExpr // generic arguments; for a bounded wildcard, the bound
	Bound  string      // "extends" or "super", wildcards only
	Dims   int         // number of trailing [] markers
}

// IsWildcard reports whether t is "?" with or without a bound.
func (t *TypeExpr) IsWildcard() bool {
	return t != nil && t.Name == Wildcard
}

// Elem returns a copy of t with every array dimension stripped.
func (t *TypeExpr) Elem() *TypeExpr {
	if t == nil {
		return nil
	}
	return &TypeExpr{Name: t.Name, Params: t.Params, Bound: t.Bound}
}

// Erased returns the type name without generic arguments or dimensions.
func (t *TypeExpr) Erased() string {
	if t == nil {
		return ""
	}
	return t.Name
}

// String renders t in canonical form, e.g. "java.util.Map<java.lang.String, int[]>".
func (t *TypeExpr) String() string {
	if t == nil {
		return ""
	}
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t *TypeExpr) write(sb *strings.Builder) {
	sb.WriteString(t.Name)
	if t.IsWildcard() {
		if t.Bound != "" && len(t.Params) > 0 {
			sb.WriteString(" " + t.Bound + " ")
			t.Params[0].write(sb)
		}
		return
	}
	if len(t.Params) > 0 {
		sb.WriteByte('<')
		for i, p := range t.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			p.write(sb)
		}
		sb.WriteByte('>')
	}
	for i := 0; i < t.Dims; i++ {
		sb.WriteString("[]")
	}
}

// Classification is the closed variant describing how a declared type is
// copied. Only the fields relevant to Kind are populated.
type Classification struct {
	Kind Kind

	// Name is the recognized type name for scalar kinds.
	Name string

	// Array -----------------------------------------------------------------
	Elem     *Classification // classification of the array element
	ElemName string          // erased element type used for allocation
	Dims     int             // number of stripped [] markers

	// Containers ------------------------------------------------------------
	ElemType  string // list element type, classified on recursion
	KeyType   string // map key type, classified on recursion
	ValueType string // map value type, classified on recursion

	// Raw is the unrecognized type name for KindUnsupported.
	Raw string
}

// IsScalar reports whether values of c are copied by direct assignment.
func (c Classification) IsScalar() bool {
	switch c.Kind {
	case KindPrimitive, KindBoxedPrimitive, KindText, KindDecimal:
		return true
	default:
		return false
	}
}

func Unsupported(raw string) Classification {
	return Classification{Kind: KindUnsupported, Raw: raw}
}

func ArrayOf(elem Classification, elemName string, dims int) Classification {
	return Classification{Kind: KindArray, Elem: &elem, ElemName: elemName, Dims: dims}
}

func ListOf(elemType string) Classification {
	return Classification{Kind: KindList, ElemType: elemType}
}

func MapOf(keyType, valueType string) Classification {
	return Classification{Kind: KindMap, KeyType: keyType, ValueType: valueType}
}
