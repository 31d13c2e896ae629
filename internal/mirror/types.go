package mirror

import (
	"github.com/dave/jennifer/jen"

	"github.com/cmmoran/copytogen/internal/model"
	"github.com/cmmoran/copytogen/internal/parser"
)

// primitives maps Java primitive keywords to their sized Go types.
var primitives = map[string]func() *jen.Statement{
	"boolean": jen.Bool,
	"char":    jen.Rune,
	"byte":    jen.Int8,
	"short":   jen.Int16,
	"int":     jen.Int32,
	"long":    jen.Int64,
	"float":   jen.Float32,
	"double":  jen.Float64,
}

// GoType returns the Go type used for a value classified as c.
func GoType(c model.Classification) *jen.Statement {
	switch c.Kind {
	case model.KindPrimitive:
		if fn, ok := primitives[c.Name]; ok {
			return fn()
		}
	case model.KindBoxedPrimitive:
		if fn, ok := primitives[parser.Unbox(c.Name)]; ok {
			return jen.Op("*").Add(fn())
		}
	case model.KindText:
		return jen.String()
	case model.KindDecimal:
		return jen.Qual(decimalPkg, "Decimal")
	case model.KindDateTime:
		return jen.Op("*").Qual("time", "Time")
	case model.KindArray:
		if c.Elem != nil {
			return jen.Index().Add(GoType(*c.Elem))
		}
	case model.KindList:
		return jen.Index().Add(GoType(parser.Classify(c.ElemType)))
	case model.KindMap:
		return jen.Map(GoType(parser.Classify(c.KeyType))).Add(GoType(parser.Classify(c.ValueType)))
	case model.KindUnsupported:
	}
	return jen.Interface()
}
