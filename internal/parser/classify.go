package parser

import (
	"strings"

	"github.com/cmmoran/copytogen/internal/model"
)

// boxed maps every recognized wrapper name to its primitive.
var boxed = map[string]string{
	"java.lang.Boolean":   "boolean",
	"java.lang.Character": "char",
	"java.lang.Byte":      "byte",
	"java.lang.Short":     "short",
	"java.lang.Integer":   "int",
	"java.lang.Long":      "long",
	"java.lang.Float":     "float",
	"java.lang.Double":    "double",
}

// recognized is the fixed table of base names with a known copy strategy.
// java.lang is implicitly imported, so its members match in short form too.
var recognized = func() map[string]model.Kind {
	m := map[string]model.Kind{
		"boolean": model.KindPrimitive,
		"char":    model.KindPrimitive,
		"byte":    model.KindPrimitive,
		"short":   model.KindPrimitive,
		"int":     model.KindPrimitive,
		"long":    model.KindPrimitive,
		"float":   model.KindPrimitive,
		"double":  model.KindPrimitive,

		"java.lang.String":     model.KindText,
		"java.math.BigDecimal": model.KindDecimal,
		"java.util.Date":       model.KindDateTime,
		"java.util.List":       model.KindList,
		"java.util.Map":        model.KindMap,
	}
	for name := range boxed {
		m[name] = model.KindBoxedPrimitive
	}
	short := make(map[string]model.Kind)
	for name, kind := range m {
		if n, ok := strings.CutPrefix(name, "java.lang."); ok {
			short[n] = kind
		}
	}
	for name, kind := range short {
		m[name] = kind
	}
	return m
}()

// Unbox returns the primitive behind a recognized wrapper name, or "" when
// name is not a wrapper.
func Unbox(name string) string {
	if p, ok := boxed[name]; ok {
		return p
	}
	return boxed["java.lang."+name]
}

// Classify maps a raw type name onto its copy classification. It never
// fails: malformed or unknown names classify as Unsupported.
func Classify(raw string) model.Classification {
	t, err := ParseType(raw)
	if err != nil {
		return model.Unsupported(raw)
	}
	return ClassifyExpr(t, raw)
}

// ClassifyExpr classifies an already parsed type. raw is reported for
// unsupported types.
func ClassifyExpr(t *model.TypeExpr, raw string) model.Classification {
	if t.Dims > 0 {
		elem := t.Elem()
		return model.ArrayOf(ClassifyExpr(elem, elem.String()), elem.Erased(), t.Dims)
	}
	if t.IsWildcard() {
		return model.Unsupported(raw)
	}

	kind, ok := recognized[t.Name]
	if !ok {
		return model.Unsupported(raw)
	}

	switch kind {
	case model.KindPrimitive, model.KindBoxedPrimitive, model.KindText, model.KindDecimal, model.KindDateTime:
		return model.Classification{Kind: kind, Name: t.Name}
	case model.KindList:
		return model.ListOf(typeArg(t, 0))
	case model.KindMap:
		return model.MapOf(typeArg(t, 0), typeArg(t, 1))
	case model.KindArray, model.KindUnsupported:
		// not reachable from the recognized-name table
	}
	return model.Unsupported(raw)
}

// ClassifyField classifies a declared field, treating it as an array when
// either the explicit flag or a trailing [] marker says so.
func ClassifyField(f *model.Field) model.Classification {
	c := Classify(f.Type)
	if !f.IsArray() || c.Kind == model.KindArray {
		return c
	}

	// Flagged as array without a textual marker: the whole type is the element.
	elemName := strings.TrimSpace(f.Type)
	if t, err := ParseType(f.Type); err == nil {
		elemName = t.Erased()
	}
	return model.ArrayOf(c, elemName, 1)
}

// typeArg returns the canonical text of the i-th generic argument, or the
// wildcard when it is absent.
func typeArg(t *model.TypeExpr, i int) string {
	if i >= len(t.Params) {
		return model.Wildcard
	}
	return t.Params[i].String()
}
