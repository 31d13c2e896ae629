// Package mirror emits a Go counterpart of a value object: a struct holding
// its instance fields and a CopyTo method built from the same copy
// classifications as the Java output.
package mirror

import (
	"fmt"
	"go/token"
	"strconv"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"
	"github.com/jinzhu/inflection"

	"github.com/cmmoran/copytogen/internal/assembler"
	"github.com/cmmoran/copytogen/internal/model"
	"github.com/cmmoran/copytogen/internal/parser"
)

const (
	DefaultPackage = "model"
	MethodName     = "CopyTo"

	receiver   = "s"
	decimalPkg = "github.com/shopspring/decimal"
)

// reserved holds identifiers a holder must not shadow in generated code.
var reserved = map[string]bool{
	receiver:  true,
	"time":    true,
	"decimal": true,
	"append":  true,
	"make":    true,
	"len":     true,
}

// File returns the Go source file mirroring class in package pkg.
func File(ctx assembler.Context, pkg string, class *model.Class) *jen.File {
	if pkg == "" {
		pkg = DefaultPackage
	}
	ctx = ctx.Normalized()
	m := &mirror{ctx: ctx}

	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by copytogen. DO NOT EDIT.")

	if class.Description != "" {
		f.Comment(class.Description)
	} else {
		f.Commentf("%s mirrors %s.", class.Name, class.QualifiedName())
	}
	f.Type().Id(class.Name).Struct(m.fields(class)...)
	f.Line()

	f.Commentf("%s copies the shallow state of %s into %s.", MethodName, receiver, ctx.TargetName)
	f.Comment("Only directly held values are copied; do not use it on graphs with circular references.")
	f.Func().
		Params(jen.Id(receiver).Op("*").Id(class.Name)).
		Id(MethodName).
		Params(jen.Id(ctx.TargetName).Op("*").Id(class.Name)).
		Block(m.body(class)...)

	return f
}

type mirror struct {
	ctx assembler.Context
}

// fields declares one exported struct field per instance field. Static
// fields have no Go counterpart.
func (m *mirror) fields(class *model.Class) []jen.Code {
	out := make([]jen.Code, 0, len(class.Fields))
	for _, f := range class.Fields {
		if f == nil || f.Static {
			continue
		}
		out = append(out, jen.Id(GoName(f.Name)).
			Add(GoType(parser.ClassifyField(f))).
			Tag(map[string]string{"json": f.Name}))
	}
	return out
}

func (m *mirror) body(class *model.Class) []jen.Code {
	target := m.ctx.TargetName
	out := []jen.Code{
		jen.If(jen.Id(target).Op("==").Nil()).Block(
			jen.Panic(jen.Lit(fmt.Sprintf("Bug: %s#%s(%s): argument '%s' is nil",
				class.Name, MethodName, target, target))),
		),
		jen.Line(),
	}

	for _, f := range class.Fields {
		if f == nil {
			continue
		}
		out = append(out,
			jen.Comment("Name: "+f.Name),
			jen.Comment("Type: "+f.Type),
		)
		if reason, skip := assembler.SkipReason(f, m.ctx.ExcludeFields); skip {
			out = append(out, jen.Comment("skipped ("+reason+")"))
			continue
		}
		name := GoName(f.Name)
		out = append(out, m.plan(0, f.Name, parser.ClassifyField(f),
			jen.Id(receiver).Dot(name),
			jen.Id(target).Dot(name))...)
	}
	return out
}

// plan mirrors plan.Generator for Go. src and dst are never mutated; every
// use wraps them in a fresh statement.
func (m *mirror) plan(depth int, label string, c model.Classification, src, dst jen.Code) []jen.Code {
	switch c.Kind {
	case model.KindPrimitive, model.KindBoxedPrimitive, model.KindText, model.KindDecimal:
		return []jen.Code{jen.Add(dst).Op("=").Add(src)}
	case model.KindDateTime:
		return m.cloneTime(label, src, dst)
	case model.KindArray:
		if c.Elem != nil {
			return m.array(depth, label, c, src, dst)
		}
	case model.KindList:
		return m.list(depth, label, c, src, dst)
	case model.KindMap:
		return m.entries(depth, label, c, src, dst)
	case model.KindUnsupported:
	}
	return []jen.Code{jen.Commentf("Field[%s] is an unsupported type[%s].", label, c.Raw)}
}

// cloneTime copies the time.Time value behind src so dst holds the same
// instant and location without sharing the pointer.
func (m *mirror) cloneTime(label string, src, dst jen.Code) []jen.Code {
	clone := localName(label + "Clone")
	return []jen.Code{
		jen.If(jen.Add(src).Op("!=").Nil()).Block(
			jen.Id(clone).Op(":=").Op("*").Add(src),
			jen.Add(dst).Op("=").Op("&").Id(clone),
		).Else().Block(
			jen.Add(dst).Op("=").Nil(),
		),
	}
}

func (m *mirror) array(depth int, label string, c model.Classification, src, dst jen.Code) []jen.Code {
	index := "i"
	if depth > 0 {
		index += strconv.Itoa(depth)
	}
	clause := jen.Id(index).Op(":=").Range().Add(src)
	if c.Elem.Kind == model.KindUnsupported {
		clause = rangeOver(src, "_", "_")
	}
	return []jen.Code{
		jen.If(jen.Add(src).Op("!=").Nil()).Block(
			jen.Add(dst).Op("=").Make(GoType(c), jen.Len(src)),
			jen.For(clause).Block(
				m.plan(depth+1, label, *c.Elem,
					jen.Add(src).Index(jen.Id(index)),
					jen.Add(dst).Index(jen.Id(index)))...,
			),
		),
	}
}

func (m *mirror) list(depth int, label string, c model.Classification, src, dst jen.Code) []jen.Code {
	elem := parser.Classify(c.ElemType)
	item := holderName(label)
	itemCopy := item + "Copy"

	source := item
	if elem.Kind == model.KindUnsupported {
		source = "_"
	}

	loop := []jen.Code{jen.Var().Id(itemCopy).Add(GoType(elem))}
	loop = append(loop, m.plan(depth+1, item, elem, jen.Id(item), jen.Id(itemCopy))...)
	loop = append(loop, jen.Add(dst).Op("=").Append(jen.Add(dst), jen.Id(itemCopy)))

	body := m.initDestination(dst, jen.Make(GoType(c), jen.Lit(0), jen.Len(src)))
	body = append(body, jen.For(rangeOver(src, "_", source)).Block(loop...))

	return []jen.Code{jen.If(jen.Add(src).Op("!=").Nil()).Block(body...)}
}

func (m *mirror) entries(depth int, label string, c model.Classification, src, dst jen.Code) []jen.Code {
	item := holderName(label)
	key, keyCopy := item+"Key", item+"KeyCopy"
	value, valueCopy := item+"Value", item+"ValueCopy"

	// Keys always follow their own plan: the compat form, which copies the
	// key with the value's plan, does not type-check in Go.
	keyClass := parser.Classify(c.KeyType)
	valueClass := parser.Classify(c.ValueType)

	keyID, valueID := key, value
	if keyClass.Kind == model.KindUnsupported {
		keyID = "_"
	}
	if valueClass.Kind == model.KindUnsupported {
		valueID = "_"
	}

	loop := []jen.Code{
		jen.Var().Id(keyCopy).Add(GoType(keyClass)),
		jen.Var().Id(valueCopy).Add(GoType(valueClass)),
	}
	loop = append(loop, m.plan(depth+1, key, keyClass, jen.Id(key), jen.Id(keyCopy))...)
	loop = append(loop, m.plan(depth+1, value, valueClass, jen.Id(value), jen.Id(valueCopy))...)
	loop = append(loop, jen.Add(dst).Index(jen.Id(keyCopy)).Op("=").Id(valueCopy))

	body := m.initDestination(dst, jen.Make(GoType(c), jen.Len(src)))
	body = append(body, jen.For(rangeOver(src, keyID, valueID)).Block(loop...))

	return []jen.Code{jen.If(jen.Add(src).Op("!=").Nil()).Block(body...)}
}

// rangeOver renders a range clause, dropping blank identifiers Go would
// reject or simplify.
func rangeOver(src jen.Code, key, value string) *jen.Statement {
	switch {
	case value != "_":
		return jen.List(jen.Id(key), jen.Id(value)).Op(":=").Range().Add(src)
	case key != "_":
		return jen.Id(key).Op(":=").Range().Add(src)
	default:
		return jen.Range().Add(src)
	}
}

// initDestination allocates a nil destination container when enabled.
func (m *mirror) initDestination(dst jen.Code, alloc *jen.Statement) []jen.Code {
	if !m.ctx.Plan.InitDestination {
		return nil
	}
	return []jen.Code{
		jen.If(jen.Add(dst).Op("==").Nil()).Block(
			jen.Add(dst).Op("=").Add(alloc),
		),
	}
}

// GoName exports a Java field name: "createdAt" becomes "CreatedAt".
func GoName(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// holderName derives a loop variable from a field or holder name, using the
// singular where one exists: "tags" yields "tag", "tag" yields "tagItem".
func holderName(label string) string {
	base := lowerFirst(label)
	if singular := inflection.Singular(base); singular != base && singular != "" {
		return localName(singular)
	}
	return localName(base + "Item")
}

// localName makes name usable as a local variable in generated code.
func localName(name string) string {
	name = lowerFirst(name)
	if token.IsKeyword(name) || reserved[name] || strings.HasPrefix(name, "_") {
		name += "Item"
	}
	return name
}

func lowerFirst(name string) string {
	r := []rune(name)
	if len(r) == 0 {
		return name
	}
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
