// Package plan turns a field's copy classification into the Java statements
// that copy it from a source expression into a destination expression.
package plan

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cmmoran/copytogen/internal/model"
	"github.com/cmmoran/copytogen/internal/parser"
)

const (
	// DefaultIndent is the per-level indentation of nested statements.
	DefaultIndent = "  "

	// genericsLabel names container elements in unsupported-type comments.
	genericsLabel = "generics"

	// objectType declares holders whose generic argument is a wildcard.
	objectType = "Object"
)

// Config controls plan generation.
type Config struct {
	Indent          string
	MapKeyMode      model.MapKeyMode
	InitDestination bool // instantiate a null destination List/Map before filling it
	Logger          *slog.Logger
}

// Generator produces copy plans. It holds no state between calls and is safe
// for concurrent use.
type Generator struct {
	cfg Config
}

// New returns a Generator for cfg, filling unset values with defaults.
func New(cfg Config) *Generator {
	if cfg.Indent == "" {
		cfg.Indent = DefaultIndent
	}
	if cfg.MapKeyMode == "" {
		cfg.MapKeyMode = model.MapKeyCompat
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Generator{cfg: cfg}
}

// Plan returns the statements copying src into dst for a value classified as
// c. label names the value in diagnostics only.
func (g *Generator) Plan(label string, c model.Classification, src, dst string) model.Statements {
	return g.plan(0, label, c, src, dst)
}

func (g *Generator) plan(depth int, label string, c model.Classification, src, dst string) model.Statements {
	switch c.Kind {
	case model.KindPrimitive, model.KindBoxedPrimitive, model.KindText, model.KindDecimal:
		return model.Statements{fmt.Sprintf("%s = %s;", dst, src)}
	case model.KindDateTime:
		return g.cloneDate(c, src, dst)
	case model.KindArray:
		if c.Elem != nil {
			return g.array(depth, label, c, src, dst)
		}
	case model.KindList:
		return g.list(depth, c, src, dst)
	case model.KindMap:
		return g.entries(depth, c, src, dst)
	case model.KindUnsupported:
	}
	return g.unsupported(label, c.Raw)
}

// cloneDate copies a java.util.Date by its epoch value.
func (g *Generator) cloneDate(c model.Classification, src, dst string) model.Statements {
	return model.Statements{
		fmt.Sprintf("if (%s != null) {", src),
		g.cfg.Indent + fmt.Sprintf("%s = new %s(%s.getTime());", dst, c.Name, src),
		"} else {",
		g.cfg.Indent + fmt.Sprintf("%s = null;", dst),
		"}",
	}
}

// array allocates a fresh array and copies it element by element. A null
// source leaves dst untouched.
func (g *Generator) array(depth int, label string, c model.Classification, src, dst string) model.Statements {
	if c.Dims > 1 {
		g.cfg.Logger.Warn("multi-dimensional array copied as a single level",
			"field", label, "element", c.ElemName, "dims", c.Dims)
	}
	h := holdersAt(depth)

	elem := g.plan(depth+1, label, *c.Elem,
		fmt.Sprintf("%s[%s]", src, h.index),
		fmt.Sprintf("%s[%s]", dst, h.index))

	body := model.Statements{
		fmt.Sprintf("%s = new %s[%s.length];", dst, c.ElemName, src),
		fmt.Sprintf("for (int %[1]s = 0; %[1]s < %[2]s.length; %[1]s++) {", h.index, src),
	}.Concat(elem.Indent(g.cfg.Indent), model.Statements{"}"})

	return g.guard(src, body)
}

// list appends a copy of every source element to the destination list.
func (g *Generator) list(depth int, c model.Classification, src, dst string) model.Statements {
	h := holdersAt(depth)
	holder := holderType(c.ElemType)

	elem := g.plan(depth+1, genericsLabel, parser.Classify(c.ElemType), h.source, h.target)

	loop := model.Statements{
		fmt.Sprintf("%s %s = null;", holder, h.target),
	}.Concat(elem, model.Statements{
		fmt.Sprintf("%s.add(%s);", dst, h.target),
	})

	body := g.initDestination(dst, "java.util.ArrayList").Concat(
		model.Statements{fmt.Sprintf("for (final %s %s : %s) {", holder, h.source, src)},
		loop.Indent(g.cfg.Indent),
		model.Statements{"}"},
	)
	return g.guard(src, body)
}

// entries puts a copy of every source entry into the destination map.
func (g *Generator) entries(depth int, c model.Classification, src, dst string) model.Statements {
	h := holdersAt(depth)

	value := parser.Classify(c.ValueType)
	key := value
	if g.cfg.MapKeyMode == model.MapKeyCorrected {
		key = parser.Classify(c.KeyType)
	}

	loop := model.Statements{
		fmt.Sprintf("%s %s = null;", holderType(c.KeyType), h.keyTarget),
		fmt.Sprintf("%s %s = null;", holderType(c.ValueType), h.valueTarget),
	}.Concat(
		g.plan(depth+1, genericsLabel, key, h.source+".getKey()", h.keyTarget),
		g.plan(depth+1, genericsLabel, value, h.source+".getValue()", h.valueTarget),
		model.Statements{fmt.Sprintf("%s.put(%s, %s);", dst, h.keyTarget, h.valueTarget)},
	)

	entry := fmt.Sprintf("java.util.Map.Entry<%s, %s>", c.KeyType, c.ValueType)
	body := g.initDestination(dst, "java.util.HashMap").Concat(
		model.Statements{fmt.Sprintf("for (final %s %s : %s.entrySet()) {", entry, h.source, src)},
		loop.Indent(g.cfg.Indent),
		model.Statements{"}"},
	)
	return g.guard(src, body)
}

func (g *Generator) unsupported(label, raw string) model.Statements {
	g.cfg.Logger.Info("unsupported type left uncopied", "field", label, "type", raw)
	return model.Statements{fmt.Sprintf("// Field[%s] is an unsupported type[%s].", label, raw)}
}

// guard wraps body in a null check on src.
func (g *Generator) guard(src string, body model.Statements) model.Statements {
	return model.Statements{fmt.Sprintf("if (%s != null) {", src)}.Concat(
		body.Indent(g.cfg.Indent),
		model.Statements{"}"},
	)
}

// initDestination instantiates a null destination container when enabled.
func (g *Generator) initDestination(dst, impl string) model.Statements {
	if !g.cfg.InitDestination {
		return nil
	}
	return model.Statements{
		fmt.Sprintf("if (%s == null) {", dst),
		g.cfg.Indent + fmt.Sprintf("%s = new %s<>();", dst, impl),
		"}",
	}
}

// holders are the local variable names introduced at one nesting depth.
type holders struct {
	index       string
	source      string
	target      string
	keyTarget   string
	valueTarget string
}

func holdersAt(depth int) holders {
	suffix := ""
	if depth > 0 {
		suffix = strconv.Itoa(depth)
	}
	return holders{
		index:       "index" + suffix,
		source:      "loopSource" + suffix,
		target:      "loopTarget" + suffix,
		keyTarget:   "loopKeyTarget" + suffix,
		valueTarget: "loopValueTarget" + suffix,
	}
}

// holderType is the declared type of a loop holder. Wildcards cannot be
// declared, so they fall back to Object.
func holderType(typeName string) string {
	if strings.HasPrefix(typeName, model.Wildcard) {
		return objectType
	}
	return typeName
}
