package assembler

import (
	"fmt"
	"log/slog"

	"github.com/cmmoran/copytogen/internal/model"
	"github.com/cmmoran/copytogen/internal/parser"
	"github.com/cmmoran/copytogen/internal/plan"
)

const (
	MethodName        = "copyTo"
	DefaultSourceName = "this"
	DefaultTargetName = "target"
)

// Context is the explicit configuration for one or more Assemble calls.
type Context struct {
	Plan          plan.Config
	SourceName    string   // expression holding the copied instance, "this" by default
	TargetName    string   // name of the copy target parameter
	ExcludeFields []string // field names skipped regardless of type
	Logger        *slog.Logger
}

// Normalized returns ctx with defaults applied.
func (ctx Context) Normalized() Context {
	if ctx.SourceName == "" {
		ctx.SourceName = DefaultSourceName
	}
	if ctx.TargetName == "" {
		ctx.TargetName = DefaultTargetName
	}
	if ctx.Logger == nil {
		ctx.Logger = slog.Default()
	}
	if ctx.Plan.Logger == nil {
		ctx.Plan.Logger = ctx.Logger
	}
	if ctx.Plan.Indent == "" {
		ctx.Plan.Indent = plan.DefaultIndent
	}
	return ctx
}

// Assemble builds the copyTo method for class: its signature stub and the
// ordered body statements. Fields are emitted in declaration order.
func Assemble(ctx Context, class *model.Class) (*model.Method, model.Statements) {
	ctx = ctx.Normalized()
	a := &assembler{
		ctx: ctx,
		gen: plan.New(ctx.Plan),
		log: ctx.Logger.With("class", class.QualifiedName()),
	}

	body := a.guard(class).Concat(model.Statements{
		"",
		"// No needs to copy parent class.",
		"",
	})
	for _, f := range class.Fields {
		if f == nil {
			continue
		}
		body = body.Concat(a.field(f))
	}

	return Signature(ctx, class), body
}

// Signature returns the copyTo signature stub for class.
func Signature(ctx Context, class *model.Class) *model.Method {
	ctx = ctx.Normalized()
	return &model.Method{
		Name:        MethodName,
		Description: "Copies this value object to the specified target.",
		Doc: []string{
			"<P>Cautions for use</P>",
			"<UL>",
			"<LI>Only the shallow range of the object will be subject to the copying process.",
			"<LI>Do not use this method if the object has a circular reference.",
			"</UL>",
		},
		Parameters: []*model.Parameter{{
			Name:        ctx.TargetName,
			Type:        class.QualifiedName(),
			Description: "target value object.",
		}},
	}
}

type assembler struct {
	ctx Context
	gen *plan.Generator
	log *slog.Logger
}

// guard rejects a null target before any field is touched.
func (a *assembler) guard(class *model.Class) model.Statements {
	target := a.ctx.TargetName
	return model.Statements{
		fmt.Sprintf("if (%s == null) {", target),
		a.ctx.Plan.Indent + fmt.Sprintf(
			`throw new IllegalArgumentException("Bug: %s#%s(%s): argument '%s' is null");`,
			class.Name, MethodName, target, target),
		"}",
	}
}

func (a *assembler) field(f *model.Field) model.Statements {
	head := model.Statements{
		"// Name: " + f.Name,
		"// Type: " + f.Type,
	}

	if reason, skip := SkipReason(f, a.ctx.ExcludeFields); skip {
		a.log.Debug("field skipped", "field", f.Name, "reason", reason)
		return head.Concat(model.Statements{"//   skipped (" + reason + ")"})
	}

	c := parser.ClassifyField(f)
	a.log.Debug("field classified", "field", f.Name, "type", f.Type, "kind", c.Kind.String())

	return head.Concat(a.gen.Plan(f.Name, c,
		a.ctx.SourceName+"."+f.Name,
		a.ctx.TargetName+"."+f.Name))
}
