// Package generator is the entry point for producing copyTo methods from
// value object descriptors.
package generator

import (
	"io"
	"log/slog"

	"github.com/dave/jennifer/jen"

	"github.com/cmmoran/copytogen/internal/assembler"
	"github.com/cmmoran/copytogen/internal/mirror"
	"github.com/cmmoran/copytogen/internal/model"
	"github.com/cmmoran/copytogen/internal/plan"
	"github.com/cmmoran/copytogen/pkg/render"
)

// Generator holds the normalized options of a generation run. It is safe for
// concurrent use.
type Generator struct {
	Opts   Options
	Logger *slog.Logger

	ctx assembler.Context
}

// Result is the copy method generated for one class.
type Result struct {
	Class      *model.Class
	Method     *model.Method
	Statements model.Statements
}

// New builds a Generator from the defaults with opts applied.
func New(opts ...Option) (*Generator, error) {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}

	return NewWithOpts(o)
}

func NewWithOpts(opts *Options) (*Generator, error) {
	if err := opts.Normalize(); err != nil {
		return nil, err
	}

	g := &Generator{
		Opts: *opts,
	}
	return g.WithLogger(slog.Default()), nil
}

// WithLogger returns a copy of g logging to l.
func (g *Generator) WithLogger(l *slog.Logger) *Generator {
	c := *g
	c.Logger = l
	c.ctx = assembler.Context{
		Plan: plan.Config{
			Indent:          g.Opts.Indent,
			MapKeyMode:      model.MapKeyMode(g.Opts.MapKeyMode),
			InitDestination: g.Opts.InitDestination,
			Logger:          l,
		},
		SourceName:    g.Opts.SourceName,
		TargetName:    g.Opts.TargetName,
		ExcludeFields: g.Opts.ExcludeFields,
		Logger:        l,
	}
	return &c
}

// Generate assembles the copyTo method of class.
func (g *Generator) Generate(class *model.Class) *Result {
	method, body := assembler.Assemble(g.ctx, class)
	return &Result{
		Class:      class,
		Method:     method,
		Statements: body,
	}
}

// RenderJava writes r as a Java method.
func (g *Generator) RenderJava(w io.Writer, r *Result) error {
	return render.Java(w, r.Method, r.Statements, g.Opts.Indent)
}

// GoFile returns the Go mirror of class.
func (g *Generator) GoFile(class *model.Class) *jen.File {
	return mirror.File(g.ctx, g.Opts.GoPackage, class)
}
