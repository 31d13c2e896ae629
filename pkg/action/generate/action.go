package generate

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cmmoran/copytogen/pkg/descriptor"
	"github.com/cmmoran/copytogen/pkg/generator"
)

var ErrNoInputs = errors.New("no descriptor inputs")

// Generate loads every descriptor in opts.Inputs and writes one Java copyTo
// fragment per class into opts.OutDir, plus the Go mirror when opts.EmitGo is
// set. It returns the written paths in generation order.
func Generate(opts *generator.Options) ([]string, error) {
	if len(opts.Inputs) == 0 {
		return nil, ErrNoInputs
	}

	gen, err := generator.NewWithOpts(opts)
	if err != nil {
		return nil, err
	}
	l := gen.Logger

	classes, err := descriptor.LoadAll(gen.Opts.Inputs...)
	if err != nil {
		return nil, err
	}

	if err = os.MkdirAll(gen.Opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var written []string
	for _, class := range classes {
		res := gen.Generate(class)

		buf := new(bytes.Buffer)
		if err = gen.RenderJava(buf, res); err != nil {
			return nil, err
		}
		javaFile := filepath.Join(gen.Opts.OutDir, JavaFileName(class.Name))
		if err = os.WriteFile(javaFile, buf.Bytes(), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", javaFile, err)
		}
		l.With("class", class.QualifiedName(), "file", javaFile).Info("wrote copyTo method")
		written = append(written, javaFile)

		if !gen.Opts.EmitGo {
			continue
		}
		goFile := filepath.Join(gen.Opts.OutDir, GoFileName(class.Name))
		if err = gen.GoFile(class).Save(goFile); err != nil {
			return nil, fmt.Errorf("write %s: %w", goFile, err)
		}
		l.With("class", class.QualifiedName(), "file", goFile).Info("wrote go mirror")
		written = append(written, goFile)
	}

	return written, nil
}

// JavaFileName is the fragment file written for a class.
func JavaFileName(class string) string {
	return class + ".copyTo.java"
}

// GoFileName is the mirror file written for a class.
func GoFileName(class string) string {
	return strings.ToLower(class) + "_copy.go"
}
