package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
	"gopkg.in/yaml.v3"

	"github.com/cmmoran/copytogen/pkg/action/generate"
	"github.com/cmmoran/copytogen/pkg/generator"
)

// TestGenerate runs every testdata/*.txtar archive through the generate
// action. An archive holds an optional options.yaml, one or more input.*
// descriptors, and the expected content of every file written.
func TestGenerate(ttt *testing.T) {
	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(ttt, err)
	require.NotEmpty(ttt, archives)

	for _, path := range archives {
		path := path
		ttt.Run(strings.TrimSuffix(filepath.Base(path), ".txtar"), func(t *testing.T) {
			t.Parallel()
			ar, err := txtar.ParseFile(path)
			require.NoError(t, err)

			dir := t.TempDir()
			opts := generator.NewOptions()
			opts.OutDir = filepath.Join(dir, "out")

			want := make(map[string]string)
			for _, f := range ar.Files {
				switch {
				case f.Name == "options.yaml":
					require.NoError(t, yaml.Unmarshal(f.Data, opts))
				case strings.HasPrefix(f.Name, "input."):
					in := filepath.Join(dir, f.Name)
					require.NoError(t, os.WriteFile(in, f.Data, 0o644))
					opts.Inputs = append(opts.Inputs, in)
				default:
					want[f.Name] = string(f.Data)
				}
			}

			files, err := generate.Generate(opts)
			require.NoError(t, err)

			got := make(map[string]string, len(files))
			for _, f := range files {
				data, err := os.ReadFile(f)
				require.NoError(t, err)
				got[filepath.Base(f)] = string(data)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("generated files mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
