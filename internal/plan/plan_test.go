package plan

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/copytogen/internal/model"
	"github.com/cmmoran/copytogen/internal/parser"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGenerator(cfg Config) *Generator {
	if cfg.Logger == nil {
		cfg.Logger = quiet()
	}
	return New(cfg)
}

func lines(s ...string) model.Statements { return s }

func TestPlanScenarios(ttt *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		field string
		typ   string
		want  model.Statements
	}{
		{
			name:  "primitive",
			field: "age",
			typ:   "int",
			want:  lines("target.age = source.age;"),
		},
		{
			// Five lines, not the three-line guarded assignment: an absent
			// source clears the destination.
			name:  "date is cloned by epoch value and cleared when absent",
			field: "createdAt",
			typ:   "java.util.Date",
			want: lines(
				"if (source.createdAt != null) {",
				"  target.createdAt = new java.util.Date(source.createdAt.getTime());",
				"} else {",
				"  target.createdAt = null;",
				"}",
			),
		},
		{
			name:  "list of text",
			field: "tags",
			typ:   "java.util.List<String>",
			want: lines(
				"if (source.tags != null) {",
				"  for (final String loopSource : source.tags) {",
				"    String loopTarget = null;",
				"    loopTarget = loopSource;",
				"    target.tags.add(loopTarget);",
				"  }",
				"}",
			),
		},
		{
			name:  "int array",
			field: "scores",
			typ:   "int[]",
			want: lines(
				"if (source.scores != null) {",
				"  target.scores = new int[source.scores.length];",
				"  for (int index = 0; index < source.scores.length; index++) {",
				"    target.scores[index] = source.scores[index];",
				"  }",
				"}",
			),
		},
		{
			name:  "unsupported",
			field: "legacyBlob",
			typ:   "com.example.LegacyBlob",
			want:  lines("// Field[legacyBlob] is an unsupported type[com.example.LegacyBlob]."),
		},
		{
			name:  "unsupported array element keeps the field label",
			field: "blobs",
			typ:   "Blob[]",
			want: lines(
				"if (source.blobs != null) {",
				"  target.blobs = new Blob[source.blobs.length];",
				"  for (int index = 0; index < source.blobs.length; index++) {",
				"    // Field[blobs] is an unsupported type[Blob].",
				"  }",
				"}",
			),
		},
		{
			name:  "wildcard list element is held as Object",
			field: "nums",
			typ:   "java.util.List<? extends Number>",
			want: lines(
				"if (source.nums != null) {",
				"  for (final Object loopSource : source.nums) {",
				"    Object loopTarget = null;",
				"    // Field[generics] is an unsupported type[? extends Number].",
				"    target.nums.add(loopTarget);",
				"  }",
				"}",
			),
		},
		{
			name:  "nested lists get fresh holders",
			field: "matrix",
			typ:   "java.util.List<java.util.List<Integer>>",
			want: lines(
				"if (source.matrix != null) {",
				"  for (final java.util.List<Integer> loopSource : source.matrix) {",
				"    java.util.List<Integer> loopTarget = null;",
				"    if (loopSource != null) {",
				"      for (final Integer loopSource1 : loopSource) {",
				"        Integer loopTarget1 = null;",
				"        loopTarget1 = loopSource1;",
				"        loopTarget.add(loopTarget1);",
				"      }",
				"    }",
				"    target.matrix.add(loopTarget);",
				"  }",
				"}",
			),
		},
		{
			name:  "nested lists with destination initialization",
			cfg:   Config{InitDestination: true},
			field: "matrix",
			typ:   "java.util.List<java.util.List<Integer>>",
			want: lines(
				"if (source.matrix != null) {",
				"  if (target.matrix == null) {",
				"    target.matrix = new java.util.ArrayList<>();",
				"  }",
				"  for (final java.util.List<Integer> loopSource : source.matrix) {",
				"    java.util.List<Integer> loopTarget = null;",
				"    if (loopSource != null) {",
				"      if (loopTarget == null) {",
				"        loopTarget = new java.util.ArrayList<>();",
				"      }",
				"      for (final Integer loopSource1 : loopSource) {",
				"        Integer loopTarget1 = null;",
				"        loopTarget1 = loopSource1;",
				"        loopTarget.add(loopTarget1);",
				"      }",
				"    }",
				"    target.matrix.add(loopTarget);",
				"  }",
				"}",
			),
		},
		{
			name:  "custom indent",
			cfg:   Config{Indent: "\t"},
			field: "createdAt",
			typ:   "java.util.Date",
			want: lines(
				"if (source.createdAt != null) {",
				"\ttarget.createdAt = new java.util.Date(source.createdAt.getTime());",
				"} else {",
				"\ttarget.createdAt = null;",
				"}",
			),
		},
	}
	for _, tt := range tests {
		tt := tt
		ttt.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := newGenerator(tt.cfg)
			got := g.Plan(tt.field, parser.Classify(tt.typ), "source."+tt.field, "target."+tt.field)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Plan() mismatch (-want +got):\n%s\nclassification: %s", diff, spew.Sdump(parser.Classify(tt.typ)))
			}
		})
	}
}

func TestPlanMapKeyModes(ttt *testing.T) {
	const typ = "java.util.Map<String, java.util.Date>"
	tests := []struct {
		name string
		mode model.MapKeyMode
		key  model.Statements
	}{
		{
			// The key is copied with the value type's plan.
			name: "compat",
			mode: model.MapKeyCompat,
			key: lines(
				"    if (loopSource.getKey() != null) {",
				"      loopKeyTarget = new java.util.Date(loopSource.getKey().getTime());",
				"    } else {",
				"      loopKeyTarget = null;",
				"    }",
			),
		},
		{
			name: "default is compat",
			key: lines(
				"    if (loopSource.getKey() != null) {",
				"      loopKeyTarget = new java.util.Date(loopSource.getKey().getTime());",
				"    } else {",
				"      loopKeyTarget = null;",
				"    }",
			),
		},
		{
			name: "corrected",
			mode: model.MapKeyCorrected,
			key:  lines("    loopKeyTarget = loopSource.getKey();"),
		},
	}
	for _, tt := range tests {
		tt := tt
		ttt.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := newGenerator(Config{MapKeyMode: tt.mode})
			got := g.Plan("dates", parser.Classify(typ), "source.dates", "target.dates")

			want := lines(
				"if (source.dates != null) {",
				"  for (final java.util.Map.Entry<String, java.util.Date> loopSource : source.dates.entrySet()) {",
				"    String loopKeyTarget = null;",
				"    java.util.Date loopValueTarget = null;",
			).Concat(tt.key, lines(
				"    if (loopSource.getValue() != null) {",
				"      loopValueTarget = new java.util.Date(loopSource.getValue().getTime());",
				"    } else {",
				"      loopValueTarget = null;",
				"    }",
				"    target.dates.put(loopKeyTarget, loopValueTarget);",
				"  }",
				"}",
			))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Plan() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPlanMapInitDestination(t *testing.T) {
	g := newGenerator(Config{InitDestination: true, MapKeyMode: model.MapKeyCorrected})
	got := g.Plan("attrs", parser.Classify("java.util.Map<String, Integer>"), "source.attrs", "target.attrs")

	want := lines(
		"if (source.attrs != null) {",
		"  if (target.attrs == null) {",
		"    target.attrs = new java.util.HashMap<>();",
		"  }",
		"  for (final java.util.Map.Entry<String, Integer> loopSource : source.attrs.entrySet()) {",
		"    String loopKeyTarget = null;",
		"    Integer loopValueTarget = null;",
		"    loopKeyTarget = loopSource.getKey();",
		"    loopValueTarget = loopSource.getValue();",
		"    target.attrs.put(loopKeyTarget, loopValueTarget);",
		"  }",
		"}",
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Plan() mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanScalarsAreSingleAssignments(ttt *testing.T) {
	for _, typ := range []string{
		"boolean", "char", "byte", "short", "int", "long", "float", "double",
		"java.lang.Boolean", "java.lang.Character", "java.lang.Byte", "java.lang.Short",
		"java.lang.Integer", "java.lang.Long", "java.lang.Float", "java.lang.Double",
		"Integer", "java.lang.String", "String", "java.math.BigDecimal",
	} {
		typ := typ
		ttt.Run(typ, func(t *testing.T) {
			t.Parallel()
			got := newGenerator(Config{}).Plan("v", parser.Classify(typ), "a.v", "b.v")
			require.Len(t, got, 1)
			assert.Equal(t, "b.v = a.v;", got[0])
		})
	}
}

func TestPlanArrayNeverWritesDestinationOutsideGuard(ttt *testing.T) {
	for _, typ := range []string{"int[]", "java.util.Date[]", "String[][]", "java.util.List<String>[]", "Blob[]"} {
		typ := typ
		ttt.Run(typ, func(t *testing.T) {
			t.Parallel()
			got := newGenerator(Config{}).Plan("values", parser.Classify(typ), "source.values", "target.values")
			require.GreaterOrEqual(t, len(got), 3)
			assert.Equal(t, "if (source.values != null) {", got[0])
			assert.Equal(t, "}", got[len(got)-1])
			for _, line := range got[1 : len(got)-1] {
				assert.True(t, strings.HasPrefix(line, DefaultIndent), "statement outside the source guard: %q", line)
			}
			assert.Contains(t, got, "  target.values = new "+parser.Classify(typ).ElemName+"[source.values.length];")
			for _, line := range got {
				assert.NotContains(t, line, "target.values = null")
			}
		})
	}
}

func TestPlanListNeverConstructsDestination(t *testing.T) {
	got := newGenerator(Config{}).Plan("tags", parser.Classify("java.util.List<java.util.Date>"), "source.tags", "target.tags")

	var adds int
	for _, line := range got {
		assert.NotContains(t, line, "target.tags =")
		if strings.Contains(line, "target.tags.add(") {
			adds++
		}
	}
	assert.Equal(t, 1, adds, "one append per iterated element")
}

func TestPlanMultiDimensionalArrayWarns(t *testing.T) {
	var buf bytes.Buffer
	g := New(Config{Logger: slog.New(slog.NewJSONHandler(&buf, nil))})

	got := g.Plan("grid", parser.Classify("int[][]"), "source.grid", "target.grid")

	want := lines(
		"if (source.grid != null) {",
		"  target.grid = new int[source.grid.length];",
		"  for (int index = 0; index < source.grid.length; index++) {",
		"    target.grid[index] = source.grid[index];",
		"  }",
		"}",
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Plan() mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), "multi-dimensional array copied as a single level")
	assert.Contains(t, buf.String(), `"dims":2`)
}

func TestPlanUnsupportedLogs(t *testing.T) {
	var buf bytes.Buffer
	g := New(Config{Logger: slog.New(slog.NewJSONHandler(&buf, nil))})

	got := g.Plan("legacyBlob", parser.Classify("LegacyBlob"), "source.legacyBlob", "target.legacyBlob")
	require.Len(t, got, 1)
	assert.True(t, strings.HasPrefix(got[0], "//"))
	assert.Contains(t, buf.String(), `"field":"legacyBlob"`)
	assert.Contains(t, buf.String(), `"type":"LegacyBlob"`)
}

func TestPlanHandlesEveryKind(t *testing.T) {
	samples := map[model.Kind]model.Classification{
		model.KindUnsupported:    model.Unsupported("Blob"),
		model.KindPrimitive:      parser.Classify("long"),
		model.KindBoxedPrimitive: parser.Classify("java.lang.Long"),
		model.KindText:           parser.Classify("java.lang.String"),
		model.KindDecimal:        parser.Classify("java.math.BigDecimal"),
		model.KindDateTime:       parser.Classify("java.util.Date"),
		model.KindArray:          parser.Classify("long[]"),
		model.KindList:           parser.Classify("java.util.List<Long>"),
		model.KindMap:            parser.Classify("java.util.Map<Long, Long>"),
	}
	g := newGenerator(Config{})
	for k := model.Kind(0); int(k) < model.KindTotal; k++ {
		c, ok := samples[k]
		require.True(t, ok, "no sample for kind %s", k)
		require.Equal(t, k, c.Kind)

		got := g.Plan("f", c, "a.f", "b.f")
		require.NotEmpty(t, got, k.String())
		marker := strings.HasPrefix(got[0], "// Field[")
		assert.Equal(t, k == model.KindUnsupported, marker, "kind %s produced %v", k, got)
	}
}

func TestPlanReturnsFreshSequences(t *testing.T) {
	g := newGenerator(Config{})
	c := parser.Classify("java.util.List<String>")

	first := g.Plan("tags", c, "a.tags", "b.tags")
	second := g.Plan("tags", c, "a.tags", "b.tags")
	require.Equal(t, first, second)

	first[0] = "changed"
	assert.NotEqual(t, first[0], second[0])
}
