package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/copytogen/internal/model"
)

func TestJava(t *testing.T) {
	method := &model.Method{
		Name:        "copyTo",
		Description: "Copies this value object to the specified target.",
		Doc:         []string{"<P>Cautions for use</P>"},
		Parameters:  []*model.Parameter{{Name: "target", Type: "com.example.Person", Description: "target value object."}},
	}
	body := model.Statements{
		"if (target == null) {",
		`  throw new IllegalArgumentException("x");`,
		"}",
		"",
		"target.age = this.age;",
	}

	got, err := JavaString(method, body, "    ")
	require.NoError(t, err)

	want := `/**
 * Copies this value object to the specified target.
 *
 * <P>Cautions for use</P>
 *
 * @param target target value object.
 */
public void copyTo(final com.example.Person target) {
    if (target == null) {
      throw new IllegalArgumentException("x");
    }

    target.age = this.age;
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Java() mismatch (-want +got):\n%s", diff)
	}
}

func TestJavaWithoutDocOrParameters(t *testing.T) {
	got, err := JavaString(&model.Method{Name: "reset", Description: "Resets."}, nil, "  ")
	require.NoError(t, err)
	assert.Equal(t, "/**\n * Resets.\n */\npublic void reset() {\n}\n", got)
}

func TestJavaNilMethod(t *testing.T) {
	_, err := JavaString(nil, nil, "  ")
	assert.Error(t, err)
}
