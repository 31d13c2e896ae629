// Package render writes generated methods as Java source text.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/cmmoran/copytogen/internal/model"
)

var javaMethod = template.Must(template.New("method").Funcs(template.FuncMap{
	"params": javaParams,
}).Parse(`/**
 * {{.Method.Description}}
{{- if .Method.Doc}}
 *
{{- range .Method.Doc}}
 * {{.}}
{{- end}}
{{- end}}
{{- if .Method.Parameters}}
 *
{{- range .Method.Parameters}}
 * @param {{.Name}} {{.Description}}
{{- end}}
{{- end}}
 */
public void {{.Method.Name}}({{params .Method.Parameters}}) {
{{- range .Body}}
{{.}}
{{- end}}
}
`))

// Java writes method with its body indented by indent.
func Java(w io.Writer, method *model.Method, body model.Statements, indent string) error {
	if method == nil {
		return fmt.Errorf("render java: nil method")
	}
	data := struct {
		Method *model.Method
		Body   model.Statements
	}{
		Method: method,
		Body:   body.Indent(indent),
	}
	if err := javaMethod.Execute(w, data); err != nil {
		return fmt.Errorf("render java: %w", err)
	}
	return nil
}

// JavaString is Java rendered into a string.
func JavaString(method *model.Method, body model.Statements, indent string) (string, error) {
	var sb strings.Builder
	if err := Java(&sb, method, body, indent); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func javaParams(params []*model.Parameter) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, "final "+p.Type+" "+p.Name)
	}
	return strings.Join(parts, ", ")
}
