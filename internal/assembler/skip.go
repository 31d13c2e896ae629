package assembler

import (
	"strings"

	"github.com/cmmoran/copytogen/internal/model"
)

const (
	SkipStatic   = "static field"
	SkipFinal    = "final field"
	SkipExcluded = "excluded field"
)

// SkipReason reports whether f must not be copied and why. Static fields win
// over final ones, and both win over an explicit exclusion.
func SkipReason(f *model.Field, exclude []string) (string, bool) {
	if f == nil {
		return "", false
	}
	switch {
	case f.Static:
		return SkipStatic, true
	case f.Final:
		return SkipFinal, true
	case isExcluded(f.Name, exclude):
		return SkipExcluded, true
	}
	return "", false
}

func isExcluded(name string, exclude []string) bool {
	for _, ex := range exclude {
		if strings.EqualFold(strings.TrimSpace(ex), name) {
			return true
		}
	}
	return false
}
