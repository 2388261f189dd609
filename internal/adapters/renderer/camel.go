package renderer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/baditaflorin/go_case_convert/internal/core/domain"
	"github.com/baditaflorin/go_case_convert/internal/ports"
)

// CamelRenderer joins word units into camelCase. The first word unit is
// lowercased, subsequent word units have their first letter capitalized, and
// acronym units pass through unchanged at any position.
type CamelRenderer struct{}

// NewCamelRenderer creates a new camelCase renderer.
func NewCamelRenderer() ports.Renderer {
	return &CamelRenderer{}
}

// Render concatenates the cased units with no separator.
func (r *CamelRenderer) Render(units []domain.WordUnit) string {
	// cases.Caser is stateful, so a fresh one is created per call to keep
	// Render safe for concurrent use.
	title := cases.Title(language.English, cases.NoLower)

	var sb strings.Builder
	for i, unit := range units {
		switch {
		case unit.Kind == domain.Acronym:
			sb.WriteString(unit.Text)
		case i == 0:
			sb.WriteString(strings.ToLower(unit.Text))
		default:
			sb.WriteString(title.String(strings.ToLower(unit.Text)))
		}
	}
	return sb.String()
}
