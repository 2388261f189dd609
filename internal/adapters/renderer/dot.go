package renderer

import (
	"strings"

	"github.com/baditaflorin/go_case_convert/internal/core/domain"
	"github.com/baditaflorin/go_case_convert/internal/ports"
)

// DotRenderer joins word units with dots. Word units are lowercased. Acronym
// units keep their original case by default, mirroring the asymmetry of the
// reference behavior; LowercaseAcronyms unifies them with word units.
type DotRenderer struct {
	LowercaseAcronyms bool
}

// NewDotRenderer creates a new dot.case renderer with the default
// acronym-preserving policy.
func NewDotRenderer() ports.Renderer {
	return &DotRenderer{}
}

// Render joins all units with "." as separator.
func (r *DotRenderer) Render(units []domain.WordUnit) string {
	parts := make([]string, 0, len(units))
	for _, unit := range units {
		if unit.Kind == domain.Acronym && !r.LowercaseAcronyms {
			parts = append(parts, unit.Text)
		} else {
			parts = append(parts, strings.ToLower(unit.Text))
		}
	}
	return strings.Join(parts, ".")
}
