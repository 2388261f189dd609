package ports

import (
	"github.com/baditaflorin/go_case_convert/internal/core/domain"
)

// Renderer defines the interface for joining classified word units into a
// final cased string.
type Renderer interface {
	Render(units []domain.WordUnit) string
}
