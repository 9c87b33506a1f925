package t2048

import "github.com/vovakirdan/tui-2048/internal/registry"

// RegisterVariants adds a factory for every variant to r.
func RegisterVariants(r *registry.Registry, variants []Variant) {
	for _, v := range variants {
		r.Register(v.ID, v.Title, func() registry.Game {
			return NewGame(v)
		})
	}
}
