package catalog

import (
	"strings"
)

// MaxSuggestions is the Discord limit on autocomplete choices per response
const MaxSuggestions = 25

// CatalogService holds the immutable loot catalog, loaded once at process start
type CatalogService struct {
	items []string
}

func NewCatalogService(items []string) *CatalogService {
	return &CatalogService{items: items}
}

// Items returns all catalog entries in their defined order
func (s *CatalogService) Items() []string {
	items := make([]string, len(s.items))
	copy(items, s.items)
	return items
}

// Suggest returns catalog entries containing partial as a case-insensitive
// substring, in catalog order, capped at MaxSuggestions. An empty partial
// matches every entry.
func (s *CatalogService) Suggest(partial string) []string {
	needle := strings.ToLower(partial)

	var matches []string
	for _, name := range s.items {
		if strings.Contains(strings.ToLower(name), needle) {
			matches = append(matches, name)
			if len(matches) == MaxSuggestions {
				break
			}
		}
	}

	return matches
}
