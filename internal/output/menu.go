package output

import (
	"strings"

	"github.com/yourusername/winplace/internal/layout"
)

// MenuItem is one entry shown by the launcher
type MenuItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Action      string   `json:"action"`
	Keywords    []string `json:"keywords,omitempty"`
}

// BuildMenu returns the actions matching query, in table order. An empty
// query matches everything. keywordsFor may be nil.
func BuildMenu(query string, keywordsFor func(string) []string) []MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))

	// An alias or exact action name always surfaces its action
	exact := ""
	if a, ok := layout.Lookup(q); ok {
		exact = a.Name
	}

	items := []MenuItem{}
	for _, a := range layout.Actions() {
		var keywords []string
		if keywordsFor != nil {
			keywords = keywordsFor(a.Name)
		}
		if q != "" && a.Name != exact && !matches(q, a, keywords) {
			continue
		}
		items = append(items, MenuItem{
			Name:        a.Title,
			Description: a.Description,
			Action:      a.Name,
			Keywords:    keywords,
		})
	}
	return items
}

func matches(q string, a layout.Action, keywords []string) bool {
	if strings.Contains(a.Name, q) || strings.Contains(strings.ToLower(a.Title), q) {
		return true
	}
	for _, kw := range keywords {
		if strings.HasPrefix(kw, q) {
			return true
		}
	}
	return false
}
