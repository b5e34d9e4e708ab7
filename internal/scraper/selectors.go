package scraper

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Selectors are the ordered fallback tables used to locate faculty cards and
// their fields in unknown markup. They are data, not code: when the site's
// structure changes this is a config change, not a redeploy.
type Selectors struct {
	// Cards are faculty-specific repeating-card selectors, tried in order.
	Cards []string `yaml:"cards"`
	// GenericCards are broad list-item selectors used when no
	// faculty-specific selector matches anything.
	GenericCards []string `yaml:"generic_cards"`
	// Fields locate the per-card nested elements.
	Fields FieldSelectors `yaml:"fields"`
	// LoadMore locates the optional pagination trigger (browser strategy
	// only).
	LoadMore []string `yaml:"load_more"`
}

// FieldSelectors are comma-separated CSS selector lists per canonical field.
type FieldSelectors struct {
	Name       string `yaml:"name"`
	Title      string `yaml:"title"`
	Department string `yaml:"department"`
	School     string `yaml:"school"`
	Email      string `yaml:"email"`
	Phone      string `yaml:"phone"`
	Office     string `yaml:"office"`
	Bio        string `yaml:"bio"`
}

// DefaultSelectors returns the built-in fallback tables.
func DefaultSelectors() Selectors {
	return Selectors{
		Cards: []string{
			".faculty-card",
			".faculty-member",
			".faculty-item",
			".member-card",
			".profile-card",
			".faculty",
			"[data-faculty]",
			".person-card",
		},
		GenericCards: []string{
			".card",
			".row .col",
			".grid-item",
			".list-item",
			".item",
		},
		Fields: FieldSelectors{
			Name:       "h1, h2, h3, h4, h5, .name, .faculty-name, .title, strong",
			Title:      ".title, .position, .designation, .rank",
			Department: ".department, .dept, .unit",
			School:     ".school, .faculty-school, .college",
			Email:      ".email",
			Phone:      ".phone, .tel, .contact",
			Office:     ".office, .room, .location",
			Bio:        ".bio, .description, .about, p",
		},
		LoadMore: []string{
			`button[aria-label="Load more"]`,
			".load-more",
			".pagination button",
		},
	}
}

// LoadSelectors reads a selector-table override from a YAML file. Empty
// sections fall back to the defaults.
func LoadSelectors(path string) (Selectors, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Selectors{}, fmt.Errorf("failed to read selectors file: %w", err)
	}

	sel := DefaultSelectors()
	if err := yaml.Unmarshal(data, &sel); err != nil {
		return Selectors{}, fmt.Errorf("failed to parse selectors file: %w", err)
	}
	return sel, nil
}
