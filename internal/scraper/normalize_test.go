package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsableName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"full name", "Dr. Ahmed Rahman", true},
		{"three characters", "Ali", true},
		{"two characters", "Al", false},
		{"empty", "", false},
		{"whitespace only", "   \t ", false},
		{"padded short name", "  A  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UsableName(tt.in))
		})
	}
}

func TestAbsoluteURL(t *testing.T) {
	base := "https://iub.ac.bd"

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"empty", "", ""},
		{"already absolute", "https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"absolute http", "http://example.com/x", "http://example.com/x"},
		{"root relative", "/images/prof.jpg", "https://iub.ac.bd/images/prof.jpg"},
		{"bare relative", "profile/123", "https://iub.ac.bd/profile/123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AbsoluteURL(base, tt.ref))
		})
	}
}

func TestNormalizeRecord(t *testing.T) {
	base := "https://iub.ac.bd"

	t.Run("canonical keys", func(t *testing.T) {
		m, ok := NormalizeRecord(map[string]interface{}{
			"name":       "Dr. Sarah Khan",
			"title":      "Associate Professor",
			"department": "Computer Science",
			"school":     "School of Engineering",
			"email":      "sarah@iub.ac.bd",
			"image":      "/photos/sarah.jpg",
		}, base)

		assert.True(t, ok)
		assert.Equal(t, "Dr. Sarah Khan", m.Name)
		assert.Equal(t, "Associate Professor", m.Title)
		assert.Equal(t, "Computer Science", m.Department)
		assert.Equal(t, "School of Engineering", m.School)
		assert.Equal(t, "sarah@iub.ac.bd", m.Email)
		assert.Equal(t, "https://iub.ac.bd/photos/sarah.jpg", m.ImageURL)
	})

	t.Run("alternative keys", func(t *testing.T) {
		m, ok := NormalizeRecord(map[string]interface{}{
			"display_name":  "Prof. Karim Uddin",
			"designation":   "Professor",
			"dept":          "EEE",
			"contact_email": "karim@iub.ac.bd",
			"telephone":     "+880-1700-000000",
			"room":          "AB-301",
			"about":         "Power systems researcher.",
			"avatar":        "https://cdn.iub.ac.bd/karim.png",
			"profile_url":   "/faculty/karim",
		}, base)

		assert.True(t, ok)
		assert.Equal(t, "Prof. Karim Uddin", m.Name)
		assert.Equal(t, "Professor", m.Title)
		assert.Equal(t, "EEE", m.Department)
		assert.Equal(t, "karim@iub.ac.bd", m.Email)
		assert.Equal(t, "+880-1700-000000", m.Phone)
		assert.Equal(t, "AB-301", m.Office)
		assert.Equal(t, "Power systems researcher.", m.Bio)
		assert.Equal(t, "https://cdn.iub.ac.bd/karim.png", m.ImageURL)
		assert.Equal(t, "https://iub.ac.bd/faculty/karim", m.ProfileURL)
	})

	t.Run("name falls back to title key", func(t *testing.T) {
		m, ok := NormalizeRecord(map[string]interface{}{
			"title": "Dr. Fatema Begum",
		}, base)

		assert.True(t, ok)
		assert.Equal(t, "Dr. Fatema Begum", m.Name)
	})

	t.Run("no usable name", func(t *testing.T) {
		_, ok := NormalizeRecord(map[string]interface{}{
			"name":  "AB",
			"email": "someone@iub.ac.bd",
		}, base)
		assert.False(t, ok)
	})

	t.Run("non-string values ignored", func(t *testing.T) {
		m, ok := NormalizeRecord(map[string]interface{}{
			"name":  "Dr. Nabil Hossain",
			"phone": 1700000000,
		}, base)

		assert.True(t, ok)
		assert.Empty(t, m.Phone)
	})
}
