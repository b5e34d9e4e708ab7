package slug

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Sarah Rahman", "sarah-rahman"},
		{"honorific with dots", "Dr. A. Karim", "dr-a-karim"},
		{"extra whitespace", "  Prof.   Ahmed   Hassan  ", "prof-ahmed-hassan"},
		{"existing hyphens", "Jean-Pierre Dupont", "jean-pierre-dupont"},
		{"doubled hyphens collapse", "A -- B", "a-b"},
		{"punctuation stripped", "O'Brien, Liam (PhD)", "obrien-liam-phd"},
		{"unicode stripped", "José García", "jos-garca"},
		{"leading trailing symbols", "***Fatima Khan***", "fatima-khan"},
		{"digits kept", "Agent 007", "agent-007"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Make(tc.in))
		})
	}
}

func TestMakeIsDeterministic(t *testing.T) {
	first := Make("Dr. Fatima   Khan")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Make("Dr. Fatima   Khan"))
	}
}

func TestMakeOutputAlphabet(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9-]*$`)

	inputs := []string{
		"Dr. A. Karim",
		"  --weird -- input--  ",
		"MIXED case With 123 & symbols!!",
		"তানভীর আহমেদ", // entirely non-latin collapses to empty
	}
	for _, in := range inputs {
		got := Make(in)
		assert.True(t, valid.MatchString(got), "slug %q contains invalid characters", got)
		assert.False(t, strings.HasPrefix(got, "-"), "slug %q has leading hyphen", got)
		assert.False(t, strings.HasSuffix(got, "-"), "slug %q has trailing hyphen", got)
		assert.NotContains(t, got, "--", "slug %q has doubled hyphen", got)
	}
}
