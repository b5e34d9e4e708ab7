package scraper

import (
	"net/url"
	"strings"
)

// minNameLength is the trimmed length a candidate name must exceed to be
// kept. Shorter entries are selector noise, not people.
const minNameLength = 2

// UsableName reports whether a scraped name survives normalization.
func UsableName(name string) bool {
	return len(strings.TrimSpace(name)) > minNameLength
}

// AbsoluteURL rewrites a relative reference against the site origin. Already
// absolute references and unparseable input pass through unchanged.
func AbsoluteURL(base, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}

	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

// NormalizeRecord maps a heterogeneous structured record (API responses use
// wildly different field names) onto the canonical FacultyMember shape.
// Returns false when the record has no usable name.
func NormalizeRecord(raw map[string]interface{}, baseURL string) (FacultyMember, bool) {
	name := strings.TrimSpace(firstString(raw, "name", "title", "display_name"))
	if !UsableName(name) {
		return FacultyMember{}, false
	}

	m := FacultyMember{
		Name:       name,
		Title:      firstString(raw, "title", "position", "designation", "rank"),
		Department: firstString(raw, "department", "dept", "unit"),
		School:     firstString(raw, "school", "faculty", "college"),
		Email:      firstString(raw, "email", "contact_email"),
		Phone:      firstString(raw, "phone", "contact_phone", "telephone"),
		Office:     firstString(raw, "office", "room", "location"),
		Bio:        firstString(raw, "bio", "description", "about", "content"),
		ImageURL:   firstString(raw, "image", "photo", "picture", "avatar"),
		ProfileURL: firstString(raw, "url", "link", "profile_url"),
	}

	m.ImageURL = AbsoluteURL(baseURL, m.ImageURL)
	m.ProfileURL = AbsoluteURL(baseURL, m.ProfileURL)
	return m, true
}

// firstString returns the first non-empty string value among the given keys.
func firstString(raw map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := raw[key].(string); ok {
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		}
	}
	return ""
}
