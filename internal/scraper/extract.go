package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractFromDocument applies the card selector tables to a parsed document.
// Faculty-specific selectors are tried first; the generic list-item tables
// only run when none of them matched any card that yielded a candidate.
func extractFromDocument(doc *goquery.Document, sel Selectors, baseURL string) []FacultyMember {
	for _, cardSel := range sel.Cards {
		if members := extractCards(doc.Find(cardSel), sel.Fields, baseURL); len(members) > 0 {
			return members
		}
	}
	for _, cardSel := range sel.GenericCards {
		if members := extractCards(doc.Find(cardSel), sel.Fields, baseURL); len(members) > 0 {
			return members
		}
	}
	return nil
}

func extractCards(cards *goquery.Selection, fields FieldSelectors, baseURL string) []FacultyMember {
	var members []FacultyMember
	cards.Each(func(_ int, card *goquery.Selection) {
		if m, ok := extractCard(card, fields, baseURL); ok {
			members = append(members, m)
		}
	})
	return members
}

// extractCard pulls the canonical fields out of a single card element.
// Cards with a missing or too-short name are dropped silently.
func extractCard(card *goquery.Selection, fields FieldSelectors, baseURL string) (FacultyMember, bool) {
	name := firstText(card, fields.Name)
	if !UsableName(name) {
		return FacultyMember{}, false
	}

	m := FacultyMember{
		Name:       name,
		Title:      firstText(card, fields.Title),
		Department: firstText(card, fields.Department),
		School:     firstText(card, fields.School),
		Email:      extractEmail(card, fields.Email),
		Phone:      firstText(card, fields.Phone),
		Office:     firstText(card, fields.Office),
		Bio:        firstText(card, fields.Bio),
	}

	if src, ok := card.Find("img").First().Attr("src"); ok {
		m.ImageURL = AbsoluteURL(baseURL, src)
	}
	if href, ok := card.Find("a[href]").First().Attr("href"); ok {
		m.ProfileURL = AbsoluteURL(baseURL, href)
	}

	return m, true
}

// extractEmail prefers the visible email text and falls back to the mailto
// link target.
func extractEmail(card *goquery.Selection, selector string) string {
	if selector != "" {
		if text := firstText(card, selector); text != "" {
			return text
		}
	}
	if href, ok := card.Find(`[href^="mailto:"]`).First().Attr("href"); ok {
		return strings.TrimPrefix(href, "mailto:")
	}
	return ""
}

func firstText(card *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	return strings.TrimSpace(card.Find(selector).First().Text())
}
