package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const facultyPage = `<!DOCTYPE html>
<html><body>
<div class="faculty-card">
  <img src="/photos/rahman.jpg">
  <h3 class="name">Dr. Ahmed Rahman</h3>
  <span class="position">Professor</span>
  <span class="department">Computer Science and Engineering</span>
  <span class="school">School of Engineering</span>
  <a class="email" href="mailto:rahman@iub.ac.bd">rahman@iub.ac.bd</a>
  <span class="phone">+880-2-8431645</span>
  <span class="office">DMK-5011</span>
  <a href="/faculty/rahman">Profile</a>
</div>
<div class="faculty-card">
  <h3 class="name">Prof. Nusrat Jahan</h3>
  <span class="position">Associate Professor</span>
  <span class="department">Electrical Engineering</span>
</div>
<div class="faculty-card">
  <h3 class="name">AB</h3>
  <span class="position">Lecturer</span>
</div>
</body></html>`

const genericPage = `<!DOCTYPE html>
<html><body>
<div class="card">
  <h4>Dr. Tahmid Chowdhury</h4>
  <span class="designation">Assistant Professor</span>
  <a href="mailto:tahmid@iub.ac.bd">Email</a>
</div>
<div class="card">
  <h4>Ms. Rafia Sultana</h4>
  <span class="designation">Senior Lecturer</span>
</div>
</body></html>`

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractFromDocument_FacultyCards(t *testing.T) {
	doc := parseDoc(t, facultyPage)

	members := extractFromDocument(doc, DefaultSelectors(), "https://iub.ac.bd")

	require.Len(t, members, 2, "too-short names must be dropped")

	first := members[0]
	assert.Equal(t, "Dr. Ahmed Rahman", first.Name)
	assert.Equal(t, "Professor", first.Title)
	assert.Equal(t, "Computer Science and Engineering", first.Department)
	assert.Equal(t, "School of Engineering", first.School)
	assert.Equal(t, "rahman@iub.ac.bd", first.Email)
	assert.Equal(t, "+880-2-8431645", first.Phone)
	assert.Equal(t, "DMK-5011", first.Office)
	assert.Equal(t, "https://iub.ac.bd/photos/rahman.jpg", first.ImageURL)

	second := members[1]
	assert.Equal(t, "Prof. Nusrat Jahan", second.Name)
	assert.Equal(t, "Electrical Engineering", second.Department)
	assert.Empty(t, second.Email)
	assert.Empty(t, second.ImageURL)
}

func TestExtractFromDocument_GenericFallback(t *testing.T) {
	doc := parseDoc(t, genericPage)

	members := extractFromDocument(doc, DefaultSelectors(), "https://iub.ac.bd")

	require.Len(t, members, 2)
	assert.Equal(t, "Dr. Tahmid Chowdhury", members[0].Name)
	assert.Equal(t, "Assistant Professor", members[0].Title)
	assert.Equal(t, "tahmid@iub.ac.bd", members[0].Email, "email should fall back to the mailto target")
	assert.Equal(t, "Ms. Rafia Sultana", members[1].Name)
}

func TestExtractFromDocument_NoMatch(t *testing.T) {
	doc := parseDoc(t, `<html><body><p>Nothing here.</p></body></html>`)

	members := extractFromDocument(doc, DefaultSelectors(), "https://iub.ac.bd")
	assert.Empty(t, members)
}

func TestExtractCard_ProfileURLAbsolutized(t *testing.T) {
	doc := parseDoc(t, `<div class="faculty-card">
		<h3>Dr. Ahmed Rahman</h3>
		<a href="faculty/rahman">Profile</a>
	</div>`)

	members := extractFromDocument(doc, DefaultSelectors(), "https://iub.ac.bd")

	require.Len(t, members, 1)
	assert.Equal(t, "https://iub.ac.bd/faculty/rahman", members[0].ProfileURL)
}
