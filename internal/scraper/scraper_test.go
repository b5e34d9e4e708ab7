package scraper

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExtractor struct {
	name    string
	members []FacultyMember
	err     error
	calls   int
}

func (s *stubExtractor) Name() string { return s.name }

func (s *stubExtractor) Extract(_ context.Context) ([]FacultyMember, error) {
	s.calls++
	return s.members, s.err
}

func TestScrapeFaculty_FirstNonEmptyWins(t *testing.T) {
	first := &stubExtractor{name: "api", members: []FacultyMember{{Name: "Dr. Ahmed Rahman"}}}
	second := &stubExtractor{name: "browser", members: []FacultyMember{{Name: "Prof. Nusrat Jahan"}}}

	s := NewWithExtractors(first, second)
	members := s.ScrapeFaculty(context.Background())

	assert.Len(t, members, 1)
	assert.Equal(t, "Dr. Ahmed Rahman", members[0].Name)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls, "later strategies must not run once one succeeds")
}

func TestScrapeFaculty_FallsThroughOnError(t *testing.T) {
	failing := &stubExtractor{name: "api", err: errors.New("endpoint unreachable")}
	empty := &stubExtractor{name: "browser"}
	working := &stubExtractor{name: "static", members: []FacultyMember{{Name: "Dr. Sarah Khan"}}}

	s := NewWithExtractors(failing, empty, working)
	members := s.ScrapeFaculty(context.Background())

	assert.Len(t, members, 1)
	assert.Equal(t, "Dr. Sarah Khan", members[0].Name)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, empty.calls)
	assert.Equal(t, 1, working.calls)
}

func TestScrapeFaculty_AllStrategiesEmpty(t *testing.T) {
	s := NewWithExtractors(
		&stubExtractor{name: "api", err: errors.New("boom")},
		&stubExtractor{name: "browser"},
		&stubExtractor{name: "static"},
	)

	members := s.ScrapeFaculty(context.Background())

	assert.NotNil(t, members, "absence of data is an empty slice, never nil")
	assert.Empty(t, members)
}
