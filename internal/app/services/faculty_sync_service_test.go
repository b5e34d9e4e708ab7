package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkabir/profscope/internal/app/models"
	"github.com/rkabir/profscope/internal/pkg/apperrors"
	"github.com/rkabir/profscope/internal/scraper"
)

type fakeProfessorStore struct {
	bySlug    map[string]*models.Professor
	createErr map[string]error
	created   []*models.Professor
	updated   []*models.Professor
}

func newFakeStore(existing ...*models.Professor) *fakeProfessorStore {
	store := &fakeProfessorStore{
		bySlug:    make(map[string]*models.Professor),
		createErr: make(map[string]error),
	}
	for _, p := range existing {
		store.bySlug[p.Slug] = p
	}
	return store
}

func (f *fakeProfessorStore) GetBySlug(_ context.Context, professorSlug string) (*models.Professor, error) {
	if p, ok := f.bySlug[professorSlug]; ok {
		return p, nil
	}
	return nil, apperrors.ErrProfessorNotFound
}

func (f *fakeProfessorStore) Create(_ context.Context, p *models.Professor) error {
	if err := f.createErr[p.Name]; err != nil {
		return err
	}
	f.bySlug[p.Slug] = p
	f.created = append(f.created, p)
	return nil
}

func (f *fakeProfessorStore) UpdateProfile(_ context.Context, p *models.Professor) error {
	f.updated = append(f.updated, p)
	return nil
}

func TestReconcile_CreatesMissingProfessors(t *testing.T) {
	store := newFakeStore()
	svc := NewFacultySyncService(nil, store)

	members := []scraper.FacultyMember{
		{
			Name:       "Dr. Ahmed Rahman",
			Title:      "Professor",
			Department: "Computer Science and Engineering",
			School:     "School of Engineering",
			Email:      "rahman@iub.ac.bd",
		},
	}

	stats := svc.Reconcile(context.Background(), members, SyncModeFull)

	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Created)
	assert.Equal(t, 0, stats.Updated)
	assert.Equal(t, 0, stats.Errors)

	require.Len(t, store.created, 1)
	p := store.created[0]
	assert.Equal(t, "dr-ahmed-rahman", p.Slug)
	assert.Equal(t, []string{"Computer Science and Engineering"}, p.Departments)
	require.NotNil(t, p.Bio)
	assert.Equal(t, "Professor, Computer Science and Engineering, School of Engineering", *p.Bio,
		"bio should be synthesized from title, department and school")
	assert.Nil(t, p.Phone)
}

func TestReconcile_FullModeUpdatesExisting(t *testing.T) {
	existing := &models.Professor{Name: "Dr. Ahmed Rahman", Slug: "dr-ahmed-rahman"}
	store := newFakeStore(existing)
	svc := NewFacultySyncService(nil, store)

	members := []scraper.FacultyMember{
		{Name: "Dr. Ahmed Rahman", Title: "Associate Professor", Department: "CSE"},
	}

	stats := svc.Reconcile(context.Background(), members, SyncModeFull)

	assert.Equal(t, 1, stats.Updated)
	assert.Equal(t, 0, stats.Created)
	require.Len(t, store.updated, 1)
	assert.Equal(t, "dr-ahmed-rahman", store.updated[0].Slug, "slug must not change on update")
	require.NotNil(t, store.updated[0].Title)
	assert.Equal(t, "Associate Professor", *store.updated[0].Title)
}

func TestReconcile_UpdateKeepsBioWhenNewIsBlank(t *testing.T) {
	oldBio := "Longtime faculty member."
	existing := &models.Professor{Name: "Dr Ahmed Rahman", Slug: "dr-ahmed-rahman", Bio: &oldBio}
	store := newFakeStore(existing)
	svc := NewFacultySyncService(nil, store)

	// Same slug, punctuated name variant, nothing to synthesize a bio from.
	members := []scraper.FacultyMember{{Name: "Dr. Ahmed Rahman"}}

	stats := svc.Reconcile(context.Background(), members, SyncModeFull)

	assert.Equal(t, 1, stats.Updated)
	require.Len(t, store.updated, 1)
	assert.Equal(t, "Dr. Ahmed Rahman", store.updated[0].Name, "display name follows the directory")
	require.NotNil(t, store.updated[0].Bio)
	assert.Equal(t, oldBio, *store.updated[0].Bio, "blank scraped bio must not clobber the stored one")
}

func TestReconcile_UpdateNeverSynthesizesOverStoredBio(t *testing.T) {
	oldBio := "Hand-written profile text."
	existing := &models.Professor{Name: "Dr. Ahmed Rahman", Slug: "dr-ahmed-rahman", Bio: &oldBio}
	store := newFakeStore(existing)
	svc := NewFacultySyncService(nil, store)

	// Blank scraped bio but title and department present: enough material
	// to synthesize, which must only happen on create.
	members := []scraper.FacultyMember{
		{Name: "Dr. Ahmed Rahman", Title: "Professor", Department: "CSE"},
	}

	stats := svc.Reconcile(context.Background(), members, SyncModeFull)

	assert.Equal(t, 1, stats.Updated)
	require.Len(t, store.updated, 1)
	require.NotNil(t, store.updated[0].Bio)
	assert.Equal(t, oldBio, *store.updated[0].Bio)
	require.NotNil(t, store.updated[0].Title)
	assert.Equal(t, "Professor", *store.updated[0].Title)
}

func TestReconcile_AutoModeSkipsExisting(t *testing.T) {
	existing := &models.Professor{Name: "Dr. Ahmed Rahman", Slug: "dr-ahmed-rahman"}
	store := newFakeStore(existing)
	svc := NewFacultySyncService(nil, store)

	members := []scraper.FacultyMember{
		{Name: "Dr. Ahmed Rahman", Title: "Changed Title"},
		{Name: "Prof. Nusrat Jahan", Department: "EEE"},
	}

	stats := svc.Reconcile(context.Background(), members, SyncModeAuto)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Created)
	assert.Equal(t, 0, stats.Updated)
	assert.Empty(t, store.updated, "auto-sync must never touch existing rows")
	require.Len(t, store.created, 1)
	assert.Equal(t, "Prof. Nusrat Jahan", store.created[0].Name)
}

func TestReconcile_ErrorIsolation(t *testing.T) {
	store := newFakeStore()
	store.createErr["Bad Record"] = errors.New("slug collision")
	svc := NewFacultySyncService(nil, store)

	members := []scraper.FacultyMember{
		{Name: "Bad Record"},
		{Name: "Dr. Sarah Khan"},
	}

	stats := svc.Reconcile(context.Background(), members, SyncModeFull)

	assert.Equal(t, 1, stats.Errors)
	assert.Equal(t, 1, stats.Created, "a failing record must not abort the run")
	require.Len(t, stats.ErrorDetails, 1)
	assert.Contains(t, stats.ErrorDetails[0], "Bad Record")
}

func TestReconcile_EmptyBioWhenNothingScraped(t *testing.T) {
	store := newFakeStore()
	svc := NewFacultySyncService(nil, store)

	svc.Reconcile(context.Background(), []scraper.FacultyMember{{Name: "Dr. Sarah Khan"}}, SyncModeFull)

	require.Len(t, store.created, 1)
	assert.Nil(t, store.created[0].Bio)
	assert.Equal(t, []string{}, store.created[0].Departments)
}
