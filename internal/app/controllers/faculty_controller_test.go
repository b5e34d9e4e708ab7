package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkabir/profscope/internal/app/models"
	"github.com/rkabir/profscope/internal/app/services"
	"github.com/rkabir/profscope/internal/pkg/apperrors"
	"github.com/rkabir/profscope/internal/scraper"
)

type stubFacultyScraper struct {
	members []scraper.FacultyMember
}

func (s stubFacultyScraper) ScrapeFaculty(context.Context) []scraper.FacultyMember {
	return s.members
}

type stubProfessorStore struct{}

func (stubProfessorStore) GetBySlug(context.Context, string) (*models.Professor, error) {
	return nil, apperrors.ErrProfessorNotFound
}

func (stubProfessorStore) Create(context.Context, *models.Professor) error { return nil }

func (stubProfessorStore) UpdateProfile(context.Context, *models.Professor) error { return nil }

func newSyncRouter(members []scraper.FacultyMember) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewFacultyController(
		services.NewFacultySyncService(stubFacultyScraper{members: members}, stubProfessorStore{}))

	router := gin.New()
	router.POST("/faculty/sync", ctrl.Sync)
	return router
}

func TestSyncResponseSamplesAtMostThreeRecords(t *testing.T) {
	members := []scraper.FacultyMember{
		{Name: "Dr. Sarah Rahman"},
		{Name: "Prof. Ahmed Hassan"},
		{Name: "Dr. Fatima Khan"},
		{Name: "Dr. Kamal Uddin"},
		{Name: "Prof. Nusrat Jahan"},
	}
	router := newSyncRouter(members)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/faculty/sync", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		SampleData []scraper.FacultyMember `json:"sampleData"`
		Stats      struct {
			Created int `json:"created"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.SampleData, 3)
	assert.Equal(t, 5, body.Stats.Created)
}

func TestSyncReturnsNotFoundWhenScrapeIsEmpty(t *testing.T) {
	router := newSyncRouter(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/faculty/sync", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
