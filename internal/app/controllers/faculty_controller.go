package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rkabir/profscope/internal/app/models/dto"
	"github.com/rkabir/profscope/internal/app/services"
	"github.com/rkabir/profscope/internal/scraper"
)

// sampleSize is how many scraped records the sync response echoes back for
// operator sanity checks.
const sampleSize = 3

// FacultyController exposes the faculty directory scrape and sync
// operations
type FacultyController struct {
	syncService *services.FacultySyncService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(syncService *services.FacultySyncService) *FacultyController {
	return &FacultyController{
		syncService: syncService,
	}
}

// Preview scrapes the directory without persisting anything
// @Summary Preview scraped faculty
// @Description Runs the directory scrape and returns the raw result without touching the database
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.FacultyPreviewResponse "Scraped faculty data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /faculty/preview [get]
func (c *FacultyController) Preview(ctx *gin.Context) {
	members := c.syncService.Preview(ctx.Request.Context())

	ctx.JSON(http.StatusOK, dto.FacultyPreviewResponse{
		Count: len(members),
		Data:  members,
	})
}

// Sync scrapes the directory and reconciles every record
// @Summary Sync faculty directory
// @Description Scrapes the directory, creating missing professors and refreshing existing ones
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.FacultySyncResponse "Sync statistics"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse "No faculty data found"
// @Router /faculty/sync [post]
func (c *FacultyController) Sync(ctx *gin.Context) {
	members, stats := c.syncService.Sync(ctx.Request.Context(), services.SyncModeFull)
	if len(members) == 0 {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeScrapeFailed,
				"No faculty data found. The university website may have changed structure.")))
		return
	}

	ctx.JSON(http.StatusOK, dto.FacultySyncResponse{
		Message:    fmt.Sprintf("Faculty sync completed: %d created, %d updated", stats.Created, stats.Updated),
		Stats:      stats,
		SampleData: sample(members),
	})
}

// AutoSync scrapes the directory and only adds professors it has not seen
// before
// @Summary Incremental faculty sync
// @Description Scrapes the directory and creates missing professors; existing rows are never modified
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AutoSyncResponse "Incremental sync result"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /faculty/auto-sync [post]
func (c *FacultyController) AutoSync(ctx *gin.Context) {
	members, stats := c.syncService.Sync(ctx.Request.Context(), services.SyncModeAuto)

	ctx.JSON(http.StatusOK, dto.AutoSyncResponse{
		Message:         fmt.Sprintf("Auto-sync completed: %d new faculty added", stats.Created),
		NewFacultyAdded: stats.Created,
		TotalScraped:    len(members),
	})
}

func sample(members []scraper.FacultyMember) []scraper.FacultyMember {
	if len(members) <= sampleSize {
		return members
	}
	return members[:sampleSize]
}
