package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rkabir/profscope/internal/app/models/dto"
	"github.com/rkabir/profscope/internal/pkg/logger"
	"github.com/rkabir/profscope/internal/seed"
)

// AdminController handles administrative maintenance operations
type AdminController struct {
	dbPool *pgxpool.Pool
}

// NewAdminController creates a new AdminController
func NewAdminController(dbPool *pgxpool.Pool) *AdminController {
	return &AdminController{
		dbPool: dbPool,
	}
}

// Seed inserts the default departments, courses and professors
// @Summary Seed default data
// @Description Idempotently creates the default departments, courses and professors
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse "Seeding failed"
// @Router /seed [post]
func (c *AdminController) Seed(ctx *gin.Context) {
	if err := seed.CreateDefaultData(ctx.Request.Context(), c.dbPool, logger.With("seed")); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Seeding default data failed")))
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Default data created"})
}
