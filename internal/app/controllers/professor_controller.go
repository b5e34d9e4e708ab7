package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rkabir/profscope/internal/app/models"
	"github.com/rkabir/profscope/internal/app/models/dto"
	"github.com/rkabir/profscope/internal/app/services"
	"github.com/rkabir/profscope/internal/middleware"
	"github.com/rkabir/profscope/internal/pkg/helpers"
)

// ProfessorController handles professor-related operations
type ProfessorController struct {
	professorService *services.ProfessorService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService *services.ProfessorService) *ProfessorController {
	return &ProfessorController{
		professorService: professorService,
	}
}

// GetProfessors lists professors with optional name search
// @Summary List professors
// @Tags professors
// @Produce json
// @Param search query string false "Case-insensitive name filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{}
// @Router /professors [get]
func (c *ProfessorController) GetProfessors(ctx *gin.Context) {
	limit, offset := helpers.ParseLimitOffset(ctx)
	search := ctx.Query("search")

	professors, total, err := c.professorService.GetAll(ctx.Request.Context(), search, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"professors": professors,
		"pagination": dto.PaginationInfo{Total: total, Limit: limit, Offset: offset},
	})
}

// GetProfessor retrieves a professor profile by ID or URL slug
// @Summary Get professor
// @Description Returns the professor together with review aggregates and recorded course offerings
// @Tags professors
// @Produce json
// @Param ref path string true "Professor ID or slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Router /professors/{ref} [get]
func (c *ProfessorController) GetProfessor(ctx *gin.Context) {
	professor, stats, offerings, err := c.professorService.Get(ctx.Request.Context(), ctx.Param("ref"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if offerings == nil {
		offerings = []*models.Offering{}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"professor": professor,
		"stats":     stats,
		"offerings": offerings,
	})
}

// GetProfessorReviews lists published reviews for a professor
// @Summary List professor reviews
// @Tags professors
// @Produce json
// @Param id path string true "Professor ID"
// @Success 200 {array} models.Review
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Router /professors/{id}/reviews [get]
func (c *ProfessorController) GetProfessorReviews(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid professor ID")))
		return
	}

	limit, offset := helpers.ParseLimitOffset(ctx)
	reviews, err := c.professorService.GetReviews(ctx.Request.Context(), id, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}

// CreateProfessor handles manual professor creation
// @Summary Create a professor
// @Tags professors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProfessorRequest true "Professor information"
// @Success 201 {object} models.Professor
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Professor already exists"
// @Router /professors [post]
func (c *ProfessorController) CreateProfessor(ctx *gin.Context) {
	var req dto.CreateProfessorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid professor data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	professor := &models.Professor{
		Name:        req.Name,
		Title:       req.Title,
		Departments: req.Departments,
		School:      req.School,
		Email:       req.Email,
		Phone:       req.Phone,
		Office:      req.Office,
		Bio:         req.Bio,
		ImageURL:    req.ImageURL,
		ProfileURL:  req.ProfileURL,

		ClaimedByUserID: req.ClaimedByUserID,
	}

	if err := c.professorService.Create(ctx.Request.Context(), professor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, professor)
}
