package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rkabir/profscope/internal/app/models"
	"github.com/rkabir/profscope/internal/app/models/dto"
	"github.com/rkabir/profscope/internal/app/repositories"
	"github.com/rkabir/profscope/internal/app/services"
	"github.com/rkabir/profscope/internal/middleware"
	"github.com/rkabir/profscope/internal/pkg/helpers"
)

// ReviewController handles review, vote and report operations
type ReviewController struct {
	reviewService *services.ReviewService
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService *services.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// CreateReview handles review submission
// @Summary Submit a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateReviewRequest true "Review content"
// @Success 201 {object} models.Review
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Professor or course not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate review"
// @Router /reviews [post]
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid review data")
		errorDetail = errorDetail.WithDetails(middleware.FormatValidationErrors(err).Errors)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	review := &models.Review{
		UserID:         user.ID,
		ProfessorID:    req.ProfessorID,
		CourseID:       req.CourseID,
		Semester:       models.Semester(req.Semester),
		Year:           req.Year,
		Section:        req.Section,
		Overall:        req.Overall,
		Difficulty:     req.Difficulty,
		Clarity:        req.Clarity,
		Helpfulness:    req.Helpfulness,
		Engagement:     req.Engagement,
		Fairness:       req.Fairness,
		Grading:        req.Grading,
		Workload:       req.Workload,
		WouldTakeAgain: req.WouldTakeAgain,
		Recommend:      req.Recommend,
		Delivery:       req.Delivery,
		GradeReceived:  req.GradeReceived,
		Attendance:     req.Attendance,
		HoursPerWeek:   req.HoursPerWeek,
		Tags:           req.Tags,
		Comment:        req.Comment,
	}

	if err := c.reviewService.Create(ctx.Request.Context(), review); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, review)
}

// GetMyReviews lists the caller's own reviews
// @Summary List own reviews
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Review
// @Router /reviews/mine [get]
func (c *ReviewController) GetMyReviews(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	limit, offset := helpers.ParseLimitOffset(ctx)
	reviews, err := c.reviewService.GetByUser(ctx.Request.Context(), user.ID, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}

// GetReviews lists reviews filtered by professor, course, semester and year
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param professorId query string false "Professor ID"
// @Param courseId query string false "Course ID"
// @Param semester query string false "Semester (SPRING, SUMMER, AUTUMN)"
// @Param year query int false "Year"
// @Param status query string false "Review status (defaults to PUBLISHED)"
// @Success 200 {array} models.Review
// @Failure 400 {object} dto.ErrorResponse "Invalid filter value"
// @Router /reviews [get]
func (c *ReviewController) GetReviews(ctx *gin.Context) {
	var filter repositories.ReviewFilter

	if raw := ctx.Query("professorId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid professor ID")))
			return
		}
		filter.ProfessorID = &id
	}

	if raw := ctx.Query("courseId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")))
			return
		}
		filter.CourseID = &id
	}

	if raw := ctx.Query("semester"); raw != "" {
		semester := models.Semester(raw)
		filter.Semester = &semester
	}

	if raw := ctx.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid year")))
			return
		}
		filter.Year = &year
	}

	filter.Status = models.ReviewStatus(ctx.Query("status"))

	limit, offset := helpers.ParseLimitOffset(ctx)
	reviews, err := c.reviewService.List(ctx.Request.Context(), filter, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}

// UpdateReview handles review editing within the edit window
// @Summary Edit own review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body dto.UpdateReviewRequest true "New review content"
// @Success 200 {object} models.Review
// @Failure 403 {object} dto.ErrorResponse "Not your review or edit window closed"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Router /reviews/{id} [put]
func (c *ReviewController) UpdateReview(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid review ID")))
		return
	}

	var req dto.UpdateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid review data")
		errorDetail = errorDetail.WithDetails(middleware.FormatValidationErrors(err).Errors)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	review, err := c.reviewService.Update(ctx.Request.Context(), user.ID, id, func(r *models.Review) {
		if req.Overall != nil {
			r.Overall = *req.Overall
		}
		if req.Difficulty != nil {
			r.Difficulty = req.Difficulty
		}
		if req.Clarity != nil {
			r.Clarity = req.Clarity
		}
		if req.Helpfulness != nil {
			r.Helpfulness = req.Helpfulness
		}
		if req.Engagement != nil {
			r.Engagement = req.Engagement
		}
		if req.Fairness != nil {
			r.Fairness = req.Fairness
		}
		if req.Grading != nil {
			r.Grading = req.Grading
		}
		if req.Workload != nil {
			r.Workload = req.Workload
		}
		if req.WouldTakeAgain != nil {
			r.WouldTakeAgain = req.WouldTakeAgain
		}
		if req.Recommend != nil {
			r.Recommend = req.Recommend
		}
		if req.Delivery != nil {
			r.Delivery = req.Delivery
		}
		if req.GradeReceived != nil {
			r.GradeReceived = req.GradeReceived
		}
		if req.Attendance != nil {
			r.Attendance = req.Attendance
		}
		if req.HoursPerWeek != nil {
			r.HoursPerWeek = req.HoursPerWeek
		}
		if req.Tags != nil {
			r.Tags = req.Tags
		}
		if req.Comment != nil {
			r.Comment = req.Comment
		}
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, review)
}

// DeleteReview handles review deletion by owner or admin
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse "Not your review"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Router /reviews/{id} [delete]
func (c *ReviewController) DeleteReview(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid review ID")))
		return
	}

	if err := c.reviewService.Delete(ctx.Request.Context(), user, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Review deleted"})
}

// VoteReview records a helpfulness vote
// @Summary Vote on a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body dto.VoteRequest true "Vote"
// @Success 200 {object} models.ReviewVote
// @Failure 400 {object} dto.ErrorResponse "Invalid vote"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Router /reviews/{id}/vote [post]
func (c *ReviewController) VoteReview(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid review ID")))
		return
	}

	var req dto.VoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid vote data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	vote, err := c.reviewService.Vote(ctx.Request.Context(), user.ID, id, models.VoteType(req.Vote))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, vote)
}

// ReportReview flags a review for moderation
// @Summary Report a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body dto.ReportRequest true "Report reason"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Router /reviews/{id}/report [post]
func (c *ReviewController) ReportReview(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid review ID")))
		return
	}

	var req dto.ReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid report data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.reviewService.Report(ctx.Request.Context(), user.ID, id, req.Reason); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Review reported"})
}
