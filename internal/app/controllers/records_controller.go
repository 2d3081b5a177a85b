package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adith/hostelcore/internal/app/models"
	"github.com/adith/hostelcore/internal/app/models/dto"
	"github.com/adith/hostelcore/internal/app/queries"
	"github.com/adith/hostelcore/internal/app/services"
	"github.com/adith/hostelcore/internal/middleware"
	"github.com/adith/hostelcore/internal/pkg/apperrors"
	"github.com/adith/hostelcore/internal/store"
)

// RecordsController handles health records and food feedback
type RecordsController struct {
	recordsService *services.RecordsService
	queries        *queries.Queries
	store          *store.Store
}

// NewRecordsController creates a new RecordsController
func NewRecordsController(recordsService *services.RecordsService, q *queries.Queries, s *store.Store) *RecordsController {
	return &RecordsController{recordsService: recordsService, queries: q, store: s}
}

// GetHealthRecord returns a student's infirmary record. Students see
// their own; staff see anyone's.
func (c *RecordsController) GetHealthRecord(ctx *gin.Context) {
	sin := ctx.Param("sin")
	role, _ := middleware.RoleFrom(ctx)
	if role == models.RoleStudent && middleware.SubjectFrom(ctx) != sin {
		middleware.HandleAPIError(ctx, apperrors.NewForbiddenError("students may only view their own health record"))
		return
	}

	record := c.queries.HealthRecord(sin)
	if record == nil {
		middleware.HandleAPIError(ctx, apperrors.NewResourceNotFoundError("no health record for this student"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(record))
}

// UpsertHealthRecord creates or replaces a student's infirmary record
func (c *RecordsController) UpsertHealthRecord(ctx *gin.Context) {
	var req dto.UpsertHealthRecordRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	role, _ := middleware.RoleFrom(ctx)
	record, err := c.recordsService.UpsertHealthRecord(services.UpsertHealthInput{
		StudentSIN:    ctx.Param("sin"),
		BloodGroup:    req.BloodGroup,
		Allergies:     req.Allergies,
		Conditions:    req.Conditions,
		LastCheckup:   req.LastCheckup,
		DoctorRemarks: req.DoctorRemarks,
	}, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(record))
}

// SubmitFoodFeedback rates today's mess meal for the authenticated student
func (c *RecordsController) SubmitFoodFeedback(ctx *gin.Context) {
	var req dto.SubmitFoodFeedbackRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	feedback, err := c.recordsService.SubmitFoodFeedback(services.SubmitFeedbackInput{
		StudentSIN: middleware.SubjectFrom(ctx),
		Meal:       req.Meal,
		Rating:     req.Rating,
		Comments:   req.Comments,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(feedback))
}

// ListFoodFeedback returns every mess rating for staff review
func (c *RecordsController) ListFoodFeedback(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.FoodFeedback.List()))
}
