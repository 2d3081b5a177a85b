package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adith/hostelcore/internal/app/models"
	"github.com/adith/hostelcore/internal/app/models/dto"
	"github.com/adith/hostelcore/internal/app/queries"
	"github.com/adith/hostelcore/internal/app/services"
	"github.com/adith/hostelcore/internal/middleware"
	"github.com/adith/hostelcore/internal/store"
)

// ComplaintController handles complaint submission and lifecycle
type ComplaintController struct {
	complaintService *services.ComplaintService
	queries          *queries.Queries
	store            *store.Store
}

// NewComplaintController creates a new ComplaintController
func NewComplaintController(complaintService *services.ComplaintService, q *queries.Queries, s *store.Store) *ComplaintController {
	return &ComplaintController{complaintService: complaintService, queries: q, store: s}
}

// Submit files a complaint for the authenticated student
func (c *ComplaintController) Submit(ctx *gin.Context) {
	var req dto.SubmitComplaintRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	complaint, err := c.complaintService.Submit(services.SubmitComplaintInput{
		StudentSIN:  middleware.SubjectFrom(ctx),
		Title:       req.Title,
		Description: req.Description,
		Category:    models.ComplaintCategory(req.Category),
		Priority:    models.ComplaintPriority(req.Priority),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(complaint))
}

// List returns all complaints, optionally filtered by exact status
func (c *ComplaintController) List(ctx *gin.Context) {
	if status := ctx.Query("status"); status != "" {
		filtered := c.store.Complaints.Filter(func(cm models.Complaint) bool {
			return cm.Status == models.ComplaintStatus(status)
		})
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(filtered))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Complaints.List()))
}

// Mine returns the authenticated student's own complaints
func (c *ComplaintController) Mine(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.queries.StudentComplaints(middleware.SubjectFrom(ctx))))
}

// UpdateStatus advances a complaint through its lifecycle
func (c *ComplaintController) UpdateStatus(ctx *gin.Context) {
	var req dto.UpdateComplaintStatusRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	role, _ := middleware.RoleFrom(ctx)
	complaint, err := c.complaintService.UpdateStatus(services.UpdateStatusInput{
		ComplaintID: ctx.Param("id"),
		Status:      models.ComplaintStatus(req.Status),
		ActorID:     middleware.SubjectFrom(ctx),
		Role:        role,
		AssignedTo:  req.AssignedTo,
		Resolution:  req.Resolution,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(complaint))
}
