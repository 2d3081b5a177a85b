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

// LeaveController handles the two-stage leave-application workflow
type LeaveController struct {
	leaveService *services.LeaveService
	queries      *queries.Queries
	store        *store.Store
}

// NewLeaveController creates a new LeaveController
func NewLeaveController(leaveService *services.LeaveService, q *queries.Queries, s *store.Store) *LeaveController {
	return &LeaveController{leaveService: leaveService, queries: q, store: s}
}

// Submit files a leave application for the authenticated student
func (c *LeaveController) Submit(ctx *gin.Context) {
	var req dto.SubmitLeaveRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	leave, err := c.leaveService.Submit(services.SubmitLeaveInput{
		StudentSIN:       middleware.SubjectFrom(ctx),
		Reason:           req.Reason,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		EmergencyContact: req.EmergencyContact,
		Address:          req.Address,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(leave))
}

// List returns all leave applications, optionally filtered by status
func (c *LeaveController) List(ctx *gin.Context) {
	if status := ctx.Query("status"); status != "" {
		filtered := c.store.Leaves.Filter(func(l models.LeaveApplication) bool {
			return l.Status == models.LeaveStatus(status)
		})
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(filtered))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Leaves.List()))
}

// Mine returns the authenticated student's own applications
func (c *LeaveController) Mine(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.queries.StudentLeaves(middleware.SubjectFrom(ctx))))
}

// Recommend applies the joint-warden stage decision
func (c *LeaveController) Recommend(ctx *gin.Context) {
	var req dto.ReviewLeaveRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	role, _ := middleware.RoleFrom(ctx)
	leave, err := c.leaveService.JointWardenReview(services.ReviewInput{
		LeaveID:    ctx.Param("id"),
		Decision:   models.LeaveStatus(req.Decision),
		ReviewerID: middleware.SubjectFrom(ctx),
		Reviewer:   middleware.NameFrom(ctx),
		Role:       role,
		Remarks:    req.Remarks,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(leave))
}

// Decide applies the final warden/admin stage decision
func (c *LeaveController) Decide(ctx *gin.Context) {
	var req dto.ReviewLeaveRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	role, _ := middleware.RoleFrom(ctx)
	leave, err := c.leaveService.FinalReview(services.ReviewInput{
		LeaveID:    ctx.Param("id"),
		Decision:   models.LeaveStatus(req.Decision),
		ReviewerID: middleware.SubjectFrom(ctx),
		Reviewer:   middleware.NameFrom(ctx),
		Role:       role,
		Remarks:    req.Remarks,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(leave))
}
