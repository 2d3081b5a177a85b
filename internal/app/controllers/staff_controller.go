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

// StaffController handles staff accounts and mentor assignments
type StaffController struct {
	staffService *services.StaffService
	queries      *queries.Queries
	store        *store.Store
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService *services.StaffService, q *queries.Queries, s *store.Store) *StaffController {
	return &StaffController{staffService: staffService, queries: q, store: s}
}

// List returns every staff member
func (c *StaffController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Staff.List()))
}

// Create registers a staff account
func (c *StaffController) Create(ctx *gin.Context) {
	var req dto.CreateStaffRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	role, _ := middleware.RoleFrom(ctx)
	member, err := c.staffService.Create(services.CreateStaffInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.RoleType(req.Role),
		Phone:    req.Phone,
		Hostel:   req.Hostel,
	}, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(member))
}

// Delete removes a staff account, irreversibly
func (c *StaffController) Delete(ctx *gin.Context) {
	role, _ := middleware.RoleFrom(ctx)
	if err := c.staffService.Delete(ctx.Param("id"), role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Staff member deleted"))
}

// Assign replaces a joint warden's mentor assignment
func (c *StaffController) Assign(ctx *gin.Context) {
	var req dto.AssignMentorRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	role, _ := middleware.RoleFrom(ctx)
	assignment, err := c.staffService.Assign(ctx.Param("id"), req.StudentSINs, req.RoomNumbers, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(assignment))
}

// MentorStudents returns the authenticated joint warden's mentees
func (c *StaffController) MentorStudents(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.queries.Mentees(middleware.SubjectFrom(ctx))))
}

// MentorRooms returns the authenticated joint warden's assigned rooms
func (c *StaffController) MentorRooms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.queries.MentorRooms(middleware.SubjectFrom(ctx))))
}

// MentorComplaints returns complaints filed by the mentees
func (c *StaffController) MentorComplaints(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.queries.MentorComplaints(middleware.SubjectFrom(ctx))))
}

// MentorLeaves returns the mentees' leave applications
func (c *StaffController) MentorLeaves(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.queries.MentorLeaves(middleware.SubjectFrom(ctx))))
}
