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
)

// StudentController handles registration, profiles, payments and
// attendance.
type StudentController struct {
	studentService *services.StudentService
	queries        *queries.Queries
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, q *queries.Queries) *StudentController {
	return &StudentController{studentService: studentService, queries: q}
}

// Register creates a new resident with generated SIN and defaults
func (c *StudentController) Register(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	student, err := c.studentService.Register(services.RegisterInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		DOB:              req.DOB,
		Gender:           models.Gender(req.Gender),
		Course:           req.Course,
		Year:             req.Year,
		RoomNumber:       req.RoomNumber,
		Phone:            req.Phone,
		EmergencyContact: req.EmergencyContact,
		GuardianName:     req.GuardianName,
		GuardianPhone:    req.GuardianPhone,
		Address:          req.Address,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(student))
}

// List returns students, optionally filtered by free-text search or
// exact hostel block.
func (c *StudentController) List(ctx *gin.Context) {
	if hostel := ctx.Query("hostel"); hostel != "" {
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.queries.StudentsByHostel(hostel)))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.queries.SearchStudents(ctx.Query("search"))))
}

// GetBySIN returns one student
func (c *StudentController) GetBySIN(ctx *gin.Context) {
	sin := ctx.Param("sin")
	if !services.ValidSIN(sin) {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidSIN)
		return
	}
	student := c.queries.StudentBySIN(sin)
	if student == nil {
		middleware.HandleAPIError(ctx, apperrors.ErrStudentNotFound)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// Me returns the authenticated student's own record
func (c *StudentController) Me(ctx *gin.Context) {
	student := c.queries.StudentBySIN(middleware.SubjectFrom(ctx))
	if student == nil {
		middleware.HandleAPIError(ctx, apperrors.ErrStudentNotFound)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// MyRoommates returns everyone sharing the authenticated student's room
func (c *StudentController) MyRoommates(ctx *gin.Context) {
	student := c.queries.StudentBySIN(middleware.SubjectFrom(ctx))
	if student == nil {
		middleware.HandleAPIError(ctx, apperrors.ErrStudentNotFound)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.queries.Roommates(student.Email)))
}

// UpdateProfile edits contact fields. Students may only edit their own
// record; staff may edit anyone's.
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	sin := ctx.Param("sin")
	role, _ := middleware.RoleFrom(ctx)
	if role == models.RoleStudent && middleware.SubjectFrom(ctx) != sin {
		middleware.HandleAPIError(ctx, apperrors.NewForbiddenError("students may only edit their own profile"))
		return
	}

	var req dto.UpdateProfileRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	student, err := c.studentService.UpdateProfile(sin, services.UpdateProfileInput{
		Phone:            req.Phone,
		EmergencyContact: req.EmergencyContact,
		GuardianName:     req.GuardianName,
		GuardianPhone:    req.GuardianPhone,
		Address:          req.Address,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// RecordPayment records a fee payment. Students pay their own fees;
// staff can record a payment on a student's behalf.
func (c *StudentController) RecordPayment(ctx *gin.Context) {
	sin := ctx.Param("sin")
	role, _ := middleware.RoleFrom(ctx)
	if role == models.RoleStudent && middleware.SubjectFrom(ctx) != sin {
		middleware.HandleAPIError(ctx, apperrors.NewForbiddenError("students may only pay their own fees"))
		return
	}

	var req dto.RecordPaymentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	student, err := c.studentService.RecordPayment(sin, req.Amount, req.Mode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// MarkAttendance records a day's presence sheet
func (c *StudentController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	if err := c.studentService.MarkAttendance(req.Date, req.Entries); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Attendance recorded"))
}

// GetAttendance returns the sheet for one date
func (c *StudentController) GetAttendance(ctx *gin.Context) {
	sheet := c.queries.AttendanceOn(ctx.Param("date"))
	if sheet == nil {
		middleware.HandleAPIError(ctx, apperrors.NewResourceNotFoundError("no attendance sheet for that date"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(sheet))
}
