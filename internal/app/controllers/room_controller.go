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

// RoomController handles room views, inspections and reassignment
type RoomController struct {
	roomService *services.RoomService
	queries     *queries.Queries
	store       *store.Store
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService *services.RoomService, q *queries.Queries, s *store.Store) *RoomController {
	return &RoomController{roomService: roomService, queries: q, store: s}
}

// List returns all rooms, optionally filtered by exact hostel block
func (c *RoomController) List(ctx *gin.Context) {
	if hostel := ctx.Query("hostel"); hostel != "" {
		filtered := c.store.Rooms.Filter(func(r models.Room) bool {
			return r.Hostel == hostel
		})
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(filtered))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Rooms.List()))
}

// Get returns one room with its occupants
func (c *RoomController) Get(ctx *gin.Context) {
	room := c.queries.RoomByNumber(ctx.Param("roomNumber"))
	if room == nil {
		middleware.HandleAPIError(ctx, apperrors.ErrRoomNotFound)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{
		"room":      room,
		"occupants": c.queries.RoomOccupants(room.RoomNumber),
	}))
}

// UpdateCleanliness records an inspection grade
func (c *RoomController) UpdateCleanliness(ctx *gin.Context) {
	var req dto.UpdateCleanlinessRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	role, _ := middleware.RoleFrom(ctx)
	room, err := c.roomService.UpdateCleanliness(
		ctx.Param("roomNumber"),
		models.Cleanliness(req.Cleanliness),
		middleware.SubjectFrom(ctx),
		role,
	)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(room))
}

// UpdateInventory replaces a room's furniture counts
func (c *RoomController) UpdateInventory(ctx *gin.Context) {
	var req dto.UpdateInventoryRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	role, _ := middleware.RoleFrom(ctx)
	room, err := c.roomService.UpdateInventory(ctx.Param("roomNumber"), models.RoomInventory{
		Cots:      req.Cots,
		Tables:    req.Tables,
		Chairs:    req.Chairs,
		Wardrobes: req.Wardrobes,
		Fans:      req.Fans,
	}, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(room))
}

// Reassign moves a student to another room
func (c *RoomController) Reassign(ctx *gin.Context) {
	var req dto.ReassignRoomRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	role, _ := middleware.RoleFrom(ctx)
	student, err := c.roomService.ReassignStudent(ctx.Param("sin"), req.RoomNumber, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}
