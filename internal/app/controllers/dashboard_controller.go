package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adith/hostelcore/internal/app/models/dto"
	"github.com/adith/hostelcore/internal/app/queries"
)

// DashboardController serves the aggregate tiles on staff dashboards.
// Every figure is recomputed from the store on each request.
type DashboardController struct {
	queries *queries.Queries
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(q *queries.Queries) *DashboardController {
	return &DashboardController{queries: q}
}

// Summary returns the fee tally, attendance bands, complaint summary
// and per-block occupancy in one response.
func (c *DashboardController) Summary(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{
		"fees":       c.queries.FeeStatusTally(),
		"attendance": c.queries.AttendanceBandTally(),
		"complaints": c.queries.ComplaintSummary(),
		"occupancy":  c.queries.Occupancy(),
	}))
}
