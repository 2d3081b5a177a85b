package services

import (
	"strings"
	"time"

	"github.com/adith/hostelcore/internal/app/models"
	"github.com/adith/hostelcore/internal/app/queries"
	"github.com/adith/hostelcore/internal/pkg/apperrors"
	"github.com/adith/hostelcore/internal/store"
)

// RecordsService covers the infirmary health records and the mess food
// feedback, the two side collections the dashboards read.
type RecordsService struct {
	store   *store.Store
	queries *queries.Queries
}

// NewRecordsService creates a new records service
func NewRecordsService(s *store.Store, q *queries.Queries) *RecordsService {
	return &RecordsService{store: s, queries: q}
}

// UpsertHealthInput carries infirmary notes for a student
type UpsertHealthInput struct {
	StudentSIN    string
	BloodGroup    string
	Allergies     string
	Conditions    string
	LastCheckup   string
	DoctorRemarks string
}

// UpsertHealthRecord creates or replaces a student's health record.
// Staff only.
func (r *RecordsService) UpsertHealthRecord(in UpsertHealthInput, role models.RoleType) (*models.HealthRecord, error) {
	if !role.IsStaff() {
		return nil, apperrors.NewForbiddenError("only hostel staff edit health records")
	}
	if r.queries.StudentBySIN(in.StudentSIN) == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	if existing := r.queries.HealthRecord(in.StudentSIN); existing != nil {
		r.store.HealthRecords.Update(existing.ID, func(h *models.HealthRecord) {
			h.BloodGroup = in.BloodGroup
			h.Allergies = in.Allergies
			h.Conditions = in.Conditions
			h.LastCheckup = in.LastCheckup
			h.DoctorRemarks = in.DoctorRemarks
		})
		return r.queries.HealthRecord(in.StudentSIN), nil
	}

	record := models.HealthRecord{
		ID:            r.store.NextID(store.PrefixHealth),
		StudentSIN:    in.StudentSIN,
		BloodGroup:    in.BloodGroup,
		Allergies:     in.Allergies,
		Conditions:    in.Conditions,
		LastCheckup:   in.LastCheckup,
		DoctorRemarks: in.DoctorRemarks,
	}
	r.store.HealthRecords.Add(record)
	return &record, nil
}

// SubmitFeedbackInput carries a mess rating
type SubmitFeedbackInput struct {
	StudentSIN string
	Meal       string
	Rating     int
	Comments   string
}

// SubmitFoodFeedback records a student's mess rating for today
func (r *RecordsService) SubmitFoodFeedback(in SubmitFeedbackInput) (*models.FoodFeedback, error) {
	if strings.TrimSpace(in.Meal) == "" {
		return nil, apperrors.NewValidationError("meal is required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5")
	}
	if r.queries.StudentBySIN(in.StudentSIN) == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	now := time.Now()
	feedback := models.FoodFeedback{
		ID:         r.store.NextID(store.PrefixFeedback),
		StudentSIN: in.StudentSIN,
		Meal:       in.Meal,
		Rating:     in.Rating,
		Comments:   in.Comments,
		Date:       now.Format(dateLayout),
		CreatedAt:  now,
	}
	r.store.FoodFeedback.Add(feedback)
	return &feedback, nil
}
