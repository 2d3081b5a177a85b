package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/adith/hostelcore/internal/app/models"
	"github.com/adith/hostelcore/internal/app/queries"
	"github.com/adith/hostelcore/internal/pkg/apperrors"
	"github.com/adith/hostelcore/internal/store"
)

// ComplaintService runs the complaint lifecycle: pending -> in-progress
// -> resolved, with rejection possible from pending or in-progress.
// Resolved and rejected are terminal. Complaints are never deleted.
type ComplaintService struct {
	store   *store.Store
	queries *queries.Queries
}

// NewComplaintService creates a new complaint service
func NewComplaintService(s *store.Store, q *queries.Queries) *ComplaintService {
	return &ComplaintService{store: s, queries: q}
}

// SubmitComplaintInput carries a student's new complaint
type SubmitComplaintInput struct {
	StudentSIN  string
	Title       string
	Description string
	Category    models.ComplaintCategory
	Priority    models.ComplaintPriority
}

// Submit validates and records a complaint in pending state
func (s *ComplaintService) Submit(in SubmitComplaintInput) (*models.Complaint, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperrors.NewValidationError("title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, apperrors.NewValidationError("description is required")
	}
	student := s.queries.StudentBySIN(in.StudentSIN)
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	complaint := models.Complaint{
		ID:            s.store.NextID(store.PrefixComplaint),
		StudentSIN:    student.SIN,
		StudentName:   student.Name,
		Title:         strings.TrimSpace(in.Title),
		Description:   strings.TrimSpace(in.Description),
		Category:      in.Category,
		Priority:      in.Priority,
		Status:        models.ComplaintPending,
		SubmittedDate: time.Now().Format(dateLayout),
	}
	s.store.Complaints.Add(complaint)
	return &complaint, nil
}

// UpdateStatusInput carries a staff transition on a complaint
type UpdateStatusInput struct {
	ComplaintID string
	Status      models.ComplaintStatus
	ActorID     string
	Role        models.RoleType
	AssignedTo  string
	Resolution  string
}

// UpdateStatus advances a complaint. Role matrix: students only create;
// joint wardens may move pending -> in-progress, and in-progress ->
// resolved for their own mentees; wardens and admins may perform any
// legal transition. Resolution always requires a non-blank note.
func (s *ComplaintService) UpdateStatus(in UpdateStatusInput) (*models.Complaint, error) {
	if !in.Status.Valid() {
		return nil, apperrors.NewValidationError("unknown complaint status")
	}
	complaint, ok := s.store.Complaints.Find(in.ComplaintID)
	if !ok {
		return nil, apperrors.ErrComplaintNotFound
	}

	if err := checkComplaintTransition(complaint.Status, in.Status); err != nil {
		return nil, err
	}
	if err := s.checkComplaintRole(in, complaint); err != nil {
		return nil, err
	}
	if in.Status == models.ComplaintResolved && strings.TrimSpace(in.Resolution) == "" {
		return nil, apperrors.NewValidationError("resolution note is required to resolve a complaint")
	}

	s.store.Complaints.Update(in.ComplaintID, func(c *models.Complaint) {
		c.Status = in.Status
		if in.AssignedTo != "" {
			c.AssignedTo = in.AssignedTo
		}
		if in.Status == models.ComplaintResolved {
			c.Resolution = strings.TrimSpace(in.Resolution)
		}
	})
	updated, _ := s.store.Complaints.Find(in.ComplaintID)
	return &updated, nil
}

// checkComplaintTransition validates the lifecycle edges
func checkComplaintTransition(current, next models.ComplaintStatus) error {
	if current.Terminal() {
		return apperrors.NewWorkflowError(fmt.Sprintf("complaint already %s", current))
	}
	legal := false
	switch current {
	case models.ComplaintPending:
		legal = next == models.ComplaintInProgress || next == models.ComplaintRejected
	case models.ComplaintInProgress:
		legal = next == models.ComplaintResolved || next == models.ComplaintRejected
	}
	if !legal {
		return apperrors.NewWorkflowError(fmt.Sprintf("cannot move complaint from %s to %s", current, next))
	}
	return nil
}

func (s *ComplaintService) checkComplaintRole(in UpdateStatusInput, c models.Complaint) error {
	switch in.Role {
	case models.RoleWarden, models.RoleAdmin:
		return nil
	case models.RoleJointWarden:
		if in.Status == models.ComplaintInProgress {
			return nil
		}
		if in.Status == models.ComplaintResolved && s.queries.IsMentee(in.ActorID, c.StudentSIN) {
			return nil
		}
		return apperrors.NewForbiddenError("joint wardens may only take up complaints or resolve their mentees' complaints")
	default:
		return apperrors.NewForbiddenError("students may only create complaints")
	}
}
