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

// LeaveService runs the two-stage leave-application workflow:
// pending -> recommended|rejected by the joint warden, then
// recommended -> approved|rejected by the warden or admin. Approved and
// rejected are terminal. Admins may not skip the recommendation stage;
// a pending application can only be approved after a joint warden has
// recommended it (rule: no direct final approval).
type LeaveService struct {
	store   *store.Store
	queries *queries.Queries
}

// NewLeaveService creates a new leave service
func NewLeaveService(s *store.Store, q *queries.Queries) *LeaveService {
	return &LeaveService{store: s, queries: q}
}

// SubmitLeaveInput carries a student's leave request
type SubmitLeaveInput struct {
	StudentSIN       string
	Reason           string
	StartDate        string
	EndDate          string
	EmergencyContact string
	Address          string
}

// Submit validates and records a new leave application in pending state.
// Invalid input returns a validation error and creates nothing.
func (s *LeaveService) Submit(in SubmitLeaveInput) (*models.LeaveApplication, error) {
	if strings.TrimSpace(in.Reason) == "" {
		return nil, apperrors.NewValidationError("reason is required")
	}
	if strings.TrimSpace(in.EmergencyContact) == "" {
		return nil, apperrors.NewValidationError("emergency contact is required")
	}
	if strings.TrimSpace(in.Address) == "" {
		return nil, apperrors.NewValidationError("address during leave is required")
	}
	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("start date is required in YYYY-MM-DD format")
	}
	end, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("end date is required in YYYY-MM-DD format")
	}
	if end.Before(start) {
		return nil, apperrors.NewValidationError("end date before start date")
	}

	student := s.queries.StudentBySIN(in.StudentSIN)
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	leave := models.LeaveApplication{
		ID:               s.store.NextID(store.PrefixLeave),
		StudentSIN:       student.SIN,
		StudentName:      student.Name,
		Reason:           strings.TrimSpace(in.Reason),
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		EmergencyContact: strings.TrimSpace(in.EmergencyContact),
		Address:          strings.TrimSpace(in.Address),
		Status:           models.LeavePending,
		SubmittedAt:      time.Now(),
	}
	s.store.Leaves.Add(leave)
	return &leave, nil
}

// ReviewInput carries a staff decision on a leave application
type ReviewInput struct {
	LeaveID    string
	Decision   models.LeaveStatus
	ReviewerID string
	Reviewer   string
	Role       models.RoleType
	Remarks    string
}

// JointWardenReview applies the first-stage decision. Only legal from
// pending, and only joint wardens review at this stage; the student must
// be one of the reviewer's mentees.
func (s *LeaveService) JointWardenReview(in ReviewInput) (*models.LeaveApplication, error) {
	if in.Role != models.RoleJointWarden {
		return nil, apperrors.NewForbiddenError("only joint wardens review at the recommendation stage")
	}
	if in.Decision != models.LeaveRecommended && in.Decision != models.LeaveRejected {
		return nil, apperrors.NewValidationError("decision must be recommended or rejected")
	}

	leave, ok := s.store.Leaves.Find(in.LeaveID)
	if !ok {
		return nil, apperrors.ErrLeaveNotFound
	}
	if !s.queries.IsMentee(in.ReviewerID, leave.StudentSIN) {
		return nil, apperrors.NewForbiddenError("student is not assigned to this joint warden")
	}
	if err := checkLeaveTransition(leave.Status, models.LeavePending); err != nil {
		return nil, err
	}

	s.applyReview(in)
	updated, _ := s.store.Leaves.Find(in.LeaveID)
	return &updated, nil
}

// FinalReview applies the second-stage decision by a warden or admin.
// Only legal from recommended: a pending application has not passed the
// joint-warden stage yet and direct approval is a workflow violation.
func (s *LeaveService) FinalReview(in ReviewInput) (*models.LeaveApplication, error) {
	if in.Role != models.RoleWarden && in.Role != models.RoleAdmin {
		return nil, apperrors.NewForbiddenError("only wardens and admins give the final decision")
	}
	if in.Decision != models.LeaveApproved && in.Decision != models.LeaveRejected {
		return nil, apperrors.NewValidationError("decision must be approved or rejected")
	}

	leave, ok := s.store.Leaves.Find(in.LeaveID)
	if !ok {
		return nil, apperrors.ErrLeaveNotFound
	}
	if err := checkLeaveTransition(leave.Status, models.LeaveRecommended); err != nil {
		return nil, err
	}

	s.applyReview(in)
	updated, _ := s.store.Leaves.Find(in.LeaveID)
	return &updated, nil
}

// checkLeaveTransition distinguishes terminal-state violations from
// wrong-stage attempts so callers get a precise message.
func checkLeaveTransition(current, want models.LeaveStatus) error {
	if current == want {
		return nil
	}
	if current.Terminal() {
		return apperrors.NewWorkflowError(fmt.Sprintf("leave application already %s", current))
	}
	return apperrors.NewWorkflowError(fmt.Sprintf("leave application is %s, expected %s", current, want))
}

func (s *LeaveService) applyReview(in ReviewInput) {
	now := time.Now()
	s.store.Leaves.Update(in.LeaveID, func(l *models.LeaveApplication) {
		l.Status = in.Decision
		l.ReviewedAt = &now
		l.ReviewedBy = in.Reviewer
		if in.Role == models.RoleJointWarden {
			l.JointWardenRemark = in.Remarks
		} else {
			l.WardenRemark = in.Remarks
		}
	})
}
