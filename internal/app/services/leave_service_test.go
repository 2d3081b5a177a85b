package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adith/hostelcore/internal/app/models"
	"github.com/adith/hostelcore/internal/app/queries"
	"github.com/adith/hostelcore/internal/pkg/apperrors"
	"github.com/adith/hostelcore/internal/store"
)

func leaveFixture(t *testing.T) (*LeaveService, *store.Store) {
	t.Helper()
	s := store.New()
	s.Students.Replace([]models.Student{
		{ID: "STU-1", SIN: "SIN2301", Name: "Ananya Sharma", Email: "ananya@college.edu", RoomNumber: "A-101"},
		{ID: "STU-2", SIN: "SIN2305", Name: "Karthik Iyer", Email: "karthik@college.edu", RoomNumber: "B-101"},
	})
	s.Assignments.Replace([]models.MentorAssignment{
		{ID: "MENT-1", StaffID: "STAFF-JW", StudentSINs: []string{"SIN2301"}, RoomNumbers: []string{"A-101"}},
	})
	q := queries.New(s)
	return NewLeaveService(s, q), s
}

func submitLeave(t *testing.T, svc *LeaveService) *models.LeaveApplication {
	t.Helper()
	leave, err := svc.Submit(SubmitLeaveInput{
		StudentSIN:       "SIN2301",
		Reason:           "Sister's wedding",
		StartDate:        "2024-06-15",
		EndDate:          "2024-06-17",
		EmergencyContact: "+91 98765 00001",
		Address:          "12 MG Road, Pune",
	})
	require.NoError(t, err)
	return leave
}

func TestLeaveSubmit(t *testing.T) {
	svc, _ := leaveFixture(t)

	t.Run("starts pending with review fields empty", func(t *testing.T) {
		leave := submitLeave(t, svc)
		assert.Equal(t, models.LeavePending, leave.Status)
		assert.Nil(t, leave.ReviewedAt)
		assert.Empty(t, leave.ReviewedBy)
		assert.Equal(t, "Ananya Sharma", leave.StudentName)
	})

	t.Run("validation failures create nothing", func(t *testing.T) {
		before := svc.store.Leaves.Len()

		cases := []SubmitLeaveInput{
			{StudentSIN: "SIN2301", Reason: " ", StartDate: "2024-06-15", EndDate: "2024-06-17", EmergencyContact: "x", Address: "y"},
			{StudentSIN: "SIN2301", Reason: "Trip", StartDate: "not-a-date", EndDate: "2024-06-17", EmergencyContact: "x", Address: "y"},
			{StudentSIN: "SIN2301", Reason: "Trip", StartDate: "2024-06-17", EndDate: "2024-06-15", EmergencyContact: "x", Address: "y"},
			{StudentSIN: "SIN2301", Reason: "Trip", StartDate: "2024-06-15", EndDate: "2024-06-17", EmergencyContact: "", Address: "y"},
		}
		for _, in := range cases {
			_, err := svc.Submit(in)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		}
		assert.Equal(t, before, svc.store.Leaves.Len())
	})

	t.Run("same-day leave is legal", func(t *testing.T) {
		_, err := svc.Submit(SubmitLeaveInput{
			StudentSIN: "SIN2301", Reason: "Checkup", StartDate: "2024-06-10",
			EndDate: "2024-06-10", EmergencyContact: "x", Address: "y",
		})
		assert.NoError(t, err)
	})

	t.Run("unknown student", func(t *testing.T) {
		_, err := svc.Submit(SubmitLeaveInput{
			StudentSIN: "SIN9999", Reason: "Trip", StartDate: "2024-06-15",
			EndDate: "2024-06-17", EmergencyContact: "x", Address: "y",
		})
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})
}

func TestLeaveWorkflow(t *testing.T) {
	t.Run("full approval path", func(t *testing.T) {
		svc, _ := leaveFixture(t)
		leave := submitLeave(t, svc)

		recommended, err := svc.JointWardenReview(ReviewInput{
			LeaveID: leave.ID, Decision: models.LeaveRecommended,
			ReviewerID: "STAFF-JW", Reviewer: "Mrs. Devi",
			Role: models.RoleJointWarden, Remarks: "Dates verified",
		})
		require.NoError(t, err)
		assert.Equal(t, models.LeaveRecommended, recommended.Status)
		assert.Equal(t, "Dates verified", recommended.JointWardenRemark)
		require.NotNil(t, recommended.ReviewedAt)

		approved, err := svc.FinalReview(ReviewInput{
			LeaveID: leave.ID, Decision: models.LeaveApproved,
			ReviewerID: "STAFF-W", Reviewer: "Mr. Rao",
			Role: models.RoleWarden, Remarks: "Approved",
		})
		require.NoError(t, err)
		assert.Equal(t, models.LeaveApproved, approved.Status)
		assert.Equal(t, "Mr. Rao", approved.ReviewedBy)
		assert.Equal(t, "Approved", approved.WardenRemark)
	})

	t.Run("admin cannot approve a pending application", func(t *testing.T) {
		svc, _ := leaveFixture(t)
		leave := submitLeave(t, svc)

		_, err := svc.FinalReview(ReviewInput{
			LeaveID: leave.ID, Decision: models.LeaveApproved,
			ReviewerID: "STAFF-A", Reviewer: "Dr. Nair", Role: models.RoleAdmin,
		})
		assert.ErrorIs(t, err, apperrors.ErrWorkflowViolation)

		got, _ := svc.store.Leaves.Find(leave.ID)
		assert.Equal(t, models.LeavePending, got.Status)
	})

	t.Run("terminal states refuse further review", func(t *testing.T) {
		svc, _ := leaveFixture(t)
		leave := submitLeave(t, svc)

		_, err := svc.JointWardenReview(ReviewInput{
			LeaveID: leave.ID, Decision: models.LeaveRejected,
			ReviewerID: "STAFF-JW", Role: models.RoleJointWarden,
		})
		require.NoError(t, err)

		_, err = svc.JointWardenReview(ReviewInput{
			LeaveID: leave.ID, Decision: models.LeaveRecommended,
			ReviewerID: "STAFF-JW", Role: models.RoleJointWarden,
		})
		assert.ErrorIs(t, err, apperrors.ErrWorkflowViolation)

		_, err = svc.FinalReview(ReviewInput{
			LeaveID: leave.ID, Decision: models.LeaveApproved,
			ReviewerID: "STAFF-W", Role: models.RoleWarden,
		})
		assert.ErrorIs(t, err, apperrors.ErrWorkflowViolation)
	})

	t.Run("joint warden cannot review a non-mentee", func(t *testing.T) {
		svc, _ := leaveFixture(t)
		leave, err := svc.Submit(SubmitLeaveInput{
			StudentSIN: "SIN2305", Reason: "Trip", StartDate: "2024-06-15",
			EndDate: "2024-06-17", EmergencyContact: "x", Address: "y",
		})
		require.NoError(t, err)

		_, err = svc.JointWardenReview(ReviewInput{
			LeaveID: leave.ID, Decision: models.LeaveRecommended,
			ReviewerID: "STAFF-JW", Role: models.RoleJointWarden,
		})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("wrong role at each stage", func(t *testing.T) {
		svc, _ := leaveFixture(t)
		leave := submitLeave(t, svc)

		_, err := svc.JointWardenReview(ReviewInput{
			LeaveID: leave.ID, Decision: models.LeaveRecommended,
			ReviewerID: "STAFF-W", Role: models.RoleWarden,
		})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

		_, err = svc.FinalReview(ReviewInput{
			LeaveID: leave.ID, Decision: models.LeaveApproved,
			ReviewerID: "STAFF-JW", Role: models.RoleJointWarden,
		})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("unknown leave id", func(t *testing.T) {
		svc, _ := leaveFixture(t)

		_, err := svc.JointWardenReview(ReviewInput{
			LeaveID: "LEAVE-999999", Decision: models.LeaveRecommended,
			ReviewerID: "STAFF-JW", Role: models.RoleJointWarden,
		})
		assert.True(t, errors.Is(err, apperrors.ErrLeaveNotFound))
	})

	t.Run("invalid decision values", func(t *testing.T) {
		svc, _ := leaveFixture(t)
		leave := submitLeave(t, svc)

		_, err := svc.JointWardenReview(ReviewInput{
			LeaveID: leave.ID, Decision: models.LeaveApproved,
			ReviewerID: "STAFF-JW", Role: models.RoleJointWarden,
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

		_, err = svc.FinalReview(ReviewInput{
			LeaveID: leave.ID, Decision: models.LeaveRecommended,
			ReviewerID: "STAFF-W", Role: models.RoleWarden,
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}
