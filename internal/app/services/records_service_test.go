package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adith/hostelcore/internal/app/models"
	"github.com/adith/hostelcore/internal/app/queries"
	"github.com/adith/hostelcore/internal/pkg/apperrors"
	"github.com/adith/hostelcore/internal/store"
)

func recordsFixture(t *testing.T) (*RecordsService, *store.Store) {
	t.Helper()
	s := store.New()
	s.Students.Replace([]models.Student{
		{ID: "STU-1", SIN: "SIN2301", Name: "Ananya Sharma", Email: "ananya@college.edu"},
	})
	return NewRecordsService(s, queries.New(s)), s
}

func TestUpsertHealthRecord(t *testing.T) {
	svc, st := recordsFixture(t)

	t.Run("creates then updates in place", func(t *testing.T) {
		first, err := svc.UpsertHealthRecord(UpsertHealthInput{
			StudentSIN: "SIN2301", BloodGroup: "B+", LastCheckup: "2024-03-10",
		}, models.RoleWarden)
		require.NoError(t, err)

		second, err := svc.UpsertHealthRecord(UpsertHealthInput{
			StudentSIN: "SIN2301", BloodGroup: "B+", Allergies: "Dust", LastCheckup: "2024-05-01",
		}, models.RoleWarden)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Dust", second.Allergies)
		assert.Equal(t, 1, st.HealthRecords.Len())
	})

	t.Run("staff only", func(t *testing.T) {
		_, err := svc.UpsertHealthRecord(UpsertHealthInput{StudentSIN: "SIN2301"}, models.RoleStudent)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("unknown student", func(t *testing.T) {
		_, err := svc.UpsertHealthRecord(UpsertHealthInput{StudentSIN: "SIN9999"}, models.RoleWarden)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})
}

func TestSubmitFoodFeedback(t *testing.T) {
	svc, _ := recordsFixture(t)

	t.Run("records rating with date stamp", func(t *testing.T) {
		got, err := svc.SubmitFoodFeedback(SubmitFeedbackInput{
			StudentSIN: "SIN2301", Meal: "Lunch", Rating: 4, Comments: "Good",
		})
		require.NoError(t, err)
		assert.Equal(t, 4, got.Rating)
		assert.NotEmpty(t, got.Date)
	})

	t.Run("rating bounds enforced", func(t *testing.T) {
		for _, rating := range []int{0, 6} {
			_, err := svc.SubmitFoodFeedback(SubmitFeedbackInput{
				StudentSIN: "SIN2301", Meal: "Lunch", Rating: rating,
			})
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		}
	})
}

func TestNotificationService(t *testing.T) {
	s := store.New()
	svc := NewNotificationService(s)

	t.Run("staff only publish, default target all", func(t *testing.T) {
		_, err := svc.Publish(PublishInput{Title: "t", Message: "m"}, models.RoleStudent)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

		got, err := svc.Publish(PublishInput{Title: "Water off", Message: "Saturday morning", Type: models.NotifyMaintenance}, models.RoleWarden)
		require.NoError(t, err)
		assert.Equal(t, []string{models.TargetAllRoles}, got.TargetRoles)
		assert.False(t, got.Read)
	})

	t.Run("mark read", func(t *testing.T) {
		got, err := svc.Publish(PublishInput{Title: "t", Message: "m"}, models.RoleAdmin)
		require.NoError(t, err)

		require.NoError(t, svc.MarkRead(got.ID))
		updated, _ := s.Notifications.Find(got.ID)
		assert.True(t, updated.Read)

		err = svc.MarkRead("NOTIF-999999")
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})
}
