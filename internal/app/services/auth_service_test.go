package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adith/hostelcore/internal/app/models"
	"github.com/adith/hostelcore/internal/app/queries"
	"github.com/adith/hostelcore/internal/pkg/apperrors"
	"github.com/adith/hostelcore/internal/pkg/auth"
	"github.com/adith/hostelcore/internal/store"
)

func authFixture(t *testing.T) (*AuthService, *auth.JWTService) {
	t.Helper()
	s := store.New()

	staffHash, err := auth.HashPassword("staff-secret")
	require.NoError(t, err)
	studentHash, err := auth.HashPassword("student-secret")
	require.NoError(t, err)

	s.Staff.Replace([]models.StaffMember{
		{ID: "STAFF-1", Name: "Mr. Rao", Email: "warden@college.edu", Password: staffHash, Role: models.RoleWarden},
	})
	s.Students.Replace([]models.Student{
		{ID: "STU-1", SIN: "SIN2301", Name: "Ananya Sharma", Email: "ananya@college.edu", Password: studentHash},
	})

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "hostelcore.test",
	})
	return NewAuthService(s, queries.New(s), jwtService), jwtService
}

func TestLogin(t *testing.T) {
	svc, jwtService := authFixture(t)

	t.Run("staff login carries staff id and role", func(t *testing.T) {
		session, err := svc.Login("warden@college.edu", "staff-secret")
		require.NoError(t, err)

		assert.Equal(t, "STAFF-1", session.SubjectID)
		assert.Equal(t, models.RoleWarden, session.Role)

		claims, err := jwtService.ValidateToken(session.Token)
		require.NoError(t, err)
		assert.Equal(t, "STAFF-1", claims.SubjectID)
		assert.Equal(t, models.RoleWarden, claims.Role)
	})

	t.Run("student login uses SIN as subject", func(t *testing.T) {
		session, err := svc.Login("ananya@college.edu", "student-secret")
		require.NoError(t, err)

		assert.Equal(t, "SIN2301", session.SubjectID)
		assert.Equal(t, models.RoleStudent, session.Role)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, errWrong := svc.Login("warden@college.edu", "wrong")
		_, errUnknown := svc.Login("nobody@college.edu", "whatever")

		assert.ErrorIs(t, errWrong, apperrors.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	})

	t.Run("blank credentials rejected as validation", func(t *testing.T) {
		_, err := svc.Login("", "")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}
