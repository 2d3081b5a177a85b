package services

import (
	"strings"

	"github.com/adith/hostelcore/internal/app/models"
	"github.com/adith/hostelcore/internal/app/queries"
	"github.com/adith/hostelcore/internal/pkg/apperrors"
	"github.com/adith/hostelcore/internal/pkg/auth"
	"github.com/adith/hostelcore/internal/store"
)

// AuthService logs students and staff in against the seeded accounts
// and issues role-bearing access tokens. The role claim in the token is
// what the workflow layer's role checks run on.
type AuthService struct {
	store   *store.Store
	queries *queries.Queries
	jwt     *auth.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(s *store.Store, q *queries.Queries, jwtService *auth.JWTService) *AuthService {
	return &AuthService{store: s, queries: q, jwt: jwtService}
}

// Session is a successful login result
type Session struct {
	Token     string          `json:"token"`
	ExpiresIn int             `json:"expiresIn"`
	SubjectID string          `json:"subjectId"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.RoleType `json:"role"`
}

// Login checks the credentials against staff accounts first, then
// students. Misses and bad passwords both come back as invalid
// credentials so the response does not leak which emails exist.
func (a *AuthService) Login(email, password string) (*Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password are required")
	}

	if member, ok := a.store.Staff.First(func(m models.StaffMember) bool { return m.Email == email }); ok {
		if !auth.CheckPassword(member.Password, password) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return a.session(member.ID, member.Email, member.Name, member.Role)
	}

	if student := a.queries.StudentByEmail(email); student != nil {
		if !auth.CheckPassword(student.Password, password) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return a.session(student.SIN, student.Email, student.Name, models.RoleStudent)
	}

	return nil, apperrors.ErrInvalidCredentials
}

func (a *AuthService) session(subjectID, email, name string, role models.RoleType) (*Session, error) {
	token, expiresIn, err := a.jwt.GenerateToken(subjectID, email, name, role)
	if err != nil {
		return nil, err
	}
	return &Session{
		Token:     token,
		ExpiresIn: expiresIn,
		SubjectID: subjectID,
		Name:      name,
		Email:     email,
		Role:      role,
	}, nil
}
