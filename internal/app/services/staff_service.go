package services

import (
	"fmt"
	"strings"

	"github.com/adith/hostelcore/internal/app/models"
	"github.com/adith/hostelcore/internal/pkg/apperrors"
	"github.com/adith/hostelcore/internal/pkg/auth"
	"github.com/adith/hostelcore/internal/store"
)

// StaffService manages warden, joint-warden and admin accounts and the
// mentor assignment table.
type StaffService struct {
	store *store.Store
}

// NewStaffService creates a new staff service
func NewStaffService(s *store.Store) *StaffService {
	return &StaffService{store: s}
}

// CreateStaffInput carries a new staff account
type CreateStaffInput struct {
	Name     string
	Email    string
	Password string
	Role     models.RoleType
	Phone    string
	Hostel   string
}

// Create registers a staff member. Admin only.
func (s *StaffService) Create(in CreateStaffInput, actorRole models.RoleType) (*models.StaffMember, error) {
	if actorRole != models.RoleAdmin {
		return nil, apperrors.NewForbiddenError("only admins manage staff accounts")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, apperrors.NewValidationError("email is required")
	}
	if len(in.Password) < 8 {
		return nil, apperrors.NewValidationError("password must be at least 8 characters")
	}
	if !in.Role.IsStaff() {
		return nil, apperrors.NewValidationError("role must be JOINT_WARDEN, WARDEN or ADMIN")
	}
	if _, exists := s.store.Staff.First(func(m models.StaffMember) bool { return m.Email == in.Email }); exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	member := models.StaffMember{
		ID:       s.store.NextID(store.PrefixStaff),
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Password: hash,
		Role:     in.Role,
		Phone:    in.Phone,
		Hostel:   in.Hostel,
	}
	s.store.Staff.Add(member)
	return &member, nil
}

// Delete removes a staff account and any mentor assignment it owned.
// The deletion is irreversible; there is no soft delete. Admin only.
func (s *StaffService) Delete(staffID string, actorRole models.RoleType) error {
	if actorRole != models.RoleAdmin {
		return apperrors.NewForbiddenError("only admins manage staff accounts")
	}
	if _, ok := s.store.Staff.Find(staffID); !ok {
		return apperrors.ErrStaffNotFound
	}
	s.store.Staff.Delete(staffID)
	if a, ok := s.store.Assignments.First(func(a models.MentorAssignment) bool { return a.StaffID == staffID }); ok {
		s.store.Assignments.Delete(a.ID)
	}
	return nil
}

// Assign replaces a joint warden's mentor assignment with the given
// students and rooms. Admin or warden only.
func (s *StaffService) Assign(staffID string, studentSINs, roomNumbers []string, actorRole models.RoleType) (*models.MentorAssignment, error) {
	if actorRole != models.RoleAdmin && actorRole != models.RoleWarden {
		return nil, apperrors.NewForbiddenError("only wardens and admins rebalance mentor assignments")
	}
	member, ok := s.store.Staff.Find(staffID)
	if !ok {
		return nil, apperrors.ErrStaffNotFound
	}
	if member.Role != models.RoleJointWarden {
		return nil, apperrors.NewValidationError("mentor assignments apply to joint wardens only")
	}

	if existing, ok := s.store.Assignments.First(func(a models.MentorAssignment) bool { return a.StaffID == staffID }); ok {
		s.store.Assignments.Update(existing.ID, func(a *models.MentorAssignment) {
			a.StudentSINs = studentSINs
			a.RoomNumbers = roomNumbers
		})
		updated, _ := s.store.Assignments.Find(existing.ID)
		return &updated, nil
	}

	assignment := models.MentorAssignment{
		ID:          s.store.NextID(store.PrefixMentor),
		StaffID:     staffID,
		StudentSINs: studentSINs,
		RoomNumbers: roomNumbers,
	}
	s.store.Assignments.Add(assignment)
	return &assignment, nil
}
