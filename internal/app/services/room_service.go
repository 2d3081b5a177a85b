package services

import (
	"github.com/adith/hostelcore/internal/app/models"
	"github.com/adith/hostelcore/internal/app/queries"
	"github.com/adith/hostelcore/internal/pkg/apperrors"
	"github.com/adith/hostelcore/internal/store"
)

// RoomService handles cleanliness and inventory updates from inspection
// rounds, and room assignment with the capacity check the dashboards
// relied on the UI to enforce.
type RoomService struct {
	store   *store.Store
	queries *queries.Queries
}

// NewRoomService creates a new room service
func NewRoomService(s *store.Store, q *queries.Queries) *RoomService {
	return &RoomService{store: s, queries: q}
}

// UpdateCleanliness records an inspection grade. Joint wardens may only
// grade rooms in their assignment; wardens and admins grade any room.
func (r *RoomService) UpdateCleanliness(roomNumber string, grade models.Cleanliness, actorID string, role models.RoleType) (*models.Room, error) {
	switch grade {
	case models.CleanlinessClean, models.CleanlinessNeedsAttention, models.CleanlinessDirty:
	default:
		return nil, apperrors.NewValidationError("unknown cleanliness grade")
	}

	room := r.queries.RoomByNumber(roomNumber)
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}

	switch role {
	case models.RoleWarden, models.RoleAdmin:
	case models.RoleJointWarden:
		if !r.mentorCoversRoom(actorID, roomNumber) {
			return nil, apperrors.NewForbiddenError("room is not in this joint warden's assignment")
		}
	default:
		return nil, apperrors.NewForbiddenError("only hostel staff update room records")
	}

	r.store.Rooms.Update(room.ID, func(rm *models.Room) {
		rm.Cleanliness = grade
	})
	updated := r.queries.RoomByNumber(roomNumber)
	return updated, nil
}

// UpdateInventory replaces a room's furniture counts. Staff only.
func (r *RoomService) UpdateInventory(roomNumber string, inv models.RoomInventory, role models.RoleType) (*models.Room, error) {
	if !role.IsStaff() {
		return nil, apperrors.NewForbiddenError("only hostel staff update room records")
	}
	if inv.Cots < 0 || inv.Tables < 0 || inv.Chairs < 0 || inv.Wardrobes < 0 || inv.Fans < 0 {
		return nil, apperrors.NewValidationError("inventory counts cannot be negative")
	}
	room := r.queries.RoomByNumber(roomNumber)
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}
	r.store.Rooms.Update(room.ID, func(rm *models.Room) {
		rm.Inventory = inv
	})
	updated := r.queries.RoomByNumber(roomNumber)
	return updated, nil
}

// ReassignStudent moves a student to a different room, keeping occupant
// lists consistent and enforcing occupancy <= capacity.
func (r *RoomService) ReassignStudent(sin, toRoomNumber string, role models.RoleType) (*models.Student, error) {
	if role != models.RoleWarden && role != models.RoleAdmin {
		return nil, apperrors.NewForbiddenError("only wardens and admins reassign rooms")
	}
	student := r.queries.StudentBySIN(sin)
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	target := r.queries.RoomByNumber(toRoomNumber)
	if target == nil {
		return nil, apperrors.ErrRoomNotFound
	}
	if student.RoomNumber == target.RoomNumber {
		return nil, apperrors.NewConflictError("student already occupies this room")
	}
	if !target.HasVacancy() {
		return nil, apperrors.ErrRoomFull
	}

	if old := r.queries.RoomByNumber(student.RoomNumber); old != nil {
		r.store.Rooms.Update(old.ID, func(rm *models.Room) {
			kept := rm.Occupants[:0]
			for _, occ := range rm.Occupants {
				if occ != sin {
					kept = append(kept, occ)
				}
			}
			rm.Occupants = kept
		})
	}
	r.store.Rooms.Update(target.ID, func(rm *models.Room) {
		rm.Occupants = append(rm.Occupants, sin)
	})
	r.store.Students.Update(student.ID, func(st *models.Student) {
		st.RoomNumber = target.RoomNumber
		st.Hostel = target.Hostel
	})
	return r.queries.StudentBySIN(sin), nil
}

func (r *RoomService) mentorCoversRoom(staffID, roomNumber string) bool {
	a, ok := r.store.Assignments.First(func(a models.MentorAssignment) bool {
		return a.StaffID == staffID
	})
	return ok && a.CoversRoom(roomNumber)
}
