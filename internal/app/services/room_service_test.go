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

func roomFixture(t *testing.T) (*RoomService, *store.Store) {
	t.Helper()
	s := store.New()
	s.Rooms.Replace([]models.Room{
		{ID: "ROOM-1", RoomNumber: "A-101", Hostel: "Block A", Capacity: 2, Occupants: []string{"SIN2301"}, Cleanliness: models.CleanlinessClean},
		{ID: "ROOM-2", RoomNumber: "A-102", Hostel: "Block A", Capacity: 2, Cleanliness: models.CleanlinessClean},
		{ID: "ROOM-3", RoomNumber: "B-101", Hostel: "Block B", Capacity: 1, Occupants: []string{"SIN2305"}, Cleanliness: models.CleanlinessClean},
	})
	s.Students.Replace([]models.Student{
		{ID: "STU-1", SIN: "SIN2301", Name: "Ananya Sharma", Email: "ananya@college.edu", Hostel: "Block A", RoomNumber: "A-101"},
		{ID: "STU-2", SIN: "SIN2305", Name: "Karthik Iyer", Email: "karthik@college.edu", Hostel: "Block B", RoomNumber: "B-101"},
	})
	s.Assignments.Replace([]models.MentorAssignment{
		{ID: "MENT-1", StaffID: "STAFF-JW", StudentSINs: []string{"SIN2301"}, RoomNumbers: []string{"A-101", "A-102"}},
	})
	return NewRoomService(s, queries.New(s)), s
}

func TestUpdateCleanliness(t *testing.T) {
	t.Run("warden grades any room", func(t *testing.T) {
		svc, _ := roomFixture(t)

		got, err := svc.UpdateCleanliness("B-101", models.CleanlinessDirty, "STAFF-W", models.RoleWarden)
		require.NoError(t, err)
		assert.Equal(t, models.CleanlinessDirty, got.Cleanliness)
	})

	t.Run("joint warden limited to assigned rooms", func(t *testing.T) {
		svc, _ := roomFixture(t)

		_, err := svc.UpdateCleanliness("A-101", models.CleanlinessNeedsAttention, "STAFF-JW", models.RoleJointWarden)
		assert.NoError(t, err)

		_, err = svc.UpdateCleanliness("B-101", models.CleanlinessNeedsAttention, "STAFF-JW", models.RoleJointWarden)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("students cannot grade", func(t *testing.T) {
		svc, _ := roomFixture(t)

		_, err := svc.UpdateCleanliness("A-101", models.CleanlinessClean, "SIN2301", models.RoleStudent)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("unknown grade rejected", func(t *testing.T) {
		svc, _ := roomFixture(t)

		_, err := svc.UpdateCleanliness("A-101", models.Cleanliness("Spotless"), "STAFF-W", models.RoleWarden)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestUpdateInventory(t *testing.T) {
	svc, _ := roomFixture(t)

	t.Run("replaces counts", func(t *testing.T) {
		got, err := svc.UpdateInventory("A-101", models.RoomInventory{Cots: 2, Tables: 2, Chairs: 2, Wardrobes: 2, Fans: 1}, models.RoleWarden)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Inventory.Cots)
	})

	t.Run("negative counts rejected", func(t *testing.T) {
		_, err := svc.UpdateInventory("A-101", models.RoomInventory{Cots: -1}, models.RoleWarden)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestReassignStudent(t *testing.T) {
	t.Run("moves occupant lists and student record together", func(t *testing.T) {
		svc, st := roomFixture(t)

		got, err := svc.ReassignStudent("SIN2301", "A-102", models.RoleWarden)
		require.NoError(t, err)
		assert.Equal(t, "A-102", got.RoomNumber)

		oldRoom, _ := st.Rooms.Find("ROOM-1")
		assert.NotContains(t, oldRoom.Occupants, "SIN2301")

		newRoom, _ := st.Rooms.Find("ROOM-2")
		assert.Contains(t, newRoom.Occupants, "SIN2301")
	})

	t.Run("same room rejected as conflict", func(t *testing.T) {
		svc, st := roomFixture(t)

		_, err := svc.ReassignStudent("SIN2301", "A-101", models.RoleWarden)
		assert.ErrorIs(t, err, apperrors.ErrConflict)

		room, _ := st.Rooms.Find("ROOM-1")
		assert.Equal(t, []string{"SIN2301"}, room.Occupants)
	})

	t.Run("capacity enforced", func(t *testing.T) {
		svc, _ := roomFixture(t)

		_, err := svc.ReassignStudent("SIN2301", "B-101", models.RoleWarden)
		assert.ErrorIs(t, err, apperrors.ErrRoomFull)
	})

	t.Run("joint wardens cannot reassign", func(t *testing.T) {
		svc, _ := roomFixture(t)

		_, err := svc.ReassignStudent("SIN2301", "A-102", models.RoleJointWarden)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}
