package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adith/hostelcore/internal/app/models"
	"github.com/adith/hostelcore/internal/store"
)

func testStore() *store.Store {
	s := store.New()
	s.Students.Replace([]models.Student{
		{ID: "STU-1", SIN: "SIN2301", Name: "Ananya Sharma", Email: "ananya@college.edu", Hostel: "Block A", RoomNumber: "A-101", FeeStatus: models.FeePaid, Attendance: 96},
		{ID: "STU-2", SIN: "SIN2302", Name: "Priya Menon", Email: "priya@college.edu", Hostel: "Block A", RoomNumber: "A-101", FeeStatus: models.FeePending, Attendance: 88},
		{ID: "STU-3", SIN: "SIN2303", Name: "Riya Verma", Email: "riya@college.edu", Hostel: "Block A", RoomNumber: "A-102", FeeStatus: models.FeeOverdue, Attendance: 72},
		{ID: "STU-4", SIN: "SIN2304", Name: "Arjun Singh", Email: "arjun@college.edu", Hostel: "Block B", RoomNumber: "B-101", FeeStatus: models.FeePaid, Attendance: 78},
	})
	s.Rooms.Replace([]models.Room{
		{ID: "ROOM-1", RoomNumber: "A-101", Hostel: "Block A", Capacity: 2, Occupants: []string{"SIN2301", "SIN2302"}},
		{ID: "ROOM-2", RoomNumber: "A-102", Hostel: "Block A", Capacity: 2, Occupants: []string{"SIN2303"}},
		{ID: "ROOM-3", RoomNumber: "B-101", Hostel: "Block B", Capacity: 4, Occupants: []string{"SIN2304"}},
	})
	s.Assignments.Replace([]models.MentorAssignment{
		{ID: "MENT-1", StaffID: "STAFF-1", StudentSINs: []string{"SIN2301", "SIN2302"}, RoomNumbers: []string{"A-101"}},
	})
	s.Complaints.Replace([]models.Complaint{
		{ID: "COMP-1", StudentSIN: "SIN2301", Status: models.ComplaintPending, Category: models.ComplaintMaintenance},
		{ID: "COMP-2", StudentSIN: "SIN2303", Status: models.ComplaintResolved, Category: models.ComplaintFood},
	})
	s.Leaves.Replace([]models.LeaveApplication{
		{ID: "LEAVE-1", StudentSIN: "SIN2302", Status: models.LeavePending},
		{ID: "LEAVE-2", StudentSIN: "SIN2304", Status: models.LeaveApproved},
	})
	s.Notifications.Replace([]models.Notification{
		{ID: "NOTIF-1", Title: "For everyone", TargetRoles: []string{models.TargetAllRoles}},
		{ID: "NOTIF-2", Title: "Students only", TargetRoles: []string{string(models.RoleStudent)}, Read: true},
		{ID: "NOTIF-3", Title: "Wardens only", TargetRoles: []string{string(models.RoleWarden)}},
	})
	return s
}

func TestStudentLookups(t *testing.T) {
	q := New(testStore())

	t.Run("by email", func(t *testing.T) {
		s := q.StudentByEmail("ananya@college.edu")
		require.NotNil(t, s)
		assert.Equal(t, "SIN2301", s.SIN)
	})

	t.Run("unknown email is nil, not an error", func(t *testing.T) {
		assert.Nil(t, q.StudentByEmail("nobody@college.edu"))
	})

	t.Run("by SIN", func(t *testing.T) {
		s := q.StudentBySIN("SIN2303")
		require.NotNil(t, s)
		assert.Equal(t, "Riya Verma", s.Name)
	})
}

func TestRoommates(t *testing.T) {
	q := New(testStore())

	t.Run("excludes self", func(t *testing.T) {
		mates := q.Roommates("ananya@college.edu")
		require.Len(t, mates, 1)
		assert.Equal(t, "SIN2302", mates[0].SIN)
	})

	t.Run("symmetric for both occupants", func(t *testing.T) {
		mates := q.Roommates("priya@college.edu")
		require.Len(t, mates, 1)
		assert.Equal(t, "SIN2301", mates[0].SIN)
	})

	t.Run("single occupant has none", func(t *testing.T) {
		assert.Empty(t, q.Roommates("riya@college.edu"))
	})

	t.Run("unknown email yields empty", func(t *testing.T) {
		assert.Empty(t, q.Roommates("nobody@college.edu"))
	})
}

func TestMentorScoping(t *testing.T) {
	q := New(testStore())

	t.Run("mentees are the assigned subset", func(t *testing.T) {
		mentees := q.Mentees("STAFF-1")
		require.Len(t, mentees, 2)
		assert.Equal(t, "SIN2301", mentees[0].SIN)
		assert.Equal(t, "SIN2302", mentees[1].SIN)
	})

	t.Run("complaints scoped to mentees", func(t *testing.T) {
		cs := q.MentorComplaints("STAFF-1")
		require.Len(t, cs, 1)
		assert.Equal(t, "COMP-1", cs[0].ID)
	})

	t.Run("leaves scoped to mentees", func(t *testing.T) {
		ls := q.MentorLeaves("STAFF-1")
		require.Len(t, ls, 1)
		assert.Equal(t, "LEAVE-1", ls[0].ID)
	})

	t.Run("rooms scoped to assignment", func(t *testing.T) {
		rs := q.MentorRooms("STAFF-1")
		require.Len(t, rs, 1)
		assert.Equal(t, "A-101", rs[0].RoomNumber)
	})

	t.Run("is-mentee check", func(t *testing.T) {
		assert.True(t, q.IsMentee("STAFF-1", "SIN2301"))
		assert.False(t, q.IsMentee("STAFF-1", "SIN2304"))
		assert.False(t, q.IsMentee("STAFF-unknown", "SIN2301"))
	})
}

func TestSearchStudents(t *testing.T) {
	q := New(testStore())

	t.Run("case-insensitive name substring", func(t *testing.T) {
		got := q.SearchStudents("ananya")
		require.Len(t, got, 1)
		assert.Equal(t, "SIN2301", got[0].SIN)
	})

	t.Run("matches SIN", func(t *testing.T) {
		got := q.SearchStudents("2303")
		require.Len(t, got, 1)
		assert.Equal(t, "Riya Verma", got[0].Name)
	})

	t.Run("blank query returns everyone", func(t *testing.T) {
		assert.Len(t, q.SearchStudents("  "), 4)
	})

	t.Run("no match is empty", func(t *testing.T) {
		assert.Empty(t, q.SearchStudents("zzz"))
	})
}

func TestNotificationsFor(t *testing.T) {
	q := New(testStore())

	t.Run("role sees own plus wildcard", func(t *testing.T) {
		ns := q.NotificationsFor(models.RoleStudent)
		require.Len(t, ns, 2)
		assert.Equal(t, "NOTIF-1", ns[0].ID)
		assert.Equal(t, "NOTIF-2", ns[1].ID)
	})

	t.Run("unread count skips read items", func(t *testing.T) {
		assert.Equal(t, 1, q.UnreadCount(models.RoleStudent))
		assert.Equal(t, 2, q.UnreadCount(models.RoleWarden))
	})
}

func TestFeeStatusTally(t *testing.T) {
	q := New(testStore())

	tally := q.FeeStatusTally()
	assert.Equal(t, FeeTally{Paid: 2, Pending: 1, Overdue: 1}, tally)
}

func TestAttendanceBandTally(t *testing.T) {
	q := New(testStore())

	bands := q.AttendanceBandTally()
	assert.Equal(t, AttendanceBands{Excellent: 1, Good: 1, Average: 1, Poor: 1}, bands)
}

func TestComplaintSummary(t *testing.T) {
	q := New(testStore())

	sum := q.ComplaintSummary()
	assert.Equal(t, 1, sum.ByStatus[models.ComplaintPending])
	assert.Equal(t, 1, sum.ByStatus[models.ComplaintResolved])
	assert.Equal(t, 1, sum.ByCategory[models.ComplaintMaintenance])
}

func TestOccupancy(t *testing.T) {
	q := New(testStore())

	occ := q.Occupancy()
	require.Len(t, occ, 2)

	assert.Equal(t, OccupancySummary{Hostel: "Block A", Rooms: 2, Capacity: 4, Occupied: 3, Available: 1}, occ[0])
	assert.Equal(t, OccupancySummary{Hostel: "Block B", Rooms: 1, Capacity: 4, Occupied: 1, Available: 3}, occ[1])
}

func TestDerivationsStableBetweenMutations(t *testing.T) {
	q := New(testStore())

	// Back-to-back reads with no mutation in between return equal
	// results: derivations are pure functions of the store contents.
	assert.Equal(t, q.Roommates("ananya@college.edu"), q.Roommates("ananya@college.edu"))
	assert.Equal(t, q.Mentees("STAFF-1"), q.Mentees("STAFF-1"))
	assert.Equal(t, q.MentorComplaints("STAFF-1"), q.MentorComplaints("STAFF-1"))
	assert.Equal(t, q.SearchStudents("sharma"), q.SearchStudents("sharma"))
	assert.Equal(t, q.NotificationsFor(models.RoleWarden), q.NotificationsFor(models.RoleWarden))
	assert.Equal(t, q.FeeStatusTally(), q.FeeStatusTally())
	assert.Equal(t, q.AttendanceBandTally(), q.AttendanceBandTally())
	assert.Equal(t, q.ComplaintSummary(), q.ComplaintSummary())
	assert.Equal(t, q.Occupancy(), q.Occupancy())
}
