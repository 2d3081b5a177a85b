// Package queries holds the pure read-side derivations over the entity
// store: role-scoped views and dashboard aggregates. Nothing here
// mutates, and every result is recomputed from the store on each call
// so callers never see a stale cache.
package queries

import (
	"strings"

	"github.com/adith/hostelcore/internal/app/models"
	"github.com/adith/hostelcore/internal/store"
)

// Queries exposes read-only derivations over one store instance
type Queries struct {
	store *store.Store
}

// New creates a query layer over the given store
func New(s *store.Store) *Queries {
	return &Queries{store: s}
}

// StudentByEmail returns the first student with exactly this email, or
// nil when absent. Lookup misses are a normal result, never an error.
func (q *Queries) StudentByEmail(email string) *models.Student {
	s, ok := q.store.Students.First(func(s models.Student) bool {
		return s.Email == email
	})
	if !ok {
		return nil
	}
	return &s
}

// StudentBySIN returns the student with this SIN, or nil when absent
func (q *Queries) StudentBySIN(sin string) *models.Student {
	s, ok := q.store.Students.First(func(s models.Student) bool {
		return s.SIN == sin
	})
	if !ok {
		return nil
	}
	return &s
}

// Roommates resolves a student by email and returns everyone sharing
// their room number, excluding the student, in store insertion order.
// An unknown email yields an empty slice.
func (q *Queries) Roommates(email string) []models.Student {
	self := q.StudentByEmail(email)
	if self == nil {
		return nil
	}
	return q.store.Students.Filter(func(s models.Student) bool {
		return s.RoomNumber == self.RoomNumber && s.SIN != self.SIN
	})
}

// RoomByNumber returns the room with this number, or nil when absent
func (q *Queries) RoomByNumber(roomNumber string) *models.Room {
	r, ok := q.store.Rooms.First(func(r models.Room) bool {
		return r.RoomNumber == roomNumber
	})
	if !ok {
		return nil
	}
	return &r
}

// RoomOccupants returns the students currently assigned to a room
func (q *Queries) RoomOccupants(roomNumber string) []models.Student {
	return q.store.Students.Filter(func(s models.Student) bool {
		return s.RoomNumber == roomNumber
	})
}

// assignmentFor finds the mentor assignment of a joint warden, if any
func (q *Queries) assignmentFor(staffID string) (models.MentorAssignment, bool) {
	return q.store.Assignments.First(func(a models.MentorAssignment) bool {
		return a.StaffID == staffID
	})
}

// Mentees returns the students assigned to a joint warden. The relation
// is the data-driven mentor assignment table, so each joint warden sees
// a bounded, disjoint subset.
func (q *Queries) Mentees(staffID string) []models.Student {
	a, ok := q.assignmentFor(staffID)
	if !ok {
		return nil
	}
	return q.store.Students.Filter(func(s models.Student) bool {
		return a.CoversStudent(s.SIN)
	})
}

// MentorRooms returns the rooms assigned to a joint warden
func (q *Queries) MentorRooms(staffID string) []models.Room {
	a, ok := q.assignmentFor(staffID)
	if !ok {
		return nil
	}
	return q.store.Rooms.Filter(func(r models.Room) bool {
		return a.CoversRoom(r.RoomNumber)
	})
}

// MentorComplaints returns the complaints filed by a joint warden's mentees
func (q *Queries) MentorComplaints(staffID string) []models.Complaint {
	a, ok := q.assignmentFor(staffID)
	if !ok {
		return nil
	}
	return q.store.Complaints.Filter(func(c models.Complaint) bool {
		return a.CoversStudent(c.StudentSIN)
	})
}

// MentorLeaves returns the leave applications of a joint warden's mentees
func (q *Queries) MentorLeaves(staffID string) []models.LeaveApplication {
	a, ok := q.assignmentFor(staffID)
	if !ok {
		return nil
	}
	return q.store.Leaves.Filter(func(l models.LeaveApplication) bool {
		return a.CoversStudent(l.StudentSIN)
	})
}

// IsMentee reports whether the student belongs to the joint warden's subset
func (q *Queries) IsMentee(staffID, sin string) bool {
	a, ok := q.assignmentFor(staffID)
	return ok && a.CoversStudent(sin)
}

// StudentComplaints returns a student's own complaints
func (q *Queries) StudentComplaints(sin string) []models.Complaint {
	return q.store.Complaints.Filter(func(c models.Complaint) bool {
		return c.StudentSIN == sin
	})
}

// StudentLeaves returns a student's own leave applications
func (q *Queries) StudentLeaves(sin string) []models.LeaveApplication {
	return q.store.Leaves.Filter(func(l models.LeaveApplication) bool {
		return l.StudentSIN == sin
	})
}

// StudentsByHostel filters students by exact hostel block name
func (q *Queries) StudentsByHostel(hostel string) []models.Student {
	return q.store.Students.Filter(func(s models.Student) bool {
		return s.Hostel == hostel
	})
}

// SearchStudents matches the query as a case-insensitive substring of
// name, SIN or email. Every other filter in this package is exact and
// case-sensitive; free-text search is the one exception.
func (q *Queries) SearchStudents(query string) []models.Student {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return q.store.Students.List()
	}
	return q.store.Students.Filter(func(s models.Student) bool {
		return strings.Contains(strings.ToLower(s.Name), needle) ||
			strings.Contains(strings.ToLower(s.SIN), needle) ||
			strings.Contains(strings.ToLower(s.Email), needle)
	})
}

// NotificationsFor returns the notifications visible to a role, which
// means the role tag is targeted explicitly or via the "all" wildcard.
func (q *Queries) NotificationsFor(role models.RoleType) []models.Notification {
	return q.store.Notifications.Filter(func(n models.Notification) bool {
		return n.Targets(role)
	})
}

// UnreadCount returns how many notifications targeting the role are unread
func (q *Queries) UnreadCount(role models.RoleType) int {
	count := 0
	for _, n := range q.store.Notifications.List() {
		if n.Targets(role) && !n.Read {
			count++
		}
	}
	return count
}

// HealthRecord returns a student's infirmary record, or nil when absent
func (q *Queries) HealthRecord(sin string) *models.HealthRecord {
	h, ok := q.store.HealthRecords.First(func(h models.HealthRecord) bool {
		return h.StudentSIN == sin
	})
	if !ok {
		return nil
	}
	return &h
}

// AttendanceOn returns the sheet for a date, or nil when none was taken
func (q *Queries) AttendanceOn(date string) *models.AttendanceSheet {
	sheet, ok := q.store.Attendance.Find(date)
	if !ok {
		return nil
	}
	return &sheet
}
