package store

import (
	"github.com/adith/hostelcore/internal/app/models"
)

// Collection keys. The WebSocket feed and subscription API identify
// collections by these names.
const (
	KeyStudents      = "students"
	KeyRooms         = "rooms"
	KeyComplaints    = "complaints"
	KeyLeaves        = "leaveApplications"
	KeyNotifications = "notifications"
	KeyStaff         = "staff"
	KeyHealthRecords = "healthRecords"
	KeyFoodFeedback  = "foodFeedback"
	KeyAttendance    = "attendance"
	KeyAssignments   = "mentorAssignments"
)

// ID prefixes used with NextID
const (
	PrefixStudent   = "STU"
	PrefixSIN       = "SIN"
	PrefixRoom      = "ROOM"
	PrefixComplaint = "COMP"
	PrefixLeave     = "LEAVE"
	PrefixNotice    = "NOTIF"
	PrefixStaff     = "STAFF"
	PrefixPayment   = "PAY"
	PrefixHealth    = "HLTH"
	PrefixFeedback  = "FOOD"
	PrefixMentor    = "MENT"
)

// Store is the process-wide entity store. It is always an explicitly
// constructed instance handed to its consumers, never a package-level
// singleton, so tests can run isolated stores side by side.
type Store struct {
	Students      *Collection[models.Student]
	Rooms         *Collection[models.Room]
	Complaints    *Collection[models.Complaint]
	Leaves        *Collection[models.LeaveApplication]
	Notifications *Collection[models.Notification]
	Staff         *Collection[models.StaffMember]
	HealthRecords *Collection[models.HealthRecord]
	FoodFeedback  *Collection[models.FoodFeedback]
	Attendance    *Collection[models.AttendanceSheet]
	Assignments   *Collection[models.MentorAssignment]

	ids  *idGenerator
	feed *changeFeed
}

// New creates an empty store. Call seed.CreateDefaultData to load the
// fixed startup data set.
func New() *Store {
	feed := &changeFeed{}
	return &Store{
		Students:      NewCollection[models.Student](KeyStudents, feed),
		Rooms:         NewCollection[models.Room](KeyRooms, feed),
		Complaints:    NewCollection[models.Complaint](KeyComplaints, feed),
		Leaves:        NewCollection[models.LeaveApplication](KeyLeaves, feed),
		Notifications: NewCollection[models.Notification](KeyNotifications, feed),
		Staff:         NewCollection[models.StaffMember](KeyStaff, feed),
		HealthRecords: NewCollection[models.HealthRecord](KeyHealthRecords, feed),
		FoodFeedback:  NewCollection[models.FoodFeedback](KeyFoodFeedback, feed),
		Attendance:    NewCollection[models.AttendanceSheet](KeyAttendance, feed),
		Assignments:   NewCollection[models.MentorAssignment](KeyAssignments, feed),
		ids:           newIDGenerator(),
		feed:          feed,
	}
}

// NextID issues the next monotonic id for the prefix
func (s *Store) NextID(prefix string) string {
	return s.ids.Next(prefix)
}

// ReserveIDs advances a prefix counter past seeded fixed ids
func (s *Store) ReserveIDs(prefix string, n uint64) {
	s.ids.Reserve(prefix, n)
}

// Changes returns a channel of collection-change events. Each listener
// gets its own buffered channel; events are dropped rather than block
// the mutating goroutine when a listener falls behind.
func (s *Store) Changes() <-chan ChangeEvent {
	return s.feed.listen()
}
