package queries

import "github.com/adith/hostelcore/internal/app/models"

// FeeTally counts students per fee status
type FeeTally struct {
	Paid    int `json:"paid"`
	Pending int `json:"pending"`
	Overdue int `json:"overdue"`
}

// FeeStatusTally scans the student collection and tallies fee statuses.
// Linear scan per call: collections are small and recompute-on-read
// keeps the numbers exact after every mutation.
func (q *Queries) FeeStatusTally() FeeTally {
	var t FeeTally
	for _, s := range q.store.Students.List() {
		switch s.FeeStatus {
		case models.FeePaid:
			t.Paid++
		case models.FeePending:
			t.Pending++
		case models.FeeOverdue:
			t.Overdue++
		}
	}
	return t
}

// AttendanceBands buckets students by attendance percentage
type AttendanceBands struct {
	Excellent int `json:"excellent"` // >= 95
	Good      int `json:"good"`      // 85-94
	Average   int `json:"average"`   // 75-84
	Poor      int `json:"poor"`      // < 75
}

// AttendanceBandTally buckets every student into an attendance band
func (q *Queries) AttendanceBandTally() AttendanceBands {
	var b AttendanceBands
	for _, s := range q.store.Students.List() {
		switch {
		case s.Attendance >= 95:
			b.Excellent++
		case s.Attendance >= 85:
			b.Good++
		case s.Attendance >= 75:
			b.Average++
		default:
			b.Poor++
		}
	}
	return b
}

// ComplaintTally counts complaints per status and per category
type ComplaintTally struct {
	ByStatus   map[models.ComplaintStatus]int   `json:"byStatus"`
	ByCategory map[models.ComplaintCategory]int `json:"byCategory"`
}

// ComplaintSummary tallies the complaint collection for staff dashboards
func (q *Queries) ComplaintSummary() ComplaintTally {
	t := ComplaintTally{
		ByStatus:   make(map[models.ComplaintStatus]int),
		ByCategory: make(map[models.ComplaintCategory]int),
	}
	for _, c := range q.store.Complaints.List() {
		t.ByStatus[c.Status]++
		t.ByCategory[c.Category]++
	}
	return t
}

// OccupancySummary reports per-block room usage
type OccupancySummary struct {
	Hostel    string `json:"hostel"`
	Rooms     int    `json:"rooms"`
	Capacity  int    `json:"capacity"`
	Occupied  int    `json:"occupied"`
	Available int    `json:"available"`
}

// Occupancy computes per-hostel-block occupancy from the room collection
func (q *Queries) Occupancy() []OccupancySummary {
	byBlock := make(map[string]*OccupancySummary)
	var order []string
	for _, r := range q.store.Rooms.List() {
		sum, ok := byBlock[r.Hostel]
		if !ok {
			sum = &OccupancySummary{Hostel: r.Hostel}
			byBlock[r.Hostel] = sum
			order = append(order, r.Hostel)
		}
		sum.Rooms++
		sum.Capacity += r.Capacity
		sum.Occupied += len(r.Occupants)
	}
	out := make([]OccupancySummary, 0, len(order))
	for _, h := range order {
		sum := byBlock[h]
		sum.Available = sum.Capacity - sum.Occupied
		out = append(out, *sum)
	}
	return out
}
