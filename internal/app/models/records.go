package models

import "time"

// HealthRecord keeps the infirmary's notes on a student
type HealthRecord struct {
	ID            string `json:"id"`
	StudentSIN    string `json:"studentSin" example:"SIN2301"`
	BloodGroup    string `json:"bloodGroup" example:"B+"`
	Allergies     string `json:"allergies,omitempty" example:"Dust"`
	Conditions    string `json:"conditions,omitempty"`
	LastCheckup   string `json:"lastCheckup" example:"2024-03-10"`
	DoctorRemarks string `json:"doctorRemarks,omitempty"`
}

// EntityID implements store.Entity
func (h HealthRecord) EntityID() string { return h.ID }

// FoodFeedback is a mess-quality rating submitted by a student
type FoodFeedback struct {
	ID         string    `json:"id"`
	StudentSIN string    `json:"studentSin" example:"SIN2301"`
	Meal       string    `json:"meal" example:"Lunch"`
	Rating     int       `json:"rating" example:"4"` // 1-5
	Comments   string    `json:"comments,omitempty"`
	Date       string    `json:"date" example:"2024-06-02"`
	CreatedAt  time.Time `json:"createdAt"`
}

// EntityID implements store.Entity
func (f FoodFeedback) EntityID() string { return f.ID }

// AttendanceSheet records presence per student for one calendar date.
// Date doubles as the sheet id, so there is one sheet per date.
type AttendanceSheet struct {
	Date    string          `json:"date" example:"2024-06-02"`
	Entries map[string]bool `json:"entries"` // SIN -> present
}

// EntityID implements store.Entity
func (a AttendanceSheet) EntityID() string { return a.Date }
