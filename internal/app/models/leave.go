package models

import "time"

// LeaveStatus enumerates the leave-application workflow. Legal transitions:
// pending -> recommended|rejected (joint-warden stage), recommended ->
// approved|rejected (warden/admin stage). Approved and rejected are terminal.
type LeaveStatus string

const (
	LeavePending     LeaveStatus = "pending"
	LeaveRecommended LeaveStatus = "recommended"
	LeaveApproved    LeaveStatus = "approved"
	LeaveRejected    LeaveStatus = "rejected"
)

// Terminal reports whether no further transitions are legal
func (s LeaveStatus) Terminal() bool {
	return s == LeaveApproved || s == LeaveRejected
}

// Valid reports whether the value is one of the enumerated statuses
func (s LeaveStatus) Valid() bool {
	switch s {
	case LeavePending, LeaveRecommended, LeaveApproved, LeaveRejected:
		return true
	}
	return false
}

// LeaveApplication is a student's request to be away from the hostel.
// Dates use the "2006-01-02" layout. Review fields are stamped by the
// workflow layer, never written by the student.
type LeaveApplication struct {
	ID                string      `json:"id"`
	StudentSIN        string      `json:"studentSin" example:"SIN2301"`
	StudentName       string      `json:"studentName" example:"Ananya Sharma"`
	Reason            string      `json:"reason" example:"Sister's wedding"`
	StartDate         string      `json:"startDate" example:"2024-06-15"`
	EndDate           string      `json:"endDate" example:"2024-06-17"`
	EmergencyContact  string      `json:"emergencyContact" example:"+91 98765 00001"`
	Address           string      `json:"address" example:"12 MG Road, Pune"`
	Status            LeaveStatus `json:"status" example:"pending"`
	SubmittedAt       time.Time   `json:"submittedAt"`
	ReviewedAt        *time.Time  `json:"reviewedAt,omitempty"`
	ReviewedBy        string      `json:"reviewedBy,omitempty" example:"Mrs. Devi"`
	JointWardenRemark string      `json:"jointWardenRemarks,omitempty"`
	WardenRemark      string      `json:"wardenRemarks,omitempty"`
}

// EntityID implements store.Entity
func (l LeaveApplication) EntityID() string { return l.ID }
