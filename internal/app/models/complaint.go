package models

// ComplaintCategory classifies a complaint for routing
type ComplaintCategory string

const (
	ComplaintTechnical   ComplaintCategory = "Technical"
	ComplaintMaintenance ComplaintCategory = "Maintenance"
	ComplaintFood        ComplaintCategory = "Food"
	ComplaintCleanliness ComplaintCategory = "Cleanliness"
	ComplaintSecurity    ComplaintCategory = "Security"
	ComplaintOther       ComplaintCategory = "Other"
)

// ComplaintPriority is set by the student at submission
type ComplaintPriority string

const (
	PriorityLow    ComplaintPriority = "Low"
	PriorityMedium ComplaintPriority = "Medium"
	PriorityHigh   ComplaintPriority = "High"
)

// ComplaintStatus enumerates the complaint lifecycle. Legal transitions:
// pending -> in-progress -> resolved, and pending|in-progress -> rejected.
// Resolved and rejected are terminal.
type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in-progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintRejected   ComplaintStatus = "rejected"
)

// Terminal reports whether no further transitions are legal
func (s ComplaintStatus) Terminal() bool {
	return s == ComplaintResolved || s == ComplaintRejected
}

// Valid reports whether the value is one of the enumerated statuses
func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintPending, ComplaintInProgress, ComplaintResolved, ComplaintRejected:
		return true
	}
	return false
}

// Complaint filed by a student. StudentName is denormalized so staff
// dashboards render without a join. Complaints are never deleted.
type Complaint struct {
	ID            string            `json:"id"`
	StudentSIN    string            `json:"studentSin" example:"SIN2301"`
	StudentName   string            `json:"studentName" example:"Ananya Sharma"`
	Title         string            `json:"title" example:"Ceiling fan not working"`
	Description   string            `json:"description"`
	Category      ComplaintCategory `json:"category" example:"Maintenance"`
	Priority      ComplaintPriority `json:"priority" example:"Medium"`
	Status        ComplaintStatus   `json:"status" example:"pending"`
	SubmittedDate string            `json:"submittedDate" example:"2024-06-02"`
	AssignedTo    string            `json:"assignedTo,omitempty" example:"Maintenance crew"`
	Resolution    string            `json:"resolution,omitempty"`
}

// EntityID implements store.Entity
func (c Complaint) EntityID() string { return c.ID }
