package models

// StaffMember is a warden, joint warden or admin account. Deletion of a
// staff member is supported but irreversible; there is no soft delete.
type StaffMember struct {
	ID       string   `json:"id"`
	Name     string   `json:"name" example:"Mrs. Devi"`
	Email    string   `json:"email" example:"devi@college.edu"`
	Password string   `json:"-"` // bcrypt hash, excluded from JSON
	Role     RoleType `json:"role" example:"JOINT_WARDEN"`
	Phone    string   `json:"phone" example:"+91 99887 76655"`
	Hostel   string   `json:"hostel,omitempty" example:"Block A"`
}

// EntityID implements store.Entity
func (m StaffMember) EntityID() string { return m.ID }

// MentorAssignment maps a joint warden to the students and rooms they
// mentor. The relation is data-driven so assignments can be rebalanced
// without touching query code.
type MentorAssignment struct {
	ID          string   `json:"id"`
	StaffID     string   `json:"staffId"`
	StudentSINs []string `json:"studentSins"`
	RoomNumbers []string `json:"roomNumbers"`
}

// EntityID implements store.Entity
func (a MentorAssignment) EntityID() string { return a.ID }

// CoversStudent reports whether the assignment includes the given SIN
func (a MentorAssignment) CoversStudent(sin string) bool {
	for _, s := range a.StudentSINs {
		if s == sin {
			return true
		}
	}
	return false
}

// CoversRoom reports whether the assignment includes the given room number
func (a MentorAssignment) CoversRoom(roomNumber string) bool {
	for _, r := range a.RoomNumbers {
		if r == roomNumber {
			return true
		}
	}
	return false
}
