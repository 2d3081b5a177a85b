package models

// RoleType defines the dashboard role of an authenticated user
type RoleType string

const (
	RoleStudent     RoleType = "STUDENT"
	RoleJointWarden RoleType = "JOINT_WARDEN"
	RoleWarden      RoleType = "WARDEN"
	RoleAdmin       RoleType = "ADMIN"
)

// IsStaff reports whether the role belongs to hostel staff rather than a resident
func (r RoleType) IsStaff() bool {
	return r == RoleJointWarden || r == RoleWarden || r == RoleAdmin
}

// Gender of a resident
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Hostel blocks available on campus. Seed data and room records only use these.
const (
	HostelBlockA = "Block A"
	HostelBlockB = "Block B"
	HostelBlockC = "Block C"
	HostelBlockD = "Block D"
)

// HostelBlocks lists every block in a stable order
func HostelBlocks() []string {
	return []string{HostelBlockA, HostelBlockB, HostelBlockC, HostelBlockD}
}
