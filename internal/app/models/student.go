package models

// FeeStatus tracks a student's hostel fee state
type FeeStatus string

const (
	FeePaid    FeeStatus = "Paid"
	FeePending FeeStatus = "Pending"
	FeeOverdue FeeStatus = "Overdue"
)

// Payment is a single entry in a student's payment history
type Payment struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount" example:"45000"`
	Date   string  `json:"date" example:"2024-06-01"`
	Mode   string  `json:"mode" example:"UPI"`
}

// Student defines a hostel resident. SIN is the unique student key
// (format SIN<digits>); email is unique as well and is what the student
// logs in and is looked up with.
type Student struct {
	ID               string    `json:"id"`
	SIN              string    `json:"sin" example:"SIN2301"`
	Name             string    `json:"name" example:"Ananya Sharma"`
	Email            string    `json:"email" example:"ananya.sharma@college.edu"`
	Password         string    `json:"-"` // bcrypt hash, excluded from JSON
	DOB              string    `json:"dob" example:"2004-08-17"`
	Gender           Gender    `json:"gender" example:"Female"`
	Course           string    `json:"course" example:"B.Tech CSE"`
	Year             int       `json:"year" example:"2"` // 1-4
	Hostel           string    `json:"hostel" example:"Block A"`
	RoomNumber       string    `json:"roomNumber" example:"A-101"`
	FeeStatus        FeeStatus `json:"feeStatus" example:"Pending"`
	Attendance       int       `json:"attendance" example:"92"` // percentage 0-100
	Phone            string    `json:"phone" example:"+91 98765 43210"`
	EmergencyContact string    `json:"emergencyContact" example:"+91 98765 00001"`
	GuardianName     string    `json:"guardianName" example:"Rakesh Sharma"`
	GuardianPhone    string    `json:"guardianPhone" example:"+91 98765 00001"`
	Address          string    `json:"address" example:"12 MG Road, Pune"`
	PaymentHistory   []Payment `json:"paymentHistory"`
}

// EntityID implements store.Entity
func (s Student) EntityID() string { return s.ID }
