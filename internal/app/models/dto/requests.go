package dto

// LoginRequest carries credentials for any role
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterStudentRequest carries a new resident's details
type RegisterStudentRequest struct {
	Name             string `json:"name" binding:"required,min=2,max=100"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
	DOB              string `json:"dob" binding:"required,datetime=2006-01-02"`
	Gender           string `json:"gender" binding:"required,oneof=Male Female"`
	Course           string `json:"course" binding:"required"`
	Year             int    `json:"year" binding:"required,min=1,max=4"`
	RoomNumber       string `json:"roomNumber" binding:"required"`
	Phone            string `json:"phone" binding:"required"`
	EmergencyContact string `json:"emergencyContact" binding:"required"`
	GuardianName     string `json:"guardianName" binding:"required"`
	GuardianPhone    string `json:"guardianPhone" binding:"required"`
	Address          string `json:"address" binding:"required"`
}

// UpdateProfileRequest carries editable contact fields; omitted fields
// keep their current values
type UpdateProfileRequest struct {
	Phone            string `json:"phone,omitempty"`
	EmergencyContact string `json:"emergencyContact,omitempty"`
	GuardianName     string `json:"guardianName,omitempty"`
	GuardianPhone    string `json:"guardianPhone,omitempty"`
	Address          string `json:"address,omitempty"`
}

// RecordPaymentRequest records a fee payment
type RecordPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Mode   string  `json:"mode" binding:"required"`
}

// MarkAttendanceRequest records one day's presence sheet
type MarkAttendanceRequest struct {
	Date    string          `json:"date" binding:"required,datetime=2006-01-02"`
	Entries map[string]bool `json:"entries" binding:"required"`
}

// SubmitComplaintRequest files a complaint
type SubmitComplaintRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=200"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=Technical Maintenance Food Cleanliness Security Other"`
	Priority    string `json:"priority" binding:"required,oneof=Low Medium High"`
}

// UpdateComplaintStatusRequest advances a complaint's lifecycle
type UpdateComplaintStatusRequest struct {
	Status     string `json:"status" binding:"required,oneof=pending in-progress resolved rejected"`
	AssignedTo string `json:"assignedTo,omitempty"`
	Resolution string `json:"resolution,omitempty"`
}

// SubmitLeaveRequest files a leave application
type SubmitLeaveRequest struct {
	Reason           string `json:"reason" binding:"required"`
	StartDate        string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate          string `json:"endDate" binding:"required,datetime=2006-01-02"`
	EmergencyContact string `json:"emergencyContact" binding:"required"`
	Address          string `json:"address" binding:"required"`
}

// ReviewLeaveRequest carries a staff decision on a leave application
type ReviewLeaveRequest struct {
	Decision string `json:"decision" binding:"required,oneof=recommended approved rejected"`
	Remarks  string `json:"remarks,omitempty"`
}

// UpdateCleanlinessRequest records an inspection grade
type UpdateCleanlinessRequest struct {
	Cleanliness string `json:"cleanliness" binding:"required,oneof=Clean 'Needs Attention' Dirty"`
}

// UpdateInventoryRequest replaces a room's furniture counts
type UpdateInventoryRequest struct {
	Cots      int `json:"cots" binding:"min=0"`
	Tables    int `json:"tables" binding:"min=0"`
	Chairs    int `json:"chairs" binding:"min=0"`
	Wardrobes int `json:"wardrobes" binding:"min=0"`
	Fans      int `json:"fans" binding:"min=0"`
}

// ReassignRoomRequest moves a student to another room
type ReassignRoomRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required"`
}

// PublishNotificationRequest broadcasts a dashboard notification
type PublishNotificationRequest struct {
	Title       string   `json:"title" binding:"required"`
	Message     string   `json:"message" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=complaint leave fee general maintenance food"`
	Priority    string   `json:"priority" binding:"required,oneof=Low Medium High"`
	TargetRoles []string `json:"targetRoles,omitempty"`
}

// CreateStaffRequest registers a staff account
type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=JOINT_WARDEN WARDEN ADMIN"`
	Phone    string `json:"phone,omitempty"`
	Hostel   string `json:"hostel,omitempty"`
}

// AssignMentorRequest replaces a joint warden's mentee/room assignment
type AssignMentorRequest struct {
	StudentSINs []string `json:"studentSins" binding:"required,dive,sin"`
	RoomNumbers []string `json:"roomNumbers" binding:"required,dive,roomnum"`
}

// UpsertHealthRecordRequest edits a student's infirmary record
type UpsertHealthRecordRequest struct {
	BloodGroup    string `json:"bloodGroup" binding:"required"`
	Allergies     string `json:"allergies,omitempty"`
	Conditions    string `json:"conditions,omitempty"`
	LastCheckup   string `json:"lastCheckup" binding:"required,datetime=2006-01-02"`
	DoctorRemarks string `json:"doctorRemarks,omitempty"`
}

// SubmitFoodFeedbackRequest rates a mess meal
type SubmitFoodFeedbackRequest struct {
	Meal     string `json:"meal" binding:"required,oneof=Breakfast Lunch Snacks Dinner"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comments string `json:"comments,omitempty"`
}
