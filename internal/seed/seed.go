package seed

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/adith/hostelcore/internal/app/models"
	"github.com/adith/hostelcore/internal/config"
	"github.com/adith/hostelcore/internal/store"
)

// CreateDefaultData loads a deterministic data set into an empty store so
// the API is usable out of the box. Fixed ids are used for seeded records;
// ReserveIDs keeps the generators from colliding with them at runtime.
func CreateDefaultData(s *store.Store, cfg *config.Config, lgr zerolog.Logger) error {
	if s.Students.Len() > 0 {
		lgr.Info().Msg("Store already populated, skipping seed")
		return nil
	}

	lgr.Info().Str("hostel", cfg.Hostel.Name).Msg("Seeding default hostel data...")

	studentPassword, err := bcrypt.GenerateFromPassword([]byte("student123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}
	staffPassword, err := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	seedRooms(s, cfg)
	seedStaff(s, string(staffPassword))
	seedStudents(s, string(studentPassword))
	seedAssignments(s)
	seedComplaints(s)
	seedLeaves(s)
	seedNotifications(s)
	seedRecords(s)
	seedAttendance(s)

	// Generators start past the fixed seed ids
	s.ReserveIDs(store.PrefixStudent, 100)
	s.ReserveIDs(store.PrefixSIN, 2400)
	s.ReserveIDs(store.PrefixRoom, 100)
	s.ReserveIDs(store.PrefixComplaint, 100)
	s.ReserveIDs(store.PrefixLeave, 100)
	s.ReserveIDs(store.PrefixNotice, 100)
	s.ReserveIDs(store.PrefixStaff, 100)
	s.ReserveIDs(store.PrefixMentor, 100)
	s.ReserveIDs(store.PrefixHealth, 100)
	s.ReserveIDs(store.PrefixFeedback, 100)
	s.ReserveIDs(store.PrefixPayment, 100)

	lgr.Info().
		Int("students", s.Students.Len()).
		Int("rooms", s.Rooms.Len()).
		Int("staff", s.Staff.Len()).
		Msg("Seed complete")
	return nil
}

func seedRooms(s *store.Store, cfg *config.Config) {
	rooms := []models.Room{
		{ID: "ROOM-000001", RoomNumber: "A-101", Hostel: "Block A", Type: models.RoomNonAC, Capacity: cfg.Hostel.NonACRoomCapacity},
		{ID: "ROOM-000002", RoomNumber: "A-102", Hostel: "Block A", Type: models.RoomNonAC, Capacity: cfg.Hostel.NonACRoomCapacity},
		{ID: "ROOM-000003", RoomNumber: "A-201", Hostel: "Block A", Type: models.RoomAC, Capacity: cfg.Hostel.ACRoomCapacity},
		{ID: "ROOM-000004", RoomNumber: "B-101", Hostel: "Block B", Type: models.RoomNonAC, Capacity: cfg.Hostel.NonACRoomCapacity},
		{ID: "ROOM-000005", RoomNumber: "B-102", Hostel: "Block B", Type: models.RoomNonAC, Capacity: cfg.Hostel.NonACRoomCapacity},
		{ID: "ROOM-000006", RoomNumber: "B-201", Hostel: "Block B", Type: models.RoomAC, Capacity: cfg.Hostel.ACRoomCapacity},
	}
	for i := range rooms {
		rooms[i].Cleanliness = models.CleanlinessClean
		rooms[i].Inventory = models.RoomInventory{
			Cots:      rooms[i].Capacity,
			Tables:    rooms[i].Capacity,
			Chairs:    rooms[i].Capacity,
			Wardrobes: rooms[i].Capacity,
			Fans:      1,
		}
	}
	rooms[0].Occupants = []string{"SIN2301", "SIN2302"}
	rooms[1].Occupants = []string{"SIN2303"}
	rooms[2].Occupants = []string{"SIN2304"}
	rooms[3].Occupants = []string{"SIN2305", "SIN2306"}
	s.Rooms.Replace(rooms)
}

func seedStaff(s *store.Store, passwordHash string) {
	s.Staff.Replace([]models.StaffMember{
		{ID: "STAFF-000001", Name: "Dr. Nair", Email: "admin@college.edu", Password: passwordHash, Role: models.RoleAdmin, Phone: "+91 99887 70001"},
		{ID: "STAFF-000002", Name: "Mr. Rao", Email: "warden@college.edu", Password: passwordHash, Role: models.RoleWarden, Phone: "+91 99887 70002"},
		{ID: "STAFF-000003", Name: "Mrs. Devi", Email: "devi@college.edu", Password: passwordHash, Role: models.RoleJointWarden, Phone: "+91 99887 70003", Hostel: "Block A"},
		{ID: "STAFF-000004", Name: "Mr. Iqbal", Email: "iqbal@college.edu", Password: passwordHash, Role: models.RoleJointWarden, Phone: "+91 99887 70004", Hostel: "Block B"},
	})
}

func seedStudents(s *store.Store, passwordHash string) {
	students := []models.Student{
		{ID: "STU-000001", SIN: "SIN2301", Name: "Ananya Sharma", Email: "ananya.sharma@college.edu", DOB: "2004-08-17", Gender: models.GenderFemale, Course: "B.Tech CSE", Year: 2, Hostel: "Block A", RoomNumber: "A-101", FeeStatus: models.FeePaid, Attendance: 96, Phone: "+91 98765 43210", EmergencyContact: "+91 98765 00001", GuardianName: "Rakesh Sharma", GuardianPhone: "+91 98765 00001", Address: "12 MG Road, Pune",
			PaymentHistory: []models.Payment{{ID: "PAY-000001", Amount: 45000, Date: "2024-06-01", Mode: "UPI"}}},
		{ID: "STU-000002", SIN: "SIN2302", Name: "Priya Menon", Email: "priya.menon@college.edu", DOB: "2004-11-02", Gender: models.GenderFemale, Course: "B.Tech ECE", Year: 2, Hostel: "Block A", RoomNumber: "A-101", FeeStatus: models.FeePending, Attendance: 88, Phone: "+91 98765 43211", EmergencyContact: "+91 98765 00002", GuardianName: "Suresh Menon", GuardianPhone: "+91 98765 00002", Address: "4 Beach Road, Kochi"},
		{ID: "STU-000003", SIN: "SIN2303", Name: "Riya Verma", Email: "riya.verma@college.edu", DOB: "2005-01-23", Gender: models.GenderFemale, Course: "B.Sc Physics", Year: 1, Hostel: "Block A", RoomNumber: "A-102", FeeStatus: models.FeeOverdue, Attendance: 72, Phone: "+91 98765 43212", EmergencyContact: "+91 98765 00003", GuardianName: "Anil Verma", GuardianPhone: "+91 98765 00003", Address: "88 Civil Lines, Nagpur"},
		{ID: "STU-000004", SIN: "SIN2304", Name: "Arjun Singh", Email: "arjun.singh@college.edu", DOB: "2003-05-30", Gender: models.GenderMale, Course: "B.Tech ME", Year: 3, Hostel: "Block A", RoomNumber: "A-201", FeeStatus: models.FeePaid, Attendance: 91, Phone: "+91 98765 43213", EmergencyContact: "+91 98765 00004", GuardianName: "Vikram Singh", GuardianPhone: "+91 98765 00004", Address: "2 Fort Road, Jaipur",
			PaymentHistory: []models.Payment{{ID: "PAY-000002", Amount: 60000, Date: "2024-05-28", Mode: "Bank Transfer"}}},
		{ID: "STU-000005", SIN: "SIN2305", Name: "Karthik Iyer", Email: "karthik.iyer@college.edu", DOB: "2004-03-11", Gender: models.GenderMale, Course: "B.Com", Year: 2, Hostel: "Block B", RoomNumber: "B-101", FeeStatus: models.FeePending, Attendance: 84, Phone: "+91 98765 43214", EmergencyContact: "+91 98765 00005", GuardianName: "Raman Iyer", GuardianPhone: "+91 98765 00005", Address: "7 Temple Street, Chennai"},
		{ID: "STU-000006", SIN: "SIN2306", Name: "Dev Patel", Email: "dev.patel@college.edu", DOB: "2004-09-09", Gender: models.GenderMale, Course: "B.Tech CSE", Year: 2, Hostel: "Block B", RoomNumber: "B-101", FeeStatus: models.FeePaid, Attendance: 79, Phone: "+91 98765 43215", EmergencyContact: "+91 98765 00006", GuardianName: "Nilesh Patel", GuardianPhone: "+91 98765 00006", Address: "21 Ring Road, Surat"},
	}
	for i := range students {
		students[i].Password = passwordHash
	}
	s.Students.Replace(students)
}

func seedAssignments(s *store.Store) {
	s.Assignments.Replace([]models.MentorAssignment{
		{ID: "MENT-000001", StaffID: "STAFF-000003", StudentSINs: []string{"SIN2301", "SIN2302", "SIN2303", "SIN2304"}, RoomNumbers: []string{"A-101", "A-102", "A-201"}},
		{ID: "MENT-000002", StaffID: "STAFF-000004", StudentSINs: []string{"SIN2305", "SIN2306"}, RoomNumbers: []string{"B-101", "B-102", "B-201"}},
	})
}

func seedComplaints(s *store.Store) {
	s.Complaints.Replace([]models.Complaint{
		{ID: "COMP-000001", StudentSIN: "SIN2301", StudentName: "Ananya Sharma", Title: "Ceiling fan not working", Description: "The fan in A-101 stopped working two days ago.", Category: models.ComplaintMaintenance, Priority: models.PriorityMedium, Status: models.ComplaintInProgress, SubmittedDate: "2024-06-01", AssignedTo: "Maintenance crew"},
		{ID: "COMP-000002", StudentSIN: "SIN2305", StudentName: "Karthik Iyer", Title: "Wi-Fi dead in B wing", Description: "No signal in B-101 since the weekend.", Category: models.ComplaintTechnical, Priority: models.PriorityHigh, Status: models.ComplaintPending, SubmittedDate: "2024-06-02"},
		{ID: "COMP-000003", StudentSIN: "SIN2303", StudentName: "Riya Verma", Title: "Corridor not cleaned", Description: "First floor corridor has not been swept this week.", Category: models.ComplaintCleanliness, Priority: models.PriorityLow, Status: models.ComplaintResolved, SubmittedDate: "2024-05-25", Resolution: "Cleaning roster updated, corridor cleaned on 2024-05-27."},
	})
}

func seedLeaves(s *store.Store) {
	submitted := time.Date(2024, 6, 2, 9, 30, 0, 0, time.UTC)
	reviewed := submitted.Add(26 * time.Hour)
	s.Leaves.Replace([]models.LeaveApplication{
		{ID: "LEAVE-000001", StudentSIN: "SIN2301", StudentName: "Ananya Sharma", Reason: "Sister's wedding", StartDate: "2024-06-15", EndDate: "2024-06-17", EmergencyContact: "+91 98765 00001", Address: "12 MG Road, Pune", Status: models.LeaveRecommended, SubmittedAt: submitted, ReviewedAt: &reviewed, ReviewedBy: "Mrs. Devi", JointWardenRemark: "Family function, dates verified"},
		{ID: "LEAVE-000002", StudentSIN: "SIN2306", StudentName: "Dev Patel", Reason: "Medical checkup at home", StartDate: "2024-06-10", EndDate: "2024-06-11", EmergencyContact: "+91 98765 00006", Address: "21 Ring Road, Surat", Status: models.LeavePending, SubmittedAt: submitted.Add(3 * time.Hour)},
	})
}

func seedNotifications(s *store.Store) {
	now := time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC)
	s.Notifications.Replace([]models.Notification{
		{ID: "NOTIF-000001", Title: "Water supply maintenance", Message: "Water supply will be off in Block A on Saturday 10:00-13:00.", Type: models.NotifyMaintenance, Priority: "High", Timestamp: now, TargetRoles: []string{models.TargetAllRoles}},
		{ID: "NOTIF-000002", Title: "Fee deadline approaching", Message: "Hostel fees for the June term are due by 2024-06-10.", Type: models.NotifyFee, Priority: "Medium", Timestamp: now.Add(time.Hour), TargetRoles: []string{string(models.RoleStudent)}},
		{ID: "NOTIF-000003", Title: "Inspection round", Message: "Room inspection scheduled for Monday morning.", Type: models.NotifyGeneral, Priority: "Low", Timestamp: now.Add(2 * time.Hour), TargetRoles: []string{string(models.RoleJointWarden), string(models.RoleWarden)}},
	})
}

func seedRecords(s *store.Store) {
	s.HealthRecords.Replace([]models.HealthRecord{
		{ID: "HLTH-000001", StudentSIN: "SIN2301", BloodGroup: "B+", Allergies: "Dust", LastCheckup: "2024-03-10"},
		{ID: "HLTH-000002", StudentSIN: "SIN2304", BloodGroup: "O+", Conditions: "Asthma", LastCheckup: "2024-04-22", DoctorRemarks: "Carries inhaler"},
	})
	s.FoodFeedback.Replace([]models.FoodFeedback{
		{ID: "FOOD-000001", StudentSIN: "SIN2302", Meal: "Lunch", Rating: 4, Comments: "Good variety this week", Date: "2024-06-01", CreatedAt: time.Date(2024, 6, 1, 13, 15, 0, 0, time.UTC)},
		{ID: "FOOD-000002", StudentSIN: "SIN2305", Meal: "Dinner", Rating: 2, Comments: "Rice was undercooked", Date: "2024-06-01", CreatedAt: time.Date(2024, 6, 1, 20, 40, 0, 0, time.UTC)},
	})
}

func seedAttendance(s *store.Store) {
	s.Attendance.Replace([]models.AttendanceSheet{
		{Date: "2024-06-01", Entries: map[string]bool{
			"SIN2301": true, "SIN2302": true, "SIN2303": false,
			"SIN2304": true, "SIN2305": true, "SIN2306": true,
		}},
	})
}
