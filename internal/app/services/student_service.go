package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/adith/hostelcore/internal/app/models"
	"github.com/adith/hostelcore/internal/app/queries"
	"github.com/adith/hostelcore/internal/pkg/apperrors"
	"github.com/adith/hostelcore/internal/pkg/auth"
	"github.com/adith/hostelcore/internal/store"
)

var sinPattern = regexp.MustCompile(`^SIN\d+$`)

// StudentService handles registration and the per-student mutations:
// fee payments, attendance marking and profile edits.
type StudentService struct {
	store   *store.Store
	queries *queries.Queries
}

// NewStudentService creates a new student service
func NewStudentService(s *store.Store, q *queries.Queries) *StudentService {
	return &StudentService{store: s, queries: q}
}

// RegisterInput carries a new resident's details
type RegisterInput struct {
	Name             string
	Email            string
	Password         string
	DOB              string
	Gender           models.Gender
	Course           string
	Year             int
	RoomNumber       string
	Phone            string
	EmergencyContact string
	GuardianName     string
	GuardianPhone    string
	Address          string
}

// Register creates a student with a generated id and SIN. Defaults on
// registration: feeStatus Pending, attendance 100, empty payment
// history. Email must be unique; the target room must have a vacancy.
func (s *StudentService) Register(in RegisterInput) (*models.Student, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, apperrors.NewValidationError("email is required")
	}
	if len(in.Password) < 8 {
		return nil, apperrors.NewValidationError("password must be at least 8 characters")
	}
	if in.Year < 1 || in.Year > 4 {
		return nil, apperrors.NewValidationError("year must be between 1 and 4")
	}
	if in.Gender != models.GenderMale && in.Gender != models.GenderFemale {
		return nil, apperrors.NewValidationError("gender must be Male or Female")
	}
	if s.queries.StudentByEmail(in.Email) != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	room := s.queries.RoomByNumber(in.RoomNumber)
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}
	if !room.HasVacancy() {
		return nil, apperrors.ErrRoomFull
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	student := models.Student{
		ID:               s.store.NextID(store.PrefixStudent),
		SIN:              s.nextSIN(),
		Name:             strings.TrimSpace(in.Name),
		Email:            strings.TrimSpace(in.Email),
		Password:         hash,
		DOB:              in.DOB,
		Gender:           in.Gender,
		Course:           in.Course,
		Year:             in.Year,
		Hostel:           room.Hostel,
		RoomNumber:       room.RoomNumber,
		FeeStatus:        models.FeePending,
		Attendance:       100,
		Phone:            in.Phone,
		EmergencyContact: in.EmergencyContact,
		GuardianName:     in.GuardianName,
		GuardianPhone:    in.GuardianPhone,
		Address:          in.Address,
		PaymentHistory:   []models.Payment{},
	}
	s.store.Students.Add(student)
	s.store.Rooms.Update(room.ID, func(r *models.Room) {
		r.Occupants = append(r.Occupants, student.SIN)
	})
	return &student, nil
}

// nextSIN derives a SIN from the store's monotonic counter ("SIN-000042"
// -> "SIN2042"-style would hide the counter, so the raw form is kept).
func (s *StudentService) nextSIN() string {
	raw := s.store.NextID(store.PrefixSIN)
	// "SIN-000042" -> "SIN000042"
	return strings.Replace(raw, "-", "", 1)
}

// RecordPayment appends a payment to the student's history and marks
// fees paid.
func (s *StudentService) RecordPayment(sin string, amount float64, mode string) (*models.Student, error) {
	if amount <= 0 {
		return nil, apperrors.NewValidationError("payment amount must be positive")
	}
	student := s.queries.StudentBySIN(sin)
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	payment := models.Payment{
		ID:     s.store.NextID(store.PrefixPayment),
		Amount: amount,
		Date:   time.Now().Format(dateLayout),
		Mode:   mode,
	}
	s.store.Students.Update(student.ID, func(st *models.Student) {
		st.PaymentHistory = append(st.PaymentHistory, payment)
		st.FeeStatus = models.FeePaid
	})
	updated := s.queries.StudentBySIN(sin)
	return updated, nil
}

// MarkAttendance records one day's presence sheet and refreshes each
// listed student's attendance percentage from the full sheet history.
func (s *StudentService) MarkAttendance(date string, entries map[string]bool) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return apperrors.NewValidationError("date is required in YYYY-MM-DD format")
	}
	if len(entries) == 0 {
		return apperrors.NewValidationError("attendance entries are required")
	}
	for sin := range entries {
		if s.queries.StudentBySIN(sin) == nil {
			return apperrors.NewValidationError(fmt.Sprintf("unknown student %s in attendance sheet", sin))
		}
	}

	// Re-marking a date replaces the sheet, so students dropped from the
	// replacement still need their percentage refreshed.
	refresh := make(map[string]struct{}, len(entries))
	for sin := range entries {
		refresh[sin] = struct{}{}
	}

	if old, exists := s.store.Attendance.Find(date); exists {
		for sin := range old.Entries {
			refresh[sin] = struct{}{}
		}
		s.store.Attendance.Update(date, func(a *models.AttendanceSheet) {
			a.Entries = entries
		})
	} else {
		s.store.Attendance.Add(models.AttendanceSheet{Date: date, Entries: entries})
	}

	for sin := range refresh {
		s.refreshAttendance(sin)
	}
	return nil
}

// refreshAttendance recomputes a student's percentage over every sheet
// that includes them. A student no sheet covers reverts to the
// registration default of 100.
func (s *StudentService) refreshAttendance(sin string) {
	total, present := 0, 0
	for _, sheet := range s.store.Attendance.List() {
		if p, ok := sheet.Entries[sin]; ok {
			total++
			if p {
				present++
			}
		}
	}
	pct := 100
	if total > 0 {
		pct = (present * 100) / total
	}
	student := s.queries.StudentBySIN(sin)
	if student == nil {
		return
	}
	s.store.Students.Update(student.ID, func(st *models.Student) {
		st.Attendance = pct
	})
}

// UpdateProfileInput carries editable profile fields. Empty strings
// leave the current value unchanged.
type UpdateProfileInput struct {
	Phone            string
	EmergencyContact string
	GuardianName     string
	GuardianPhone    string
	Address          string
}

// UpdateProfile edits a student's contact fields
func (s *StudentService) UpdateProfile(sin string, in UpdateProfileInput) (*models.Student, error) {
	student := s.queries.StudentBySIN(sin)
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	s.store.Students.Update(student.ID, func(st *models.Student) {
		if in.Phone != "" {
			st.Phone = in.Phone
		}
		if in.EmergencyContact != "" {
			st.EmergencyContact = in.EmergencyContact
		}
		if in.GuardianName != "" {
			st.GuardianName = in.GuardianName
		}
		if in.GuardianPhone != "" {
			st.GuardianPhone = in.GuardianPhone
		}
		if in.Address != "" {
			st.Address = in.Address
		}
	})
	return s.queries.StudentBySIN(sin), nil
}

// ValidSIN reports whether a string matches the SIN<digits> format
func ValidSIN(sin string) bool {
	return sinPattern.MatchString(sin)
}
