package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adith/hostelcore/internal/app/models"
	"github.com/adith/hostelcore/internal/app/queries"
	"github.com/adith/hostelcore/internal/pkg/apperrors"
	"github.com/adith/hostelcore/internal/store"
)

func studentFixture(t *testing.T) (*StudentService, *store.Store) {
	t.Helper()
	s := store.New()
	s.Rooms.Replace([]models.Room{
		{ID: "ROOM-1", RoomNumber: "A-101", Hostel: "Block A", Capacity: 2},
		{ID: "ROOM-2", RoomNumber: "B-101", Hostel: "Block B", Capacity: 1, Occupants: []string{"SIN2305"}},
	})
	s.Students.Replace([]models.Student{
		{ID: "STU-1", SIN: "SIN2305", Name: "Karthik Iyer", Email: "karthik@college.edu", RoomNumber: "B-101", Attendance: 100},
	})
	return NewStudentService(s, queries.New(s)), s
}

func registerInput() RegisterInput {
	return RegisterInput{
		Name:       "Ananya Sharma",
		Email:      "ananya@college.edu",
		Password:   "secret-pass",
		DOB:        "2004-08-17",
		Gender:     models.GenderFemale,
		Course:     "B.Tech CSE",
		Year:       2,
		RoomNumber: "A-101",
		Phone:      "+91 98765 43210",
	}
}

func TestStudentRegister(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		svc, st := studentFixture(t)

		got, err := svc.Register(registerInput())
		require.NoError(t, err)

		assert.Equal(t, models.FeePending, got.FeeStatus)
		assert.Equal(t, 100, got.Attendance)
		assert.Empty(t, got.PaymentHistory)
		assert.True(t, ValidSIN(got.SIN))
		assert.Equal(t, "Block A", got.Hostel)

		// Password stored hashed, never plaintext
		assert.NotEqual(t, "secret-pass", got.Password)

		room, _ := st.Rooms.Find("ROOM-1")
		assert.Contains(t, room.Occupants, got.SIN)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		svc, _ := studentFixture(t)

		_, err := svc.Register(registerInput())
		require.NoError(t, err)

		in := registerInput()
		_, err = svc.Register(in)
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})

	t.Run("generated SINs are unique", func(t *testing.T) {
		svc, _ := studentFixture(t)

		first, err := svc.Register(registerInput())
		require.NoError(t, err)

		in := registerInput()
		in.Email = "second@college.edu"
		second, err := svc.Register(in)
		require.NoError(t, err)

		assert.NotEqual(t, first.SIN, second.SIN)
	})

	t.Run("full room rejected", func(t *testing.T) {
		svc, _ := studentFixture(t)

		in := registerInput()
		in.RoomNumber = "B-101"
		_, err := svc.Register(in)
		assert.ErrorIs(t, err, apperrors.ErrRoomFull)
	})

	t.Run("unknown room rejected", func(t *testing.T) {
		svc, _ := studentFixture(t)

		in := registerInput()
		in.RoomNumber = "Z-999"
		_, err := svc.Register(in)
		assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
	})

	t.Run("invalid fields rejected", func(t *testing.T) {
		svc, _ := studentFixture(t)

		for name, mutate := range map[string]func(*RegisterInput){
			"blank name":     func(in *RegisterInput) { in.Name = " " },
			"short password": func(in *RegisterInput) { in.Password = "short" },
			"bad year":       func(in *RegisterInput) { in.Year = 5 },
			"bad gender":     func(in *RegisterInput) { in.Gender = "Other" },
		} {
			in := registerInput()
			mutate(&in)
			_, err := svc.Register(in)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed, name)
		}
	})
}

func TestRecordPayment(t *testing.T) {
	svc, _ := studentFixture(t)

	t.Run("appends history and marks paid", func(t *testing.T) {
		got, err := svc.RecordPayment("SIN2305", 45000, "UPI")
		require.NoError(t, err)

		assert.Equal(t, models.FeePaid, got.FeeStatus)
		require.Len(t, got.PaymentHistory, 1)
		assert.Equal(t, float64(45000), got.PaymentHistory[0].Amount)
		assert.Equal(t, "UPI", got.PaymentHistory[0].Mode)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		_, err := svc.RecordPayment("SIN2305", 0, "UPI")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("unknown student", func(t *testing.T) {
		_, err := svc.RecordPayment("SIN9999", 1000, "UPI")
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})
}

func TestMarkAttendance(t *testing.T) {
	t.Run("recomputes percentage across sheets", func(t *testing.T) {
		svc, _ := studentFixture(t)

		require.NoError(t, svc.MarkAttendance("2024-06-01", map[string]bool{"SIN2305": true}))
		require.NoError(t, svc.MarkAttendance("2024-06-02", map[string]bool{"SIN2305": false}))

		got := svc.queries.StudentBySIN("SIN2305")
		require.NotNil(t, got)
		assert.Equal(t, 50, got.Attendance)
	})

	t.Run("re-marking a date replaces the sheet", func(t *testing.T) {
		svc, st := studentFixture(t)

		require.NoError(t, svc.MarkAttendance("2024-06-01", map[string]bool{"SIN2305": false}))
		require.NoError(t, svc.MarkAttendance("2024-06-01", map[string]bool{"SIN2305": true}))

		assert.Equal(t, 1, st.Attendance.Len())
		got := svc.queries.StudentBySIN("SIN2305")
		assert.Equal(t, 100, got.Attendance)
	})

	t.Run("replacement sheet refreshes dropped students", func(t *testing.T) {
		svc, st := studentFixture(t)
		st.Students.Add(models.Student{ID: "STU-2", SIN: "SIN2306", Name: "Meera Pillai", Email: "meera@college.edu", RoomNumber: "A-101", Attendance: 100})

		require.NoError(t, svc.MarkAttendance("2024-06-01", map[string]bool{"SIN2305": false}))
		require.Equal(t, 0, svc.queries.StudentBySIN("SIN2305").Attendance)

		// The corrected sheet no longer covers SIN2305, so their
		// percentage reverts to the registration default.
		require.NoError(t, svc.MarkAttendance("2024-06-01", map[string]bool{"SIN2306": true}))

		assert.Equal(t, 100, svc.queries.StudentBySIN("SIN2305").Attendance)
		assert.Equal(t, 100, svc.queries.StudentBySIN("SIN2306").Attendance)
	})

	t.Run("dropped student recomputed from remaining sheets", func(t *testing.T) {
		svc, st := studentFixture(t)
		st.Students.Add(models.Student{ID: "STU-2", SIN: "SIN2306", Name: "Meera Pillai", Email: "meera@college.edu", RoomNumber: "A-101", Attendance: 100})

		require.NoError(t, svc.MarkAttendance("2024-06-01", map[string]bool{"SIN2305": true}))
		require.NoError(t, svc.MarkAttendance("2024-06-02", map[string]bool{"SIN2305": false}))
		require.Equal(t, 50, svc.queries.StudentBySIN("SIN2305").Attendance)

		require.NoError(t, svc.MarkAttendance("2024-06-01", map[string]bool{"SIN2306": true}))

		// Only the 2024-06-02 absence covers SIN2305 now
		assert.Equal(t, 0, svc.queries.StudentBySIN("SIN2305").Attendance)
	})

	t.Run("unknown student in sheet rejected", func(t *testing.T) {
		svc, _ := studentFixture(t)

		err := svc.MarkAttendance("2024-06-01", map[string]bool{"SIN9999": true})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("bad date rejected", func(t *testing.T) {
		svc, _ := studentFixture(t)

		err := svc.MarkAttendance("June 1st", map[string]bool{"SIN2305": true})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := studentFixture(t)

	t.Run("empty fields keep current values", func(t *testing.T) {
		got, err := svc.UpdateProfile("SIN2305", UpdateProfileInput{Phone: "+91 11111 22222"})
		require.NoError(t, err)

		assert.Equal(t, "+91 11111 22222", got.Phone)
		assert.Equal(t, "Karthik Iyer", got.Name)
	})

	t.Run("unknown student", func(t *testing.T) {
		_, err := svc.UpdateProfile("SIN9999", UpdateProfileInput{Phone: "x"})
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})
}
