package models

// RoomType distinguishes air-conditioned rooms
type RoomType string

const (
	RoomAC    RoomType = "AC"
	RoomNonAC RoomType = "Non-AC"
)

// Cleanliness grades recorded by wardens on inspection rounds
type Cleanliness string

const (
	CleanlinessClean          Cleanliness = "Clean"
	CleanlinessNeedsAttention Cleanliness = "Needs Attention"
	CleanlinessDirty          Cleanliness = "Dirty"
)

// RoomInventory counts the furniture issued to a room
type RoomInventory struct {
	Cots      int `json:"cots" example:"2"`
	Tables    int `json:"tables" example:"2"`
	Chairs    int `json:"chairs" example:"2"`
	Wardrobes int `json:"wardrobes" example:"2"`
	Fans      int `json:"fans" example:"1"`
}

// Room defines a hostel room. RoomNumber is unique across all blocks.
// Occupants holds the SINs of current residents; len(Occupants) must stay
// within Capacity (enforced on assignment).
type Room struct {
	ID          string        `json:"id"`
	RoomNumber  string        `json:"roomNumber" example:"A-101"`
	Hostel      string        `json:"hostel" example:"Block A"`
	Capacity    int           `json:"capacity" example:"2"`
	Occupants   []string      `json:"occupants"`
	Type        RoomType      `json:"type" example:"Non-AC"`
	Cleanliness Cleanliness   `json:"cleanliness" example:"Clean"`
	Inventory   RoomInventory `json:"inventory"`
}

// EntityID implements store.Entity
func (r Room) EntityID() string { return r.ID }

// HasVacancy reports whether another occupant fits
func (r Room) HasVacancy() bool { return len(r.Occupants) < r.Capacity }
