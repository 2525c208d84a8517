package models

// Slot is a derived candidate booking interval with computed availability.
// Slots are never persisted; they are recomputed on every availability query.
type Slot struct {
	StartTime   string `json:"startTime"` // "HH:MM"
	EndTime     string `json:"endTime"`   // "HH:MM"
	IsAvailable bool   `json:"isAvailable"`
}

// DayAvailability is the answer to "what can a patient book with this doctor
// on this date". WorkingHours is nil on non-working days.
type DayAvailability struct {
	IsWorkingDay bool          `json:"isWorkingDay"`
	WorkingHours *WorkingHours `json:"workingHours,omitempty"`
	Slots        []Slot        `json:"slots"`
}
