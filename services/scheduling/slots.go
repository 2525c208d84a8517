package scheduling

// DefaultSlotGranularityMinutes is the slot length the availability calendar
// uses when answering patient-facing queries.
const DefaultSlotGranularityMinutes = 30

// GenerateSlots cuts a working window into consecutive candidate intervals of
// the given granularity. A final partial slot that would extend past the
// window's end is dropped, not truncated. Pure function: identical inputs
// yield an identical sequence.
func GenerateSlots(window Interval, granularityMinutes int) []Interval {
	if granularityMinutes <= 0 {
		return nil
	}

	var slots []Interval
	for cursor := window.Start; !window.End.Before(cursor.Add(granularityMinutes)); cursor = cursor.Add(granularityMinutes) {
		slots = append(slots, Interval{Start: cursor, End: cursor.Add(granularityMinutes)})
	}
	return slots
}
