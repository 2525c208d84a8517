package scheduling

import "testing"

func mustInterval(t *testing.T, start, end string) Interval {
	t.Helper()
	iv, err := ParseInterval(start, end)
	if err != nil {
		t.Fatalf("ParseInterval(%s, %s): %v", start, end, err)
	}
	return iv
}

func TestGenerateSlotsStandardDay(t *testing.T) {
	window := mustInterval(t, "09:00", "17:00")
	slots := GenerateSlots(window, 30)

	if len(slots) != 16 {
		t.Fatalf("got %d slots, want 16", len(slots))
	}
	if slots[0].Start.String() != "09:00" || slots[0].End.String() != "09:30" {
		t.Errorf("first slot = %v-%v, want 09:00-09:30", slots[0].Start, slots[0].End)
	}
	if last := slots[len(slots)-1]; last.Start.String() != "16:30" || last.End.String() != "17:00" {
		t.Errorf("last slot = %v-%v, want 16:30-17:00", last.Start, last.End)
	}

	// Slots are consecutive with no gaps and no overlaps.
	for i := 1; i < len(slots); i++ {
		if slots[i].Start != slots[i-1].End {
			t.Errorf("slot %d starts at %v, previous ends at %v", i, slots[i].Start, slots[i-1].End)
		}
	}
}

func TestGenerateSlotsDropsPartialFinalSlot(t *testing.T) {
	// 09:00-10:15 fits two 30-minute slots; the trailing 15 minutes are
	// dropped, never truncated into a short slot.
	window := mustInterval(t, "09:00", "10:15")
	slots := GenerateSlots(window, 30)

	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}
	if last := slots[len(slots)-1]; last.End.String() != "10:00" {
		t.Errorf("last slot ends at %v, want 10:00", last.End)
	}
}

func TestGenerateSlotsWindowShorterThanGranularity(t *testing.T) {
	window := mustInterval(t, "09:00", "09:20")
	if slots := GenerateSlots(window, 30); len(slots) != 0 {
		t.Errorf("got %d slots, want 0", len(slots))
	}
}

func TestGenerateSlotsExactFit(t *testing.T) {
	window := mustInterval(t, "09:00", "09:30")
	slots := GenerateSlots(window, 30)
	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(slots))
	}
}

func TestGenerateSlotsInvalidGranularity(t *testing.T) {
	window := mustInterval(t, "09:00", "17:00")
	if slots := GenerateSlots(window, 0); slots != nil {
		t.Errorf("granularity 0: got %v, want nil", slots)
	}
	if slots := GenerateSlots(window, -15); slots != nil {
		t.Errorf("negative granularity: got %v, want nil", slots)
	}
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	window := mustInterval(t, "08:00", "12:00")
	first := GenerateSlots(window, 30)
	second := GenerateSlots(window, 30)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("slot %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}
