package validation

// Slot окно доступности репетитора внутри секции дня
type Slot struct {
	Section string // morning, afternoon, evening, night
	Start   string // HH:MM
	End     string // HH:MM
}

// Overlaps пересечение двух окон: start1 < end2 AND start2 < end1.
// Симметрична и истинна для непустого окна с самим собой.
func Overlaps(a, b Slot) bool {
	return timeBefore(a.Start, b.End) && timeBefore(b.Start, a.End)
}

// ValidateSlots хотя бы один слот, каждый валиден, внутри одной
// секции слоты не пересекаются
func ValidateSlots(slots []Slot) string {
	if len(slots) == 0 {
		return "At least one availability slot is required"
	}
	for _, s := range slots {
		if msg := ValidateTimeRange(s.Start, s.End); msg != "" {
			return msg
		}
	}
	for i := range slots {
		for j := i + 1; j < len(slots); j++ {
			if slots[i].Section != slots[j].Section {
				continue
			}
			if Overlaps(slots[i], slots[j]) {
				return "Availability slots in the same section must not overlap"
			}
		}
	}
	return ""
}
