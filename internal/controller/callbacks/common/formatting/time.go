package formatting

import (
	"fmt"
	"time"
)

// FormatDateTime форматирует дату и время
func FormatDateTime(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

// FormatDate форматирует только дату
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatTimeRange форматирует диапазон HH:MM строк
func FormatTimeRange(start, end string) string {
	return fmt.Sprintf("%s–%s", start, end)
}

// FormatSection подпись секции дня
func FormatSection(section string) string {
	labels := map[string]string{
		"morning":   "Morning",
		"afternoon": "Afternoon",
		"evening":   "Evening",
		"night":     "Night",
	}
	if label, ok := labels[section]; ok {
		return label
	}
	return section
}
