package formatting

import (
	"fmt"
	"strings"

	"github.com/tutorgram/enquiry_bot/internal/flow"
)

// FormatTimeline текстовый таймлайн статусов заявки
func FormatTimeline(enquiryID int64, steps []flow.Step) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Enquiry Status #%d\n\n", enquiryID)

	for _, step := range steps {
		fmt.Fprintf(&b, "%s %s", GetStepMarker(step.State), step.Label)
		switch step.State {
		case flow.StepActive:
			b.WriteString(" — current status")
		case flow.StepCompleted:
			b.WriteString(" — completed")
		}
		b.WriteString("\n")
	}
	return b.String()
}
