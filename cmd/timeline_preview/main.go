package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tutorgram/enquiry_bot/internal/controller/callbacks/common"
	"github.com/tutorgram/enquiry_bot/internal/flow"
	"github.com/tutorgram/enquiry_bot/internal/model"
)

// Утилита для визуальной проверки картинки таймлайна без запуска бота
func main() {
	status := flag.String("status", string(model.StatusDemoRequested), "enquiry status to render")
	out := flag.String("out", "timeline.png", "output file")
	flag.Parse()

	steps := flow.Timeline(model.EnquiryStatus(*status))

	png, err := common.RenderTimelineImage(42, steps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render timeline: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, png, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *out, err)
		os.Exit(1)
	}

	fmt.Printf("Timeline image saved to %s\n", *out)
}
