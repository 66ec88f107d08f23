package common

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/tutorgram/enquiry_bot/internal/flow"
)

// Константы размеров и отступов
const (
	imageWidth     = 520
	stepHeight     = 84
	paddingTop     = 70
	paddingBottom  = 30
	dotRadius      = 11.0
	dotCenterX     = 70.0
	lineWidth      = 4.0
	labelOffsetX   = 36.0
	titleFontScale = 2.0
	labelFontScale = 1.6
	noteFontScale  = 1.2
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	titleColor     = color.RGBA{40, 44, 48, 255}
	completedColor = color.RGBA{22, 163, 74, 255} // зелёный
	activeColor    = color.RGBA{37, 99, 235, 255} // синий
	upcomingColor  = color.RGBA{203, 213, 225, 255}
	lineDoneColor  = color.RGBA{22, 163, 74, 200}
	lineRestColor  = color.RGBA{203, 213, 225, 255}
	labelColor     = color.RGBA{55, 65, 81, 255}
	mutedColor     = color.RGBA{148, 163, 184, 255}
)

// RenderTimelineImage рисует вертикальный таймлайн статусов заявки
// и возвращает PNG. Используется штатный растровый шрифт, поэтому
// изображение не зависит от внешних ассетов.
func RenderTimelineImage(enquiryID int64, steps []flow.Step) ([]byte, error) {
	height := paddingTop + stepHeight*len(steps) + paddingBottom
	dc := gg.NewContext(imageWidth, height)

	dc.SetColor(bgColor)
	dc.Clear()

	face := basicfont.Face7x13
	dc.SetFontFace(face)

	// Заголовок
	dc.SetColor(titleColor)
	drawScaledText(dc, fmt.Sprintf("Enquiry Status #%d", enquiryID), 30, 40, titleFontScale)

	for i, step := range steps {
		centerY := float64(paddingTop + i*stepHeight + stepHeight/2)

		// Соединительная линия к следующему шагу
		if i != len(steps)-1 {
			lineColor := lineRestColor
			if step.State == flow.StepCompleted {
				lineColor = lineDoneColor
			}
			dc.SetColor(lineColor)
			dc.SetLineWidth(lineWidth)
			dc.DrawLine(dotCenterX, centerY+dotRadius, dotCenterX, centerY+stepHeight-dotRadius)
			dc.Stroke()
		}

		dotColor := upcomingColor
		switch step.State {
		case flow.StepCompleted:
			dotColor = completedColor
		case flow.StepActive:
			dotColor = activeColor
		}
		dc.SetColor(dotColor)
		dc.DrawCircle(dotCenterX, centerY, dotRadius)
		dc.Fill()

		// Активный шаг получает кольцо вокруг точки
		if step.State == flow.StepActive {
			dc.SetColor(activeColor)
			dc.SetLineWidth(2)
			dc.DrawCircle(dotCenterX, centerY, dotRadius+5)
			dc.Stroke()
		}

		textColor := mutedColor
		if step.State == flow.StepCompleted || step.State == flow.StepActive {
			textColor = labelColor
		}
		dc.SetColor(textColor)
		drawScaledText(dc, step.Label, dotCenterX+labelOffsetX, centerY-4, labelFontScale)

		note := ""
		switch step.State {
		case flow.StepActive:
			note = "Current status"
		case flow.StepCompleted:
			note = "Completed"
		}
		if note != "" {
			dc.SetColor(mutedColor)
			drawScaledText(dc, note, dotCenterX+labelOffsetX, centerY+16, noteFontScale)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode timeline png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawScaledText растровый шрифт один, нужные размеры получаем
// масштабированием контекста
func drawScaledText(dc *gg.Context, text string, x, y, scale float64) {
	dc.Push()
	dc.ScaleAbout(scale, scale, x, y)
	dc.DrawString(text, x, y)
	dc.Pop()
}
