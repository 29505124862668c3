package itinerary

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"
)

var markdownMarkers = regexp.MustCompile("[*_`>#]")

// cleanPlanText strips markdown markers the PDF font cannot render.
func cleanPlanText(text string) string {
	if text == "" {
		return ""
	}
	text = markdownMarkers.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "•", "-")
	return strings.TrimSpace(text)
}

// GeneratePDF renders a travel plan as a simple titled text document and
// returns the PDF bytes.
func GeneratePDF(title, content string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.MultiCell(0, 10, title, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	for _, line := range strings.Split(cleanPlanText(content), "\n") {
		pdf.MultiCell(0, 6, line, "", "L", false)
	}
	pdf.Ln(2)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
