package renderer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/logger"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	cardWidth  = 1200
	cardHeight = 1600
	cardMargin = 60.0
)

// CardRenderer draws the briefing as a PNG card, the visual artifact
// attached to dispatched briefings.
type CardRenderer struct {
	outputDir string
	fontPath  string
	log       *logger.Logger
}

// NewCardRenderer creates a PNG card renderer. fontPath may be empty,
// in which case a built-in bitmap face is used.
func NewCardRenderer(outputDir, fontPath string, log *logger.Logger) (*CardRenderer, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &CardRenderer{outputDir: outputDir, fontPath: fontPath, log: log}, nil
}

// Render draws the document onto a card and writes it as PNG.
func (r *CardRenderer) Render(ctx context.Context, doc *entity.BriefingDocument, security *entity.EnrichedSecurity) (string, error) {
	dc := gg.NewContext(cardWidth, cardHeight)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	headerFace := r.face(42)
	bodyFace := r.face(24)

	y := cardMargin + 40

	// Title
	dc.SetRGB(0.1, 0.1, 0.2)
	dc.SetFontFace(headerFace)
	dc.DrawStringWrapped(doc.Title, cardMargin, y, 0, 0, cardWidth-2*cardMargin, 1.4, gg.AlignLeft)
	y += 140

	// Price block, colored by direction.
	if security.ChangePercent >= 0 {
		dc.SetRGB(0.0, 0.55, 0.25)
	} else {
		dc.SetRGB(0.8, 0.15, 0.15)
	}
	priceLine := fmt.Sprintf("%s  $%.2f  (%+.2f%%)  Vol %d", security.Symbol, security.Price, security.ChangePercent, security.Volume)
	dc.DrawString(priceLine, cardMargin, y)
	y += 80

	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetFontFace(bodyFace)
	dc.DrawStringWrapped(doc.Summary, cardMargin, y, 0, 0, cardWidth-2*cardMargin, 1.5, gg.AlignLeft)
	y += 180

	for _, section := range doc.Sections {
		if y > cardHeight-200 {
			break
		}
		dc.SetRGB(0.1, 0.1, 0.2)
		dc.DrawString(section.Heading, cardMargin, y)
		y += 50
		dc.SetRGB(0.25, 0.25, 0.25)
		dc.DrawStringWrapped(section.Body, cardMargin, y, 0, 0, cardWidth-2*cardMargin, 1.5, gg.AlignLeft)
		y += 280
	}

	dc.SetRGB(0.55, 0.55, 0.55)
	dc.DrawString(doc.GeneratedAt.Format("2006-01-02 15:04"), cardMargin, cardHeight-cardMargin)

	filename := fmt.Sprintf("briefing_%s_%s.png", security.Symbol, doc.GeneratedAt.Format("20060102_150405"))
	path := filepath.Join(r.outputDir, filename)
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("failed to save briefing card: %w", err)
	}

	r.log.InfoContext(ctx, "Briefing card rendered", logger.StringField("path", path))
	return path, nil
}

func (r *CardRenderer) face(points float64) font.Face {
	if r.fontPath != "" {
		if face, err := gg.LoadFontFace(r.fontPath, points); err == nil {
			return face
		}
		r.log.Warn("Failed to load font face, using built-in font", logger.StringField("path", r.fontPath))
	}
	return basicfont.Face7x13
}
