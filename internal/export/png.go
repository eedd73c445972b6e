package export

import (
	"fmt"
	"image"
	"io"
	"regexp"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"screenforge/internal/scene"
)

// Phone screen size in points; elements are drawn 1:1.
const (
	ScreenWidth  = 375
	ScreenHeight = 812
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

var (
	fontOnce sync.Once
	monoFont *truetype.Font
	fontErr  error
)

func face(size int) (font.Face, error) {
	fontOnce.Do(func() {
		monoFont, fontErr = truetype.Parse(gomono.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("failed to parse font: %v", fontErr)
	}
	if size <= 0 {
		size = 14
	}
	return truetype.NewFace(monoFont, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Mockup renders elements onto a phone-sized image, approximating how the
// generated screen looks.
func Mockup(elements []scene.Element) (image.Image, error) {
	dc := gg.NewContext(ScreenWidth, ScreenHeight)
	dc.SetHexColor("#f5f5f5")
	dc.Clear()

	for _, el := range elements {
		if err := drawElement(dc, el); err != nil {
			return nil, err
		}
	}
	return dc.Image(), nil
}

// RenderPNG renders elements and writes the image to path.
func RenderPNG(elements []scene.Element, path string) error {
	img, err := Mockup(elements)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}

// EncodePNG renders elements and streams the PNG to w.
func EncodePNG(elements []scene.Element, w io.Writer) error {
	img, err := Mockup(elements)
	if err != nil {
		return err
	}
	dc := gg.NewContextForImage(img)
	return dc.EncodePNG(w)
}

func drawElement(dc *gg.Context, el scene.Element) error {
	s := el.Style
	x, y := float64(s.X), float64(s.Y)
	w, h := float64(s.Width), float64(s.Height)
	radius := float64(intOr(s.BorderRadius, 0))

	fillRect := func(color string) {
		if setColor(dc, color) {
			dc.DrawRoundedRectangle(x, y, w, h, radius)
			dc.Fill()
		}
	}
	strokeRect := func(width int, color string) {
		if width > 0 && setColor(dc, color) {
			dc.SetLineWidth(float64(width))
			dc.DrawRoundedRectangle(x, y, w, h, radius)
			dc.Stroke()
		}
	}

	switch el.Kind {
	case scene.Button:
		fillRect(strOr(s.BackgroundColor, "#6366f1"))
		return drawLabel(dc, el.ContentOr("Button"), strOr(s.Color, "#ffffff"), intOr(s.FontSize, 16), x+w/2, y+h/2, 0.5)
	case scene.Text:
		fillRect(strOr(s.BackgroundColor, ""))
		return drawLabel(dc, el.ContentOr("Text"), strOr(s.Color, "#1a1a1a"), intOr(s.FontSize, 18), x, y+h/2, 0)
	case scene.Image:
		fillRect(strOr(s.BackgroundColor, "#e0e0e0"))
		return drawLabel(dc, "Image", "#888888", 14, x+w/2, y+h/2, 0.5)
	case scene.Input:
		fillRect(strOr(s.BackgroundColor, "#ffffff"))
		strokeRect(intOr(s.BorderWidth, 1), strOr(s.BorderColor, "#d1d5db"))
		pad := float64(intOr(s.Padding, 12))
		return drawLabel(dc, el.ContentOr("Enter text..."), "#9ca3af", intOr(s.FontSize, 16), x+pad, y+h/2, 0)
	case scene.Card:
		if setColor(dc, "#e5e7eb") {
			dc.DrawRoundedRectangle(x, y+4, w, h, radius)
			dc.Fill()
		}
		fillRect(strOr(s.BackgroundColor, "#ffffff"))
		strokeRect(intOr(s.BorderWidth, 0), strOr(s.BorderColor, "#d1d5db"))
		pad := float64(intOr(s.Padding, 16))
		if err := drawLabel(dc, el.ContentOr("Card Title"), "#1a1a1a", 16, x+pad, y+pad+8, 0); err != nil {
			return err
		}
		return drawLabel(dc, "Card content goes here...", "#6b7280", 14, x+pad, y+pad+32, 0)
	case scene.Icon:
		fillRect(strOr(s.BackgroundColor, ""))
		return drawLabel(dc, el.ContentOr("⭐"), strOr(s.Color, "#6366f1"), intOr(s.FontSize, 32), x+w/2, y+h/2, 0.5)
	case scene.Container:
		fillRect(strOr(s.BackgroundColor, "#f3f4f6"))
		strokeRect(intOr(s.BorderWidth, 0), strOr(s.BorderColor, "#e5e7eb"))
	case scene.Switch:
		on := s.IsOn == nil || *s.IsOn
		track := "#d1d5db"
		if on {
			track = strOr(s.BackgroundColor, "#6366f1")
		}
		fillRect(track)
		thumbR := h/2 - 3
		cx := x + h/2
		if on {
			cx = x + w - h/2
		}
		if thumbR > 0 && setColor(dc, "#ffffff") {
			dc.DrawCircle(cx, y+h/2, thumbR)
			dc.Fill()
		}
	}
	return nil
}

func drawLabel(dc *gg.Context, text, color string, size int, x, y, ax float64) error {
	if text == "" || !setColor(dc, color) {
		return nil
	}
	f, err := face(size)
	if err != nil {
		return err
	}
	dc.SetFontFace(f)
	dc.DrawStringAnchored(text, x, y, ax, 0.5)
	return nil
}

// setColor applies a hex colour and reports whether it could. Keywords such
// as "transparent" are skipped.
func setColor(dc *gg.Context, color string) bool {
	if !hexColor.MatchString(color) {
		return false
	}
	dc.SetHexColor(color)
	return true
}

func strOr(p *string, fallback string) string {
	if p == nil || *p == "" {
		return fallback
	}
	return *p
}

func intOr(p *int, fallback int) int {
	if p == nil || *p == 0 {
		return fallback
	}
	return *p
}
