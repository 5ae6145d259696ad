// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package compose

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"

	"github.com/go-pdf/fpdf"
)

// A4 page dimensions in millimetres, portrait.
const (
	a4Width  = 210.0
	a4Height = 297.0
	pdfInset = 10.0
)

// RenderPDF rasterizes the document and wraps it into a single-page A4
// PDF, scaled proportionally to fit. Orientation follows the composed
// page's aspect ratio: wider-than-tall renders landscape.
func (d *Document) RenderPDF(ctx context.Context, loader ImageLoader) ([]byte, error) {
	img, err := d.render(ctx, loader)
	if err != nil {
		return nil, err
	}

	var jpg bytes.Buffer
	if err := jpeg.Encode(&jpg, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encode export jpeg: %w", err)
	}

	bounds := img.Bounds()
	pageW, pageH := a4Width, a4Height
	orientation := "P"
	if bounds.Dx() > bounds.Dy() {
		orientation = "L"
		pageW, pageH = a4Height, a4Width
	}

	pdf := fpdf.New(orientation, "mm", "A4", "")
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "JPG"}
	pdf.RegisterImageOptionsReader("export", opts, &jpg)

	// Proportional fit inside the page inset.
	availW := pageW - 2*pdfInset
	availH := pageH - 2*pdfInset
	ratio := float64(bounds.Dy()) / float64(bounds.Dx())
	w := availW
	h := w * ratio
	if h > availH {
		h = availH
		w = h / ratio
	}
	x := (pageW - w) / 2
	y := (pageH - h) / 2
	pdf.ImageOptions("export", x, y, w, h, false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("write export pdf: %w", err)
	}
	return out.Bytes(), nil
}
