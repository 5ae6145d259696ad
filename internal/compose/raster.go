// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package compose

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"log/slog"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/vincent-petithory/dataurl"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	pageMargin  = 40
	lineHeight  = 20
	paraSpacing = 14
	qrSize      = 132
)

var (
	pageBackground = color.White
	textColor      = color.RGBA{R: 33, G: 33, B: 33, A: 255}
	tileFallback   = color.RGBA{R: 229, G: 229, B: 229, A: 255}
)

// textFace is the face used for paragraph text on rasterized exports.
var textFace = basicfont.Face7x13

// RenderJPEG rasterizes the document and returns it as a JPEG data URL
// (image/jpeg;base64,...), ready for the client's download mechanism.
func (d *Document) RenderJPEG(ctx context.Context, loader ImageLoader) (string, error) {
	img, err := d.render(ctx, loader)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return "", fmt.Errorf("encode export jpeg: %w", err)
	}
	return dataurl.New(buf.Bytes(), "image/jpeg").String(), nil
}

// render lays the document out onto a white canvas at CanvasWidth and
// supersamples it by RenderScale. Photo load failures render blank
// tiles; only drawing/encoding failures propagate.
func (d *Document) render(ctx context.Context, loader ImageLoader) (*image.RGBA, error) {
	contentWidth := CanvasWidth - 2*pageMargin
	cols := d.Layout.Columns
	if cols < 1 {
		cols = 1
	}
	tileW := TileWidth(cols)
	tileH := TileHeight(tileW)

	// First pass: wrap text and measure total height.
	type measuredBlock struct {
		block Block
		lines []string
		rows  int
	}
	measured := make([]measuredBlock, 0, len(d.Blocks))
	height := pageMargin
	for _, b := range d.Blocks {
		mb := measuredBlock{block: b}
		if b.Grid {
			mb.rows = gridRows(len(b.Images), cols)
			height += mb.rows * (tileH + TileGap)
		} else {
			mb.lines = wrapText(b.Text, contentWidth)
			height += len(mb.lines)*lineHeight + paraSpacing
		}
		measured = append(measured, mb)
	}
	if d.QRURL != "" {
		height += qrSize + pageMargin
	}
	height += pageMargin

	canvas := image.NewRGBA(image.Rect(0, 0, CanvasWidth, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(pageBackground), image.Point{}, draw.Src)

	y := pageMargin
	for _, mb := range measured {
		if mb.block.Grid {
			for i, im := range mb.block.Images {
				col := i % cols
				row := i / cols
				x := pageMargin + col*(tileW+TileGap)
				tileTop := y + row*(tileH+TileGap)
				d.drawTile(ctx, loader, canvas, im.URL, x, tileTop, tileW, tileH)
			}
			y += mb.rows * (tileH + TileGap)
			continue
		}

		for _, line := range mb.lines {
			drawLine(canvas, line, pageMargin, y+lineHeight-6)
			y += lineHeight
		}
		y += paraSpacing
	}

	if d.QRURL != "" {
		if err := drawQR(canvas, d.QRURL, CanvasWidth-pageMargin-qrSize, height-pageMargin-qrSize); err != nil {
			// The QR is a footer nicety; a generation failure does not
			// lose the export.
			slog.Warn("export qr code failed", "error", err)
		}
	}

	scaled := image.NewRGBA(image.Rect(0, 0, CanvasWidth*RenderScale, height*RenderScale))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)
	return scaled, nil
}

// drawTile fetches one photo and draws it aspect-fit and centered into
// its grid cell. A failed load or decode leaves a neutral placeholder —
// the export continues.
func (d *Document) drawTile(ctx context.Context, loader ImageLoader, canvas *image.RGBA, url string, x, y, w, h int) {
	cell := image.Rect(x, y, x+w, y+h)
	draw.Draw(canvas, cell, image.NewUniform(tileFallback), image.Point{}, draw.Src)

	if url == "" || loader == nil {
		return
	}
	src, err := loader.Load(ctx, url)
	if err != nil {
		slog.Warn("export image load failed, rendering blank tile", "url", url, "error", err)
		return
	}

	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return
	}
	scale := min(float64(w)/float64(sb.Dx()), float64(h)/float64(sb.Dy()))
	dw := int(float64(sb.Dx()) * scale)
	dh := int(float64(sb.Dy()) * scale)
	dx := x + (w-dw)/2
	dy := y + (h-dh)/2
	xdraw.CatmullRom.Scale(canvas, image.Rect(dx, dy, dx+dw, dy+dh), src, sb, xdraw.Over, nil)
}

// drawLine renders one already-wrapped text line at the given baseline.
func drawLine(canvas *image.RGBA, line string, x, baseline int) {
	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(textColor),
		Face: textFace,
		Dot:  fixed.P(x, baseline),
	}
	drawer.DrawString(line)
}

// drawQR renders a QR code for the given URL at the given position.
func drawQR(canvas *image.RGBA, url string, x, y int) error {
	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("qr encode: %w", err)
	}
	img := qr.Image(qrSize)
	draw.Draw(canvas, image.Rect(x, y, x+qrSize, y+qrSize), img, img.Bounds().Min, draw.Over)
	return nil
}

// wrapText greedily wraps text to the given pixel width using the
// export face. Explicit newlines inside a paragraph are honored.
func wrapText(text string, maxWidth int) []string {
	var lines []string
	limit := fixed.I(maxWidth)

	for _, raw := range strings.Split(text, "\n") {
		words := strings.Fields(raw)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if font.MeasureString(textFace, candidate) > limit {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
