// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package compose lays out a substituted listing message and its photos
// into a renderable document, and rasterizes that document to a JPEG data
// URL or a single-page A4 PDF. A failed photo load never aborts an
// export — the tile renders blank; a failed rasterization always
// propagates to the caller.
package compose

import (
	"math"
	"regexp"
	"strings"

	"imoguru/internal/models"
)

const (
	// CanvasWidth is the logical pixel width documents are laid out at.
	CanvasWidth = 1080

	// TileGap is the spacing subtracted per grid column and placed
	// between rows.
	TileGap = 10

	// RenderScale is the supersampling factor applied at rasterization
	// for output quality.
	RenderScale = 2

	// JPEGQuality is the encoder quality for JPEG exports.
	JPEGQuality = 95
)

// Image is one photo slot in the document. URL is resolved through an
// ImageLoader at render time.
type Image struct {
	URL string
}

// Layout controls photo selection and grid geometry.
type Layout struct {
	Columns   int
	Placement models.ImagePlacement
	MaxImages int
}

// Block is one vertical section of the document: either a text paragraph
// or an image grid. A grid block with no images is a valid empty container.
type Block struct {
	Text   string
	Grid   bool
	Images []Image
}

// Document is the composed, renderable form of one export call.
type Document struct {
	Blocks []Block
	Layout Layout

	// QRURL, when set, renders a QR code in the document footer linking
	// back to the listing. Used by print and PDF exports.
	QRURL string
}

// TileWidth returns the maximum width of one grid tile for the given
// column count: the canvas split evenly minus the gap.
func TileWidth(columns int) int {
	if columns < 1 {
		columns = 1
	}
	return CanvasWidth/columns - TileGap
}

// TileHeight returns the fixed-aspect (4:3) height for a tile width.
func TileHeight(tileWidth int) int {
	return tileWidth * 3 / 4
}

// SelectImages picks up to max photo URLs from the property, cover first,
// then declared display order.
func SelectImages(p *models.Property, max int) []Image {
	urls := p.ImageURLs()
	if max >= 0 && len(urls) > max {
		urls = urls[:max]
	}
	images := make([]Image, len(urls))
	for i, u := range urls {
		images[i] = Image{URL: u}
	}
	return images
}

var paragraphSplit = regexp.MustCompile(`\n{2,}`)

// splitParagraphs breaks formatted text content into paragraph chunks,
// dropping empty ones.
func splitParagraphs(content string) []string {
	var out []string
	for _, p := range paragraphSplit.Split(content, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Compose builds the document for one export: the text content split into
// paragraphs, with the images placed per the layout policy.
//
// Intercalated placement interleaves one image after each paragraph until
// either runs out; images left over after the last paragraph are appended
// as a single trailing grid block rather than dropped.
func Compose(content string, images []Image, layout Layout) *Document {
	if layout.MaxImages >= 0 && len(images) > layout.MaxImages {
		images = images[:layout.MaxImages]
	}

	doc := &Document{Layout: layout}
	paragraphs := splitParagraphs(content)

	switch layout.Placement {
	case models.PlacementBeforeText:
		doc.Blocks = append(doc.Blocks, Block{Grid: true, Images: images})
		for _, p := range paragraphs {
			doc.Blocks = append(doc.Blocks, Block{Text: p})
		}

	case models.PlacementIntercalated:
		used := 0
		for _, p := range paragraphs {
			doc.Blocks = append(doc.Blocks, Block{Text: p})
			if used < len(images) {
				doc.Blocks = append(doc.Blocks, Block{Grid: true, Images: images[used : used+1]})
				used++
			}
		}
		if used < len(images) {
			doc.Blocks = append(doc.Blocks, Block{Grid: true, Images: images[used:]})
		}

	default: // after_text
		for _, p := range paragraphs {
			doc.Blocks = append(doc.Blocks, Block{Text: p})
		}
		doc.Blocks = append(doc.Blocks, Block{Grid: true, Images: images})
	}

	return doc
}

// gridRows returns the number of tile rows a grid block occupies.
func gridRows(n, columns int) int {
	if n == 0 || columns < 1 {
		return 0
	}
	return int(math.Ceil(float64(n) / float64(columns)))
}
