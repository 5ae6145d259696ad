// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package compose

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"imoguru/internal/models"
)

func imgs(n int) []Image {
	out := make([]Image, n)
	for i := range out {
		out[i] = Image{URL: ""}
	}
	return out
}

func TestTileWidth(t *testing.T) {
	tests := []struct {
		columns int
		want    int
	}{
		{1, 1070},
		{2, 530},
		{3, 350},
		{0, 1070}, // guarded to one column
	}
	for _, tt := range tests {
		if got := TileWidth(tt.columns); got != tt.want {
			t.Errorf("TileWidth(%d) = %d, want %d", tt.columns, got, tt.want)
		}
	}
}

func TestTileHeightAspect(t *testing.T) {
	if got := TileHeight(530); got != 397 {
		t.Errorf("TileHeight(530) = %d, want 397", got)
	}
}

func TestComposePlacementBefore(t *testing.T) {
	doc := Compose("um\n\ndois", imgs(2), Layout{Columns: 2, Placement: models.PlacementBeforeText, MaxImages: -1})

	if len(doc.Blocks) != 3 {
		t.Fatalf("blocks = %d, want 3", len(doc.Blocks))
	}
	if !doc.Blocks[0].Grid || len(doc.Blocks[0].Images) != 2 {
		t.Errorf("first block should be the full grid, got %+v", doc.Blocks[0])
	}
	if doc.Blocks[1].Text != "um" || doc.Blocks[2].Text != "dois" {
		t.Errorf("text blocks wrong: %+v", doc.Blocks[1:])
	}
}

func TestComposePlacementAfter(t *testing.T) {
	doc := Compose("um\n\ndois", imgs(3), Layout{Columns: 2, Placement: models.PlacementAfterText, MaxImages: -1})

	last := doc.Blocks[len(doc.Blocks)-1]
	if !last.Grid || len(last.Images) != 3 {
		t.Errorf("last block should be the full grid, got %+v", last)
	}
}

func TestComposeIntercalatedRemainder(t *testing.T) {
	// 3 paragraphs, 5 images: one image after each paragraph, the two
	// leftovers appended as a trailing grid block.
	doc := Compose("a\n\nb\n\nc", imgs(5), Layout{Columns: 2, Placement: models.PlacementIntercalated, MaxImages: -1})

	want := []struct {
		grid   bool
		images int
	}{
		{false, 0}, {true, 1},
		{false, 0}, {true, 1},
		{false, 0}, {true, 1},
		{true, 2},
	}
	if len(doc.Blocks) != len(want) {
		t.Fatalf("blocks = %d, want %d", len(doc.Blocks), len(want))
	}
	for i, w := range want {
		b := doc.Blocks[i]
		if b.Grid != w.grid || len(b.Images) != w.images {
			t.Errorf("block %d: grid=%v images=%d, want grid=%v images=%d",
				i, b.Grid, len(b.Images), w.grid, w.images)
		}
	}
}

func TestComposeIntercalatedFewerImagesThanParagraphs(t *testing.T) {
	doc := Compose("a\n\nb\n\nc", imgs(1), Layout{Columns: 2, Placement: models.PlacementIntercalated, MaxImages: -1})

	grids := 0
	for _, b := range doc.Blocks {
		if b.Grid {
			grids++
		}
	}
	if grids != 1 {
		t.Errorf("grid blocks = %d, want 1", grids)
	}
}

func TestComposeMaxImages(t *testing.T) {
	doc := Compose("a", imgs(10), Layout{Columns: 2, Placement: models.PlacementAfterText, MaxImages: 4})

	last := doc.Blocks[len(doc.Blocks)-1]
	if len(last.Images) != 4 {
		t.Errorf("images = %d, want 4", len(last.Images))
	}
}

func TestGridRows(t *testing.T) {
	tests := []struct {
		n, columns, want int
	}{
		{0, 2, 0},
		{1, 2, 1},
		{2, 2, 1},
		{3, 2, 2},
		{5, 2, 3},
		{4, 0, 0},
	}
	for _, tt := range tests {
		if got := gridRows(tt.n, tt.columns); got != tt.want {
			t.Errorf("gridRows(%d, %d) = %d, want %d", tt.n, tt.columns, got, tt.want)
		}
	}
}

func TestSelectImagesCoverFirst(t *testing.T) {
	coverID, otherID := uuid.New(), uuid.New()
	p := &models.Property{
		Images: []models.PropertyImage{
			{ID: otherID, URL: "https://x/other.jpg", DisplayOrder: 0},
			{ID: coverID, URL: "https://x/cover.jpg", DisplayOrder: 1, IsCover: true},
		},
	}

	images := SelectImages(p, -1)
	if len(images) != 2 {
		t.Fatalf("images = %d, want 2", len(images))
	}
	if images[0].URL != "https://x/cover.jpg" {
		t.Errorf("cover should come first, got %q", images[0].URL)
	}
}

func TestRenderJPEGEmptyGrid(t *testing.T) {
	// A grid block with no images is a valid empty container.
	doc := Compose("Casa X", nil, Layout{Columns: 2, Placement: models.PlacementAfterText, MaxImages: -1})

	out, err := doc.RenderJPEG(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "data:image/jpeg;base64,") {
		t.Errorf("output is not a jpeg data url: %.40q", out)
	}
}

func TestRenderJPEGMissingImagesStillRenders(t *testing.T) {
	// Image loads fail (nil loader); tiles render blank and the export
	// still succeeds.
	doc := Compose("Casa X\n\nCentro", imgs(3), Layout{Columns: 2, Placement: models.PlacementIntercalated, MaxImages: -1})

	out, err := doc.RenderJPEG(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out == "" {
		t.Error("expected a data url")
	}
}

func TestRenderPDF(t *testing.T) {
	doc := Compose("Casa X", nil, Layout{Columns: 2, Placement: models.PlacementAfterText, MaxImages: -1})
	doc.QRURL = "https://demo/imoveis/IMV-0001"

	out, err := doc.RenderPDF(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(string(out), "%PDF-") {
		t.Errorf("output is not a pdf, starts with %.8q", string(out))
	}
}

func TestWrapTextHonorsNewlines(t *testing.T) {
	lines := wrapText("um\ndois", 1000)
	if len(lines) != 2 || lines[0] != "um" || lines[1] != "dois" {
		t.Errorf("lines = %q", lines)
	}
}
