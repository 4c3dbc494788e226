package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Atlas is a tileset image sliced into a fixed grid of square cells.
type Atlas struct {
	image    *ebiten.Image
	tiles    []*ebiten.Image
	tileSize int
	cols     int
	rows     int
}

// LoadAtlas reads an image from disk and slices it.
func LoadAtlas(path string, tileSize, cols, rows int) (*Atlas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return NewAtlas(ebiten.NewImageFromImage(img), tileSize, cols, rows), nil
}

// NewAtlas slices an already loaded image.
func NewAtlas(img *ebiten.Image, tileSize, cols, rows int) *Atlas {
	a := &Atlas{image: img, tileSize: tileSize, cols: cols, rows: rows}
	a.tiles = make([]*ebiten.Image, 0, cols*rows)
	for i := 0; i < cols*rows; i++ {
		a.tiles = append(a.tiles, img.SubImage(CellRect(i, tileSize, cols)).(*ebiten.Image))
	}
	return a
}

// FallbackAtlas builds a flat-colored placeholder tileset for when no
// atlas image could be loaded.
func FallbackAtlas(tileSize, cols, rows int) *Atlas {
	img := ebiten.NewImage(tileSize*cols, tileSize*rows)
	for i := 0; i < cols*rows; i++ {
		cell := ebiten.NewImage(tileSize, tileSize)
		cell.Fill(placeholderColor(i))
		op := &ebiten.DrawImageOptions{}
		r := CellRect(i, tileSize, cols)
		op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
		img.DrawImage(cell, op)
	}
	return NewAtlas(img, tileSize, cols, rows)
}

func placeholderColor(i int) color.RGBA {
	// Spread hues across the grid so adjacent cells are telling apart.
	steps := []uint8{0x30, 0x70, 0xb0, 0xf0}
	return color.RGBA{
		R: steps[i%4],
		G: steps[(i/4)%4],
		B: 0x80,
		A: 0xff,
	}
}

// Tile returns the cell image for an index, clamped to the atlas range.
func (a *Atlas) Tile(i int) *ebiten.Image {
	if i < 0 {
		i = 0
	}
	if i >= len(a.tiles) {
		i = len(a.tiles) - 1
	}
	return a.tiles[i]
}

// Count returns the number of cells.
func (a *Atlas) Count() int {
	return len(a.tiles)
}

// TileSize returns the cell edge length in pixels.
func (a *Atlas) TileSize() int {
	return a.tileSize
}

// Image returns the full atlas image.
func (a *Atlas) Image() *ebiten.Image {
	return a.image
}

// CellRect returns the pixel rectangle of cell i in an atlas laid out
// row-major with the given column count.
func CellRect(i, tileSize, cols int) image.Rectangle {
	col := i % cols
	row := i / cols
	return image.Rect(col*tileSize, row*tileSize, (col+1)*tileSize, (row+1)*tileSize)
}
