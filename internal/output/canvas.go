package output

import (
	"strings"

	"github.com/yourusername/winplace/internal/types"
)

// BoxStyle defines the character set for drawing boxes
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
	Shade       rune
}

var (
	// ASCIIStyle uses simple ASCII characters for box drawing
	ASCIIStyle = BoxStyle{
		TopLeft:     '+',
		TopRight:    '+',
		BottomLeft:  '+',
		BottomRight: '+',
		Horizontal:  '-',
		Vertical:    '|',
		Shade:       '.',
	}

	// UnicodeStyle uses Unicode box drawing characters
	UnicodeStyle = BoxStyle{
		TopLeft:     '┌',
		TopRight:    '┐',
		BottomLeft:  '└',
		BottomRight: '┘',
		Horizontal:  '─',
		Vertical:    '│',
		Shade:       '░',
	}
)

// Canvas is a fixed-size grid of runes
type Canvas struct {
	Width  int
	Height int
	cells  [][]rune
	style  BoxStyle
}

// NewCanvas creates a blank canvas
func NewCanvas(width, height int, useUnicode bool) *Canvas {
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(" ", width))
	}

	style := ASCIIStyle
	if useUnicode {
		style = UnicodeStyle
	}
	return &Canvas{Width: width, Height: height, cells: cells, style: style}
}

// Set writes r at (x, y); out-of-range writes are dropped
func (c *Canvas) Set(x, y int, r rune) {
	if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
		c.cells[y][x] = r
	}
}

// At returns the rune at (x, y), or a space when out of range
func (c *Canvas) At(x, y int) rune {
	if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
		return c.cells[y][x]
	}
	return ' '
}

// Box outlines r. Rects narrower or shorter than 2 cells are shaded instead.
func (c *Canvas) Box(r types.Rect) {
	if r.Width < 2 || r.Height < 2 {
		c.Shade(r)
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	for x := r.X + 1; x < right; x++ {
		c.Set(x, r.Y, c.style.Horizontal)
		c.Set(x, bottom, c.style.Horizontal)
	}
	for y := r.Y + 1; y < bottom; y++ {
		c.Set(r.X, y, c.style.Vertical)
		c.Set(right, y, c.style.Vertical)
	}
	c.Set(r.X, r.Y, c.style.TopLeft)
	c.Set(right, r.Y, c.style.TopRight)
	c.Set(r.X, bottom, c.style.BottomLeft)
	c.Set(right, bottom, c.style.BottomRight)
}

// Shade fills r with the style's shade rune
func (c *Canvas) Shade(r types.Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.Set(x, y, c.style.Shade)
		}
	}
}

// Text writes s starting at (x, y)
func (c *Canvas) Text(x, y int, s string) {
	for i, r := range []rune(s) {
		c.Set(x+i, y, r)
	}
}

// Label writes s centered on the middle row of r, inside its border
func (c *Canvas) Label(r types.Rect, s string) {
	inner := r.Width - 2
	if inner <= 0 || r.Height < 3 {
		return
	}
	s = truncate(s, inner)
	pad := (inner - len([]rune(s))) / 2
	c.Text(r.X+1+pad, r.Y+r.Height/2, s)
}

// String renders the canvas, one line per row
func (c *Canvas) String() string {
	lines := make([]string, len(c.cells))
	for y, row := range c.cells {
		lines[y] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}
