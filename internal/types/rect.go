package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Rect represents pixel bounds on screen
type Rect struct {
	X      int `json:"x" yaml:"x"`           // Left edge (pixels from screen left)
	Y      int `json:"y" yaml:"y"`           // Top edge (pixels from screen top)
	Width  int `json:"width" yaml:"width"`   // Width in pixels
	Height int `json:"height" yaml:"height"` // Height in pixels
}

// Right returns the x coordinate one past the right edge
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y coordinate one past the bottom edge
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty reports whether the rect covers no pixels
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains checks if other lies entirely inside r
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Intersect returns the overlapping region of two rects.
// The zero Rect is returned when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := max(r.X, other.X)
	top := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Inset shrinks the rect by the given edge amounts, never below zero size
func (r Rect) Inset(left, top, right, bottom int) Rect {
	out := Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  r.Width - left - right,
		Height: r.Height - top - bottom,
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// String formats the rect X11-geometry style: WxH+X+Y
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d%+d%+d", r.Width, r.Height, r.X, r.Y)
}

var geometryRe = regexp.MustCompile(`^(\d+)x(\d+)([+-]\d+)([+-]\d+)$`)

// ParseRect parses the WxH+X+Y form produced by String
func ParseRect(s string) (Rect, error) {
	m := geometryRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Rect{}, fmt.Errorf("invalid geometry %q: expected WxH+X+Y", s)
	}
	var vals [4]int
	for i := range vals {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Rect{}, fmt.Errorf("invalid geometry %q: %w", s, err)
		}
		vals[i] = v
	}
	return Rect{X: vals[2], Y: vals[3], Width: vals[0], Height: vals[1]}, nil
}

// Direction is a horizontal move target for workspaces and monitors
type Direction string

const (
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// String returns the wire form of a Direction
func (d Direction) String() string {
	return string(d)
}

// ParseDirection converts a string to Direction
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	default:
		return "", false
	}
}
