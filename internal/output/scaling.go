package output

import (
	"github.com/yourusername/winplace/internal/types"
)

const (
	minCols = 10
	minRows = 5

	// Terminal cells are roughly twice as tall as they are wide
	cellAspect = 2
)

// ScalingContext maps a pixel-space area onto a character canvas
type ScalingContext struct {
	Area types.Rect // pixels being drawn
	Cols int        // canvas width in characters
	Rows int        // canvas height in characters
}

// NewScalingContext fits area into at most maxCols x maxRows characters,
// keeping its aspect ratio
func NewScalingContext(area types.Rect, maxCols, maxRows int) *ScalingContext {
	if maxCols < minCols {
		maxCols = minCols
	}
	if maxRows < minRows {
		maxRows = minRows
	}
	if area.Width <= 0 || area.Height <= 0 {
		return &ScalingContext{Area: area, Cols: maxCols, Rows: maxRows}
	}

	cols := maxCols
	rows := cols * area.Height / area.Width / cellAspect
	if rows > maxRows {
		rows = maxRows
		cols = rows * cellAspect * area.Width / area.Height
	}
	if cols < minCols {
		cols = minCols
	}
	if rows < minRows {
		rows = minRows
	}
	return &ScalingContext{Area: area, Cols: cols, Rows: rows}
}

// Canvas returns the whole canvas as a rect
func (sc *ScalingContext) Canvas() types.Rect {
	return types.Rect{Width: sc.Cols, Height: sc.Rows}
}

// ToCanvas converts a pixel rect to canvas cells, clipped to the canvas
func (sc *ScalingContext) ToCanvas(r types.Rect) types.Rect {
	if sc.Area.Width <= 0 || sc.Area.Height <= 0 {
		return types.Rect{}
	}
	x0 := (r.X - sc.Area.X) * sc.Cols / sc.Area.Width
	x1 := (r.Right() - sc.Area.X) * sc.Cols / sc.Area.Width
	y0 := (r.Y - sc.Area.Y) * sc.Rows / sc.Area.Height
	y1 := (r.Bottom() - sc.Area.Y) * sc.Rows / sc.Area.Height

	return types.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}.Intersect(sc.Canvas())
}

// boundingBox returns the smallest rect covering all rects
func boundingBox(rects []types.Rect) types.Rect {
	if len(rects) == 0 {
		return types.Rect{}
	}
	left, top := rects[0].X, rects[0].Y
	right, bottom := rects[0].Right(), rects[0].Bottom()
	for _, r := range rects[1:] {
		left = min(left, r.X)
		top = min(top, r.Y)
		right = max(right, r.Right())
		bottom = max(bottom, r.Bottom())
	}
	return types.Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}
