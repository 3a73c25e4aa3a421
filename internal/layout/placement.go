package layout

import (
	"errors"
	"fmt"

	"github.com/yourusername/winplace/internal/types"
)

// Kind tags the variant of a Command
type Kind string

const (
	KindPlace         Kind = "place"
	KindMaximize      Kind = "maximize"
	KindUnmaximize    Kind = "unmaximize"
	KindMinimize      Kind = "minimize"
	KindClose         Kind = "close"
	KindFullscreen    Kind = "fullscreen"
	KindWorkspaceMove Kind = "workspace-move"
	KindMonitorMove   Kind = "monitor-move"
)

// Command is the closed set of window operations an action resolves to.
// Only the payload field matching Kind is meaningful.
type Command struct {
	Kind      Kind            `json:"kind"`
	Rect      types.Rect      `json:"rect,omitempty"`      // KindPlace
	Force     bool            `json:"force,omitempty"`     // KindClose
	Direction types.Direction `json:"direction,omitempty"` // KindWorkspaceMove, KindMonitorMove
}

// String renders the command for logs and CLI output
func (c Command) String() string {
	switch c.Kind {
	case KindPlace:
		return fmt.Sprintf("place(%d,%d,%d,%d)", c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height)
	case KindClose:
		if c.Force {
			return "close(force)"
		}
		return "close"
	case KindWorkspaceMove, KindMonitorMove:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Direction)
	default:
		return string(c.Kind)
	}
}

// Place builds a placement command
func Place(r types.Rect) Command {
	return Command{Kind: KindPlace, Rect: r}
}

// ErrInvalidWorkArea is returned for work areas with negative size
var ErrInvalidWorkArea = errors.New("work area has negative size")

// UnknownActionError reports an action name missing from the table
type UnknownActionError struct {
	Action string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("invalid action %q", e.Action)
}

// Compute maps a work area and an action name to the command to issue.
// Geometry is derived from the work area only; it must already exclude
// panels and bars.
func Compute(workArea types.Rect, name string) (Command, error) {
	action, ok := Lookup(name)
	if !ok {
		return Command{}, &UnknownActionError{Action: name}
	}
	return action.Command(workArea)
}

// Command resolves this action against a work area
func (a Action) Command(workArea types.Rect) (Command, error) {
	if workArea.Width < 0 || workArea.Height < 0 {
		return Command{}, fmt.Errorf("%w: %v", ErrInvalidWorkArea, workArea)
	}

	switch a.Kind {
	case KindPlace:
		return Place(a.geometry(workArea)), nil
	case KindClose:
		return Command{Kind: KindClose, Force: a.Force}, nil
	case KindWorkspaceMove, KindMonitorMove:
		return Command{Kind: a.Kind, Direction: a.Direction}, nil
	default:
		return Command{Kind: a.Kind}, nil
	}
}

// frac scales v by num/den, truncating toward zero
func frac(v, num, den int) int {
	return v * num / den
}

func topHalf(wa types.Rect) types.Rect {
	return types.Rect{X: wa.X, Y: wa.Y, Width: wa.Width, Height: wa.Height / 2}
}

func bottomHalf(wa types.Rect) types.Rect {
	return types.Rect{X: wa.X, Y: wa.Y + wa.Height/2, Width: wa.Width, Height: wa.Height / 2}
}

func leftHalf(wa types.Rect) types.Rect {
	return types.Rect{X: wa.X, Y: wa.Y, Width: wa.Width / 2, Height: wa.Height}
}

func rightHalf(wa types.Rect) types.Rect {
	return types.Rect{X: wa.X + wa.Width/2, Y: wa.Y, Width: wa.Width / 2, Height: wa.Height}
}

func center(wa types.Rect) types.Rect {
	return types.Rect{X: wa.X + wa.Width/4, Y: wa.Y + wa.Height/4, Width: wa.Width / 2, Height: wa.Height / 2}
}

func centerHalf(wa types.Rect) types.Rect {
	return types.Rect{X: wa.X + wa.Width/4, Y: wa.Y, Width: wa.Width / 2, Height: wa.Height}
}

// 7.5% top margin, 85% height, 75% width centred horizontally
func centerThreeFourths(wa types.Rect) types.Rect {
	return types.Rect{
		X:      wa.X + wa.Width/8,
		Y:      wa.Y + frac(wa.Height, 75, 1000),
		Width:  frac(wa.Width, 3, 4),
		Height: frac(wa.Height, 85, 100),
	}
}

func firstThreeFourths(wa types.Rect) types.Rect {
	return types.Rect{X: wa.X, Y: wa.Y, Width: frac(wa.Width, 3, 4), Height: wa.Height}
}

func lastThreeFourths(wa types.Rect) types.Rect {
	return types.Rect{X: wa.X + frac(wa.Width, 1, 4), Y: wa.Y, Width: frac(wa.Width, 3, 4), Height: wa.Height}
}

func firstFourth(wa types.Rect) types.Rect {
	return types.Rect{X: wa.X, Y: wa.Y, Width: frac(wa.Width, 1, 4), Height: wa.Height}
}

func lastFourth(wa types.Rect) types.Rect {
	return types.Rect{X: wa.X + frac(wa.Width, 3, 4), Y: wa.Y, Width: frac(wa.Width, 1, 4), Height: wa.Height}
}

// 2% margin on every side
func almostMaximize(wa types.Rect) types.Rect {
	return types.Rect{
		X:      wa.X + frac(wa.Width, 2, 100),
		Y:      wa.Y + frac(wa.Height, 2, 100),
		Width:  frac(wa.Width, 96, 100),
		Height: frac(wa.Height, 96, 100),
	}
}
