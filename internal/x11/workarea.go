package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/yourusername/winplace/internal/types"
)

// DefaultBarHeight is used when the root window exposes no work area
const DefaultBarHeight = 48

// Insets are the space reserved by panels on each root-window edge
type Insets struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// InsetsFromWorkarea derives edge insets from a work area inside root
func InsetsFromWorkarea(root, workArea types.Rect) Insets {
	insets := Insets{
		Left:   workArea.X - root.X,
		Top:    workArea.Y - root.Y,
		Right:  root.Right() - workArea.Right(),
		Bottom: root.Bottom() - workArea.Bottom(),
	}
	insets.Left = max(insets.Left, 0)
	insets.Top = max(insets.Top, 0)
	insets.Right = max(insets.Right, 0)
	insets.Bottom = max(insets.Bottom, 0)
	return insets
}

// Display is an open X connection used only to read root window hints
type Display struct {
	xu   *xgbutil.XUtil
	root xproto.Window
}

// OpenDisplay connects to the X server named by $DISPLAY
func OpenDisplay() (*Display, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}
	return &Display{xu: xu, root: xu.RootWin()}, nil
}

func (d *Display) Close() {
	d.xu.Conn().Close()
}

// WorkareaInsets reads _NET_WORKAREA for the current desktop and returns
// the insets it leaves against the root window geometry
func (d *Display) WorkareaInsets() (Insets, error) {
	workAreas, err := ewmh.WorkareaGet(d.xu)
	if err != nil {
		return Insets{}, fmt.Errorf("failed to read _NET_WORKAREA: %w", err)
	}
	if len(workAreas) == 0 {
		return Insets{}, fmt.Errorf("_NET_WORKAREA is empty")
	}

	desktopIndex := 0
	if current, err := ewmh.CurrentDesktopGet(d.xu); err == nil {
		if int(current) < len(workAreas) {
			desktopIndex = int(current)
		}
	}
	wa := workAreas[desktopIndex]

	rootGeom, err := xproto.GetGeometry(d.xu.Conn(), xproto.Drawable(d.root)).Reply()
	if err != nil {
		return Insets{}, fmt.Errorf("failed to get root geometry: %w", err)
	}

	root := types.Rect{Width: int(rootGeom.Width), Height: int(rootGeom.Height)}
	area := types.Rect{X: int(wa.X), Y: int(wa.Y), Width: int(wa.Width), Height: int(wa.Height)}
	return InsetsFromWorkarea(root, area), nil
}

// BarHeight returns the top inset of the work area, or def when the work
// area cannot be read. A readable work area with no top panel yields 0.
func BarHeight(def int) int {
	d, err := OpenDisplay()
	if err != nil {
		return barHeightFrom(Insets{}, err, def)
	}
	defer d.Close()

	insets, err := d.WorkareaInsets()
	return barHeightFrom(insets, err, def)
}

func barHeightFrom(insets Insets, err error, def int) int {
	if err != nil {
		return def
	}
	return insets.Top
}
