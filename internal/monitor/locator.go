package monitor

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourusername/winplace/internal/models"
	"github.com/yourusername/winplace/internal/types"
	"github.com/yourusername/winplace/internal/x11"
)

// WindowService is the part of the window client the locator needs
type WindowService interface {
	GetFocusedWindowID(ctx context.Context) (uint32, bool, error)
	GetWindowDetails(ctx context.Context, windowID uint32) (*models.Window, error)
}

// Fallback supplies a work area when the service does not report one
type Fallback interface {
	WorkArea(ctx context.Context, monitorID int) (types.Rect, error)
}

// Where a located work area came from
const (
	SourceService  = "service"
	SourceFallback = "fallback"
)

// ErrNoWorkArea means neither the service nor the fallback produced a work area
var ErrNoWorkArea = errors.New("no work area for focused window's monitor")

// Located is the monitor of the focused window
type Located struct {
	WindowID  uint32
	Window    *models.Window
	MonitorID int
	WorkArea  types.Rect
	Source    string
}

// Locator resolves the monitor of the currently focused window
type Locator struct {
	svc      WindowService
	fallback Fallback
}

// NewLocator creates a locator. fallback may be nil.
func NewLocator(svc WindowService, fallback Fallback) *Locator {
	return &Locator{svc: svc, fallback: fallback}
}

// Locate returns nil with no error when no window has focus. Service errors
// propagate unchanged; there is no retry.
func (l *Locator) Locate(ctx context.Context) (*Located, error) {
	id, ok, err := l.svc.GetFocusedWindowID(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	details, err := l.svc.GetWindowDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	loc := &Located{
		WindowID:  id,
		Window:    details,
		MonitorID: details.MonitorIndex(),
	}

	if details.CurrentMonitorWorkArea != nil {
		loc.WorkArea = *details.CurrentMonitorWorkArea
		loc.Source = SourceService
		return loc, nil
	}

	if l.fallback == nil || loc.MonitorID < 0 {
		return nil, ErrNoWorkArea
	}
	wa, err := l.fallback.WorkArea(ctx, loc.MonitorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoWorkArea, err)
	}
	loc.WorkArea = wa
	loc.Source = SourceFallback
	return loc, nil
}

// XrandrFallback derives a work area from the xrandr monitor geometry minus
// the system bar height
type XrandrFallback struct {
	Run       Runner
	BarHeight func() int
}

// NewXrandrFallback reads the bar height from _NET_WORKAREA, defaulting to
// defaultBar
func NewXrandrFallback(defaultBar int) *XrandrFallback {
	return &XrandrFallback{
		Run: ExecRunner,
		BarHeight: func() int {
			return x11.BarHeight(defaultBar)
		},
	}
}

// WorkArea implements Fallback
func (f *XrandrFallback) WorkArea(ctx context.Context, monitorID int) (types.Rect, error) {
	monitors, err := ListActive(ctx, f.Run)
	if err != nil {
		return types.Rect{}, err
	}
	mon, ok := FindByID(monitors, monitorID)
	if !ok {
		return types.Rect{}, fmt.Errorf("monitor %d not active", monitorID)
	}

	bar := x11.DefaultBarHeight
	if f.BarHeight != nil {
		bar = f.BarHeight()
	}
	return mon.Geometry.Inset(0, bar, 0, 0), nil
}
