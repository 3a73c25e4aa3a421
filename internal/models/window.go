package models

import (
	"encoding/json"
	"fmt"

	"github.com/yourusername/winplace/internal/types"
)

// Window is a point-in-time snapshot of a window as reported by the
// window-management service. List returns a partial record (no capability
// flags or areas); Details returns the full one.
type Window struct {
	ID                 uint32 `json:"id"`
	PID                int    `json:"pid"`
	WMClass            string `json:"wm_class"`
	WMClassInstance    string `json:"wm_class_instance"`
	Title              string `json:"title,omitempty"`
	Role               string `json:"role,omitempty"`
	Focused            bool   `json:"focus"`
	InCurrentWorkspace bool   `json:"in_current_workspace"`
	FrameType          int    `json:"frame_type"`
	WindowType         int    `json:"window_type"`
	Layer              *int   `json:"layer,omitempty"`
	Monitor            *int   `json:"monitor,omitempty"`
	Maximized          *int   `json:"maximized,omitempty"`

	CanMove     *bool `json:"canMove,omitempty"`
	CanResize   *bool `json:"canResize,omitempty"`
	CanClose    *bool `json:"canClose,omitempty"`
	CanMaximize *bool `json:"canMaximize,omitempty"`
	CanMinimize *bool `json:"canMinimize,omitempty"`

	WindowArea             *types.Rect `json:"windowArea,omitempty"`
	CurrentMonitorWorkArea *types.Rect `json:"currentMonitorWorkArea,omitempty"`
	AllMonitorsWorkArea    *types.Rect `json:"allMonitorsWorkArea,omitempty"`

	// Extra holds fields the service sent that this type does not model.
	Extra map[string]json.RawMessage `json:"-"`
}

// MaximizedState values reported in Window.Maximized (Meta.MaximizeFlags)
const (
	MaximizedNone       = 0
	MaximizedHorizontal = 1
	MaximizedVertical   = 2
	MaximizedBoth       = 3
)

// IsMaximized reports whether the window is maximized in both directions
func (w *Window) IsMaximized() bool {
	return w.Maximized != nil && *w.Maximized == MaximizedBoth
}

// MonitorIndex returns the monitor the window is on, or -1 if unknown
func (w *Window) MonitorIndex() int {
	if w.Monitor == nil {
		return -1
	}
	return *w.Monitor
}

// Capability identifies one of the window's can* flags
type Capability string

const (
	CapMove     Capability = "move"
	CapResize   Capability = "resize"
	CapClose    Capability = "close"
	CapMaximize Capability = "maximize"
	CapMinimize Capability = "minimize"
)

// Can reports the capability flag. Unknown (not reported) counts as allowed.
func (w *Window) Can(c Capability) bool {
	var flag *bool
	switch c {
	case CapMove:
		flag = w.CanMove
	case CapResize:
		flag = w.CanResize
	case CapClose:
		flag = w.CanClose
	case CapMaximize:
		flag = w.CanMaximize
	case CapMinimize:
		flag = w.CanMinimize
	}
	return flag == nil || *flag
}

// DisplayName returns the title or, failing that, the WM class
func (w *Window) DisplayName() string {
	if w.Title != "" {
		return w.Title
	}
	if w.WMClass != "" {
		return w.WMClass
	}
	return fmt.Sprintf("window %d", w.ID)
}

// Monitor describes a physical display
type Monitor struct {
	ID        int        `json:"id"`
	Name      string     `json:"name,omitempty"`
	Geometry  types.Rect `json:"geometry"`
	WorkArea  types.Rect `json:"workArea"`
	IsPrimary bool       `json:"isPrimary,omitempty"`
}

// UsableArea returns the work area, or the full geometry when no work area
// was reported
func (m *Monitor) UsableArea() types.Rect {
	if m.WorkArea.IsEmpty() {
		return m.Geometry
	}
	return m.WorkArea
}
