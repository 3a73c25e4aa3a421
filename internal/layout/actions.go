package layout

import (
	"strings"

	"github.com/yourusername/winplace/internal/types"
)

// Action is one entry of the fixed action table
type Action struct {
	Name        string          `json:"name"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Kind        Kind            `json:"kind"`
	Force       bool            `json:"force,omitempty"`
	Direction   types.Direction `json:"direction,omitempty"`

	geometry func(types.Rect) types.Rect
}

// IsGeometric reports whether the action computes a target rectangle
func (a Action) IsGeometric() bool {
	return a.Kind == KindPlace
}

var actions = []Action{
	{Name: "top-half", Title: "Top Half", Description: "Move the focused window to the top half of the screen", Kind: KindPlace, geometry: topHalf},
	{Name: "bottom-half", Title: "Bottom Half", Description: "Move the focused window to the bottom half of the screen", Kind: KindPlace, geometry: bottomHalf},
	{Name: "left-half", Title: "Left Half", Description: "Move the focused window to the left half of the screen", Kind: KindPlace, geometry: leftHalf},
	{Name: "right-half", Title: "Right Half", Description: "Move the focused window to the right half of the screen", Kind: KindPlace, geometry: rightHalf},
	{Name: "center", Title: "Center", Description: "Center the focused window at half size", Kind: KindPlace, geometry: center},
	{Name: "center-half", Title: "Center Half", Description: "Center the focused window at half width, full height", Kind: KindPlace, geometry: centerHalf},
	{Name: "center-three-fourths", Title: "Center Three Fourths", Description: "Center the focused window at three fourths of the screen", Kind: KindPlace, geometry: centerThreeFourths},
	{Name: "first-three-fourths", Title: "First Three Fourths", Description: "Move the focused window to the left three fourths of the screen", Kind: KindPlace, geometry: firstThreeFourths},
	{Name: "last-three-fourths", Title: "Last Three Fourths", Description: "Move the focused window to the right three fourths of the screen", Kind: KindPlace, geometry: lastThreeFourths},
	{Name: "first-fourth", Title: "First Fourth", Description: "Move the focused window to the left fourth of the screen", Kind: KindPlace, geometry: firstFourth},
	{Name: "last-fourth", Title: "Last Fourth", Description: "Move the focused window to the right fourth of the screen", Kind: KindPlace, geometry: lastFourth},
	{Name: "almost-maximize", Title: "Almost Maximize", Description: "Fill the screen leaving a small margin", Kind: KindPlace, geometry: almostMaximize},
	{Name: "maximize", Title: "Maximize", Description: "Maximize the focused window", Kind: KindMaximize},
	{Name: "unmaximize", Title: "Unmaximize", Description: "Unmaximize the focused window", Kind: KindUnmaximize},
	{Name: "minimize", Title: "Minimize", Description: "Minimize the focused window", Kind: KindMinimize},
	{Name: "fullscreen", Title: "Toggle Fullscreen", Description: "Toggle fullscreen for the focused window", Kind: KindFullscreen},
	{Name: "close", Title: "Close", Description: "Close the focused window", Kind: KindClose},
	{Name: "force-close", Title: "Force Close", Description: "Close the focused window without confirmation", Kind: KindClose, Force: true},
	{Name: "next-desktop", Title: "Next Desktop", Description: "Move the focused window to the next workspace", Kind: KindWorkspaceMove, Direction: types.DirRight},
	{Name: "previous-desktop", Title: "Previous Desktop", Description: "Move the focused window to the previous workspace", Kind: KindWorkspaceMove, Direction: types.DirLeft},
	{Name: "left-monitor", Title: "Left Monitor", Description: "Move the focused window to the monitor on the left", Kind: KindMonitorMove, Direction: types.DirLeft},
	{Name: "right-monitor", Title: "Right Monitor", Description: "Move the focused window to the monitor on the right", Kind: KindMonitorMove, Direction: types.DirRight},
}

// aliases keeps the first plugin release's action names working
var aliases = map[string]string{
	"up":    "top-half",
	"down":  "bottom-half",
	"left":  "left-half",
	"right": "right-half",
}

var byName = func() map[string]Action {
	m := make(map[string]Action, len(actions))
	for _, a := range actions {
		m[a.Name] = a
	}
	return m
}()

// Actions returns the action table in menu order
func Actions() []Action {
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// Lookup resolves a name or legacy alias to its action
func Lookup(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	a, ok := byName[name]
	return a, ok
}

// Aliases returns the legacy alias table
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}
