package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/winplace/internal/layout"
	"github.com/yourusername/winplace/internal/models"
	"github.com/yourusername/winplace/internal/types"
)

func TestNewScalingContext_KeepsAspect(t *testing.T) {
	tests := []struct {
		name     string
		area     types.Rect
		maxCols  int
		maxRows  int
		wantCols int
		wantRows int
	}{
		{"wide terminal", types.Rect{Width: 1920, Height: 1080}, 80, 40, 80, 22},
		{"short terminal", types.Rect{Width: 1920, Height: 1080}, 200, 20, 71, 20},
		{"tiny terminal", types.Rect{Width: 1920, Height: 1080}, 4, 2, 10, 5},
		{"empty area", types.Rect{}, 80, 24, 80, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := NewScalingContext(tt.area, tt.maxCols, tt.maxRows)
			assert.Equal(t, tt.wantCols, sc.Cols)
			assert.Equal(t, tt.wantRows, sc.Rows)
		})
	}
}

func TestToCanvas(t *testing.T) {
	sc := NewScalingContext(types.Rect{X: 0, Y: 34, Width: 1920, Height: 1046}, 80, 40)
	require.Equal(t, 80, sc.Cols)

	left := sc.ToCanvas(types.Rect{X: 0, Y: 34, Width: 960, Height: 1046})
	assert.Equal(t, types.Rect{X: 0, Y: 0, Width: 40, Height: sc.Rows}, left)

	right := sc.ToCanvas(types.Rect{X: 960, Y: 34, Width: 960, Height: 1046})
	assert.Equal(t, types.Rect{X: 40, Y: 0, Width: 40, Height: sc.Rows}, right)

	// Off-area rects are clipped
	off := sc.ToCanvas(types.Rect{X: -500, Y: 34, Width: 1000, Height: 100})
	assert.Equal(t, 0, off.X)
	assert.True(t, sc.Canvas().Contains(off))
}

func TestBoundingBox(t *testing.T) {
	got := boundingBox([]types.Rect{
		{X: 0, Y: 0, Width: 1920, Height: 1080},
		{X: 1920, Y: -200, Width: 2560, Height: 1440},
	})
	assert.Equal(t, types.Rect{X: 0, Y: -200, Width: 4480, Height: 1440}, got)
	assert.Equal(t, types.Rect{}, boundingBox(nil))
}

func TestCanvas_BoxAndLabel(t *testing.T) {
	c := NewCanvas(10, 4, false)
	c.Box(types.Rect{Width: 10, Height: 4})
	c.Label(types.Rect{Width: 10, Height: 4}, "hi")

	lines := strings.Split(c.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "+--------+", lines[0])
	assert.Equal(t, "|        |", lines[1])
	assert.Equal(t, "|   hi   |", lines[2])
	assert.Equal(t, "+--------+", lines[3])
	assert.Equal(t, ' ', c.At(42, 42))
}

func TestCanvas_ThinRectIsShaded(t *testing.T) {
	c := NewCanvas(5, 3, false)
	c.Box(types.Rect{X: 1, Y: 0, Width: 1, Height: 3})
	assert.Equal(t, " .\n .\n .", c.String())
}

func TestVisualizePlacement(t *testing.T) {
	wa := types.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	cmd, err := layout.Compute(wa, "left-half")
	require.NoError(t, err)

	out := VisualizePlacement(wa, cmd, VisualizationOptions{MaxWidth: 80, MaxHeight: 40})
	assert.Contains(t, out, "place(0,0,960,1080)")
	assert.Contains(t, out, "960x1080")

	maxCmd, err := layout.Compute(wa, "maximize")
	require.NoError(t, err)
	out = VisualizePlacement(wa, maxCmd, VisualizationOptions{MaxWidth: 80, MaxHeight: 40})
	assert.Contains(t, out, "maximize")
}

func TestVisualizeMonitors(t *testing.T) {
	monitors := []models.Monitor{
		{ID: 0, Name: "eDP-1", Geometry: types.Rect{Width: 1920, Height: 1080}, IsPrimary: true},
		{ID: 1, Name: "HDMI-1", Geometry: types.Rect{X: 1920, Width: 1920, Height: 1080}},
	}
	out := VisualizeMonitors(monitors, VisualizationOptions{MaxWidth: 100, MaxHeight: 30})
	assert.Contains(t, out, "0 eDP-1 *")
	assert.Contains(t, out, "1: HDMI-1 1920x1080+1920+0")

	assert.Equal(t, "No monitors found\n", VisualizeMonitors(nil, VisualizationOptions{}))
}

func TestBuildMenu(t *testing.T) {
	all := BuildMenu("", nil)
	require.Len(t, all, len(layout.Actions()))
	assert.Equal(t, "top-half", all[0].Action)
	assert.Equal(t, "Top Half", all[0].Name)

	halves := BuildMenu("half", nil)
	var names []string
	for _, it := range halves {
		names = append(names, it.Action)
	}
	assert.Equal(t, []string{"top-half", "bottom-half", "left-half", "right-half", "center-half"}, names)

	// Alias surfaces its action
	up := BuildMenu("up", nil)
	require.NotEmpty(t, up)
	assert.Equal(t, "top-half", up[0].Action)

	kw := func(action string) []string {
		if action == "maximize" {
			return []string{"wm"}
		}
		return nil
	}
	byKeyword := BuildMenu("wm", kw)
	require.Len(t, byKeyword, 1)
	assert.Equal(t, "maximize", byKeyword[0].Action)
	assert.Equal(t, []string{"wm"}, byKeyword[0].Keywords)

	assert.Empty(t, BuildMenu("zzz", nil))
}

func TestWriteTables(t *testing.T) {
	mon := 0
	wa := types.Rect{X: 0, Y: 34, Width: 800, Height: 600}
	windows := []*models.Window{
		{ID: 9, Title: "Terminal", WMClass: "kitty", Focused: true, Monitor: &mon, WindowArea: &wa},
		{ID: 3, Title: "A very long browser window title that keeps going", WMClass: "firefox"},
	}

	var buf bytes.Buffer
	WriteWindowsTable(&buf, windows)
	out := buf.String()
	assert.Contains(t, out, "kitty")
	assert.Contains(t, out, "800x600+0+34")
	assert.Contains(t, out, "...")
	assert.Less(t, strings.Index(out, "firefox"), strings.Index(out, "kitty"))
	assert.Equal(t, uint32(9), windows[0].ID, "input order must not change")

	buf.Reset()
	WriteActionsTable(&buf, layout.Actions()[:2], func(string) []string { return []string{"wh"} })
	assert.Contains(t, buf.String(), "top-half")
	assert.Contains(t, buf.String(), "wh")

	buf.Reset()
	no := false
	WriteWindowDetail(&buf, &models.Window{ID: 9, Title: "Terminal", CanResize: &no})
	assert.Contains(t, buf.String(), "Window ID: 9")
	assert.Contains(t, buf.String(), "Disabled: resize")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
	assert.Equal(t, "ééé...", truncate("éééééééé", 6))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
