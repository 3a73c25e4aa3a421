package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sys/unix"

	"github.com/yourusername/winplace/internal/layout"
	"github.com/yourusername/winplace/internal/models"
	"github.com/yourusername/winplace/internal/types"
)

// VisualizationOptions controls the appearance of the visualization
type VisualizationOptions struct {
	UseUnicode bool
	MaxWidth   int
	MaxHeight  int
}

// DefaultVisualizationOptions sizes the drawing to the terminal
func DefaultVisualizationOptions() VisualizationOptions {
	width, height := getTerminalSize()
	return VisualizationOptions{
		UseUnicode: supportsUnicode(),
		MaxWidth:   width,
		MaxHeight:  height - 4, // header and prompt
	}
}

// VisualizePlacement draws the work area with the rect an action would
// produce. Non-geometric commands draw the work area only.
func VisualizePlacement(workArea types.Rect, cmd layout.Command, opts VisualizationOptions) string {
	sc := NewScalingContext(workArea, opts.MaxWidth, opts.MaxHeight)
	canvas := NewCanvas(sc.Cols, sc.Rows, opts.UseUnicode)
	canvas.Box(sc.Canvas())

	header := fmt.Sprintf("Work area %s: %s\n", workArea, cmd)
	if cmd.Kind != layout.KindPlace {
		canvas.Label(sc.Canvas(), cmd.String())
		return header + canvas.String() + "\n"
	}

	target := sc.ToCanvas(cmd.Rect)
	canvas.Box(target)
	canvas.Label(target, fmt.Sprintf("%dx%d", cmd.Rect.Width, cmd.Rect.Height))
	return header + canvas.String() + "\n"
}

// VisualizeMonitors draws every monitor in its relative position
func VisualizeMonitors(monitors []models.Monitor, opts VisualizationOptions) string {
	if len(monitors) == 0 {
		return "No monitors found\n"
	}

	rects := make([]types.Rect, len(monitors))
	for i, m := range monitors {
		rects[i] = m.Geometry
	}
	sc := NewScalingContext(boundingBox(rects), opts.MaxWidth, opts.MaxHeight)
	canvas := NewCanvas(sc.Cols, sc.Rows, opts.UseUnicode)

	var legend strings.Builder
	for _, m := range monitors {
		r := sc.ToCanvas(m.Geometry)
		canvas.Box(r)
		name := fmt.Sprintf("%d %s", m.ID, m.Name)
		if m.IsPrimary {
			name += " *"
		}
		canvas.Label(r, name)
		fmt.Fprintf(&legend, "%d: %s %s\n", m.ID, m.Name, m.Geometry)
	}

	return canvas.String() + "\n" + legend.String()
}

// PrintVisualization writes a rendered visualization, colored unless disabled
func PrintVisualization(w io.Writer, rendered string) {
	if color.NoColor {
		fmt.Fprint(w, rendered)
		return
	}
	color.New(color.FgCyan).Fprint(w, rendered)
}

// getTerminalSize returns the current terminal dimensions
func getTerminalSize() (width, height int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		// Default to 80x24 if we can't detect
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// supportsUnicode checks if the terminal supports Unicode
func supportsUnicode() bool {
	for _, v := range []string{os.Getenv("LC_ALL"), os.Getenv("LANG")} {
		if strings.Contains(strings.ToUpper(v), "UTF-8") {
			return true
		}
	}
	return false
}
