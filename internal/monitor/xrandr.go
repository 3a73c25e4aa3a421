package monitor

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"

	"github.com/yourusername/winplace/internal/models"
	"github.com/yourusername/winplace/internal/types"
)

// Runner executes an external command and returns its stdout
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Matches lines such as:
//
//	0: +*eDP-1 1920/344x1080/193+0+0  eDP-1
//	1: +HDMI-1 2560/597x1440/336+1920+0  HDMI-1
var activeMonitorRe = regexp.MustCompile(`(?m)^\s*(\d+): (\+\*?)(\S+) (\d+)/\d+x(\d+)/\d+(?:\+(-?\d+)\+(-?\d+))?`)

// ParseActiveMonitors parses `xrandr --listactivemonitors` output
func ParseActiveMonitors(output string) []models.Monitor {
	var monitors []models.Monitor
	for _, m := range activeMonitorRe.FindAllStringSubmatch(output, -1) {
		id, _ := strconv.Atoi(m[1])
		width, _ := strconv.Atoi(m[4])
		height, _ := strconv.Atoi(m[5])
		x, _ := strconv.Atoi(m[6])
		y, _ := strconv.Atoi(m[7])

		geometry := types.Rect{X: x, Y: y, Width: width, Height: height}
		monitors = append(monitors, models.Monitor{
			ID:        id,
			Name:      m[3],
			Geometry:  geometry,
			WorkArea:  geometry,
			IsPrimary: m[2] == "+*",
		})
	}
	return monitors
}

// ListActive enumerates active monitors via xrandr
func ListActive(ctx context.Context, run Runner) ([]models.Monitor, error) {
	if run == nil {
		run = ExecRunner
	}
	out, err := run(ctx, "xrandr", "--listactivemonitors")
	if err != nil {
		return nil, fmt.Errorf("xrandr failed: %w", err)
	}
	return ParseActiveMonitors(string(out)), nil
}

// FindByID returns the monitor with the given index
func FindByID(monitors []models.Monitor, id int) (models.Monitor, bool) {
	for _, m := range monitors {
		if m.ID == id {
			return m, true
		}
	}
	return models.Monitor{}, false
}
