package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/yourusername/winplace/internal/layout"
	"github.com/yourusername/winplace/internal/models"
)

// PrintWindowsTable prints windows in a table format
func PrintWindowsTable(windows []*models.Window) {
	WriteWindowsTable(os.Stdout, windows)
}

// WriteWindowsTable writes the windows table to w
func WriteWindowsTable(w io.Writer, windows []*models.Window) {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Title", "Class", "Monitor", "Geometry", "Focus", "Here")

	sorted := make([]*models.Window, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	for _, win := range sorted {
		monitor := "-"
		if idx := win.MonitorIndex(); idx >= 0 {
			monitor = fmt.Sprintf("%d", idx)
		}
		geometry := "-"
		if win.WindowArea != nil {
			geometry = win.WindowArea.String()
		}

		table.Append(
			fmt.Sprintf("%d", win.ID),
			truncate(win.Title, 30),
			truncate(win.WMClass, 20),
			monitor,
			geometry,
			mark(win.Focused),
			mark(win.InCurrentWorkspace),
		)
	}

	table.Render()
}

// PrintMonitorsTable prints monitors in a table format
func PrintMonitorsTable(monitors []models.Monitor) {
	WriteMonitorsTable(os.Stdout, monitors)
}

// WriteMonitorsTable writes the monitors table to w
func WriteMonitorsTable(w io.Writer, monitors []models.Monitor) {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Geometry", "Work Area", "Primary")

	for _, m := range monitors {
		table.Append(
			fmt.Sprintf("%d", m.ID),
			truncate(m.Name, 20),
			m.Geometry.String(),
			m.UsableArea().String(),
			mark(m.IsPrimary),
		)
	}

	table.Render()
}

// PrintActionsTable prints the action table with any bound keywords
func PrintActionsTable(actions []layout.Action, keywordsFor func(string) []string) {
	WriteActionsTable(os.Stdout, actions, keywordsFor)
}

// WriteActionsTable writes the actions table to w
func WriteActionsTable(w io.Writer, actions []layout.Action, keywordsFor func(string) []string) {
	table := tablewriter.NewWriter(w)
	table.Header("Action", "Title", "Kind", "Keywords", "Description")

	for _, a := range actions {
		keywords := "-"
		if keywordsFor != nil {
			if kws := keywordsFor(a.Name); len(kws) > 0 {
				keywords = strings.Join(kws, ", ")
			}
		}
		table.Append(
			a.Name,
			a.Title,
			string(a.Kind),
			keywords,
			truncate(a.Description, 50),
		)
	}

	table.Render()
}

// PrintWindowDetail prints detailed information about a single window
func PrintWindowDetail(win *models.Window) {
	WriteWindowDetail(os.Stdout, win)
}

// WriteWindowDetail writes the window detail block to w
func WriteWindowDetail(w io.Writer, win *models.Window) {
	fmt.Fprintf(w, "Window ID: %d\n", win.ID)
	fmt.Fprintf(w, "Title: %s\n", win.Title)
	fmt.Fprintf(w, "Class: %s (PID: %d)\n", win.WMClass, win.PID)
	if win.WMClassInstance != "" {
		fmt.Fprintf(w, "Instance: %s\n", win.WMClassInstance)
	}
	if idx := win.MonitorIndex(); idx >= 0 {
		fmt.Fprintf(w, "Monitor: %d\n", idx)
	}
	if win.WindowArea != nil {
		fmt.Fprintf(w, "Frame: %s\n", win.WindowArea)
	}
	if win.CurrentMonitorWorkArea != nil {
		fmt.Fprintf(w, "Work Area: %s\n", win.CurrentMonitorWorkArea)
	}
	fmt.Fprintf(w, "Focused: %v\n", win.Focused)
	fmt.Fprintf(w, "Maximized: %v\n", win.IsMaximized())

	var denied []string
	for _, c := range []models.Capability{models.CapMove, models.CapResize, models.CapMaximize, models.CapMinimize, models.CapClose} {
		if !win.Can(c) {
			denied = append(denied, string(c))
		}
	}
	if len(denied) > 0 {
		fmt.Fprintf(w, "Disabled: %s\n", strings.Join(denied, ", "))
	}
}

// Helper functions

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

func mark(b bool) string {
	if b {
		return "yes"
	}
	return ""
}
