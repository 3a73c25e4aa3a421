package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yourusername/winplace/internal/client"
	"github.com/yourusername/winplace/internal/config"
	"github.com/yourusername/winplace/internal/layout"
	"github.com/yourusername/winplace/internal/logging"
	"github.com/yourusername/winplace/internal/models"
	"github.com/yourusername/winplace/internal/monitor"
	"github.com/yourusername/winplace/internal/output"
	"github.com/yourusername/winplace/internal/types"
	"github.com/yourusername/winplace/internal/window"
	"github.com/yourusername/winplace/internal/x11"
)

var _ window.Service = (*client.Client)(nil)

var (
	configPath string
	timeout    time.Duration
	jsonOutput bool
	noColor    bool
	debugMode  bool

	// preview flags
	previewWorkArea string
	previewASCII    bool
	previewWidth    int
	previewHeight   int

	initForce     bool
	monitorVisual bool

	// Color functions
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	keyColor     = color.New(color.FgYellow)
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "winplace",
	Short: "Snap the focused GNOME window to screen regions",
	Long: `winplace moves and resizes the focused window on GNOME Shell through the
"Window Calls" extension on the session bus.

It backs a launcher plugin (query/enter) and can be driven directly (run).`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// pingCmd tests bus connectivity
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Test connection to the window service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c := newClient(cfg)
		defer c.Close()

		start := time.Now()
		err = c.Ping(context.Background())
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("ping failed: %w", err)
		}

		if jsonOutput {
			return printJSON(map[string]interface{}{
				"destination": cfg.Bus.Destination,
				"elapsed":     elapsed.String(),
			})
		}

		successColor.Println("✓ Window service reachable")
		keyColor.Print("Destination: ")
		fmt.Println(cfg.Bus.Destination)
		fmt.Printf("Response time: %v\n", elapsed)
		return nil
	},
}

// queryCmd lists launcher menu items
var queryCmd = &cobra.Command{
	Use:   "query [text...]",
	Short: "Print launcher menu items matching text as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		items := output.BuildMenu(strings.Join(args, " "), cfg.KeywordsFor)
		logging.Debug().Str("query", strings.Join(args, " ")).Int("items", len(items)).Msg("query")
		return printJSON(items)
	},
}

// enterCmd is the launcher's item-selected handler
var enterCmd = &cobra.Command{
	Use:   "enter <action|keyword>",
	Short: "Acknowledge a launcher selection and run it after the dispatch delay",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c := newClient(cfg)
		defer c.Close()

		name := resolveAction(cfg, args[0])
		router := newRouter(c, cfg)

		// Acknowledge first so the launcher can close and return focus
		if jsonOutput {
			printJSON(map[string]interface{}{"accepted": true, "action": name})
		}
		os.Stdout.Sync()

		router.Schedule(name, cfg.DispatchDelay.Std())
		router.Wait()
		return nil
	},
}

// runCmd dispatches synchronously
var runCmd = &cobra.Command{
	Use:   "run <action|keyword>",
	Short: "Apply an action to the focused window now",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c := newClient(cfg)
		defer c.Close()

		res := newRouter(c, cfg).Dispatch(context.Background(), resolveAction(cfg, args[0]))

		if jsonOutput {
			return printResultJSON(res)
		}

		switch {
		case res.OK():
			successColor.Printf("✓ %s ", res.Action)
			fmt.Printf("→ window %d: %s\n", res.WindowID, res.Command)
			return nil
		case errors.Is(res.Err, window.ErrNoFocus):
			warnColor.Println("No focused window; nothing to do")
			return nil
		default:
			return res.Err
		}
	},
}

// actionsCmd lists the action table
var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List available actions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(output.BuildMenu("", cfg.KeywordsFor))
		}

		output.PrintActionsTable(layout.Actions(), cfg.KeywordsFor)

		aliases := layout.Aliases()
		keyColor.Println("\nAliases:")
		for _, a := range []string{"up", "down", "left", "right"} {
			fmt.Printf("  %-6s → %s\n", a, aliases[a])
		}
		return nil
	},
}

// previewCmd draws where an action would put the window
var previewCmd = &cobra.Command{
	Use:   "preview <action|keyword>",
	Short: "Show the geometry an action produces without moving anything",
	Long: `Computes the command for an action and draws it against the work area.

The work area comes from the focused window's monitor unless --workarea
(WxH+X+Y) is given, in which case no bus calls are made.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		name := resolveAction(cfg, args[0])
		action, ok := layout.Lookup(name)
		if !ok {
			return &layout.UnknownActionError{Action: args[0]}
		}

		var wa types.Rect
		if previewWorkArea != "" {
			wa, err = types.ParseRect(previewWorkArea)
			if err != nil {
				return err
			}
		} else {
			c := newClient(cfg)
			defer c.Close()
			loc, err := newLocator(c, cfg).Locate(context.Background())
			if err != nil {
				return fmt.Errorf("failed to locate focused monitor: %w", err)
			}
			if loc == nil {
				return window.ErrNoFocus
			}
			wa = loc.WorkArea
		}

		command, err := action.Command(wa)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(map[string]interface{}{
				"action":   action.Name,
				"workArea": wa,
				"command":  command,
			})
		}

		output.PrintVisualization(os.Stdout, output.VisualizePlacement(wa, command, getVisualizationOptions()))
		return nil
	},
}

// listCmd groups listing subcommands
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List windows or monitors",
}

var listWindowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List all windows",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c := newClient(cfg)
		defer c.Close()

		windows, err := c.ListWindows(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list windows: %w", err)
		}

		if jsonOutput {
			return printJSON(windows)
		}

		output.PrintWindowsTable(windows)
		infoColor.Printf("\nTotal: %d windows\n", len(windows))
		return nil
	},
}

var listMonitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List active monitors (xrandr)",
	RunE: func(cmd *cobra.Command, args []string) error {
		monitors, err := monitor.ListActive(context.Background(), nil)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(monitors)
		}

		if monitorVisual {
			output.PrintVisualization(os.Stdout, output.VisualizeMonitors(monitors, getVisualizationOptions()))
			return nil
		}
		output.PrintMonitorsTable(monitors)
		return nil
	},
}

// windowCmd groups window inspection subcommands
var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Inspect windows",
}

var windowGetCmd = &cobra.Command{
	Use:   "get <window-id>",
	Short: "Show full details of a window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseWindowID(args[0])
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c := newClient(cfg)
		defer c.Close()

		win, err := c.GetWindowDetails(context.Background(), id)
		if err != nil {
			return err
		}
		return printWindow(win)
	},
}

var windowFocusedCmd = &cobra.Command{
	Use:   "focused",
	Short: "Show the focused window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c := newClient(cfg)
		defer c.Close()

		ctx := context.Background()
		id, ok, err := c.GetFocusedWindowID(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return window.ErrNoFocus
		}
		win, err := c.GetWindowDetails(ctx, id)
		if err != nil {
			return err
		}
		return printWindow(win)
	},
}

// monitorCmd groups monitor inspection subcommands
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Inspect monitors and work areas",
}

var monitorFocusedCmd = &cobra.Command{
	Use:   "focused",
	Short: "Show the monitor the service reports as focused",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c := newClient(cfg)
		defer c.Close()

		mon, err := c.GetFocusedMonitorDetails(context.Background())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(mon)
		}
		output.PrintMonitorsTable([]models.Monitor{*mon})
		return nil
	},
}

var monitorLocateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Resolve the focused window's monitor and work area",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c := newClient(cfg)
		defer c.Close()

		loc, err := newLocator(c, cfg).Locate(context.Background())
		if err != nil {
			return err
		}
		if loc == nil {
			return window.ErrNoFocus
		}

		if jsonOutput {
			return printJSON(map[string]interface{}{
				"windowId": loc.WindowID,
				"monitor":  loc.MonitorID,
				"workArea": loc.WorkArea,
				"source":   loc.Source,
			})
		}

		keyColor.Print("Window: ")
		fmt.Printf("%d (%s)\n", loc.WindowID, loc.Window.DisplayName())
		keyColor.Print("Monitor: ")
		fmt.Println(loc.MonitorID)
		keyColor.Print("Work area: ")
		fmt.Printf("%s (from %s)\n", loc.WorkArea, loc.Source)
		return nil
	},
}

var monitorWorkareaCmd = &cobra.Command{
	Use:   "workarea",
	Short: "Show panel insets from _NET_WORKAREA",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := x11.OpenDisplay()
		if err != nil {
			return fmt.Errorf("failed to connect to X server: %w", err)
		}
		defer d.Close()

		insets, err := d.WorkareaInsets()
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(insets)
		}
		fmt.Printf("Top: %d  Bottom: %d  Left: %d  Right: %d\n", insets.Top, insets.Bottom, insets.Left, insets.Right)
		return nil
	},
}

// configCmd groups config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cfg)
		}
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(cfg)
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if len(args) > 0 {
			path = args[0]
		}

		cfg, err := config.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		successColor.Println("✓ Configuration is valid")
		fmt.Printf("  Destination: %s\n", cfg.Bus.Destination)
		fmt.Printf("  Timeout: %s\n", cfg.Timeout)
		fmt.Printf("  Keywords: %d\n", len(cfg.Keywords))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.GetConfigPath()
		}
		if err := config.WriteDefault(path, initForce); err != nil {
			return err
		}
		successColor.Printf("✓ Created %s\n", path)
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/winplace/config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Bus call timeout (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(enterCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(actionsCmd)
	rootCmd.AddCommand(previewCmd)

	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listWindowsCmd)
	listCmd.AddCommand(listMonitorsCmd)
	listMonitorsCmd.Flags().BoolVar(&monitorVisual, "visual", false, "Draw monitors instead of a table")

	rootCmd.AddCommand(windowCmd)
	windowCmd.AddCommand(windowGetCmd)
	windowCmd.AddCommand(windowFocusedCmd)

	rootCmd.AddCommand(monitorCmd)
	monitorCmd.AddCommand(monitorFocusedCmd)
	monitorCmd.AddCommand(monitorLocateCmd)
	monitorCmd.AddCommand(monitorWorkareaCmd)

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")

	for _, cmd := range []*cobra.Command{previewCmd, listMonitorsCmd} {
		cmd.Flags().BoolVar(&previewASCII, "ascii", false, "Force ASCII mode (no Unicode)")
		cmd.Flags().IntVar(&previewWidth, "width", 0, "Override terminal width")
		cmd.Flags().IntVar(&previewHeight, "height", 0, "Override terminal height")
	}
	previewCmd.Flags().StringVar(&previewWorkArea, "workarea", "", "Work area as WxH+X+Y instead of querying the focused monitor")

	// Disable color if requested, enable debug logging if requested
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
		if debugMode {
			logging.SetDebug(true)
		}
	})
}

func main() {
	// Logging is best effort; the launcher has no stderr to show failures on
	if err := logging.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "warning: logging disabled:", err)
	}
	defer logging.Close()

	if err := rootCmd.Execute(); err != nil {
		printError(err.Error())
		logging.Close()
		os.Exit(1)
	}
}

// Helper functions

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if timeout > 0 {
		cfg.Timeout = config.Duration(timeout)
	}
	return cfg, nil
}

func newClient(cfg *config.Config) *client.Client {
	return client.NewClient(cfg.Bus.Address(), cfg.Timeout.Std())
}

func newFallback(cfg *config.Config) monitor.Fallback {
	return monitor.NewXrandrFallback(cfg.FallbackBarHeight)
}

func newLocator(c *client.Client, cfg *config.Config) *monitor.Locator {
	return monitor.NewLocator(c, newFallback(cfg))
}

func newRouter(c *client.Client, cfg *config.Config) *window.Router {
	return window.NewRouter(c, newFallback(cfg), logging.Logger)
}

// resolveAction maps keywords and aliases to action names. Unknown input is
// passed through so the router reports it.
func resolveAction(cfg *config.Config, input string) string {
	if name, ok := cfg.ResolveKeyword(input); ok {
		return name
	}
	return input
}

func parseWindowID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid window ID: %s", s)
	}
	return uint32(id), nil
}

func printWindow(win *models.Window) error {
	if jsonOutput {
		return printJSON(win)
	}
	output.PrintWindowDetail(win)
	return nil
}

func printResultJSON(res window.Result) error {
	out := map[string]interface{}{
		"id":       res.ID,
		"action":   res.Action,
		"state":    res.State,
		"duration": res.Duration.String(),
	}
	if res.WindowID != 0 {
		out["windowId"] = res.WindowID
		out["workArea"] = res.WorkArea
	}
	if res.State == window.StateDispatched {
		out["command"] = res.Command
	}
	if res.Err != nil {
		out["error"] = res.Err.Error()
	}
	return printJSON(out)
}

func printJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printError(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, "Error:", msg)
	} else {
		errorColor.Fprint(os.Stderr, "✗ Error: ")
		fmt.Fprintln(os.Stderr, msg)
	}
}

// getVisualizationOptions builds options from flags
func getVisualizationOptions() output.VisualizationOptions {
	opts := output.DefaultVisualizationOptions()
	if previewASCII {
		opts.UseUnicode = false
	}
	if previewWidth > 0 {
		opts.MaxWidth = previewWidth
	}
	if previewHeight > 0 {
		opts.MaxHeight = previewHeight
	}
	return opts
}
