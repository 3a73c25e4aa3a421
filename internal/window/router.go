package window

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yourusername/winplace/internal/layout"
	"github.com/yourusername/winplace/internal/models"
	"github.com/yourusername/winplace/internal/monitor"
	"github.com/yourusername/winplace/internal/types"
)

// DefaultDelay is how long Schedule waits before dispatching, giving the
// launcher UI time to close and return focus to the target window
const DefaultDelay = 50 * time.Millisecond

// Service is the window service surface the router drives
type Service interface {
	monitor.WindowService
	Place(ctx context.Context, windowID uint32, r types.Rect) error
	Maximize(ctx context.Context, windowID uint32) error
	Unmaximize(ctx context.Context, windowID uint32) error
	Minimize(ctx context.Context, windowID uint32) error
	CloseWindow(ctx context.Context, windowID uint32, force bool) error
	ToggleFullscreen(ctx context.Context, windowID uint32) error
	MoveToWorkspace(ctx context.Context, windowID uint32, dir types.Direction) error
	MoveToMonitor(ctx context.Context, windowID uint32, dir types.Direction) error
}

// State is the lifecycle position of one invocation
type State string

const (
	StateIdle       State = "idle"
	StateResolving  State = "resolving"
	StateDispatched State = "dispatched"
	StateAborted    State = "aborted"
)

// ErrNoFocus means no window had focus when the action ran
var ErrNoFocus = errors.New("no focused window")

// Result describes the outcome of one invocation
type Result struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	State     State          `json:"state"`
	Command   layout.Command `json:"command"`
	WindowID  uint32         `json:"windowId,omitempty"`
	MonitorID int            `json:"monitorId"`
	WorkArea  types.Rect     `json:"workArea"`
	Duration  time.Duration  `json:"duration"`
	Err       error          `json:"-"`
}

// OK reports whether the command was delivered
func (r Result) OK() bool {
	return r.State == StateDispatched && r.Err == nil
}

// Router turns an action name into one command against the focused window
type Router struct {
	svc     Service
	locator *monitor.Locator
	logger  zerolog.Logger
	wg      sync.WaitGroup
}

// NewRouter creates a router. fallback may be nil.
func NewRouter(svc Service, fallback monitor.Fallback, logger zerolog.Logger) *Router {
	return &Router{
		svc:     svc,
		locator: monitor.NewLocator(svc, fallback),
		logger:  logger,
	}
}

// Dispatch runs one action synchronously. Each call starts from a fresh
// snapshot of the focused window; nothing is cached across calls.
func (r *Router) Dispatch(ctx context.Context, name string) Result {
	start := time.Now()
	res := Result{ID: uuid.NewString(), Action: name, State: StateIdle, MonitorID: -1}
	log := r.logger.With().Str("invocation", res.ID).Str("action", name).Logger()

	abort := func(err error, msg string) Result {
		res.State = StateAborted
		res.Err = err
		res.Duration = time.Since(start)
		log.Error().Err(err).Msg(msg)
		return res
	}

	action, ok := layout.Lookup(name)
	if !ok {
		return abort(&layout.UnknownActionError{Action: name}, "unknown action")
	}
	res.Action = action.Name
	res.State = StateResolving

	loc, err := r.locator.Locate(ctx)
	if err != nil {
		return abort(err, "failed to locate focused monitor")
	}
	if loc == nil {
		return abort(ErrNoFocus, "no focused window, nothing to do")
	}
	res.WindowID = loc.WindowID
	res.MonitorID = loc.MonitorID
	res.WorkArea = loc.WorkArea

	cmd, err := action.Command(loc.WorkArea)
	if err != nil {
		return abort(err, "failed to compute placement")
	}
	res.Command = cmd

	r.checkCapabilities(log, loc.Window, cmd)

	if err := r.send(ctx, loc.WindowID, cmd); err != nil {
		return abort(err, "command failed")
	}

	res.State = StateDispatched
	res.Duration = time.Since(start)
	log.Info().
		Uint32("windowId", loc.WindowID).
		Int("monitor", loc.MonitorID).
		Str("workArea", loc.WorkArea.String()).
		Str("source", loc.Source).
		Str("command", cmd.String()).
		Dur("took", res.Duration).
		Msg("dispatched")
	return res
}

func (r *Router) send(ctx context.Context, windowID uint32, cmd layout.Command) error {
	switch cmd.Kind {
	case layout.KindPlace:
		return r.svc.Place(ctx, windowID, cmd.Rect)
	case layout.KindMaximize:
		return r.svc.Maximize(ctx, windowID)
	case layout.KindUnmaximize:
		return r.svc.Unmaximize(ctx, windowID)
	case layout.KindMinimize:
		return r.svc.Minimize(ctx, windowID)
	case layout.KindClose:
		return r.svc.CloseWindow(ctx, windowID, cmd.Force)
	case layout.KindFullscreen:
		return r.svc.ToggleFullscreen(ctx, windowID)
	case layout.KindWorkspaceMove:
		return r.svc.MoveToWorkspace(ctx, windowID, cmd.Direction)
	case layout.KindMonitorMove:
		return r.svc.MoveToMonitor(ctx, windowID, cmd.Direction)
	default:
		return fmt.Errorf("unhandled command kind %q", cmd.Kind)
	}
}

func requiredCapabilities(kind layout.Kind) []models.Capability {
	switch kind {
	case layout.KindPlace:
		return []models.Capability{models.CapMove, models.CapResize}
	case layout.KindMaximize, layout.KindUnmaximize:
		return []models.Capability{models.CapMaximize}
	case layout.KindMinimize:
		return []models.Capability{models.CapMinimize}
	case layout.KindClose:
		return []models.Capability{models.CapClose}
	case layout.KindWorkspaceMove, layout.KindMonitorMove:
		return []models.Capability{models.CapMove}
	default:
		return nil
	}
}

// The command is still sent; the shell decides whether to honor it.
func (r *Router) checkCapabilities(log zerolog.Logger, w *models.Window, cmd layout.Command) {
	if w == nil {
		return
	}
	for _, c := range requiredCapabilities(cmd.Kind) {
		if !w.Can(c) {
			log.Warn().
				Uint32("windowId", w.ID).
				Str("capability", string(c)).
				Str("command", cmd.String()).
				Msg("window reports capability disabled")
		}
	}
}

// Schedule runs the action after delay on its own goroutine and returns
// immediately. Failures are logged, never raised. A negative delay uses
// DefaultDelay.
func (r *Router) Schedule(name string, delay time.Duration) {
	if delay < 0 {
		delay = DefaultDelay
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if p := recover(); p != nil {
				r.logger.Error().
					Str("action", name).
					Interface("panic", p).
					Msg("scheduled action panicked")
			}
		}()

		time.Sleep(delay)
		r.Dispatch(context.Background(), name)
	}()
}

// Wait blocks until all scheduled actions have finished
func (r *Router) Wait() {
	r.wg.Wait()
}
