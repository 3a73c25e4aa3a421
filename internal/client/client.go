package client

import (
	"context"
	"io"
	"time"

	"github.com/yourusername/winplace/internal/models"
	"github.com/yourusername/winplace/internal/types"
)

const (
	DefaultTimeout = 5 * time.Second
)

// Client is a typed wrapper around the window-management RPC surface.
// Every query returns a fresh snapshot; nothing is cached.
type Client struct {
	caller Caller
}

// NewClient creates a client talking D-Bus to addr
func NewClient(addr Address, timeout time.Duration) *Client {
	if addr == (Address{}) {
		addr = DefaultAddress
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		caller: NewConnection(addr, timeout),
	}
}

// New creates a client over an arbitrary Caller
func New(caller Caller) *Client {
	return &Client{caller: caller}
}

// Close closes the underlying transport if it holds resources
func (c *Client) Close() error {
	if closer, ok := c.caller.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Ping tests connectivity when the transport supports it
func (c *Client) Ping(ctx context.Context) error {
	pinger, ok := c.caller.(interface {
		Ping(context.Context) error
	})
	if !ok {
		return nil
	}
	if err := pinger.Ping(ctx); err != nil {
		return &TransportError{Method: "Ping", Err: err}
	}
	return nil
}

// call is a helper to send a request and classify its failure
func (c *Client) call(ctx context.Context, method string, windowID uint32, args ...interface{}) (string, error) {
	reply, err := c.caller.Call(ctx, method, args...)
	if err != nil {
		return "", classify(method, windowID, err)
	}
	return reply, nil
}

// command sends a fire-and-forget window command. Success is RPC completion.
func (c *Client) command(ctx context.Context, method string, windowID uint32, args ...interface{}) error {
	_, err := c.call(ctx, method, windowID, append([]interface{}{windowID}, args...)...)
	return err
}

// ListWindows returns the partial records of every window
func (c *Client) ListWindows(ctx context.Context) ([]*models.Window, error) {
	reply, err := c.call(ctx, "List", 0)
	if err != nil {
		return nil, err
	}
	return models.DecodeWindows(reply)
}

// GetWindowDetails returns the full record of one window
func (c *Client) GetWindowDetails(ctx context.Context, windowID uint32) (*models.Window, error) {
	reply, err := c.call(ctx, "Details", windowID, windowID)
	if err != nil {
		return nil, err
	}
	return models.DecodeWindow(reply)
}

// GetFocusedMonitorDetails returns the monitor that currently holds focus
func (c *Client) GetFocusedMonitorDetails(ctx context.Context) (*models.Monitor, error) {
	reply, err := c.call(ctx, "GetFocusedMonitorDetails", 0)
	if err != nil {
		return nil, err
	}
	return models.DecodeMonitor(reply)
}

// GetTitle returns a window's title
func (c *Client) GetTitle(ctx context.Context, windowID uint32) (string, error) {
	return c.call(ctx, "GetTitle", windowID, windowID)
}

// GetFrameRect returns the window's frame rectangle
func (c *Client) GetFrameRect(ctx context.Context, windowID uint32) (types.Rect, error) {
	reply, err := c.call(ctx, "GetFrameRect", windowID, windowID)
	if err != nil {
		return types.Rect{}, err
	}
	return models.DecodeRect(reply)
}

// GetFocusedWindowID scans the window list for the focused entry. When the
// service reports more than one, the first in list order wins. ok is false
// when nothing is focused.
func (c *Client) GetFocusedWindowID(ctx context.Context) (id uint32, ok bool, err error) {
	windows, err := c.ListWindows(ctx)
	if err != nil {
		return 0, false, err
	}
	for _, w := range windows {
		if w.Focused {
			return w.ID, true, nil
		}
	}
	return 0, false, nil
}

// Place moves and resizes a window in one step
func (c *Client) Place(ctx context.Context, windowID uint32, r types.Rect) error {
	return c.command(ctx, "Place", windowID, int32(r.X), int32(r.Y), uint32(r.Width), uint32(r.Height))
}

// Move repositions a window without resizing it
func (c *Client) Move(ctx context.Context, windowID uint32, x, y int) error {
	return c.command(ctx, "Move", windowID, int32(x), int32(y))
}

// Resize changes a window's size in place
func (c *Client) Resize(ctx context.Context, windowID uint32, width, height int) error {
	return c.command(ctx, "Resize", windowID, uint32(width), uint32(height))
}

// MoveResize is the older API name for Place
func (c *Client) MoveResize(ctx context.Context, windowID uint32, r types.Rect) error {
	return c.command(ctx, "MoveResize", windowID, int32(r.X), int32(r.Y), uint32(r.Width), uint32(r.Height))
}

// MoveToWorkspace sends the window to the neighbouring workspace
func (c *Client) MoveToWorkspace(ctx context.Context, windowID uint32, dir types.Direction) error {
	return c.command(ctx, "MoveToWorkspace", windowID, dir.String())
}

// MoveToMonitor sends the window to the neighbouring monitor
func (c *Client) MoveToMonitor(ctx context.Context, windowID uint32, dir types.Direction) error {
	return c.command(ctx, "MoveToMonitor", windowID, dir.String())
}

func (c *Client) Maximize(ctx context.Context, windowID uint32) error {
	return c.command(ctx, "Maximize", windowID)
}

func (c *Client) Unmaximize(ctx context.Context, windowID uint32) error {
	return c.command(ctx, "Unmaximize", windowID)
}

func (c *Client) Minimize(ctx context.Context, windowID uint32) error {
	return c.command(ctx, "Minimize", windowID)
}

func (c *Client) Unminimize(ctx context.Context, windowID uint32) error {
	return c.command(ctx, "Unminimize", windowID)
}

func (c *Client) Activate(ctx context.Context, windowID uint32) error {
	return c.command(ctx, "Activate", windowID)
}

// CloseWindow asks the window to close; force kills it without confirmation
func (c *Client) CloseWindow(ctx context.Context, windowID uint32, force bool) error {
	return c.command(ctx, "Close", windowID, force)
}

func (c *Client) ToggleFullscreen(ctx context.Context, windowID uint32) error {
	return c.command(ctx, "ToggleFullscreen", windowID)
}
