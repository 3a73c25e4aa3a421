package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
)

// Address names the remote window-management object on the session bus
type Address struct {
	Destination string
	ObjectPath  string
	Interface   string
}

// DefaultAddress is the GNOME Shell "Window Calls" extension
var DefaultAddress = Address{
	Destination: "org.gnome.Shell",
	ObjectPath:  "/org/gnome/Shell/Extensions/WindowCalls",
	Interface:   "org.gnome.Shell.Extensions.WindowCalls",
}

// Caller performs one method call against the window service. Query methods
// return their reply body; commands return "".
type Caller interface {
	Call(ctx context.Context, method string, args ...interface{}) (string, error)
}

// Connection manages the D-Bus session connection to the window service
type Connection struct {
	addr    Address
	timeout time.Duration

	mu   sync.Mutex
	conn *dbus.Conn
}

// NewConnection creates a new connection instance
func NewConnection(addr Address, timeout time.Duration) *Connection {
	return &Connection{
		addr:    addr,
		timeout: timeout,
	}
}

// Connect establishes a private session bus connection
func (c *Connection) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return nil
	}
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}
	c.conn = conn
	return nil
}

// Close closes the connection
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// IsConnected returns true if the connection is established
func (c *Connection) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

func (c *Connection) object(ctx context.Context) (dbus.BusObject, context.Context, context.CancelFunc, error) {
	if err := c.Connect(); err != nil {
		return nil, ctx, func() {}, err
	}

	cancel := func() {}
	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
	}

	c.mu.Lock()
	obj := c.conn.Object(c.addr.Destination, dbus.ObjectPath(c.addr.ObjectPath))
	c.mu.Unlock()
	return obj, ctx, cancel, nil
}

// Call invokes Interface.method on the service object
func (c *Connection) Call(ctx context.Context, method string, args ...interface{}) (string, error) {
	obj, ctx, cancel, err := c.object(ctx)
	if err != nil {
		return "", err
	}
	defer cancel()

	call := obj.CallWithContext(ctx, c.addr.Interface+"."+method, 0, args...)
	if call.Err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%s cancelled or timed out: %w", method, ctx.Err())
		}
		return "", fmt.Errorf("%s: %w", method, call.Err)
	}

	if len(call.Body) == 0 {
		return "", nil
	}
	reply, ok := call.Body[0].(string)
	if !ok {
		return "", fmt.Errorf("%s: expected string reply, got %T", method, call.Body[0])
	}
	return reply, nil
}

// Ping checks that the service object answers on the bus
func (c *Connection) Ping(ctx context.Context) error {
	obj, ctx, cancel, err := c.object(ctx)
	if err != nil {
		return err
	}
	defer cancel()

	return obj.CallWithContext(ctx, "org.freedesktop.DBus.Peer.Ping", 0).Err
}

// busErrorMessage extracts the remote error text from a D-Bus error reply
func busErrorMessage(err error) (string, bool) {
	var value dbus.Error
	if errors.As(err, &value) {
		return value.Error(), true
	}
	var ptr *dbus.Error
	if errors.As(err, &ptr) {
		return ptr.Error(), true
	}
	return "", false
}
