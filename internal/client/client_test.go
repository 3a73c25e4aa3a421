package client

import (
	"context"
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/winplace/internal/models"
	"github.com/yourusername/winplace/internal/types"
)

type recordedCall struct {
	method string
	args   []interface{}
}

// fakeCaller answers from canned replies and records every call
type fakeCaller struct {
	replies map[string]string
	errs    map[string]error
	calls   []recordedCall
}

func (f *fakeCaller) Call(_ context.Context, method string, args ...interface{}) (string, error) {
	f.calls = append(f.calls, recordedCall{method: method, args: args})
	if err, ok := f.errs[method]; ok {
		return "", err
	}
	return f.replies[method], nil
}

func TestGetFocusedWindowID(t *testing.T) {
	tests := []struct {
		name   string
		list   string
		wantID uint32
		wantOK bool
	}{
		{
			name:   "single focused",
			list:   `[{"id":10,"focus":false},{"id":11,"focus":true},{"id":12,"focus":false}]`,
			wantID: 11,
			wantOK: true,
		},
		{
			name:   "first focused wins in list order",
			list:   `[{"id":20,"focus":false},{"id":21,"focus":true},{"id":22,"focus":true}]`,
			wantID: 21,
			wantOK: true,
		},
		{
			name:   "nothing focused",
			list:   `[{"id":30,"focus":false}]`,
			wantOK: false,
		},
		{
			name:   "empty list",
			list:   `[]`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(&fakeCaller{replies: map[string]string{"List": tt.list}})

			id, ok, err := c.GetFocusedWindowID(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestGetFocusedWindowID_Malformed(t *testing.T) {
	c := New(&fakeCaller{replies: map[string]string{"List": "<html>"}})

	_, _, err := c.GetFocusedWindowID(context.Background())
	var mre *models.MalformedResponseError
	assert.ErrorAs(t, err, &mre)
}

func TestGetWindowDetails(t *testing.T) {
	fc := &fakeCaller{replies: map[string]string{
		"Details": `{"id":42,"monitor":0,"currentMonitorWorkArea":{"x":0,"y":34,"width":1920,"height":1046}}`,
	}}
	c := New(fc)

	w, err := c.GetWindowDetails(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), w.ID)
	require.NotNil(t, w.CurrentMonitorWorkArea)
	assert.Equal(t, types.Rect{X: 0, Y: 34, Width: 1920, Height: 1046}, *w.CurrentMonitorWorkArea)

	require.Len(t, fc.calls, 1)
	assert.Equal(t, []interface{}{uint32(42)}, fc.calls[0].args)
}

func TestGetWindowDetails_NotFound(t *testing.T) {
	c := New(&fakeCaller{errs: map[string]error{
		"Details": dbus.Error{Name: "org.gnome.gjs.JSError.Error", Body: []interface{}{"Not found"}},
	}})

	_, err := c.GetWindowDetails(context.Background(), 99)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, uint32(99), nf.WindowID)
}

func TestTransportError(t *testing.T) {
	c := New(&fakeCaller{errs: map[string]error{
		"List":     errors.New("failed to connect to session bus: no such file"),
		"Maximize": errors.New("connection reset"),
	}})

	_, err := c.ListWindows(context.Background())
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "List", te.Method)

	err = c.Maximize(context.Background(), 5)
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "Maximize", te.Method)
}

func TestTransportError_LocalNotFoundText(t *testing.T) {
	c := New(&fakeCaller{errs: map[string]error{
		"Maximize": errors.New(`failed to connect to session bus: exec: "dbus-launch": executable file not found in $PATH`),
	}})

	err := c.Maximize(context.Background(), 5)
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "Maximize", te.Method)

	var nf *NotFoundError
	assert.False(t, errors.As(err, &nf))
}

func TestCommandArguments(t *testing.T) {
	fc := &fakeCaller{}
	c := New(fc)
	ctx := context.Background()

	require.NoError(t, c.Place(ctx, 7, types.Rect{X: 0, Y: 34, Width: 960, Height: 1046}))
	require.NoError(t, c.MoveToWorkspace(ctx, 7, types.DirRight))
	require.NoError(t, c.MoveToMonitor(ctx, 7, types.DirLeft))
	require.NoError(t, c.CloseWindow(ctx, 7, true))
	require.NoError(t, c.ToggleFullscreen(ctx, 7))
	require.NoError(t, c.Move(ctx, 7, 10, 20))
	require.NoError(t, c.Resize(ctx, 7, 300, 200))

	want := []recordedCall{
		{"Place", []interface{}{uint32(7), int32(0), int32(34), uint32(960), uint32(1046)}},
		{"MoveToWorkspace", []interface{}{uint32(7), "right"}},
		{"MoveToMonitor", []interface{}{uint32(7), "left"}},
		{"Close", []interface{}{uint32(7), true}},
		{"ToggleFullscreen", []interface{}{uint32(7)}},
		{"Move", []interface{}{uint32(7), int32(10), int32(20)}},
		{"Resize", []interface{}{uint32(7), uint32(300), uint32(200)}},
	}
	assert.Equal(t, want, fc.calls)
}

func TestGetFocusedMonitorDetails(t *testing.T) {
	c := New(&fakeCaller{replies: map[string]string{
		"GetFocusedMonitorDetails": `{"id":1,"geometry":{"x":1920,"y":0,"width":2560,"height":1440}}`,
	}})

	m, err := c.GetFocusedMonitorDetails(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, m.ID)
	assert.Equal(t, types.Rect{X: 1920, Width: 2560, Height: 1440}, m.Geometry)
}

func TestGetFrameRect(t *testing.T) {
	c := New(&fakeCaller{replies: map[string]string{
		"GetFrameRect": `{"x":100,"y":200,"width":640,"height":480}`,
	}})

	r, err := c.GetFrameRect(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, types.Rect{X: 100, Y: 200, Width: 640, Height: 480}, r)
}

func TestPingWithoutPinger(t *testing.T) {
	c := New(&fakeCaller{})
	assert.NoError(t, c.Ping(context.Background()))
	assert.NoError(t, c.Close())
}
