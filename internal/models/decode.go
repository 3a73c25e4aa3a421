package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/yourusername/winplace/internal/types"
)

// MalformedResponseError reports a service payload that could not be decoded
type MalformedResponseError struct {
	Payload string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response %q: %v", snippet(e.Payload), e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

func malformed(payload string, format string, args ...interface{}) error {
	return &MalformedResponseError{Payload: payload, Err: fmt.Errorf(format, args...)}
}

func snippet(s string) string {
	if len(s) <= 64 {
		return s
	}
	return s[:61] + "..."
}

// rectFields are the window fields carrying a rectangle
var rectFields = []string{"windowArea", "currentMonitorWorkArea", "allMonitorsWorkArea"}

var knownWindowFields = map[string]bool{
	"id": true, "pid": true, "wm_class": true, "wm_class_instance": true,
	"title": true, "role": true, "focus": true, "in_current_workspace": true,
	"frame_type": true, "window_type": true, "layer": true, "monitor": true,
	"maximized": true, "canMove": true, "canResize": true, "canClose": true,
	"canMaximize": true, "canMinimize": true,
	"windowArea": true, "currentMonitorWorkArea": true, "allMonitorsWorkArea": true,
}

// UnmarshalJSON decodes a window record. Rect fields accept either the
// object form or the [[x,y],[w,h]] array form; unmodeled keys land in Extra.
func (w *Window) UnmarshalJSON(data []byte) error {
	type windowAlias Window
	aux := struct {
		*windowAlias
		WindowArea             json.RawMessage `json:"windowArea"`
		CurrentMonitorWorkArea json.RawMessage `json:"currentMonitorWorkArea"`
		AllMonitorsWorkArea    json.RawMessage `json:"allMonitorsWorkArea"`
	}{windowAlias: (*windowAlias)(w)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	targets := map[string]**types.Rect{
		"windowArea":             &w.WindowArea,
		"currentMonitorWorkArea": &w.CurrentMonitorWorkArea,
		"allMonitorsWorkArea":    &w.AllMonitorsWorkArea,
	}
	raws := map[string]json.RawMessage{
		"windowArea":             aux.WindowArea,
		"currentMonitorWorkArea": aux.CurrentMonitorWorkArea,
		"allMonitorsWorkArea":    aux.AllMonitorsWorkArea,
	}
	for _, name := range rectFields {
		rect, err := decodeRectValue(raws[name])
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*targets[name] = rect
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for k, v := range all {
		if knownWindowFields[k] {
			continue
		}
		if w.Extra == nil {
			w.Extra = make(map[string]json.RawMessage)
		}
		w.Extra[k] = v
	}
	return nil
}

// UnmarshalJSON decodes a monitor record, accepting both rect encodings
func (m *Monitor) UnmarshalJSON(data []byte) error {
	aux := struct {
		ID        int             `json:"id"`
		Name      string          `json:"name"`
		Geometry  json.RawMessage `json:"geometry"`
		WorkArea  json.RawMessage `json:"workArea"`
		IsPrimary bool            `json:"isPrimary"`
	}{}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	geometry, err := decodeRectValue(aux.Geometry)
	if err != nil {
		return fmt.Errorf("geometry: %w", err)
	}
	workArea, err := decodeRectValue(aux.WorkArea)
	if err != nil {
		return fmt.Errorf("workArea: %w", err)
	}

	*m = Monitor{ID: aux.ID, Name: aux.Name, IsPrimary: aux.IsPrimary}
	if geometry != nil {
		m.Geometry = *geometry
	}
	if workArea != nil {
		m.WorkArea = *workArea
	}
	return nil
}

// DecodeWindows decodes a List/Details payload that may hold one record or
// an array of records
func DecodeWindows(payload string) ([]*Window, error) {
	items, err := splitRecords(payload)
	if err != nil {
		return nil, err
	}

	windows := make([]*Window, 0, len(items))
	for i, item := range items {
		var w Window
		if err := json.Unmarshal(item, &w); err != nil {
			return nil, malformed(payload, "record %d: %w", i, err)
		}
		windows = append(windows, &w)
	}
	return windows, nil
}

// DecodeWindow decodes a payload expected to describe exactly one window.
// An array payload yields its first record.
func DecodeWindow(payload string) (*Window, error) {
	windows, err := DecodeWindows(payload)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return nil, malformed(payload, "no window record in response")
	}
	return windows[0], nil
}

// DecodeMonitor decodes a monitor record
func DecodeMonitor(payload string) (*Monitor, error) {
	items, err := splitRecords(payload)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, malformed(payload, "no monitor record in response")
	}

	var m Monitor
	if err := json.Unmarshal(items[0], &m); err != nil {
		return nil, malformed(payload, "monitor: %w", err)
	}
	return &m, nil
}

// DecodeRect decodes a bare rectangle payload
func DecodeRect(payload string) (types.Rect, error) {
	trimmed := bytes.TrimSpace([]byte(payload))
	if !json.Valid(trimmed) {
		return types.Rect{}, malformed(payload, "invalid JSON")
	}
	rect, err := decodeRectValue(trimmed)
	if err != nil {
		return types.Rect{}, malformed(payload, "%w", err)
	}
	if rect == nil {
		return types.Rect{}, malformed(payload, "empty rect")
	}
	return *rect, nil
}

// splitRecords validates the payload and returns its object records
func splitRecords(payload string) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace([]byte(payload))
	if len(trimmed) == 0 {
		return nil, malformed(payload, "empty payload")
	}
	if !json.Valid(trimmed) {
		return nil, malformed(payload, "invalid JSON")
	}

	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, malformed(payload, "%w", err)
		}
		for i, item := range items {
			if t := bytes.TrimSpace(item); len(t) == 0 || t[0] != '{' {
				return nil, malformed(payload, "record %d is not an object", i)
			}
		}
		return items, nil
	case '{':
		return []json.RawMessage{trimmed}, nil
	default:
		return nil, malformed(payload, "expected object or array")
	}
}

// decodeRectValue handles both object format {x, y, width, height} and
// array format [[x, y], [width, height]]. A missing or null value yields nil.
func decodeRectValue(raw json.RawMessage) (*types.Rect, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	switch raw[0] {
	case '{':
		var obj struct {
			X      *float64 `json:"x"`
			Y      *float64 `json:"y"`
			Width  *float64 `json:"width"`
			Height *float64 `json:"height"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, err
		}
		if obj.Width == nil || obj.Height == nil {
			return nil, fmt.Errorf("rect missing width or height")
		}
		return finishRect(deref(obj.X), deref(obj.Y), *obj.Width, *obj.Height)

	case '[':
		var arr [][]float64
		if err := json.Unmarshal(raw, &arr); err != nil {
			return nil, err
		}
		if len(arr) != 2 || len(arr[0]) < 2 || len(arr[1]) < 2 {
			return nil, fmt.Errorf("rect array must be [[x, y], [width, height]]")
		}
		return finishRect(arr[0][0], arr[0][1], arr[1][0], arr[1][1])
	}

	return nil, fmt.Errorf("rect must be an object or array")
}

func finishRect(x, y, width, height float64) (*types.Rect, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("negative rect size %vx%v", width, height)
	}
	return &types.Rect{X: int(x), Y: int(y), Width: int(width), Height: int(height)}, nil
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
