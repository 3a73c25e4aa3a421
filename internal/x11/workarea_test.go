package x11

import (
	"errors"
	"testing"

	"github.com/yourusername/winplace/internal/types"
)

func TestInsetsFromWorkarea(t *testing.T) {
	root := types.Rect{Width: 4480, Height: 1440}

	tests := []struct {
		name     string
		workArea types.Rect
		want     Insets
	}{
		{
			name:     "top bar",
			workArea: types.Rect{X: 0, Y: 34, Width: 4480, Height: 1406},
			want:     Insets{Top: 34},
		},
		{
			name:     "top bar and left dock",
			workArea: types.Rect{X: 64, Y: 32, Width: 4416, Height: 1408},
			want:     Insets{Left: 64, Top: 32},
		},
		{
			name:     "bottom panel",
			workArea: types.Rect{X: 0, Y: 0, Width: 4480, Height: 1392},
			want:     Insets{Bottom: 48},
		},
		{
			name:     "work area larger than root is clamped",
			workArea: types.Rect{X: -10, Y: 0, Width: 5000, Height: 1440},
			want:     Insets{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InsetsFromWorkarea(root, tt.workArea); got != tt.want {
				t.Errorf("InsetsFromWorkarea() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBarHeightFrom(t *testing.T) {
	root := types.Rect{Width: 1920, Height: 1080}

	tests := []struct {
		name   string
		insets Insets
		err    error
		want   int
	}{
		{
			name: "unreadable work area",
			err:  errors.New("failed to read _NET_WORKAREA"),
			want: DefaultBarHeight,
		},
		{
			name:   "top bar",
			insets: InsetsFromWorkarea(root, types.Rect{Y: 34, Width: 1920, Height: 1046}),
			want:   34,
		},
		{
			name:   "bottom panel only",
			insets: InsetsFromWorkarea(root, types.Rect{Width: 1920, Height: 1032}),
			want:   0,
		},
		{
			name:   "left dock only",
			insets: InsetsFromWorkarea(root, types.Rect{X: 64, Width: 1856, Height: 1080}),
			want:   0,
		},
		{
			name:   "no panels",
			insets: InsetsFromWorkarea(root, root),
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := barHeightFrom(tt.insets, tt.err, DefaultBarHeight); got != tt.want {
				t.Errorf("barHeightFrom() = %d, want %d", got, tt.want)
			}
		})
	}
}
