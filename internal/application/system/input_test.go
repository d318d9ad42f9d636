package system

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputSystem(t *testing.T) {
	is := NewInputSystem()
	require.NotNil(t, is)
}

func TestAt(t *testing.T) {
	in := At(120, 45)

	assert.Equal(t, 120, in.MouseX)
	assert.Equal(t, 45, in.MouseY)
	assert.False(t, in.MouseClick)
	assert.False(t, in.Escape)
}

func TestClickAt(t *testing.T) {
	in := ClickAt(300, 200)

	assert.Equal(t, InputState{MouseX: 300, MouseY: 200, MouseClick: true}, in)
}

func TestMergeTaps(t *testing.T) {
	tests := []struct {
		name string
		in   InputState
		taps []image.Point
		want InputState
	}{
		{
			name: "no taps keeps the mouse state",
			in:   At(10, 20),
			want: At(10, 20),
		},
		{
			name: "tap becomes a click at the touch point",
			in:   At(10, 20),
			taps: []image.Point{{X: 300, Y: 400}},
			want: ClickAt(300, 400),
		},
		{
			name: "first tap wins",
			in:   At(0, 0),
			taps: []image.Point{{X: 5, Y: 6}, {X: 700, Y: 800}},
			want: ClickAt(5, 6),
		},
		{
			name: "mouse click without taps survives",
			in:   ClickAt(40, 50),
			want: ClickAt(40, 50),
		},
		{
			name: "escape is untouched by a tap",
			in:   InputState{MouseX: 1, MouseY: 2, Escape: true},
			taps: []image.Point{{X: 3, Y: 4}},
			want: InputState{MouseX: 3, MouseY: 4, MouseClick: true, Escape: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mergeTaps(tt.in, tt.taps))
		})
	}
}
