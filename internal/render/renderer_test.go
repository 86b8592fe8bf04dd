package render

import "testing"

func TestMouseUniform(t *testing.T) {
	tests := []struct {
		name             string
		cursorX, cursorY float32
		fbHeight         float32
		wantX, wantY     float32
	}{
		{name: "interior", cursorX: 100, cursorY: 50, fbHeight: 900, wantX: 100, wantY: 850},
		{name: "top left", cursorX: 0, cursorY: 0, fbHeight: 900, wantX: 0, wantY: 900},
		{name: "bottom edge", cursorX: 42, cursorY: 900, fbHeight: 900, wantX: 42, wantY: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := MouseUniform(tt.cursorX, tt.cursorY, tt.fbHeight)
			if x != tt.wantX || y != tt.wantY {
				t.Fatalf("MouseUniform(%v, %v, %v) = (%v, %v), want (%v, %v)",
					tt.cursorX, tt.cursorY, tt.fbHeight, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestColorByte(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{in: 0, want: 0},
		{in: 1, want: 255},
		{in: 0.5, want: 128},
		{in: -3, want: 0},
		{in: 2, want: 255},
	}

	for _, tt := range tests {
		if got := colorByte(tt.in); got != tt.want {
			t.Errorf("colorByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
