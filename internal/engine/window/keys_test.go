package window

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/learngl/internal/engine/input"
)

func TestSDLKeyEvent(t *testing.T) {
	tests := []struct {
		name   string
		event  sdl.KeyboardEvent
		want   input.Event
		wantOK bool
	}{
		{
			name:   "press",
			event:  sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W}},
			want:   input.Event{Type: input.EventKeyDown, Key: input.KeyW},
			wantOK: true,
		},
		{
			name:   "release",
			event:  sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F12}},
			want:   input.Event{Type: input.EventKeyUp, Key: input.KeyF12},
			wantOK: true,
		},
		{
			name:  "held key repeat",
			event: sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_R}},
		},
		{
			name:   "unmapped key",
			event:  sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_Q}},
			want:   input.Event{Type: input.EventKeyDown, Key: input.KeyUnknown},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sdlKeyEvent(&tt.event)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("event = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGLFWKeyEvent(t *testing.T) {
	tests := []struct {
		name   string
		key    glfw.Key
		action glfw.Action
		want   input.Event
		wantOK bool
	}{
		{"press", glfw.KeyW, glfw.Press, input.Event{Type: input.EventKeyDown, Key: input.KeyW}, true},
		{"release", glfw.KeyEscape, glfw.Release, input.Event{Type: input.EventKeyUp, Key: input.KeyEscape}, true},
		{"held key repeat", glfw.KeyR, glfw.Repeat, input.Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := glfwKeyEvent(tt.key, tt.action)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("event = %+v, want %+v", got, tt.want)
			}
		})
	}
}
