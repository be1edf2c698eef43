package monitor

import (
	"errors"
	"reflect"
	"testing"
)

func TestFirst(t *testing.T) {
	tests := []struct {
		name     string
		monitors []Monitor
		want     Monitor
		wantErr  error
	}{
		{
			name:     "empty list",
			monitors: nil,
			wantErr:  ErrNoMonitor,
		},
		{
			name: "takes the first entry only",
			monitors: []Monitor{
				{Name: "DP-1", Width: 1920, Height: 1080},
				{Name: "HDMI-1", Width: 3840, Height: 2160},
			},
			want: Monitor{Name: "DP-1", Width: 1920, Height: 1080},
		},
		{
			name:     "zero width",
			monitors: []Monitor{{Name: "eDP-1", Width: 0, Height: 800}},
			wantErr:  ErrInvalidGeometry,
		},
		{
			name:     "negative height",
			monitors: []Monitor{{Name: "eDP-1", Width: 1280, Height: -1}},
			wantErr:  ErrInvalidGeometry,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := First(tt.monitors)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("First() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("First() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_order(t *testing.T) {
	monitors := []Monitor{
		{Name: "HDMI-1", X: 1920},
		{Name: "DP-2", X: 0, Y: 1080},
		{Name: "DP-1", X: 0},
		{Name: "eDP-1", X: 3840, Primary: true},
	}
	order(monitors)
	var got []string
	for _, m := range monitors {
		got = append(got, m.Name)
	}
	want := []string{"eDP-1", "DP-1", "DP-2", "HDMI-1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order() = %v, want %v", got, want)
	}
}

func TestStatic(t *testing.T) {
	s := Static{{Name: "DP-1", Width: 2560, Height: 1440}}
	got, err := s.Monitors()
	if err != nil {
		t.Fatal(err)
	}
	got[0].Width = 1
	if s[0].Width != 2560 {
		t.Errorf("Static.Monitors() shares its backing array")
	}
}
