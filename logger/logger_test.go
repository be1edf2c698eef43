package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestEntries(t *testing.T) {
	type args struct {
		action string
		data   interface{}
		err    error
	}
	tests := []struct {
		name      string
		args      args
		log       func(args)
		wantLevel string
		wantError string
	}{
		{
			name:      "info carries action and data",
			args:      args{action: "load_script", data: "/tmp/splitscreen.js"},
			log:       func(a args) { Info(a.action, a.data) },
			wantLevel: "info",
		},
		{
			name:      "warn",
			args:      args{action: "nested_session", data: nil},
			log:       func(a args) { Warn(a.action, a.data) },
			wantLevel: "warning",
		},
		{
			name:      "error carries the error text",
			args:      args{action: "start_compositor", data: nil, err: errors.New("exec: not found")},
			log:       func(a args) { Error(a.action, a.data, a.err) },
			wantLevel: "error",
			wantError: "exec: not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetOutput(&buf)
			tt.log(tt.args)
			var got map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
				t.Fatalf("unmarshal log line %q: %v", buf.String(), err)
			}
			if got["action"] != tt.args.action {
				t.Errorf("action = %v, want %v", got["action"], tt.args.action)
			}
			if got["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", got["level"], tt.wantLevel)
			}
			if tt.args.data != nil && got["data"] != tt.args.data {
				t.Errorf("data = %v, want %v", got["data"], tt.args.data)
			}
			if tt.wantError != "" && got["error"] != tt.wantError {
				t.Errorf("error = %v, want %v", got["error"], tt.wantError)
			}
		})
	}
}

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "empty falls back to info", level: ""},
		{name: "debug", level: "debug"},
		{name: "garbage", level: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Init(tt.level, "")
			if (err != nil) != tt.wantErr {
				t.Errorf("Init() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
	Init("info", "")
}
