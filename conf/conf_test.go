package conf

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConf(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	system := writeConf(t, dir, "system.conf", `
[Session]
Compositor = kwin_wayland
ExtraArgs = --no-lockscreen,--no-global-shortcuts

[Script]
Path = /usr/share/partydeck/splitscreen.js

[Control]
Addr = localhost:19000
`)
	user := writeConf(t, dir, "user.conf", `
[Script]
Path = /home/deck/splitscreen.js

[Log]
Level = debug
`)
	broken := writeConf(t, dir, "broken.conf", `
[KWin]
ObjectPath = Scripting
`)

	tests := []struct {
		name    string
		paths   []string
		want    func() Configure
		wantErr bool
	}{
		{
			name:  "missing files keep defaults",
			paths: []string{filepath.Join(dir, "absent.conf")},
			want:  Default,
		},
		{
			name:  "no paths",
			paths: nil,
			want:  Default,
		},
		{
			name:  "user file overrides system file",
			paths: []string{system, user},
			want: func() Configure {
				c := Default()
				c.Session.ExtraArgs = []string{"--no-lockscreen", "--no-global-shortcuts"}
				c.Script.Path = "/home/deck/splitscreen.js"
				c.Control.Addr = "localhost:19000"
				c.Log.Level = "debug"
				return c
			},
		},
		{
			name:    "invalid object path",
			paths:   []string{broken},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(tt.paths...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Read() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if want := tt.want(); !reflect.DeepEqual(got, want) {
				t.Errorf("Read() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestUserPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got, want := UserPath(), "/tmp/xdg/partydeck/partydeck.conf"; got != want {
		t.Errorf("UserPath() = %v, want %v", got, want)
	}
}
