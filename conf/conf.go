package conf

import (
	"os"
	"path/filepath"

	"partydeck/logger"

	"github.com/go-ini/ini"
	"github.com/godbus/dbus/v5"
	"github.com/pkg/errors"
)

const DefaultPath = "/etc/partydeck.conf"

const (
	sectionSession = "Session"
	sectionScript  = "Script"
	sectionKWin    = "KWin"
	sectionControl = "Control"
	sectionLog     = "Log"
)

type Session struct {
	Compositor string   //kwin_wayland
	ExtraArgs  []string //appended after the geometry flags
}

type Script struct {
	Path string
	Name string //logical name the compositor registers the script under
}

type KWin struct {
	Service    string
	ObjectPath string
	Interface  string
}

type Control struct {
	Addr string
}

type Log struct {
	Level string
	File  string
}

type Configure struct {
	Session Session
	Script  Script
	KWin    KWin
	Control Control
	Log     Log
}

func Default() Configure {
	return Configure{
		Session: Session{Compositor: "kwin_wayland"},
		Script:  Script{Name: "splitscreen"},
		KWin: KWin{
			Service:    "org.kde.KWin",
			ObjectPath: "/Scripting",
			Interface:  "org.kde.kwin.Scripting",
		},
		Control: Control{Addr: "localhost:18090"},
		Log:     Log{Level: "info"},
	}
}

// UserPath is the per-user override, loaded on top of the system file.
func UserPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if len(dir) == 0 {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "partydeck", "partydeck.conf")
}

// Read loads the given files in order, later files overriding earlier ones.
// Missing files are skipped and leave the defaults in place.
func Read(paths ...string) (configure Configure, err error) {
	var sources []interface{}
	for _, p := range paths {
		if len(p) != 0 {
			sources = append(sources, p)
		}
	}
	configure = Default()
	if len(sources) == 0 {
		return configure, nil
	}
	cfg, err := ini.LooseLoad(sources[0], sources[1:]...)
	if err != nil {
		logger.Error("load_config", paths, err)
		return configure, errors.Wrap(err, "load config")
	}

	session := cfg.Section(sectionSession)
	configure.Session.Compositor = session.Key("Compositor").MustString(configure.Session.Compositor)
	if extra := session.Key("ExtraArgs").Strings(","); len(extra) != 0 {
		configure.Session.ExtraArgs = extra
	}

	script := cfg.Section(sectionScript)
	configure.Script.Path = script.Key("Path").MustString(configure.Script.Path)
	configure.Script.Name = script.Key("Name").MustString(configure.Script.Name)

	kwin := cfg.Section(sectionKWin)
	configure.KWin.Service = kwin.Key("Service").MustString(configure.KWin.Service)
	configure.KWin.ObjectPath = kwin.Key("ObjectPath").MustString(configure.KWin.ObjectPath)
	configure.KWin.Interface = kwin.Key("Interface").MustString(configure.KWin.Interface)

	control := cfg.Section(sectionControl)
	configure.Control.Addr = control.Key("Addr").MustString(configure.Control.Addr)

	log := cfg.Section(sectionLog)
	configure.Log.Level = log.Key("Level").MustString(configure.Log.Level)
	configure.Log.File = log.Key("File").MustString(configure.Log.File)

	if err = configure.Validate(); err != nil {
		logger.Error("validate_config", paths, err)
		return configure, err
	}
	return configure, nil
}

func (c Configure) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"Session.Compositor", c.Session.Compositor},
		{"Script.Name", c.Script.Name},
		{"KWin.Service", c.KWin.Service},
		{"KWin.Interface", c.KWin.Interface},
		{"Control.Addr", c.Control.Addr},
	}
	for _, r := range required {
		if len(r.value) == 0 {
			return errors.Errorf("config key %s must not be empty", r.key)
		}
	}
	if !dbus.ObjectPath(c.KWin.ObjectPath).IsValid() {
		return errors.Errorf("config key KWin.ObjectPath %q is not a valid object path", c.KWin.ObjectPath)
	}
	return nil
}
