// Package kwin drives the KWin scripting interface over the session bus.
package kwin

import (
	"os"
	"path/filepath"

	"partydeck/conf"
	"partydeck/logger"

	"github.com/godbus/dbus/v5"
	"github.com/pkg/errors"
)

const (
	ServiceName = "org.kde.KWin"
	ObjectPath  = dbus.ObjectPath("/Scripting")
	Interface   = "org.kde.kwin.Scripting"
	ScriptName  = "splitscreen"
)

const (
	methodLoadScript   = "loadScript"
	methodStart        = "start"
	methodUnloadScript = "unloadScript"
)

var (
	ErrScriptMissing = errors.New("script file missing")
	ErrBus           = errors.New("session bus unavailable")
	ErrCall          = errors.New("remote call failed")
)

// Conn is the part of *dbus.Conn the scripting client needs.
type Conn interface {
	Object(dest string, path dbus.ObjectPath) dbus.BusObject
	Close() error
}

type Dialer func() (Conn, error)

// SessionBus opens a private session bus connection. Callers close it.
func SessionBus() (Conn, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Scripting loads, starts and unloads one named script. It keeps no state
// between calls; every call opens and closes its own connection.
type Scripting struct {
	Service   string
	Path      dbus.ObjectPath
	Interface string
	Name      string
	Dial      Dialer
}

func New() *Scripting {
	return &Scripting{
		Service:   ServiceName,
		Path:      ObjectPath,
		Interface: Interface,
		Name:      ScriptName,
		Dial:      SessionBus,
	}
}

// FromConf applies the [KWin] and [Script] sections.
func FromConf(configure conf.Configure) *Scripting {
	s := New()
	s.Service = configure.KWin.Service
	s.Path = dbus.ObjectPath(configure.KWin.ObjectPath)
	s.Interface = configure.KWin.Interface
	s.Name = configure.Script.Name
	return s
}

func (s *Scripting) method(name string) string {
	return s.Interface + "." + name
}

func (s *Scripting) object() (dbus.BusObject, func(), error) {
	dial := s.Dial
	if dial == nil {
		dial = SessionBus
	}
	conn, err := dial()
	if err != nil {
		return nil, nil, errors.Wrapf(ErrBus, "%v", err)
	}
	release := func() {
		if err := conn.Close(); err != nil {
			logger.Warn("close_session_bus", err.Error())
		}
	}
	if !s.Path.IsValid() {
		release()
		return nil, nil, errors.Wrapf(ErrBus, "invalid object path %q", s.Path)
	}
	return conn.Object(s.Service, s.Path), release, nil
}

// LoadAndStart registers the script at path under the configured name and
// starts it. Nothing is sent over the bus when path is not a regular file.
func (s *Scripting) LoadAndStart(path string) error {
	logger.Info("load_script", path)
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(ErrScriptMissing, "%s: %v", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		logger.Error("load_script", abs, ErrScriptMissing)
		return errors.Wrap(ErrScriptMissing, abs)
	}

	obj, release, err := s.object()
	if err != nil {
		logger.Error("connect_session_bus", s.Service, err)
		return err
	}
	defer release()

	var id int32
	err = obj.Call(s.method(methodLoadScript), 0, abs, s.Name).Store(&id)
	if err != nil {
		logger.Error("load_script", abs, err)
		return errors.Wrapf(ErrCall, "%s: %v", methodLoadScript, err)
	}
	logger.Info("script_loaded", id)

	call := obj.Call(s.method(methodStart), 0)
	if call.Err != nil {
		logger.Error("start_script", s.Name, call.Err)
		return errors.Wrapf(ErrCall, "%s: %v", methodStart, call.Err)
	}
	logger.Info("script_started", s.Name)
	return nil
}

// Unload removes the script by name. The boolean the compositor replies
// with is not inspected; only transport and call errors count as failure.
func (s *Scripting) Unload() error {
	logger.Info("unload_script", s.Name)
	obj, release, err := s.object()
	if err != nil {
		logger.Error("connect_session_bus", s.Service, err)
		return err
	}
	defer release()

	var unloaded bool
	err = obj.Call(s.method(methodUnloadScript), 0, s.Name).Store(&unloaded)
	if err != nil {
		logger.Error("unload_script", s.Name, err)
		return errors.Wrapf(ErrCall, "%s: %v", methodUnloadScript, err)
	}
	logger.Info("script_unloaded", unloaded)
	return nil
}
