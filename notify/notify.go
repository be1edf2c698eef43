// Package notify shows blocking messages and yes/no questions to the user.
package notify

import (
	"partydeck/logger"

	"github.com/godbus/dbus/v5"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
)

type Notifier interface {
	// ShowMessage blocks until dismissed. Failures are logged and dropped.
	ShowMessage(title, body string)
	// AskYesNo is true only when the user answers yes.
	AskYesNo(title, body string) bool
}

// Dialog shows native dialogs through zenity. When no dialog can be shown,
// messages go to the desktop notification service instead.
type Dialog struct {
	Info     func(text string, options ...zenity.Option) error
	Question func(text string, options ...zenity.Option) error
	Notify   func(title, body string) error
}

func NewDialog() *Dialog {
	return &Dialog{
		Info:     zenity.Info,
		Question: zenity.Question,
		Notify:   desktopNotify,
	}
}

func (d *Dialog) ShowMessage(title, body string) {
	err := d.Info(body, zenity.Title(title), zenity.InfoIcon)
	if err == nil || errors.Is(err, zenity.ErrCanceled) {
		return
	}
	logger.Warn("show_message_dialog", err.Error())
	if err := d.Notify(title, body); err != nil {
		logger.Error("show_message", title, err)
	}
}

// AskYesNo treats a dialog failure, a closed window and a "no" alike.
func (d *Dialog) AskYesNo(title, body string) bool {
	err := d.Question(body, zenity.Title(title), zenity.QuestionIcon)
	switch {
	case err == nil:
		return true
	case errors.Is(err, zenity.ErrCanceled):
		logger.Info("ask_yes_no", map[string]string{"title": title, "answer": "no"})
	default:
		logger.Error("ask_yes_no", title, err)
	}
	return false
}

const (
	notificationsService = "org.freedesktop.Notifications"
	notificationsPath    = dbus.ObjectPath("/org/freedesktop/Notifications")
	notificationsMethod  = "org.freedesktop.Notifications.Notify"
)

func desktopNotify(title, body string) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return err
	}
	defer conn.Close()
	obj := conn.Object(notificationsService, notificationsPath)
	var id uint32
	return obj.Call(notificationsMethod, 0,
		"partydeck", uint32(0), "", title, body,
		[]string{}, map[string]dbus.Variant{}, int32(-1),
	).Store(&id)
}
