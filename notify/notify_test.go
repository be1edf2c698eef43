package notify

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ncruces/zenity"
)

type recorder struct {
	err      error
	shown    []string
	notified []string
}

func (r *recorder) dialog() *Dialog {
	show := func(text string, options ...zenity.Option) error {
		r.shown = append(r.shown, text)
		return r.err
	}
	return &Dialog{
		Info:     show,
		Question: show,
		Notify: func(title, body string) error {
			r.notified = append(r.notified, title+": "+body)
			return nil
		},
	}
}

func TestDialog_AskYesNo(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "yes", err: nil, want: true},
		{name: "no", err: zenity.ErrCanceled, want: false},
		{name: "no dialog tool", err: errors.New(`exec: "zenity": executable file not found in $PATH`), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{err: tt.err}
			if got := r.dialog().AskYesNo("PartyDeck", "Launch?"); got != tt.want {
				t.Errorf("AskYesNo() = %v, want %v", got, tt.want)
			}
			if !reflect.DeepEqual(r.shown, []string{"Launch?"}) {
				t.Errorf("AskYesNo() showed %q", r.shown)
			}
			if len(r.notified) != 0 {
				t.Errorf("AskYesNo() fell back to a notification: %q", r.notified)
			}
		})
	}
}

func TestDialog_ShowMessage(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantNotified []string
	}{
		{name: "dismissed", err: nil},
		{name: "closed", err: zenity.ErrCanceled},
		{
			name:         "no dialog tool",
			err:          errors.New("cannot open display"),
			wantNotified: []string{"PartyDeck: Script file missing"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{err: tt.err}
			r.dialog().ShowMessage("PartyDeck", "Script file missing")
			if !reflect.DeepEqual(r.shown, []string{"Script file missing"}) {
				t.Errorf("ShowMessage() showed %q", r.shown)
			}
			if !reflect.DeepEqual(r.notified, tt.wantNotified) {
				t.Errorf("ShowMessage() notified %q, want %q", r.notified, tt.wantNotified)
			}
		})
	}
}
