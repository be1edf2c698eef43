package monitor

import (
	"partydeck/logger"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
)

// X11Provider enumerates the outputs of the X server named by $DISPLAY,
// which under a Wayland desktop is its Xwayland instance.
type X11Provider struct {
	Display string //empty means $DISPLAY
}

func (p X11Provider) Monitors() ([]Monitor, error) {
	conn, err := xgb.NewConnDisplay(p.Display)
	if err != nil {
		logger.Error("new_x_connection", p.Display, err)
		return nil, errors.Wrap(err, "connect to X server")
	}
	defer conn.Close()

	screen := xproto.Setup(conn).DefaultScreen(conn)
	if err := randr.Init(conn); err != nil {
		logger.Warn("randr_unavailable", err.Error())
		return screenMonitor(screen), nil
	}

	monitors, err := randrMonitors(conn, screen.Root)
	if err != nil {
		logger.Error("randr_monitors", nil, err)
		return nil, err
	}
	if len(monitors) == 0 {
		return screenMonitor(screen), nil
	}
	order(monitors)
	return monitors, nil
}

func screenMonitor(screen *xproto.ScreenInfo) []Monitor {
	return []Monitor{{
		Name:    "screen",
		Width:   int(screen.WidthInPixels),
		Height:  int(screen.HeightInPixels),
		Primary: true,
	}}
}

func randrMonitors(conn *xgb.Conn, root xproto.Window) ([]Monitor, error) {
	resources, err := randr.GetScreenResourcesCurrent(conn, root).Reply()
	if err != nil {
		return nil, errors.Wrap(err, "get screen resources")
	}
	var primary randr.Output
	if reply, err := randr.GetOutputPrimary(conn, root).Reply(); err == nil {
		primary = reply.Output
	}

	var monitors []Monitor
	for _, output := range resources.Outputs {
		info, err := randr.GetOutputInfo(conn, output, resources.ConfigTimestamp).Reply()
		if err != nil {
			return nil, errors.Wrap(err, "get output info")
		}
		// disconnected or switched off
		if info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
			continue
		}
		crtc, err := randr.GetCrtcInfo(conn, info.Crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			return nil, errors.Wrapf(err, "get crtc info for %s", string(info.Name))
		}
		monitors = append(monitors, Monitor{
			Name:    string(info.Name),
			X:       int(crtc.X),
			Y:       int(crtc.Y),
			Width:   int(crtc.Width),
			Height:  int(crtc.Height),
			Primary: output == primary,
		})
	}
	return monitors, nil
}
