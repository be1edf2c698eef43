/*
* Copyright （C)  2023 OpenFDE , All rights reserved.
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partydeck/conf"
	"partydeck/controller"
	"partydeck/kwin"
	"partydeck/logger"
	"partydeck/monitor"
	"partydeck/notify"
	"partydeck/process_chan"
	"partydeck/session"
	"partydeck/splitscreen"
	"partydeck/websocket"
)

var _version_ = "v0.1"
var _tag_ = "v0.1"
var _date_ = "20230101"

const title = "PartyDeck"

type options struct {
	config   string
	kwin     bool
	load     string
	unload   bool
	serve    bool
	monitors bool
}

func parseArgs() (opts options, return_directly bool) {
	var version, help bool
	flag.BoolVar(&version, "v", false, "-v")
	flag.BoolVar(&help, "h", false, "-h")
	flag.StringVar(&opts.config, "c", conf.DefaultPath, "-c {config file}")
	flag.BoolVar(&opts.kwin, session.LaunchFlag, false, "--kwin")
	flag.StringVar(&opts.load, "load", "", "-load {script path}")
	flag.BoolVar(&opts.unload, "unload", false, "-unload")
	flag.BoolVar(&opts.serve, "serve", false, "-serve")
	flag.BoolVar(&opts.monitors, "monitors", false, "-monitors")
	flag.Parse()
	if help {
		fmt.Println("partydeck:")
		fmt.Println("\t-v: print versions and tags")
		fmt.Println("\t-h: print help")
		fmt.Println("\t-c: config file, default " + conf.DefaultPath)
		fmt.Println("\t--kwin: relaunch inside a nested kwin session sized to the first monitor")
		fmt.Println("\t-load: load and start the splitscreen script at the given path")
		fmt.Println("\t-unload: unload the splitscreen script")
		fmt.Println("\t-serve: serve the control api inside the session")
		fmt.Println("\t-monitors: list monitors")
		return_directly = true
		return
	}
	if version {
		fmt.Printf("Version: %s, tag: %s , date: %s \n", _version_, _tag_, _date_)
		return_directly = true
		return
	}
	return
}

func main() {
	opts, return_directly := parseArgs()
	if return_directly {
		return
	}

	configure, err := conf.Read(opts.config, conf.UserPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err = logger.Init(configure.Log.Level, configure.Log.File); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var provider monitor.Provider = monitor.X11Provider{}
	var notifier notify.Notifier = notify.NewDialog()

	switch {
	case opts.kwin:
		launchSession(configure, provider, notifier)
	case len(opts.load) != 0:
		if err := kwin.FromConf(configure).LoadAndStart(opts.load); err != nil {
			notifier.ShowMessage(title, "Failed to start the splitscreen script: "+err.Error())
			os.Exit(1)
		}
	case opts.unload:
		if err := kwin.FromConf(configure).Unload(); err != nil {
			notifier.ShowMessage(title, "Failed to unload the splitscreen script: "+err.Error())
			os.Exit(1)
		}
	case opts.serve:
		os.Exit(serve(configure, provider))
	case opts.monitors:
		monitors, err := provider.Monitors()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for i, m := range monitors {
			fmt.Printf("%d: %s\n", i, m)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// launchSession never returns: the nested session takes over on success.
func launchSession(configure conf.Configure, provider monitor.Provider, notifier notify.Notifier) {
	if session.Inside() && !notifier.AskYesNo(title, "Already running inside a nested session. Start another one?") {
		logger.Info("launch_session_skipped", "inside nested session")
		os.Exit(0)
	}
	monitors, err := provider.Monitors()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to list monitors:", err)
		notifier.ShowMessage(title, "No monitor could be found: "+err.Error())
		os.Exit(1)
	}
	launcher := session.Launcher{
		Compositor: configure.Session.Compositor,
		ExtraArgs:  configure.Session.ExtraArgs,
	}
	spawned, err := launcher.Launch(monitors, os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start %s: %v\n", launcher.Compositor, err)
		notifier.ShowMessage(title, err.Error())
		os.Exit(1)
	}
	logger.Info("session_spawned", spawned.Pid)
	os.Exit(0)
}

func serve(configure conf.Configure, provider monitor.Provider) int {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := websocket.NewHub()
	go hub.Run()
	defer hub.Stop()
	events := controller.EventsCtrl{Hub: hub}

	guard := splitscreen.NewGuard(kwin.FromConf(configure))
	guard.OnChange = events.Observe

	engine := controller.NewEngine(
		controller.SplitscreenCtrl{Guard: guard, Conf: configure},
		controller.MonitorCtrl{Provider: provider},
		controller.LifecycleCtrl{},
		events,
	)
	server := &http.Server{Addr: configure.Control.Addr, Handler: engine}
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("serve_control_api", configure.Control.Addr)
		serveErr <- server.ListenAndServe()
	}()

	code := 0
	select {
	case <-mainCtx.Done():
		logger.Info("context_done", "signal received")
	case action := <-process_chan.ProcessChan:
		logger.Info("process_action", string(action))
	case err := <-serveErr:
		logger.Error("serve_control_api", configure.Control.Addr, err)
		code = 1
	}

	if guard.State() == splitscreen.StateActive {
		if err := guard.Unload(); err != nil {
			logger.Error("unload_on_exit", nil, err)
		}
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown_control_api", nil, err)
	}
	return code
}
