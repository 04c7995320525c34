// Command backlog serves the games backlog page together with the search
// and export API it calls.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pthm/backlog/internal/api"
	"github.com/pthm/backlog/internal/backlog"
	"github.com/pthm/backlog/internal/client"
	"github.com/pthm/backlog/internal/components"
	"github.com/pthm/backlog/internal/config"
	"github.com/pthm/backlog/internal/hltb"
	"github.com/pthm/backlog/internal/logging"
	"github.com/pthm/backlog/internal/server"
	"github.com/pthm/backlog/internal/steam"
)

const (
	sweepInterval   = time.Minute
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "backlog:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, closer := logging.Setup(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	defer closer.Close()

	key, fromEnv := cfg.Key()
	if !fromEnv {
		log.Warn("SECRET is not set; using a random key, open pages stop working on restart")
	}

	var library api.Library
	if cfg.SteamAPIKey != "" {
		library = steam.New(cfg.SteamURL, cfg.SteamAPIKey)
	} else {
		log.Warn("STEAM_API is not set; owned games will not be marked")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions := backlog.NewSessions(cfg.SessionTTL, log)
	go sessions.Run(ctx, sweepInterval)

	e := server.New(log)
	api.New(hltb.New(cfg.HLTBURL, cfg.HLTBTimeout), library, cfg.SearchLimit, log).Register(e)

	reg := server.Mount(e, key, log)
	app := components.Init(reg, sessions, client.New(cfg.APIURL, cfg.ClientTimeout), log)
	server.NewPages(sessions, app).Register(e)

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.Addr(), "api", cfg.APIURL)
		errc <- e.Start(cfg.Addr())
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
