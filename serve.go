package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/spf13/cobra"
	"github.com/wansing/blog/frontend"
	"github.com/wansing/blog/middleware"
	"github.com/wansing/blog/sessions"
	"github.com/wansing/blog/util"
)

func newServeCmd() *cobra.Command {

	var serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the blog over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			a, err := openApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			sessionStore, err := a.sessionStore(cmd.Context())
			if err != nil {
				return err
			}

			var f = &frontend.Frontend{
				DB: a.db,
				Sessions: sessions.NewManager(sessionStore, sessions.Config{
					Path:        a.cfg.Server.Base,
					IdleTimeout: a.cfg.Session.IdleTimeout,
					Lifetime:    a.cfg.Session.Lifetime,
					Secure:      a.cfg.Session.Secure,
				}),
				Log:     a.log,
				Limiter: middleware.NewIPRateLimiter(a.cfg.RateLimit.AuthPerMinute, a.cfg.RateLimit.AuthBurst),
				Ping:    a.sqlDB.PingContext,
				Prefix:  a.cfg.Server.Base,
				HSTS:    a.cfg.Session.Secure,
			}

			return a.listen(util.StripPrefix(a.cfg.Server.Base, f.Handler()))
		},
	}

	// Your reverse proxy must not strip the base prefix. If you're using nginx, the "proxy_pass" value should not end with a slash.
	serveCmd.Flags().String("base", "", "strip off this `prefix` from every HTTP request and prepend it to every link")
	serveCmd.Flags().String("listen", "", "serve HTTP content at this `ip:port`")
	return serveCmd
}

func (a *app) sessionStore(ctx context.Context) (scs.Store, error) {
	switch a.cfg.Session.Store {
	case "redis":
		client, err := sessions.OpenRedis(ctx, a.cfg.Session.RedisURL)
		if err != nil {
			return nil, err
		}
		a.log.Infow("storing sessions in redis", "addr", client.Options().Addr)
		return sessions.NewRedisStore(client), nil
	default:
		return sessions.SQLStore(ctx, a.sqlDB)
	}
}

// listen serves handler until SIGINT or SIGTERM is received, then waits for running requests.
func (a *app) listen(handler http.Handler) error {

	sigintChannel := make(chan os.Signal, 1)

	listener, err := net.Listen("tcp", a.cfg.Server.Listen)
	if err != nil {
		return err
	}

	a.log.Infow("listening", "addr", listener.Addr().String(), "base", a.cfg.Server.Base)

	httpSrv := &http.Server{
		Handler:      handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}

	var serveErr error
	go func() {
		if err := httpSrv.Serve(listener); err != nil {
			// don't return, we want a graceful shutdown
			if !errors.Is(err, http.ErrServerClosed) {
				serveErr = err
			}
			sigintChannel <- os.Interrupt
		}
	}()

	signal.Notify(sigintChannel, os.Interrupt, syscall.SIGTERM)
	<-sigintChannel
	signal.Stop(sigintChannel)

	a.log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		a.log.Warnw("shutting down", "error", err)
	}

	return serveErr
}
