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

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"speakup/publisher"
	"speakup/server"
	"speakup/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	timeout, err := cfg.ShutdownTimeout()
	if err != nil {
		return err
	}

	messages, err := store.Open(cfg.Store.Backend, cfg.Store.Path)
	if err != nil {
		return err
	}
	defer messages.Close()

	srv, err := server.New(newGenerator(0), messages, publisher.New(logger.Named("publisher")), logger.Named("http"))
	if err != nil {
		return err
	}
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, httpSrv, timeout)
}

// serve runs httpSrv until ctx is done, then shuts it down within timeout.
func serve(ctx context.Context, httpSrv *http.Server, timeout time.Duration) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting web server", zap.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("starting graceful shutdown")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			_ = httpSrv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})
	return g.Wait()
}
