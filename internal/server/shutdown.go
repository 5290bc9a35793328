package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const drainTimeout = 5 * time.Second

// NotifyShutdown returns a context cancelled by the first SIGINT or SIGTERM.
// Signal capture stops as soon as that happens, so a second Ctrl+C falls
// through to the default handler and kills the process.
func NotifyShutdown(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	context.AfterFunc(ctx, stop)
	return ctx, stop
}

// Serve runs srv until ctx is cancelled, then gives in-flight requests
// drainTimeout to finish. Extra servers (metrics, pprof) are shut down with it.
func Serve(ctx context.Context, srv *http.Server, logger *zap.Logger, extra ...*http.Server) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down gracefully, press Ctrl+C again to force")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
		defer cancel()

		var shutdownErr error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server forced to shutdown", zap.Error(err))
			shutdownErr = err
		}
		for _, s := range extra {
			if s == nil {
				continue
			}
			if err := s.Shutdown(shutdownCtx); err != nil {
				shutdownErr = errors.Join(shutdownErr, err)
			}
		}
		logger.Info("Server exiting")
		return shutdownErr
	})

	return g.Wait()
}
