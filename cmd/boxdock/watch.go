package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-dock/internal/debug"
)

const watchDebounce = 100 * time.Millisecond

func newWatchCmd(root *rootOptions) *cobra.Command {
	var (
		opts        restoreOptions
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-solve a dock snapshot whenever it changes",
		Long: `watch runs restore on FILE and again after every change to it until
interrupted. With --metrics-addr the layout and scheduler metrics are
served at /metrics while watching.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runWatch(ctx, cmd.OutOrStdout(), args[0], metricsAddr, func() error {
				return runRestore(cmd.OutOrStdout(), root.cfg, args[0], opts)
			})
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	return cmd
}

func runWatch(ctx context.Context, w io.Writer, path, metricsAddr string, solve func() error) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so watch the directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	p := newPrinter(w)
	report := func() {
		if err := solve(); err != nil {
			p.warn(fmt.Sprintf("error: %v", err))
		}
	}
	report()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watchLoop(ctx, watcher.Events, watcher.Errors, path, watchDebounce, report)
	})

	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{Addr: metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

		g.Go(func() error {
			debug.Logger().Info("watch: serving metrics", "addr", metricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}

// watchLoop calls onChange after events for target settle for debounce. It
// returns nil when ctx is done or events is closed, and the error when the
// watcher reports one.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, target string, debounce time.Duration, onChange func()) error {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending bool
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				if pending {
					onChange()
				}
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			debug.Logger().Debug("watch: change", "file", ev.Name, "op", ev.Op.String())
			if debounce <= 0 {
				onChange()
				continue
			}
			pending = true
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				timer.Reset(debounce)
			}

		case <-timerC:
			if pending {
				pending = false
				onChange()
			}

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher: %w", err)
		}
	}
}
