package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/fslgroup/ppodgraph/config"
	"github.com/fslgroup/ppodgraph/ingest"
)

// watchMetrics holds the Prometheus instruments for watch mode.
type watchMetrics struct {
	conversions *prometheus.CounterVec
	duration    prometheus.Histogram
	triples     prometheus.Gauge
	vocabMisses prometheus.Gauge
	rowErrors   prometheus.Gauge
}

func newWatchMetrics(reg prometheus.Registerer) *watchMetrics {
	m := &watchMetrics{
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ppodgraph_conversions_total",
			Help: "Conversions attempted, by outcome.",
		}, []string{"status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ppodgraph_conversion_duration_seconds",
			Help:    "Wall time of a full workbook conversion.",
			Buckets: prometheus.DefBuckets,
		}),
		triples: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ppodgraph_triples",
			Help: "Triples in the most recent converted graph.",
		}),
		vocabMisses: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ppodgraph_vocab_misses",
			Help: "Vocabulary lookup misses in the most recent conversion.",
		}),
		rowErrors: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ppodgraph_row_errors",
			Help: "Malformed rows skipped in the most recent conversion.",
		}),
	}
	reg.MustRegister(m.conversions, m.duration, m.triples, m.vocabMisses, m.rowErrors)
	return m
}

func (m *watchMetrics) observe(res *ingest.Result, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.conversions.WithLabelValues(status).Inc()
	m.duration.Observe(elapsed.Seconds())
	if res != nil {
		m.triples.Set(float64(res.Graph.Len()))
		m.vocabMisses.Set(float64(res.Misses))
		m.rowErrors.Set(float64(res.RowErrors))
	}
}

func watchCmd() *cobra.Command {
	var flags flagOverrides

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reconvert whenever the workbook changes",
		Long: `watch converts the workbook once, then watches the workbook and
lookup directories and reconverts after file changes settle.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging(flags.logLevel)
			cfg, err := loadConfig(&flags, logger)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return runWatch(ctx, cfg, logger)
		},
	}
	flags.register(cmd)
	return cmd
}

func runWatch(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	var metrics *watchMetrics
	if cfg.Watch.MetricsAddr != "" {
		metrics = newWatchMetrics(prometheus.DefaultRegisterer)
		go serveMetrics(ctx, cfg.Watch.MetricsAddr, logger)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.Workbook.Dir); err != nil {
		return fmt.Errorf("watch %s: %w", cfg.Workbook.Dir, err)
	}
	if dir := cfg.LookupDir(); dir != cfg.Workbook.Dir {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	runOnce := func() {
		start := time.Now()
		res, err := convert(ctx, cfg, logger)
		metrics.observe(res, err, time.Since(start))
		if err != nil {
			logger.Error("Conversion failed", "error", err)
		}
	}
	runOnce()

	debounce := cfg.Watch.Debounce
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	logger.Info("Watching for changes",
		"dir", cfg.Workbook.Dir,
		"debounce", debounce)

	pending := false
	for {
		select {
		case <-ctx.Done():
			logger.Info("Watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event, cfg.Output.Path) {
				continue
			}
			logger.Debug("File changed", "path", event.Name, "op", event.Op.String())
			pending = true
			ticker.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			if pending {
				pending = false
				runOnce()
			}
		}
	}
}

// relevantEvent reports whether a filesystem event should trigger a
// reconversion. The output file itself is ignored so a run cannot
// retrigger the watch.
func relevantEvent(event fsnotify.Event, outputPath string) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	if filepath.Clean(event.Name) == filepath.Clean(outputPath) {
		return false
	}
	return strings.EqualFold(filepath.Ext(name), ".csv")
}

func serveMetrics(ctx context.Context, addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Serving metrics", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Metrics server failed", "error", err)
	}
}
