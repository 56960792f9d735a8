// Package main provides the ppodgraph binary entry point.
// ppodgraph converts the PPOD workbook (organizations, projects,
// programs, people and related sheets) into a single RDF graph.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/fslgroup/ppodgraph/config"
	"github.com/fslgroup/ppodgraph/export"
	"github.com/fslgroup/ppodgraph/graph"
	"github.com/fslgroup/ppodgraph/ingest"
	"github.com/fslgroup/ppodgraph/table"
	"github.com/fslgroup/ppodgraph/vocabulary/ppod"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "ppodgraph"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flagOverrides carries the flag values shared by convert and watch.
type flagOverrides struct {
	configPath  string
	workbookDir string
	outputPath  string
	format      string
	logLevel    string
}

func (f *flagOverrides) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&f.workbookDir, "workbook", "", "Directory holding the workbook CSV exports")
	cmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "Output file path")
	cmd.Flags().StringVar(&f.format, "format", "", "Output format (turtle, ntriples, jsonld)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func rootCmd() *cobra.Command {
	var flags flagOverrides

	cmd := &cobra.Command{
		Use:   "ppodgraph",
		Short: "Convert the PPOD workbook to RDF",
		Long: `ppodgraph converts the PPOD workbook of California food system
entities (organizations, projects, programs, people, guidelines,
datasets, tools) into a single RDF graph.

Sheet columns map to predicates through fixed per-sheet schemas;
cross-sheet references resolve by hashing entity labels, so the
conversion is deterministic and needs no shared state between runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging(flags.logLevel)
			cfg, err := loadConfig(&flags, logger)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			_, err = convert(ctx, cfg, logger)
			return err
		},
	}
	flags.register(cmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})
	cmd.AddCommand(watchCmd())

	return cmd
}

func setupLogging(logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func loadConfig(flags *flagOverrides, logger *slog.Logger) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if flags.configPath != "" {
		cfg, err = config.LoadFromFile(flags.configPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg, err = config.NewLoader(logger).Load()
		if err != nil {
			return nil, err
		}
	}

	cfg.Merge(&config.Config{
		Workbook: config.WorkbookConfig{Dir: flags.workbookDir},
		Output:   config.OutputConfig{Path: flags.outputPath, Format: flags.format},
	})
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadSource reads the workbook and the lookup tables named by the
// configuration.
func loadSource(cfg *config.Config) (ingest.Source, error) {
	wb, err := table.LoadDir(cfg.Workbook.Dir, cfg.Workbook.Pattern)
	if err != nil {
		return ingest.Source{}, fmt.Errorf("load workbook: %w", err)
	}
	counties, err := table.LoadCSV(cfg.LookupPath(cfg.Lookups.Counties), "")
	if err != nil {
		return ingest.Source{}, fmt.Errorf("load counties lookup: %w", err)
	}
	commodities, err := table.LoadCSV(cfg.LookupPath(cfg.Lookups.Commodities), "")
	if err != nil {
		return ingest.Source{}, fmt.Errorf("load commodities lookup: %w", err)
	}
	habitats, err := table.LoadCSV(cfg.LookupPath(cfg.Lookups.Habitats), "")
	if err != nil {
		return ingest.Source{}, fmt.Errorf("load habitat lookup: %w", err)
	}
	return ingest.Source{
		Workbook:    wb,
		Counties:    counties,
		Commodities: commodities,
		Habitats:    habitats,
	}, nil
}

// convert runs one full conversion: load, ingest, serialize, write,
// and optionally publish. Sheet-level failures still produce output;
// they surface in the returned error so the exit code reflects them.
func convert(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*ingest.Result, error) {
	runID := uuid.NewString()
	log := logger.With("run_id", runID)
	start := time.Now()
	log.Info("Starting conversion", "workbook_dir", cfg.Workbook.Dir)

	src, err := loadSource(cfg)
	if err != nil {
		return nil, err
	}

	var diagWriter io.Writer = os.Stderr
	if cfg.Output.Diagnostics != "" {
		f, err := os.Create(cfg.Output.Diagnostics)
		if err != nil {
			return nil, fmt.Errorf("open diagnostics file: %w", err)
		}
		defer f.Close()
		diagWriter = f
	}

	res, runErr := ingest.Run(src, ingest.Options{
		Base:        cfg.Base,
		Diagnostics: diagWriter,
		Logger:      log,
	})
	if res == nil {
		return nil, runErr
	}

	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return res, err
	}
	out, err := export.NewExporter(ppod.Prefixes).Export(res.Graph, format)
	if err != nil {
		return res, err
	}
	if err := os.WriteFile(cfg.Output.Path, []byte(out), 0644); err != nil {
		return res, fmt.Errorf("write output: %w", err)
	}

	if cfg.NATS.URL != "" {
		if err := publish(ctx, cfg, res, log); err != nil {
			return res, err
		}
	}

	log.Info("Conversion complete",
		"triples", res.Graph.Len(),
		"vocab_misses", res.Misses,
		"row_errors", res.RowErrors,
		"output", cfg.Output.Path,
		"duration", time.Since(start).Round(time.Millisecond))
	return res, runErr
}

func publish(ctx context.Context, cfg *config.Config, res *ingest.Result, log *slog.Logger) error {
	nc, err := nats.Connect(cfg.NATS.URL,
		nats.Name(appName),
		nats.Timeout(10*time.Second),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return fmt.Errorf("connect to NATS at %s: %w", cfg.NATS.URL, err)
	}
	defer nc.Close()

	log.Info("Publishing graph", "url", cfg.NATS.URL, "subject", graph.GraphIngestSubject)
	if err := graph.NewPublisher(nc, cfg.NATS.Source).Publish(ctx, res.Graph); err != nil {
		return fmt.Errorf("publish graph: %w", err)
	}
	return nil
}
