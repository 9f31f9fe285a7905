// Command sparsepath builds a random sparse directed graph (or the six-node
// sample network), prints the cheapest route between two nodes and the
// average route cost from node 1.
//
// Values missing from the flags and the config file are asked for on stdin.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/sparsepath/dijkstra"
	"github.com/katalvlaran/sparsepath/internal/config"
	"github.com/katalvlaran/sparsepath/internal/demo"
	"github.com/katalvlaran/sparsepath/query"
)

var flagConfig = flag.String(
	"config",
	"",
	"Path to a YAML config file (default: $SPARSEPATH_CONFIG, ./sparsepath.yaml, ~/.config/sparsepath/config.yaml)",
)

var flagNodes = flag.Int(
	"nodes",
	0,
	"Number of nodes in the random graph (0: ask)",
)

var flagProb = flag.Int(
	"prob",
	0,
	"Edge probability in percent, 1..100 (0: ask)",
)

var flagOrigin = flag.Uint64(
	"origin",
	0,
	"Origin node (0: ask)",
)

var flagDest = flag.Uint64(
	"dest",
	0,
	"Destination node (0: ask)",
)

var flagPrint = flag.Bool(
	"print",
	false,
	"Print the whole graph instead of a summary line (unset: ask)",
)

var flagSeed = flag.Int64(
	"seed",
	0,
	"Seed for the graph generator (unset: current time)",
)

var flagSample = flag.Bool(
	"sample",
	false,
	"Use the six-node sample network",
)

var flagHeap = flag.Bool(
	"heap",
	false,
	"Use the binary-heap frontier instead of the linear open set",
)

var flagMetricsAddr = flag.String(
	"metrics-addr",
	"",
	"Serve Prometheus metrics on this address, e.g. :9100",
)

var flagLogLevel = flag.String(
	"log-level",
	"",
	"Log level: debug, info, warn or error",
)

var flagLogJSON = flag.Bool(
	"log-json",
	false,
	"Log as JSON instead of text",
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sparsepath:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, path, err := config.Load(*flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Debug("config loaded", slog.String("path", path))
	}

	frontier, _ := cfg.FrontierKind()
	qopts := []query.Option{
		query.WithLogger(logger),
		query.WithSearchOptions(dijkstra.WithFrontier(frontier)),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.Addr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		qopts = append(qopts, query.WithMetrics(query.NewMetrics(reg)))

		srv := serveMetrics(cfg.Metrics.Addr, reg, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	app := demo.New(cfg,
		demo.WithLogger(logger),
		demo.WithQuerier(query.New(qopts...)),
	)

	return app.Run(ctx)
}

// applyFlags copies every flag given on the command line over cfg.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "nodes":
			cfg.Nodes = *flagNodes
		case "prob":
			cfg.Probability = *flagProb
		case "origin":
			cfg.Origin = *flagOrigin
		case "dest":
			cfg.Destination = *flagDest
		case "print":
			v := *flagPrint
			cfg.PrintGraph = &v
		case "seed":
			v := *flagSeed
			cfg.Seed = &v
		case "sample":
			cfg.Sample = *flagSample
		case "heap":
			if *flagHeap {
				cfg.Frontier = dijkstra.FrontierHeap.String()
			} else {
				cfg.Frontier = dijkstra.FrontierLinear.String()
			}
		case "metrics-addr":
			cfg.Metrics.Addr = *flagMetricsAddr
		case "log-level":
			cfg.Log.Level = *flagLogLevel
		case "log-json":
			cfg.Log.JSON = *flagLogJSON
		}
	})
}

// newLogger writes to stderr so that prompts and results on stdout stay clean.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Log.JSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("serving metrics", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", slog.String("error", err.Error()))
		}
	}()

	return srv
}
