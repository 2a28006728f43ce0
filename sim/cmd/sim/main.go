package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/logging"
	"github.com/automoto/lunar-lander/sim/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (empty = defaults)")
	runs := flag.Int("runs", 100, "Number of sessions to fly")
	parallel := flag.Int("parallel", 8, "Sessions flown at once")
	seed := flag.String("seed", "lander", "Base seed phrase; session i uses <seed>-<i>")
	tickRate := flag.Int("tickrate", core.DefaultTickRate, "Simulation tick rate (ticks per simulated second)")
	maxTicks := flag.Int("maxticks", core.DefaultMaxTicks, "Abandon a session after this many ticks")
	mode := flag.String("mode", "", "Game mode override: free, precision, timed, payload")
	realTime := flag.Bool("realtime", false, "Pace ticks on the wall clock")
	env := flag.String("env", "development", "Log environment (production = JSON)")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address and keep running")
	flag.Parse()

	log := logging.Must(*env)
	defer log.Sync() //nolint:errcheck

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}
	if *mode != "" {
		m, err := config.ParseGameMode(*mode)
		if err != nil {
			log.Fatal("parse mode", zap.Error(err))
		}
		cfg = cfg.WithMode(m)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics := core.NewMetrics(reg)
	registry := core.NewRegistry(*runs)

	var srv *http.Server
	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		mux.HandleFunc("GET /results", core.ListResults(registry, log))
		mux.HandleFunc("GET /health", core.Health())
		srv = &http.Server{Addr: *metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server", zap.Error(err))
			}
		}()
		log.Info("serving metrics", zap.String("addr", *metricsAddr))
	}

	log.Info("starting simulation",
		zap.Int("runs", *runs),
		zap.Int("parallel", *parallel),
		zap.Stringer("mode", cfg.Mode.Mode),
		zap.Int("tick_rate", *tickRate),
	)

	opts := core.Options{
		TickRate: *tickRate,
		MaxTicks: *maxTicks,
		RealTime: *realTime,
		Logger:   log,
	}
	start := time.Now()
	results, err := core.RunBatch(ctx, cfg, core.Seeds(*seed, *runs), *parallel, core.NewAutopilot(cfg), opts, metrics)
	if err != nil {
		log.Error("simulation failed", zap.Error(err))
		os.Exit(1)
	}

	registry.Add(results...)
	sum := core.Summarize(results)
	fields := []zap.Field{
		zap.Int("runs", sum.Runs),
		zap.Int("landed", sum.Landed),
		zap.Int("failed", sum.Failed),
		zap.Int("unfinished", sum.Unfinished),
		zap.Duration("took", time.Since(start)),
	}
	for _, kind := range config.PadKinds {
		fields = append(fields, zap.Int(kind.Label(), sum.ByPad[kind]))
	}
	log.Info("simulation finished", fields...)

	if srv != nil {
		<-ctx.Done()
		log.Info("shutting down metrics server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
}
