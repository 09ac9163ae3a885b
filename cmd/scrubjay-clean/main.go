package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"scrubjay/internal/modkit"
	"scrubjay/internal/modkit/module"
	"scrubjay/internal/platform/config"
	"scrubjay/internal/platform/logger"
	"scrubjay/internal/platform/store"

	cleanerdom "scrubjay/internal/services/cleaner/domain"
	cleanermod "scrubjay/internal/services/cleaner/module"
	tweetsmod "scrubjay/internal/services/tweets/module"
)

func mustSetEnv(k, v string) {
	if v != "" {
		_ = os.Setenv(k, v)
	}
}

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", true),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	var (
		startStr = flag.String("start", "", "inclusive hour, e.g. 2025-08-01T00")
		endStr   = flag.String("end", "", "exclusive hour, e.g. 2025-08-01T03")
		workers  = flag.Int("workers", 2, "concurrency (>=1)")
		page     = flag.Int("page", 5000, "page size (rows)")
		dryRun   = flag.Bool("dry-run", false, "compute but do not write clean text")
	)
	flag.Parse()

	if *startStr == "" || *endStr == "" {
		log.Fatal("start/end are required (hour resolution)")
	}
	start, err := time.Parse("2006-01-02T15", *startStr)
	if err != nil {
		log.Fatalf("bad -start: %v", err)
	}
	end, err := time.Parse("2006-01-02T15", *endStr)
	if err != nil {
		log.Fatalf("bad -end: %v", err)
	}
	if !start.Before(end) {
		log.Fatal("start must be < end")
	}

	// Pass CLI flags into CORE_CLEAN_* so the module can read its own config
	mustSetEnv("CORE_CLEAN_WORKERS", strconv.Itoa(*workers))
	mustSetEnv("CORE_CLEAN_PAGE_SIZE", strconv.Itoa(*page))
	mustSetEnv("CORE_CLEAN_DRY_RUN", map[bool]string{true: "1", false: "0"}[*dryRun])

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}

	// Build dependency modules first
	tw := tweetsmod.New(deps)
	tports := module.MustPortsOf[tweetsmod.Ports](tw)

	cm := cleanermod.New(
		deps,
		cleanermod.Options{
			Workers:  *workers,
			PageSize: *page,
			DryRun:   *dryRun,
		},
		modkit.WithPorts(cleanerdom.Ports{
			Tweets: tports.Reader,
			Writer: tports.Writer,
		}),
	)

	// Register ports
	module.Register(tw.Name(), tw.Ports())
	module.Register(cm.Name(), cm.Ports())

	// Kick the runner
	ports := cm.Ports().(cleanermod.Ports)
	if err := ports.Runner.RunRange(context.Background(), start.UTC(), end.UTC()); err != nil {
		l.Fatal().Err(err).Msg("clean failed")
	}
}
