package main

import (
	"context"
	"flag"
	"io"
	"log"

	"scrubjay/internal/modkit"
	"scrubjay/internal/modkit/module"
	"scrubjay/internal/platform/config"
	"scrubjay/internal/platform/logger"
	"scrubjay/internal/platform/store"

	"scrubjay/internal/adapters/ingest/tweetjsonl"
	tweetsdom "scrubjay/internal/services/tweets/domain"
	tweetsmod "scrubjay/internal/services/tweets/module"
)

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
		file  = flag.String("file", "", "tweet export, JSONL or JSONL gzip")
		batch = flag.Int("batch", 500, "insert batch size")
	)
	flag.Parse()

	if *file == "" {
		log.Fatal("-file is required")
	}
	if *batch < 1 {
		*batch = 1
	}

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}
	tw := tweetsmod.New(deps)
	module.Register(tw.Name(), tw.Ports())
	tports := module.MustPortsOf[tweetsmod.Ports](tw)

	rd, err := tweetjsonl.Open(*file)
	if err != nil {
		l.Fatal().Err(err).Str("file", *file).Msg("open export failed")
	}
	defer func() {
		if err := rd.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close reader")
		}
	}()

	ctx := context.Background()
	var (
		buf      = make([]*tweetsdom.Tweet, 0, *batch)
		inserted int64
	)
	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		n, err := tports.Ingest.Ingest(ctx, buf)
		if err != nil {
			return err
		}
		inserted += n
		buf = buf[:0]
		return nil
	}

	for {
		ln, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			l.Fatal().Err(err).Msg("read export failed")
		}
		buf = append(buf, ln.Tweet())
		if len(buf) >= *batch {
			if err := flush(); err != nil {
				l.Fatal().Err(err).Msg("insert batch failed")
			}
		}
	}
	if err := flush(); err != nil {
		l.Fatal().Err(err).Msg("insert batch failed")
	}

	lines, bytes := rd.Stats()
	l.Info().
		Str("file", *file).
		Int("records", lines).
		Int64("bytes", bytes).
		Int64("inserted", inserted).
		Msg("ingest done")
}
