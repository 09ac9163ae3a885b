// Package service implements the cleaner service
package service

import (
	"context"
	"sync"
	"time"

	"scrubjay/internal/core/lemma"
	"scrubjay/internal/core/preprocess"
	perr "scrubjay/internal/platform/errors"
	"scrubjay/internal/platform/logger"
	tweetsdom "scrubjay/internal/services/tweets/domain"

	"github.com/google/uuid"
)

// Config for the cleaner service
type Config struct {
	Workers       int
	PageSize      int
	MaxRangeHours int // 0 = unlimited
	DryRun        bool

	// pipeline knobs
	MinWordLength int
	KeepMarkers   bool
	MentionToken  string
	URLToken      string
	Lemmatize     bool
	FoldUnicode   bool
	StopTerms     []string
}

// Service implements domain.RunnerPort and domain.NormalizerPort
type Service struct {
	Tweets tweetsdom.ReaderPort
	Writer tweetsdom.WriterPort
	Pipe   preprocess.Pipeline
	Cfg    Config
}

// New constructs a new cleaner service
func New(tweets tweetsdom.ReaderPort, writer tweetsdom.WriterPort, cfg Config) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 5000
	}
	return &Service{
		Tweets: tweets,
		Writer: writer,
		Pipe:   buildPipeline(cfg),
		Cfg:    cfg,
	}
}

// sanitizeSplit strips control bytes and invalid UTF-8 before splitting
type sanitizeSplit struct{}

func (sanitizeSplit) Split(text string) []string {
	return preprocess.Whitespace{}.Split(preprocess.Sanitize(text))
}

// buildPipeline renders Config into an ordered pipeline
func buildPipeline(cfg Config) preprocess.Pipeline {
	steps := []preprocess.Transform{
		preprocess.MaskMentions(cfg.MentionToken),
		preprocess.MaskURLs(cfg.URLToken),
		preprocess.DropRT(),
		preprocess.StripPunctuation(!cfg.KeepMarkers),
	}
	if cfg.FoldUnicode {
		steps = append(steps, preprocess.FoldUnicode())
	}
	steps = append(steps, preprocess.Lowercase(), preprocess.CollapseRepeats())
	if cfg.MinWordLength > 0 {
		steps = append(steps, preprocess.MinLength(cfg.MinWordLength))
	}
	if len(cfg.StopTerms) > 0 {
		steps = append(steps, preprocess.DropExact(cfg.StopTerms, true))
	}
	if cfg.Lemmatize {
		steps = append(steps, preprocess.Lemmatize(lemma.New()))
	}
	steps = append(steps, preprocess.DropEmpty())

	return preprocess.Pipeline{
		Split: sanitizeSplit{},
		Steps: steps,
	}
}

// Normalize implements domain.NormalizerPort
func (s *Service) Normalize(_ context.Context, texts []string) []string {
	return preprocess.Strings(texts, s.Pipe)
}

// RunRange cleans tweets posted in [start, end), paging by keyset and
// writing clean text back in batches
func (s *Service) RunRange(ctx context.Context, start, end time.Time) error {
	start = start.Truncate(time.Hour).UTC()
	end = end.Truncate(time.Hour).UTC()
	if end.Before(start) {
		return perr.InvalidArgf("end before start")
	}
	if s.Cfg.MaxRangeHours > 0 && int(end.Sub(start).Hours()) > s.Cfg.MaxRangeHours {
		return perr.InvalidArgf("range exceeds %d hours", s.Cfg.MaxRangeHours)
	}

	ctx = logger.WithBatch(ctx, uuid.NewString())
	log := logger.C(ctx)

	var pages, updated int64
	after := tweetsdom.AfterKey{}
	for {
		rows, next, err := s.Tweets.List(ctx, tweetsdom.ListInput{
			Since: start, Until: end,
			After: after, Limit: s.Cfg.PageSize,
			OnlyDirty: true,
		})
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			log.Info().Int64("pages", pages).Int64("updated", updated).Msg("clean range done")
			return nil
		}
		pages++

		// split the page into per-worker chunks; Records clones, so the
		// page itself is never mutated
		chunkSize := (len(rows) + s.Cfg.Workers - 1) / s.Cfg.Workers
		out := make([][]tweetsdom.CleanUpdate, s.Cfg.Workers)

		sem := make(chan struct{}, s.Cfg.Workers)
		wg := sync.WaitGroup{}

		for w := 0; w < s.Cfg.Workers; w++ {
			lo := w * chunkSize
			if lo >= len(rows) {
				break
			}
			hi := lo + chunkSize
			if hi > len(rows) {
				hi = len(rows)
			}

			wg.Add(1)
			sem <- struct{}{}
			go func(w, lo, hi int) {
				defer func() { <-sem; wg.Done() }()
				cleaned := preprocess.Records(rows[lo:hi], s.Pipe)
				buf := make([]tweetsdom.CleanUpdate, 0, len(cleaned))
				for _, t := range cleaned {
					buf = append(buf, tweetsdom.CleanUpdate{ID: t.ID, CleanText: t.CleanText})
				}
				out[w] = buf
			}(w, lo, hi)
		}
		wg.Wait()

		if !s.Cfg.DryRun {
			flat := make([]tweetsdom.CleanUpdate, 0, len(rows))
			for _, buf := range out {
				flat = append(flat, buf...)
			}
			if len(flat) > 0 {
				n, err := s.Writer.WriteClean(ctx, flat)
				if err != nil {
					return err
				}
				updated += n
			}
		}

		after = next
	}
}
