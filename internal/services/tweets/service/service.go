// Package service provides the tweets service implementation
package service

import (
	"context"

	"scrubjay/internal/modkit/repokit"
	"scrubjay/internal/services/tweets/domain"
	"scrubjay/internal/services/tweets/repo"
)

// Config for the tweets service
type Config struct {
	// HardLimit is the maximum allowed limit per List call; defaults to 5000 if <=0
	HardLimit int
}

// Service implements domain.ReaderPort and domain.WriterPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Cfg    Config
}

// New constructs a new tweets service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], cfg Config) *Service {
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 5000
	}
	return &Service{DB: db, Binder: b, Cfg: cfg}
}

// List implements domain.ReaderPort
func (s *Service) List(ctx context.Context, in domain.ListInput) ([]*domain.Tweet, domain.AfterKey, error) {
	limit := in.Limit
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}

	var rows []*domain.Tweet
	var next domain.AfterKey
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		rows, next, err = s.Binder.Bind(q).List(ctx, in, limit)
		return err
	})
	if err != nil {
		return nil, domain.AfterKey{}, err
	}
	return rows, next, nil
}

// WriteClean implements domain.WriterPort
func (s *Service) WriteClean(ctx context.Context, xs []domain.CleanUpdate) (int64, error) {
	if len(xs) == 0 {
		return 0, nil
	}
	var n int64
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		n, err = s.Binder.Bind(q).WriteClean(ctx, xs)
		return err
	})
	return n, err
}

// Ingest stores raw tweets, skipping rows already present
func (s *Service) Ingest(ctx context.Context, xs []*domain.Tweet) (int64, error) {
	if len(xs) == 0 {
		return 0, nil
	}
	var n int64
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		n, err = s.Binder.Bind(q).Insert(ctx, xs)
		return err
	})
	return n, err
}
