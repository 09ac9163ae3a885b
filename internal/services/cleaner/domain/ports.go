// Package domain defines ports and DTOs for the cleaner service
package domain

import (
	"context"
	"time"

	tweetsdom "scrubjay/internal/services/tweets/domain"
)

// RunnerPort is the external port for the range cleaning job
type RunnerPort interface {
	RunRange(ctx context.Context, start, end time.Time) error
}

// NormalizerPort cleans ad-hoc text batches without touching storage
type NormalizerPort interface {
	Normalize(ctx context.Context, texts []string) []string
}

// Ports are dependencies injected into the cleaner module
type Ports struct {
	Tweets tweetsdom.ReaderPort // required
	Writer tweetsdom.WriterPort // required
}
