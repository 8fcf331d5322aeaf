package writer

import (
	"context"

	"github.com/mhalvorsen/lsm-workbench/internal/model"
)

// ResultWriter persists benchmark records.
type ResultWriter interface {
	// Write persists one record. Writers are safe for concurrent use.
	Write(ctx context.Context, rec model.ResultRecord) error

	// Close flushes and releases the underlying resource.
	Close() error
}

// Multi fans one record out to several writers, stopping at the first
// error.
type Multi []ResultWriter

func (m Multi) Write(ctx context.Context, rec model.ResultRecord) error {
	for _, w := range m {
		if err := w.Write(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) Close() error {
	var first error
	for _, w := range m {
		if err := w.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
