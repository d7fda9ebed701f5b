// Package store keeps the BMI record history. The default implementation is
// in-memory and lives for the process lifetime, matching the watch app's
// transient history; a database-backed implementation is available when a
// database is configured.
package store

import (
	"context"

	"wearbmi/models"
)

// Store is the append/list contract the tracker consumes. List returns
// records in insertion order.
type Store interface {
	Append(ctx context.Context, rec models.Record) (models.Record, error)
	List(ctx context.Context, clientID string) ([]models.Record, error)
}
