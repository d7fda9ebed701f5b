package store

import (
	"context"

	"gorm.io/gorm"

	"wearbmi/models"
)

// Database persists records through gorm. Insertion order is preserved by
// the autoincrementing primary key.
type Database struct {
	db *gorm.DB
}

// NewDatabase wraps an initialised gorm handle.
func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

func (d *Database) Append(ctx context.Context, rec models.Record) (models.Record, error) {
	if err := d.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return models.Record{}, err
	}
	return rec, nil
}

func (d *Database) List(ctx context.Context, clientID string) ([]models.Record, error) {
	var records []models.Record
	err := d.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
