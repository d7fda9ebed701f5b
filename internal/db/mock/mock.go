package mock

import (
	"context"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "wearbmi/internal/log"
	"wearbmi/models"
)

// New returns an in-memory sqlite database seeded with representative
// measurement history, for running the service without postgres.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:wearbmi-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Record{}); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	now := time.Now().UTC()
	records := []models.Record{
		{ClientID: "demo", Height: 170, Weight: 78, BMI: 26.99, Category: "Overweight", RecordedAt: now.AddDate(0, -2, 0)},
		{ClientID: "demo", Height: 170, Weight: 74, BMI: 25.61, Category: "Overweight", RecordedAt: now.AddDate(0, -1, 0)},
		{ClientID: "demo", Height: 170, Weight: 71, BMI: 24.57, Category: "Normal", RecordedAt: now.AddDate(0, 0, -7)},
	}

	return db.WithContext(ctx).Create(&records).Error
}
