// Package postgres provides optional PostgreSQL-backed repositories behind
// the same ports as the in-memory store. Orders are persisted as JSONB
// documents so the semi-structured resource round-trips unchanged.
package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"serviceordering/internal/adapters/out/postgres/listenerrepo"
	"serviceordering/internal/adapters/out/postgres/orderrepo"
)

// Open connects to PostgreSQL with error translation enabled so duplicate-key
// violations surface as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}

// Migrate creates the tables and identifier sequences. Sequences start at 1
// and never reuse a value, matching the in-memory counters.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&orderrepo.OrderDTO{}, &listenerrepo.ListenerDTO{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	sequences := []string{
		"CREATE SEQUENCE IF NOT EXISTS service_order_id_seq START 1",
		"CREATE SEQUENCE IF NOT EXISTS hub_listener_id_seq START 1",
	}
	for _, statement := range sequences {
		if err := db.Exec(statement).Error; err != nil {
			return fmt.Errorf("failed to create sequence: %w", err)
		}
	}
	return nil
}
