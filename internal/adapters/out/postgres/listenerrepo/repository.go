// Package listenerrepo implements the listener repository on PostgreSQL.
package listenerrepo

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"serviceordering/internal/core/domain/model/listener"
	"serviceordering/internal/core/ports"
)

// GormListenerRepository implements ports.ListenerRepository using GORM.
type GormListenerRepository struct {
	db *gorm.DB
}

var _ ports.ListenerRepository = (*GormListenerRepository)(nil)

// NewGormListenerRepository creates a new GORM listener repository.
func NewGormListenerRepository(db *gorm.DB) *GormListenerRepository {
	return &GormListenerRepository{db: db}
}

// Add stores a registration under a fresh identifier from the hub sequence.
func (r *GormListenerRepository) Add(ctx context.Context, callback, query string) (listener.Registration, error) {
	var next int64
	if err := r.db.WithContext(ctx).Raw("SELECT nextval('hub_listener_id_seq')").Scan(&next).Error; err != nil {
		return listener.Registration{}, err
	}

	registration := listener.Registration{
		ID:       strconv.FormatInt(next, 10),
		Callback: callback,
		Query:    query,
	}
	dto := fromDomain(registration)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return listener.Registration{}, err
	}
	return registration, nil
}

// Get retrieves a registration by identifier.
func (r *GormListenerRepository) Get(ctx context.Context, id string) (listener.Registration, bool, error) {
	var dto ListenerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return listener.Registration{}, false, nil
		}
		return listener.Registration{}, false, err
	}
	return toDomain(dto), true, nil
}

// List returns all registrations.
func (r *GormListenerRepository) List(ctx context.Context) ([]listener.Registration, error) {
	var dtos []ListenerDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	registrations := make([]listener.Registration, 0, len(dtos))
	for _, dto := range dtos {
		registrations = append(registrations, toDomain(dto))
	}
	return registrations, nil
}

// Delete removes a registration and reports whether it existed.
func (r *GormListenerRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&ListenerDTO{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
