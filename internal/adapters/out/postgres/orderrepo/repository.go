// Package orderrepo implements the order repository on PostgreSQL.
package orderrepo

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"serviceordering/internal/core/domain/model/order"
	"serviceordering/internal/core/ports"
	"serviceordering/internal/pkg/errs"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// NextID reserves a fresh identifier from the order sequence.
func (r *GormOrderRepository) NextID(ctx context.Context) (string, error) {
	var next int64
	if err := r.db.WithContext(ctx).Raw("SELECT nextval('service_order_id_seq')").Scan(&next).Error; err != nil {
		return "", err
	}
	return strconv.FormatInt(next, 10), nil
}

// Add inserts a new service order row.
func (r *GormOrderRepository) Add(ctx context.Context, doc order.Document) error {
	if doc.ID() == "" {
		return errs.NewInternalError("service order id must be set before persistence")
	}

	dto, err := fromDomain(doc)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("serviceOrderId", doc.ID())
		}
		return err
	}
	return nil
}

// Update replaces the stored document of an existing service order.
func (r *GormOrderRepository) Update(ctx context.Context, doc order.Document) error {
	if doc.ID() == "" {
		return errs.NewInternalError("service order id must be set before persistence")
	}

	dto, err := fromDomain(doc)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Update("document", dto.Document)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewInternalError("update of unknown service order '" + doc.ID() + "'")
	}
	return nil
}

// Get retrieves a service order by identifier.
func (r *GormOrderRepository) Get(ctx context.Context, id string) (order.Document, bool, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	doc, err := toDomain(dto)
	if err != nil {
		return nil, false, err
	}
	return doc, true, nil
}

// List returns all stored service orders.
func (r *GormOrderRepository) List(ctx context.Context) ([]order.Document, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	docs := make([]order.Document, 0, len(dtos))
	for _, dto := range dtos {
		doc, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Delete removes a service order row and reports whether it existed.
func (r *GormOrderRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
