package orderrepo

import (
	"encoding/json"

	"serviceordering/internal/core/domain/model/order"
)

// OrderDTO is the database row for one service order. The full document is
// kept as JSONB so extension attributes survive the round trip.
type OrderDTO struct {
	ID       string `gorm:"primaryKey;column:id"`
	Document []byte `gorm:"column:document;type:jsonb;not null"`
}

// TableName implements the gorm table naming convention.
func (OrderDTO) TableName() string {
	return "service_orders"
}

func fromDomain(doc order.Document) (OrderDTO, error) {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return OrderDTO{}, err
	}
	return OrderDTO{ID: doc.ID(), Document: encoded}, nil
}

func toDomain(dto OrderDTO) (order.Document, error) {
	var doc order.Document
	if err := json.Unmarshal(dto.Document, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
