package listenerrepo

import "serviceordering/internal/core/domain/model/listener"

// ListenerDTO is the database row for one notification subscription.
type ListenerDTO struct {
	ID       string `gorm:"primaryKey;column:id"`
	Callback string `gorm:"column:callback;not null"`
	Query    string `gorm:"column:query"`
}

// TableName implements the gorm table naming convention.
func (ListenerDTO) TableName() string {
	return "hub_listeners"
}

func fromDomain(registration listener.Registration) ListenerDTO {
	return ListenerDTO{
		ID:       registration.ID,
		Callback: registration.Callback,
		Query:    registration.Query,
	}
}

func toDomain(dto ListenerDTO) listener.Registration {
	return listener.Registration{
		ID:       dto.ID,
		Callback: dto.Callback,
		Query:    dto.Query,
	}
}
