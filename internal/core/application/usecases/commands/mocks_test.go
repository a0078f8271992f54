package commands_test

import (
	"context"

	"serviceordering/internal/core/domain/model/event"
	"serviceordering/internal/core/domain/model/listener"
	"serviceordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, doc order.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, doc order.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id string) (order.Document, bool, error) {
	args := m.Called(ctx, id)
	doc, _ := args.Get(0).(order.Document)
	return doc, args.Bool(1), args.Error(2)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]order.Document, error) {
	args := m.Called(ctx)
	docs, _ := args.Get(0).([]order.Document)
	return docs, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockListenerRepository struct{ mock.Mock }

func (m *MockListenerRepository) Add(ctx context.Context, callback, query string) (listener.Registration, error) {
	args := m.Called(ctx, callback, query)
	registration, _ := args.Get(0).(listener.Registration)
	return registration, args.Error(1)
}

func (m *MockListenerRepository) Get(ctx context.Context, id string) (listener.Registration, bool, error) {
	args := m.Called(ctx, id)
	registration, _ := args.Get(0).(listener.Registration)
	return registration, args.Bool(1), args.Error(2)
}

func (m *MockListenerRepository) List(ctx context.Context) ([]listener.Registration, error) {
	args := m.Called(ctx)
	registrations, _ := args.Get(0).([]listener.Registration)
	return registrations, args.Error(1)
}

func (m *MockListenerRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockNotificationPublisher struct{ mock.Mock }

func (m *MockNotificationPublisher) Publish(kind event.Kind, serviceOrder order.Document) {
	m.Called(kind, serviceOrder)
}
