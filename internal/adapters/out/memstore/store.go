// Package memstore provides the default in-memory persistence for service
// orders and listener registrations. Data lives for the process lifetime
// only; durability is out of scope.
package memstore

import (
	"context"
	"strconv"
	"sync"

	"serviceordering/internal/core/domain/model/listener"
	"serviceordering/internal/core/domain/model/order"
	"serviceordering/internal/core/ports"
	"serviceordering/internal/pkg/errs"
)

// Store keeps service orders and listener registrations in maps guarded by a
// single mutex, so cross-entity reads observe a consistent snapshot.
// Identifier counters are monotonically increasing per entity kind, start at
// 1, and never reuse a value even after deletion.
type Store struct {
	mu               sync.Mutex
	orderSequence    uint64
	listenerSequence uint64
	orders           map[string]order.Document
	listeners        map[string]listener.Registration
}

// NewStore creates an empty store. Instances are constructed and injected
// explicitly; there is no process-wide singleton.
func NewStore() *Store {
	return &Store{
		orders:    make(map[string]order.Document),
		listeners: make(map[string]listener.Registration),
	}
}

// Orders exposes the store as an order repository.
func (s *Store) Orders() ports.OrderRepository {
	return orderRepository{store: s}
}

// Listeners exposes the store as a listener repository.
func (s *Store) Listeners() ports.ListenerRepository {
	return listenerRepository{store: s}
}

// Counts reports the current number of stored orders and registrations.
func (s *Store) Counts() (orders, listeners int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders), len(s.listeners)
}

type orderRepository struct {
	store *Store
}

func (r orderRepository) NextID(_ context.Context) (string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.orderSequence++
	return strconv.FormatUint(r.store.orderSequence, 10), nil
}

func (r orderRepository) Add(_ context.Context, doc order.Document) error {
	id := doc.ID()
	if id == "" {
		return errs.NewInternalError("service order id must be set before persistence")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.orders[id]; exists {
		return errs.NewConflictError("serviceOrderId", id)
	}
	r.store.orders[id] = doc.DeepCopy()
	return nil
}

func (r orderRepository) Update(_ context.Context, doc order.Document) error {
	id := doc.ID()
	if id == "" {
		return errs.NewInternalError("service order id must be set before persistence")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.orders[id]; !exists {
		return errs.NewInternalError("update of unknown service order '" + id + "'")
	}
	r.store.orders[id] = doc.DeepCopy()
	return nil
}

func (r orderRepository) Get(_ context.Context, id string) (order.Document, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	doc, exists := r.store.orders[id]
	if !exists {
		return nil, false, nil
	}
	return doc.DeepCopy(), true, nil
}

func (r orderRepository) List(_ context.Context) ([]order.Document, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	snapshot := make([]order.Document, 0, len(r.store.orders))
	for _, doc := range r.store.orders {
		snapshot = append(snapshot, doc.DeepCopy())
	}
	return snapshot, nil
}

func (r orderRepository) Delete(_ context.Context, id string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	_, existed := r.store.orders[id]
	if existed {
		delete(r.store.orders, id)
	}
	return existed, nil
}

type listenerRepository struct {
	store *Store
}

func (r listenerRepository) Add(_ context.Context, callback, query string) (listener.Registration, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.listenerSequence++
	registration := listener.Registration{
		ID:       strconv.FormatUint(r.store.listenerSequence, 10),
		Callback: callback,
		Query:    query,
	}
	r.store.listeners[registration.ID] = registration
	return registration, nil
}

func (r listenerRepository) Get(_ context.Context, id string) (listener.Registration, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	registration, exists := r.store.listeners[id]
	return registration, exists, nil
}

func (r listenerRepository) List(_ context.Context) ([]listener.Registration, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	snapshot := make([]listener.Registration, 0, len(r.store.listeners))
	for _, registration := range r.store.listeners {
		snapshot = append(snapshot, registration)
	}
	return snapshot, nil
}

func (r listenerRepository) Delete(_ context.Context, id string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	_, existed := r.store.listeners[id]
	if existed {
		delete(r.store.listeners, id)
	}
	return existed, nil
}
