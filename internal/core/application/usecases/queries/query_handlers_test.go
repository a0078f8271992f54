package queries_test

import (
	"context"
	"errors"
	"testing"

	"serviceordering/internal/core/application/usecases/queries"
	"serviceordering/internal/core/domain/model/order"
	"serviceordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

func TestGetOrderQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewGetOrderQuery("1", nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, "1").
		Return(order.Document{"id": "1", "state": "acknowledged"}, true, nil).Once()

	h := queries.NewGetOrderQueryHandler(repo)
	doc, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "1", doc.ID())
	repo.AssertExpectations(t)
}

func TestGetOrderQueryHandler_Handle_Projection(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewGetOrderQuery("1", []string{"id", "category"})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, "1").
		Return(order.Document{"id": "1", "state": "acknowledged"}, true, nil).Once()

	h := queries.NewGetOrderQueryHandler(repo)
	doc, err := h.Handle(ctx, query)
	require.NoError(t, err)

	require.Len(t, doc, 2)
	assert.Equal(t, "1", doc["id"])
	value, present := doc["category"]
	assert.True(t, present)
	assert.Nil(t, value)
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewGetOrderQuery("404", nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, "404").Return(nil, false, nil).Once()

	h := queries.NewGetOrderQueryHandler(repo)
	_, err = h.Handle(ctx, query)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
}

func TestGetOrderQueryHandler_Handle_InvalidFieldSelection(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewGetOrderQuery("1", []string{"zzz"})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, "1").Return(order.Document{"id": "1"}, true, nil).Once()

	h := queries.NewGetOrderQueryHandler(repo)
	_, err = h.Handle(ctx, query)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidFieldSelection))
}

func TestNewGetOrderQuery_MissingID(t *testing.T) {
	_, err := queries.NewGetOrderQuery("", nil)
	assert.Equal(t, queries.ErrOrderIDIsRequired, err)
}

func TestGetOrderQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetOrderQuery{}
	require.Error(t, query.Validate())
}

func TestListOrdersQueryHandler_Handle_FilteredAndProjected(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewListOrdersQuery(map[string]string{"state": "completed"}, []string{"id"})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("List", ctx).Return([]order.Document{
		{"id": "1", "state": "acknowledged"},
		{"id": "2", "state": "completed"},
	}, nil).Once()

	h := queries.NewListOrdersQueryHandler(repo)
	listed, err := h.Handle(ctx, query)
	require.NoError(t, err)

	require.Len(t, listed, 1)
	assert.Equal(t, order.Document{"id": "2"}, listed[0])
}

func TestListOrdersQueryHandler_Handle_NoMatchIsEmptyList(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewListOrdersQuery(map[string]string{"state": "rejected"}, nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("List", ctx).Return([]order.Document{{"id": "1", "state": "acknowledged"}}, nil).Once()

	h := queries.NewListOrdersQueryHandler(repo)
	listed, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.NotNil(t, listed)
	assert.Empty(t, listed)
}

func TestListOrdersQueryHandler_Handle_UnsupportedFilter(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewListOrdersQuery(map[string]string{"description": "x"}, nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("List", ctx).Return([]order.Document{}, nil).Once()

	h := queries.NewListOrdersQueryHandler(repo)
	_, err = h.Handle(ctx, query)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidFilter))
}

func TestListOrdersQueryHandler_Handle_ListError(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewListOrdersQuery(nil, nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("List", ctx).Return(nil, errors.New("store broke")).Once()

	h := queries.NewListOrdersQueryHandler(repo)
	_, err = h.Handle(ctx, query)
	require.Error(t, err)
}

func TestListOrdersQuery_FiltersAreCopied(t *testing.T) {
	filters := map[string]string{"state": "completed"}
	query, err := queries.NewListOrdersQuery(filters, nil)
	require.NoError(t, err)

	filters["state"] = "rejected"
	assert.Equal(t, "completed", query.Filters()["state"])
}
