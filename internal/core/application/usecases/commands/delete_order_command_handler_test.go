package commands_test

import (
	"errors"
	"testing"

	"serviceordering/internal/core/application/usecases/commands"
	"serviceordering/internal/core/domain/model/event"
	"serviceordering/internal/core/domain/model/order"
	"serviceordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteOrderCommand("1")
	require.NoError(t, err)

	snapshot := storedOrder()
	repo := new(MockOrderRepository)
	publisher := new(MockNotificationPublisher)
	repo.On("Get", ctx, "1").Return(snapshot, true, nil).Once()
	repo.On("Delete", ctx, "1").Return(true, nil).Once()
	publisher.On("Publish", event.KindDelete, mock.MatchedBy(func(doc order.Document) bool {
		return doc.ID() == "1"
	})).Once()

	h := commands.NewDeleteOrderCommandHandler(repo, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteOrderCommand("404")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	publisher := new(MockNotificationPublisher)
	repo.On("Get", ctx, "404").Return(nil, false, nil).Once()

	h := commands.NewDeleteOrderCommandHandler(repo, publisher)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestDeleteOrderCommandHandler_Handle_LostDeleteRace(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteOrderCommand("1")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	publisher := new(MockNotificationPublisher)
	repo.On("Get", ctx, "1").Return(storedOrder(), true, nil).Once()
	repo.On("Delete", ctx, "1").Return(false, nil).Once()

	h := commands.NewDeleteOrderCommandHandler(repo, publisher)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestNewDeleteOrderCommand_MissingID(t *testing.T) {
	_, err := commands.NewDeleteOrderCommand("")
	assert.Equal(t, commands.ErrOrderIDIsRequired, err)
}
