package commands_test

import (
	"errors"
	"testing"

	"serviceordering/internal/core/application/usecases/commands"
	"serviceordering/internal/core/domain/model/listener"
	"serviceordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterListenerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterListenerCommand("http://client/cb", "eventType=ServiceOrderDeleteNotification")
	require.NoError(t, err)

	stored := listener.Registration{
		ID:       "1",
		Callback: "http://client/cb",
		Query:    "eventType=ServiceOrderDeleteNotification",
	}
	repo := new(MockListenerRepository)
	repo.On("Add", ctx, "http://client/cb", "eventType=ServiceOrderDeleteNotification").
		Return(stored, nil).Once()

	h := commands.NewRegisterListenerCommandHandler(repo, "/hub")
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, stored, result.Registration)
	assert.Equal(t, "/hub/1", result.Location)
	repo.AssertExpectations(t)
}

func TestRegisterListenerCommandHandler_Handle_BlankHubPathDefaults(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterListenerCommand("http://client/cb", "")
	require.NoError(t, err)

	repo := new(MockListenerRepository)
	repo.On("Add", ctx, "http://client/cb", "").
		Return(listener.Registration{ID: "7", Callback: "http://client/cb"}, nil).Once()

	h := commands.NewRegisterListenerCommandHandler(repo, "")
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "/hub/7", result.Location)
}

func TestRegisterListenerCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterListenerCommand("http://client/cb", "")
	require.NoError(t, err)

	repo := new(MockListenerRepository)
	repo.On("Add", ctx, "http://client/cb", "").
		Return(listener.Registration{}, errors.New("store broke")).Once()

	h := commands.NewRegisterListenerCommandHandler(repo, "/hub")
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestUnregisterListenerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUnregisterListenerCommand("1")
	require.NoError(t, err)

	repo := new(MockListenerRepository)
	repo.On("Delete", ctx, "1").Return(true, nil).Once()

	h := commands.NewUnregisterListenerCommandHandler(repo)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func TestUnregisterListenerCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUnregisterListenerCommand("404")
	require.NoError(t, err)

	repo := new(MockListenerRepository)
	repo.On("Delete", ctx, "404").Return(false, nil).Once()

	h := commands.NewUnregisterListenerCommandHandler(repo)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
}

func TestNewUnregisterListenerCommand_MissingID(t *testing.T) {
	_, err := commands.NewUnregisterListenerCommand("")
	assert.Equal(t, commands.ErrListenerIDIsRequired, err)
}
