package commands_test

import (
	"testing"

	"serviceordering/internal/core/application/usecases/commands"
	"serviceordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_Valid(t *testing.T) {
	payload := order.Document{"orderItem": []any{}}

	cmd, err := commands.NewCreateOrderCommand(payload, []string{"id", "state"})
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, payload, cmd.Payload())
	assert.Equal(t, []string{"id", "state"}, cmd.Fields())
}

func TestNewCreateOrderCommand_NilPayload(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(nil, nil)
	require.Error(t, err)
	assert.Equal(t, commands.ErrCreatePayloadIsRequired, err)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.Error(t, cmd.Validate())
}
