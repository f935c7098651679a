package service_test

import (
	"context"
	"testing"

	"github.com/farmlink/internal/models"
	"github.com/farmlink/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureNotifier records published messages instead of hitting redis.
type captureNotifier struct {
	published []*models.Message
}

func (n *captureNotifier) Publish(_ context.Context, message *models.Message) error {
	n.published = append(n.published, message)
	return nil
}

func TestSendMessageAppearsInBothBoxes(t *testing.T) {
	env := newTestEnv(t)

	alice := env.registerUser(t, "alice", models.AccountTypeFarmer)
	bob := env.registerUser(t, "bob", models.AccountTypeBuyer)

	notifier := &captureNotifier{}
	svc := service.NewMessageService(env.messages, env.users, notifier)

	msg, err := svc.Send(context.Background(), alice, bob.ID, &service.SendMessageRequest{
		Content: "Interested in corn?",
	})
	require.NoError(t, err)
	assert.False(t, msg.Timestamp.IsZero())

	inbox, err := svc.Inbox(bob.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "Interested in corn?", inbox[0].Content)
	assert.Equal(t, alice.ID, inbox[0].SenderID)

	outbox, err := svc.Outbox(alice.ID)
	require.NoError(t, err)
	require.Len(t, outbox, 1)
	assert.Equal(t, inbox[0].ID, outbox[0].ID)

	// Bob has sent nothing, Alice has received nothing
	outbox, err = svc.Outbox(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, outbox)
	inbox, err = svc.Inbox(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, inbox)

	// The committed message was handed to the notifier
	require.Len(t, notifier.published, 1)
	assert.Equal(t, msg.ID, notifier.published[0].ID)
}

func TestSendMessageRejectsEmptyContent(t *testing.T) {
	env := newTestEnv(t)

	alice := env.registerUser(t, "alice", models.AccountTypeFarmer)
	bob := env.registerUser(t, "bob", models.AccountTypeBuyer)

	_, err := env.message.Send(context.Background(), alice, bob.ID, &service.SendMessageRequest{
		Content: "   ",
	})
	assert.ErrorIs(t, err, service.ErrEmptyMessage)

	inbox, err := env.message.Inbox(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, inbox)
}

func TestSendMessageUnknownReceiver(t *testing.T) {
	env := newTestEnv(t)

	alice := env.registerUser(t, "alice", models.AccountTypeFarmer)

	_, err := env.message.Send(context.Background(), alice, 999, &service.SendMessageRequest{
		Content: "hello?",
	})
	assert.ErrorIs(t, err, service.ErrReceiverNotFound)
}

func TestSendMessageToSelfIsAllowed(t *testing.T) {
	env := newTestEnv(t)

	alice := env.registerUser(t, "alice", models.AccountTypeFarmer)

	// Not rejected: the original marketplace never enforced sender != receiver
	msg, err := env.message.Send(context.Background(), alice, alice.ID, &service.SendMessageRequest{
		Content: "note to self",
	})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, msg.ReceiverID)
}

func TestMessagesKeepInsertionOrder(t *testing.T) {
	env := newTestEnv(t)

	alice := env.registerUser(t, "alice", models.AccountTypeFarmer)
	bob := env.registerUser(t, "bob", models.AccountTypeBuyer)

	for _, content := range []string{"first", "second", "third"} {
		_, err := env.message.Send(context.Background(), alice, bob.ID, &service.SendMessageRequest{
			Content: content,
		})
		require.NoError(t, err)
	}

	inbox, err := env.message.Inbox(bob.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 3)
	assert.Equal(t, "first", inbox[0].Content)
	assert.Equal(t, "second", inbox[1].Content)
	assert.Equal(t, "third", inbox[2].Content)
}
