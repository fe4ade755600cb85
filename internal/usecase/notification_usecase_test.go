package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareheart/internal/domain/entity"
	ws "shareheart/internal/infrastructure/websocket"
	"shareheart/pkg/errors"
)

func TestNotifyPersistsThenPushes(t *testing.T) {
	env := newTestEnv()

	n, err := env.notifications.Notify(context.Background(), "alice", entity.NotificationSystem, "Hi", "Welcome", nil)
	require.NoError(t, err)
	assert.False(t, n.IsRead)
	assert.NotEmpty(t, n.ID)

	pushed := env.pub.directTo("alice", ws.FrameNotification)
	require.Len(t, pushed, 1)
	assert.Equal(t, n, pushed[0].Notification)
}

func TestNotifyFailureDoesNotPush(t *testing.T) {
	env := newTestEnv()
	env.store.failNotification = assert.AnError

	_, err := env.notifications.Notify(context.Background(), "alice", entity.NotificationSystem, "Hi", "Welcome", nil)
	assertCode(t, err, errors.CodeInternal)
	assert.Empty(t, env.pub.direct)
}

func TestNotificationReadState(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		n, err := env.notifications.Notify(ctx, "alice", entity.NotificationChat, "t", "m", nil)
		require.NoError(t, err)
		ids = append(ids, n.ID)
	}

	count, err := env.notifications.UnreadCount(ctx, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	_, err = env.notifications.MarkRead(ctx, "bob", ids[0])
	assertCode(t, err, errors.CodeForbidden)

	n, err := env.notifications.MarkRead(ctx, "alice", ids[0])
	require.NoError(t, err)
	assert.True(t, n.IsRead)

	count, err = env.notifications.UnreadCount(ctx, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	updated, err := env.notifications.MarkAllRead(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	page, total, err := env.notifications.List(ctx, "alice", 2, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, ids[2], page[0].ID)
}
