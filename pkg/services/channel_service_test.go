package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/reelworks/reelpipe/test/database"
)

func TestChannelService_ListActive(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewChannelService(client.Client)
	ctx := context.Background()

	seedChannel(t, client.Client, "alpha")
	seedChannel(t, client.Client, "beta")
	seedChannel(t, client.Client, "gamma")

	inactive := seedChannel(t, client.Client, "dormant")
	require.NoError(t, client.Channel.UpdateOne(inactive).SetActive(false).Exec(ctx))

	t.Run("inactive channels are excluded", func(t *testing.T) {
		channels, err := svc.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, channels, 3)
		for _, ch := range channels {
			assert.NotEqual(t, "dormant", ch.ID)
		}
	})

	t.Run("never-claimed channels come first, then oldest claim", func(t *testing.T) {
		require.NoError(t, svc.TouchLastClaimed(ctx, "alpha"))
		time.Sleep(10 * time.Millisecond)
		require.NoError(t, svc.TouchLastClaimed(ctx, "gamma"))

		channels, err := svc.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, channels, 3)
		assert.Equal(t, "beta", channels[0].ID)
		assert.Equal(t, "alpha", channels[1].ID)
		assert.Equal(t, "gamma", channels[2].ID)
	})
}

func TestChannelService_TouchLastClaimed(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewChannelService(client.Client)
	ctx := context.Background()

	seedChannel(t, client.Client, "delta")

	before := time.Now().Add(-time.Second)
	require.NoError(t, svc.TouchLastClaimed(ctx, "delta"))

	ch, err := svc.Get(ctx, "delta")
	require.NoError(t, err)
	require.NotNil(t, ch.LastClaimedAt)
	assert.True(t, ch.LastClaimedAt.After(before))

	assert.ErrorIs(t, svc.TouchLastClaimed(ctx, "missing"), ErrNotFound)
}
