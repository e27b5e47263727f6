package services

import (
	"context"
	"fmt"
	"time"

	"github.com/reelworks/reelpipe/ent"
	"github.com/reelworks/reelpipe/ent/channel"
)

// ChannelService reads channel configuration and maintains the
// round-robin fairness marker.
type ChannelService struct {
	client *ent.Client
}

// NewChannelService creates a ChannelService.
func NewChannelService(client *ent.Client) *ChannelService {
	return &ChannelService{client: client}
}

// Get loads a channel by its slug.
func (s *ChannelService) Get(ctx context.Context, channelID string) (*ent.Channel, error) {
	ch, err := s.client.Channel.Get(ctx, channelID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading channel: %w", err)
	}
	return ch, nil
}

// ListActive returns active channels ordered by how long ago each last
// had a task claimed, oldest first. Channels that never had a claim sort
// ahead of everything.
func (s *ChannelService) ListActive(ctx context.Context) ([]*ent.Channel, error) {
	channels, err := s.client.Channel.Query().
		Where(channel.ActiveEQ(true)).
		Order(ent.Asc(channel.FieldLastClaimedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing active channels: %w", err)
	}
	// NULLS LAST is the Postgres ASC default; never-claimed channels must
	// come first instead.
	never := channels[:0:0]
	claimed := make([]*ent.Channel, 0, len(channels))
	for _, ch := range channels {
		if ch.LastClaimedAt == nil {
			never = append(never, ch)
		} else {
			claimed = append(claimed, ch)
		}
	}
	return append(never, claimed...), nil
}

// TouchLastClaimed records that a task from this channel was just
// claimed, pushing the channel to the back of the fairness rotation.
func (s *ChannelService) TouchLastClaimed(ctx context.Context, channelID string) error {
	err := s.client.Channel.UpdateOneID(channelID).
		SetLastClaimedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("touching channel claim marker: %w", err)
	}
	return nil
}

// Upsert creates or updates a channel row. Used by operator tooling and
// test fixtures; production channels are normally seeded out of band.
func (s *ChannelService) Upsert(ctx context.Context, ch *ent.Channel) error {
	err := s.client.Channel.Create().
		SetID(ch.ID).
		SetName(ch.Name).
		SetActive(ch.Active).
		SetPriority(ch.Priority).
		SetNillableVoiceID(ch.VoiceID).
		SetNillableBrandingDir(ch.BrandingDir).
		SetStorageStrategy(ch.StorageStrategy).
		SetCredentialsEnc(ch.CredentialsEnc).
		SetStageTimeoutsS(ch.StageTimeoutsS).
		SetDefaultAssetCount(ch.DefaultAssetCount).
		SetDefaultClipCount(ch.DefaultClipCount).
		OnConflictColumns(channel.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upserting channel: %w", err)
	}
	return nil
}
