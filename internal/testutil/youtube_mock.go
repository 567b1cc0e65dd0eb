// Package testutil provides mock implementations of external collaborators
// for tests. Every mock method must be explicitly configured; unset behavior
// fails loudly instead of silently succeeding.
package testutil

import (
	"context"
	"errors"

	"github.com/NIXKnight/YouTubeSubscriptionTransfer/internal/youtube"
)

type YouTubeAPI struct {
	ListSubscriptionsFunc  func(ctx context.Context) ([]youtube.Subscription, error)
	InsertSubscriptionFunc func(ctx context.Context, channelID string) error
	MyChannelFunc          func(ctx context.Context) (*youtube.Channel, error)
}

func (m *YouTubeAPI) ListSubscriptions(ctx context.Context) ([]youtube.Subscription, error) {
	if m.ListSubscriptionsFunc != nil {
		return m.ListSubscriptionsFunc(ctx)
	}
	return nil, errors.New("ListSubscriptionsFunc not set - test must explicitly set mock behavior")
}

func (m *YouTubeAPI) InsertSubscription(ctx context.Context, channelID string) error {
	if m.InsertSubscriptionFunc != nil {
		return m.InsertSubscriptionFunc(ctx, channelID)
	}
	return errors.New("InsertSubscriptionFunc not set - test must explicitly set mock behavior")
}

func (m *YouTubeAPI) MyChannel(ctx context.Context) (*youtube.Channel, error) {
	if m.MyChannelFunc != nil {
		return m.MyChannelFunc(ctx)
	}
	return nil, errors.New("MyChannelFunc not set - test must explicitly set mock behavior")
}
