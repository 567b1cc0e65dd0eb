// Package transfer orchestrates the two phases of a subscription transfer:
// extracting the source account's subscription list into a backup file and
// re-creating those subscriptions on the destination account. The backup file
// is the only hand-off between the phases.
package transfer

import (
	"context"
	"fmt"
	"log"

	"github.com/NIXKnight/YouTubeSubscriptionTransfer/internal/backup"
	"github.com/NIXKnight/YouTubeSubscriptionTransfer/internal/youtube"
)

// API is the subscription surface of the remote provider used by both phases.
type API interface {
	ListSubscriptions(ctx context.Context) ([]youtube.Subscription, error)
	InsertSubscription(ctx context.Context, channelID string) error
	MyChannel(ctx context.Context) (*youtube.Channel, error)
}

// Extractor pages through the source account's subscriptions and writes the
// full set to the backup store.
type Extractor struct {
	api   API
	store *backup.Store
}

func NewExtractor(api API, store *backup.Store) *Extractor {
	return &Extractor{
		api:   api,
		store: store,
	}
}

// Extract lists every subscription of the authenticated account and replaces
// the backup file atomically. Provider order is preserved; duplicate channel
// IDs are dropped defensively. On failure nothing is written and the partial
// count travels in the returned *ExtractionError.
func (e *Extractor) Extract(ctx context.Context) (*backup.Backup, error) {
	label := ""
	if channel, err := e.api.MyChannel(ctx); err != nil {
		log.Printf("Warning: could not resolve source channel name: %v", err)
	} else {
		label = channel.Title
		log.Printf("Extracting subscriptions of %q", label)
	}

	subscriptions, err := e.api.ListSubscriptions(ctx)
	if err != nil {
		return nil, &ExtractionError{Gathered: len(subscriptions), Cause: err}
	}

	records := dedupe(subscriptions)
	if dropped := len(subscriptions) - len(records); dropped > 0 {
		log.Printf("Warning: dropped %d duplicate subscription entries", dropped)
	}

	b := backup.New(label, records)
	if err := e.store.Save(b); err != nil {
		return nil, fmt.Errorf("failed to write backup: %w", err)
	}

	log.Printf("Extracted %d subscriptions to %s", b.Count(), e.store.Path())
	return b, nil
}

// dedupe keeps the first occurrence of each channel ID, preserving order.
func dedupe(subscriptions []youtube.Subscription) []backup.Record {
	seen := make(map[string]bool, len(subscriptions))
	records := make([]backup.Record, 0, len(subscriptions))

	for _, sub := range subscriptions {
		if seen[sub.ChannelID] {
			continue
		}
		seen[sub.ChannelID] = true

		record := backup.Record{
			ChannelID:    sub.ChannelID,
			ChannelTitle: sub.ChannelTitle,
		}
		if !sub.SubscribedAt.IsZero() {
			t := sub.SubscribedAt
			record.SubscribedAt = &t
		}
		records = append(records, record)
	}

	return records
}
