package transfer

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/time/rate"

	"github.com/NIXKnight/YouTubeSubscriptionTransfer/internal/backup"
	"github.com/NIXKnight/YouTubeSubscriptionTransfer/internal/youtube"
)

// Importer re-creates backed-up subscriptions on the destination account,
// skipping channels the account already follows and pacing the subscribe
// calls to stay under the provider's rate limits.
type Importer struct {
	api     API
	limiter *rate.Limiter
}

func NewImporter(api API, requestDelay time.Duration) *Importer {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if requestDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(requestDelay), 1)
	}

	return &Importer{
		api:     api,
		limiter: limiter,
	}
}

// Import processes the backup in order and returns one outcome per record.
// Per-channel failures never abort the run; only quota exhaustion stops it
// early, with the remaining records reported as not attempted. The limiter is
// charged only for actual remote calls, so skip-set hits cost no delay.
func (i *Importer) Import(ctx context.Context, b *backup.Backup) ([]Outcome, error) {
	log.Printf("Fetching destination subscriptions to build skip-set...")
	existing, err := i.api.ListSubscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list destination subscriptions: %w", err)
	}

	skip := make(map[string]bool, len(existing))
	for _, sub := range existing {
		skip[sub.ChannelID] = true
	}
	log.Printf("Destination already subscribed to %d channels", len(skip))

	outcomes := make([]Outcome, 0, b.Count())

	for idx, record := range b.Subscriptions {
		if skip[record.ChannelID] {
			outcomes = append(outcomes, Outcome{
				ChannelID:    record.ChannelID,
				ChannelTitle: record.ChannelTitle,
				Status:       StatusAlreadySubscribed,
				Detail:       "present in destination subscription list",
			})
			log.Printf("[%d/%d] Already subscribed to %s", idx+1, b.Count(), record.ChannelTitle)
			continue
		}

		if err := i.limiter.Wait(ctx); err != nil {
			return outcomes, fmt.Errorf("import interrupted: %w", err)
		}

		outcome := i.subscribe(ctx, record)
		outcomes = append(outcomes, outcome)
		log.Printf("[%d/%d] %s: %s %s", idx+1, b.Count(), outcome.Status, record.ChannelTitle, outcome.Detail)

		if ctx.Err() != nil {
			return outcomes, ctx.Err()
		}

		if outcome.Status == StatusNotAttempted {
			// Quota is a daily budget; every remaining call would fail too.
			for _, rest := range b.Subscriptions[idx+1:] {
				outcomes = append(outcomes, Outcome{
					ChannelID:    rest.ChannelID,
					ChannelTitle: rest.ChannelTitle,
					Status:       StatusNotAttempted,
					Detail:       "skipped after quota exhaustion",
				})
			}
			return outcomes, fmt.Errorf("%w after %d of %d records", ErrQuotaExhausted, idx, b.Count())
		}
	}

	return outcomes, nil
}

func (i *Importer) subscribe(ctx context.Context, record backup.Record) Outcome {
	outcome := Outcome{
		ChannelID:    record.ChannelID,
		ChannelTitle: record.ChannelTitle,
	}

	err := i.api.InsertSubscription(ctx, record.ChannelID)
	switch {
	case err == nil:
		outcome.Status = StatusSubscribed

	case youtube.IsDuplicateSubscription(err):
		// Lost the race against the skip-set; the account follows the
		// channel either way.
		outcome.Status = StatusAlreadySubscribed
		outcome.Detail = "reported as duplicate by the API"

	case youtube.IsChannelNotFound(err):
		outcome.Status = StatusNotFound
		outcome.Detail = err.Error()

	case youtube.IsQuotaExceeded(err):
		outcome.Status = StatusNotAttempted
		outcome.Detail = err.Error()

	default:
		outcome.Status = StatusFailed
		outcome.Detail = err.Error()
	}

	return outcome
}
