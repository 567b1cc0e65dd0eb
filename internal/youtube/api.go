package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/NIXKnight/YouTubeSubscriptionTransfer/internal/util"
)

// ListSubscriptions pages through the authenticated account's subscription
// list in provider order until the API signals no more pages.
func (c *Client) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	var subscriptions []Subscription
	pageToken := ""
	page := 1

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := c.retryableRequest(ctx, "subscriptions.list", func() (*resty.Response, error) {
			req := c.client.R().
				SetContext(ctx).
				SetQueryParams(map[string]string{
					"part":       "snippet",
					"mine":       "true",
					"maxResults": strconv.Itoa(c.pageSize),
				})
			if pageToken != "" {
				req.SetQueryParam("pageToken", pageToken)
			}
			return req.Get("/subscriptions")
		})
		if err != nil {
			return subscriptions, err
		}

		var result subscriptionListResponse
		if err := json.Unmarshal(resp.Body(), &result); err != nil {
			return subscriptions, &ParseError{Endpoint: "subscriptions.list", Cause: err}
		}

		for _, item := range result.Items {
			if item.Snippet.ResourceID.ChannelID == "" {
				return subscriptions, &ParseError{
					Endpoint: "subscriptions.list",
					Cause:    fmt.Errorf("item %q has no resourceId.channelId", item.ID),
				}
			}
			subscriptions = append(subscriptions, Subscription{
				ChannelID:    item.Snippet.ResourceID.ChannelID,
				ChannelTitle: item.Snippet.Title,
				SubscribedAt: item.Snippet.PublishedAt,
			})
		}

		log.Printf("Fetched subscription page %d (%d items, %d total)", page, len(result.Items), len(subscriptions))

		pageToken = result.NextPageToken
		if pageToken == "" {
			return subscriptions, nil
		}

		page++
		if err := util.ContextSleep(ctx, pagePause); err != nil {
			return subscriptions, err
		}
	}
}

// InsertSubscription subscribes the authenticated account to the channel.
// Callers classify the returned *APIError via IsDuplicateSubscription,
// IsChannelNotFound and IsQuotaExceeded.
func (c *Client) InsertSubscription(ctx context.Context, channelID string) error {
	_, err := c.retryableRequest(ctx, "subscriptions.insert", func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetQueryParam("part", "snippet").
			SetBody(newSubscriptionInsertBody(channelID)).
			Post("/subscriptions")
	})
	return err
}

// MyChannel returns the authenticated account's own channel, used to label
// backups and to show the operator which account they just authorized.
func (c *Client) MyChannel(ctx context.Context) (*Channel, error) {
	resp, err := c.retryableRequest(ctx, "channels.list", func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"part": "snippet",
				"mine": "true",
			}).
			Get("/channels")
	})
	if err != nil {
		return nil, err
	}

	var result channelListResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, &ParseError{Endpoint: "channels.list", Cause: err}
	}

	if len(result.Items) == 0 {
		return nil, fmt.Errorf("authenticated account has no channel")
	}

	return &Channel{
		ID:    result.Items[0].ID,
		Title: result.Items[0].Snippet.Title,
	}, nil
}
