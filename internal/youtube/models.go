package youtube

import "time"

// Subscription is one entry of an account's subscription list as returned by
// the Data API, reduced to what the transfer needs.
type Subscription struct {
	ChannelID    string    // Unique ID of the subscribed-to channel
	ChannelTitle string    // Channel display name
	SubscribedAt time.Time // When the subscription was created (informational)
}

// Channel identifies the authenticated account's own channel.
type Channel struct {
	ID    string
	Title string
}

// Wire shapes for the Data API v3. Responses are validated against these
// structs at the boundary instead of being poked at dynamically.

type subscriptionListResponse struct {
	NextPageToken string             `json:"nextPageToken"`
	PageInfo      pageInfo           `json:"pageInfo"`
	Items         []subscriptionItem `json:"items"`
}

type pageInfo struct {
	TotalResults   int `json:"totalResults"`
	ResultsPerPage int `json:"resultsPerPage"`
}

type subscriptionItem struct {
	ID      string              `json:"id"`
	Snippet subscriptionSnippet `json:"snippet"`
}

type subscriptionSnippet struct {
	Title       string     `json:"title"`
	PublishedAt time.Time  `json:"publishedAt"`
	ResourceID  resourceID `json:"resourceId"`
}

type resourceID struct {
	Kind      string `json:"kind"`
	ChannelID string `json:"channelId"`
}

type channelListResponse struct {
	Items []channelItem `json:"items"`
}

type channelItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title string `json:"title"`
	} `json:"snippet"`
}

// subscriptionInsertBody is the request payload for subscribing to a channel.
type subscriptionInsertBody struct {
	Snippet struct {
		ResourceID resourceID `json:"resourceId"`
	} `json:"snippet"`
}

func newSubscriptionInsertBody(channelID string) subscriptionInsertBody {
	var body subscriptionInsertBody
	body.Snippet.ResourceID = resourceID{
		Kind:      "youtube#channel",
		ChannelID: channelID,
	}
	return body
}

// errorResponse is the standard Google API error envelope.
type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason  string `json:"reason"`
			Message string `json:"message"`
		} `json:"errors"`
	} `json:"error"`
}
