// Package backup defines the serialized subscription list that is the sole
// hand-off between the extract and import phases, plus its on-disk store.
// The file format is stable: fields are only ever added, never changed.
package backup

import "time"

// Record is one extracted subscription. Identity is the channel ID; the
// timestamp is informational only.
type Record struct {
	ChannelID    string     `json:"channel_id"`
	ChannelTitle string     `json:"channel_title"`
	SubscribedAt *time.Time `json:"subscribed_at,omitempty"`
}

// Backup is a full snapshot of one account's subscriptions, written once per
// extraction run and fully replaced on re-run.
type Backup struct {
	ExportedAt         time.Time `json:"exported_at"`
	SourceAccountLabel string    `json:"source_account_label"`
	Subscriptions      []Record  `json:"subscriptions"`
}

func New(sourceLabel string, records []Record) *Backup {
	return &Backup{
		ExportedAt:         time.Now().UTC(),
		SourceAccountLabel: sourceLabel,
		Subscriptions:      records,
	}
}

// Count returns the number of records in the backup.
func (b *Backup) Count() int {
	return len(b.Subscriptions)
}
