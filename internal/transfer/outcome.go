package transfer

import (
	"fmt"
	"strings"
)

// Status classifies the result of one backup record during import.
type Status string

const (
	StatusSubscribed        Status = "subscribed"
	StatusAlreadySubscribed Status = "already_subscribed"
	StatusNotFound          Status = "not_found"
	StatusFailed            Status = "failed"
	StatusNotAttempted      Status = "not_attempted"
)

// Outcome is the per-channel result of an import run. Transient: it lives in
// the run summary and the log stream only, never on disk.
type Outcome struct {
	ChannelID    string
	ChannelTitle string
	Status       Status
	Detail       string
}

// Summary aggregates outcomes for the end-of-run report.
type Summary struct {
	Subscribed        int
	AlreadySubscribed int
	NotFound          int
	Failed            int
	NotAttempted      int
}

func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch o.Status {
		case StatusSubscribed:
			s.Subscribed++
		case StatusAlreadySubscribed:
			s.AlreadySubscribed++
		case StatusNotFound:
			s.NotFound++
		case StatusFailed:
			s.Failed++
		case StatusNotAttempted:
			s.NotAttempted++
		}
	}
	return s
}

func (s Summary) Total() int {
	return s.Subscribed + s.AlreadySubscribed + s.NotFound + s.Failed + s.NotAttempted
}

// Print writes the run summary to stdout.
func (s Summary) Print() {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("Import Summary")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Subscribed:         %d\n", s.Subscribed)
	fmt.Printf("Already subscribed: %d\n", s.AlreadySubscribed)
	fmt.Printf("Not found:          %d\n", s.NotFound)
	fmt.Printf("Failed:             %d\n", s.Failed)

	if s.NotAttempted > 0 {
		fmt.Printf("Not attempted:      %d (stopped early, quota exhausted)\n", s.NotAttempted)
	}
}
