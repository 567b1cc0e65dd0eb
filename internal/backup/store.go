package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// ErrBackupInvalid indicates the backup file is missing, unparsable, or
// fails schema validation. Fatal at import start.
var ErrBackupInvalid = errors.New("backup file invalid")

// Store persists backups as indented JSON. Writes go through an atomic
// replace so an interrupt mid-write never corrupts an existing backup.
type Store struct {
	filePath string
}

func NewStore(filePath string) *Store {
	return &Store{filePath: filePath}
}

func (s *Store) Path() string {
	return s.filePath
}

// Exists reports whether a backup file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.filePath)
	return err == nil
}

// Save writes the backup, replacing any prior contents in one atomic step.
func (s *Store) Save(b *Backup) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup: %w", err)
	}

	if err := atomic.WriteFile(s.filePath, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save backup to %s: %w", s.filePath, err)
	}

	return nil
}

// Load reads and validates the backup file.
func (s *Store) Load() (*Backup, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not readable: %v", ErrBackupInvalid, s.filePath, err)
	}

	b := &Backup{}
	if err := json.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("%w: %s does not parse: %v", ErrBackupInvalid, s.filePath, err)
	}

	for i, record := range b.Subscriptions {
		if record.ChannelID == "" {
			return nil, fmt.Errorf("%w: record %d has no channel_id", ErrBackupInvalid, i)
		}
	}

	return b, nil
}
