package config

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"
)

// watchPollInterval matches the source's thread::sleep(Duration::from_millis(100))
// polling cadence for both the config and directory watchers.
const watchPollInterval = 100 * time.Millisecond

// Watch polls path for content changes and sends the new raw config text
// on changed whenever the file's SHA-256 digest differs from the last
// observed one. It blocks until ctx is cancelled. The first read must
// succeed — a config file that can't be read at startup is fatal, matching
// the source's read-or-panic boot sequence; Watch reports that failure as
// its returned error instead of panicking.
func Watch(ctx context.Context, path string, changed chan<- string) error {
	data, hash, err := hashFile(path)
	if err != nil {
		return fmt.Errorf("config: cannot find config file at %s: %w", path, err)
	}
	lastHash := hash
	_ = data

	ticker := time.NewTicker(watchPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			data, hash, err := hashFile(path)
			if err != nil {
				continue
			}
			if hash != lastHash {
				lastHash = hash
				select {
				case changed <- string(data):
				case <-ctx.Done():
					return nil
				}
			}
		}
	}
}

func hashFile(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	sum := sha256.Sum256(data)
	return data, hex.EncodeToString(sum[:]), nil
}
