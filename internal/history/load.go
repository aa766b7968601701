package history

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Kind is the best-effort category a file in an export directory is routed
// to, based on its name. Misclassification is possible; callers treat this
// as a hint, not a contract.
type Kind int

const (
	KindUnknown Kind = iota
	KindHistory
	KindEvents
	KindDaily
	KindArtists
	KindHourly
	KindSessions
)

// Classify routes a filename to an expected category. A .json extension
// always means raw streaming history; CSV summaries are matched by
// substring.
func Classify(name string) Kind {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".json") {
		return KindHistory
	}
	if !strings.HasSuffix(lower, ".csv") {
		return KindUnknown
	}
	switch {
	case strings.Contains(lower, "daily"):
		return KindDaily
	case strings.Contains(lower, "artist"):
		return KindArtists
	case strings.Contains(lower, "hour"):
		return KindHourly
	case strings.Contains(lower, "session"):
		return KindSessions
	case strings.Contains(lower, "event"):
		return KindEvents
	}
	return KindUnknown
}

// Progress receives ingestion updates: files parsed so far and cumulative
// record count. Calls are throttled; the final state is always delivered.
type Progress func(files, records int)

// LoadOptions configures LoadDir. The zero value is usable.
type LoadOptions struct {
	Logger   *logrus.Logger
	Progress Progress
}

// progressRate caps how often the observer fires during a large ingest.
var progressRate = rate.Every(200 * time.Millisecond)

// LoadDir reads every streaming-history JSON file in dir, merges the
// records, and returns the normalized event sequence. Malformed files are
// logged and skipped; they never fail the batch. The result does not depend
// on directory enumeration order since Normalize applies a global sort.
func LoadDir(dir string, opts LoadOptions) ([]Event, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading export directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if Classify(entry.Name()) == KindHistory {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	limiter := rate.NewLimiter(progressRate, 1)
	var all []Record
	files := 0
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			log.WithFields(logrus.Fields{"file": name, "error": err}).Warn("Skipping unreadable file")
			continue
		}
		records, err := Parse(data)
		if err != nil {
			log.WithFields(logrus.Fields{"file": name, "error": err}).Warn("Skipping malformed history file")
			continue
		}
		all = append(all, records...)
		files++
		log.WithFields(logrus.Fields{"file": name, "records": len(records)}).Debug("Parsed history file")

		if opts.Progress != nil && limiter.Allow() {
			opts.Progress(files, len(all))
		}
	}

	if opts.Progress != nil {
		opts.Progress(files, len(all))
	}

	return Normalize(all), nil
}
