package subscribers

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/emberfield/palisade/internal/game/events"
)

// JournalEntry is one recorded event.
type JournalEntry struct {
	Type      string
	GameID    string
	Timestamp time.Time
}

// JournalSubscriber keeps a bounded in-memory record of everything published
// on the bus. When full, the oldest entries are dropped (circular buffer
// behavior). Useful for post-run summaries and debugging.
type JournalSubscriber struct {
	id string

	mu           sync.RWMutex
	buffer       []JournalEntry
	capacity     int
	size         int
	head         int // Write position
	totalAdded   int64
	totalDropped int64

	logger zerolog.Logger
}

// NewJournalSubscriber creates a journal with the specified capacity.
func NewJournalSubscriber(id string, capacity int, logger zerolog.Logger) *JournalSubscriber {
	if capacity <= 0 {
		capacity = 1000 // Default capacity
	}
	return &JournalSubscriber{
		id:       id,
		buffer:   make([]JournalEntry, capacity),
		capacity: capacity,
		logger:   logger.With().Str("component", "journal").Logger(),
	}
}

// ID implements events.Subscriber
func (j *JournalSubscriber) ID() string {
	return j.id
}

// InterestedIn implements events.Subscriber. The journal records everything.
func (j *JournalSubscriber) InterestedIn(string) bool {
	return true
}

// HandleEvent implements events.Subscriber
func (j *JournalSubscriber) HandleEvent(event events.Event) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.size >= j.capacity {
		j.totalDropped++
	} else {
		j.size++
	}

	j.buffer[j.head] = JournalEntry{
		Type:      event.Type(),
		GameID:    event.GameID(),
		Timestamp: event.Timestamp(),
	}
	j.head = (j.head + 1) % j.capacity
	j.totalAdded++
}

// Entries returns the recorded entries, oldest first.
func (j *JournalSubscriber) Entries() []JournalEntry {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]JournalEntry, 0, j.size)
	start := j.head - j.size
	if start < 0 {
		start += j.capacity
	}
	for i := 0; i < j.size; i++ {
		out = append(out, j.buffer[(start+i)%j.capacity])
	}
	return out
}

// CountByType tallies recorded entries per event type.
func (j *JournalSubscriber) CountByType() map[string]int {
	counts := make(map[string]int)
	for _, entry := range j.Entries() {
		counts[entry.Type]++
	}
	return counts
}

// Stats returns how many events were recorded and how many fell off the end.
func (j *JournalSubscriber) Stats() (added, dropped int64) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return j.totalAdded, j.totalDropped
}
