package pmolog

import (
	"container/ring"
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const DefaultBufferSize = 1000

// RingHook keeps the last log entries in memory, oldest first. The CLI uses
// it to replay the trace of the resolution passes after a run.
type RingHook struct {
	mu     sync.Mutex
	levels []logrus.Level
	buffer *ring.Ring
}

// NewRingHook keeps up to size entries of the given levels, or of all levels
// when none is given.
func NewRingHook(size int, levels ...logrus.Level) *RingHook {
	if size <= 0 {
		size = DefaultBufferSize
	}
	if len(levels) == 0 {
		levels = logrus.AllLevels
	}
	return &RingHook{
		levels: levels,
		buffer: ring.New(size),
	}
}

func (h *RingHook) Levels() []logrus.Level { return h.levels }

func (h *RingHook) Fire(entry *logrus.Entry) error {
	msg := map[string]interface{}{
		"time":    entry.Time.Format(time.RFC3339),
		"level":   entry.Level.String(),
		"content": entry.Message,
	}
	if id, ok := entry.Data["id"]; ok {
		msg["id"] = id
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.buffer.Value = string(b)
	h.buffer = h.buffer.Next()
	h.mu.Unlock()
	return nil
}

// Lines returns the buffered entries as JSON lines, oldest first.
func (h *RingHook) Lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	var out []string
	h.buffer.Do(func(v interface{}) {
		if v != nil {
			out = append(out, v.(string))
		}
	})
	return out
}

// Install configures the standard logger the way the commands expect and
// attaches a fresh RingHook to it.
func Install(level logrus.Level, size int) *RingHook {
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	hook := NewRingHook(size)
	logrus.AddHook(hook)
	return hook
}
