package pmolog

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestRingHookKeepsLastEntries(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.DebugLevel)
	hook := NewRingHook(3)
	logger.AddHook(hook)

	for _, msg := range []string{"a", "b", "c", "d"} {
		logger.WithField("id", "slider-1").Debug(msg)
	}

	lines := hook.Lines()
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	want := []string{"b", "c", "d"}
	for i, line := range lines {
		var entry map[string]string
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatal(err)
		}
		if entry["content"] != want[i] {
			t.Errorf("line %d: content %q, want %q", i, entry["content"], want[i])
		}
		if entry["level"] != "debug" || entry["id"] != "slider-1" {
			t.Errorf("line %d: unexpected entry %v", i, entry)
		}
	}
}

func TestRingHookLevels(t *testing.T) {
	hook := NewRingHook(0, logrus.WarnLevel)
	if len(hook.Levels()) != 1 || hook.Levels()[0] != logrus.WarnLevel {
		t.Fatalf("levels = %v", hook.Levels())
	}
	if len(hook.Lines()) != 0 {
		t.Fatal("new hook is not empty")
	}
}
