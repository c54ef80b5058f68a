package region

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	log "github.com/sirupsen/logrus"
)

// Loop plays the part of a seekable stream selected by a double slider,
// over and over. The selection is expressed in seconds and is usually fed
// by registering Update as a value changed listener.
//
// Update may be called from the UI side while the audio side streams, so
// both go through a mutex.
type Loop struct {
	mu     sync.Mutex
	source beep.StreamSeeker
	format beep.Format
	start  int
	end    int
	err    error
}

// NewLoop selects the whole source.
func NewLoop(source beep.StreamSeeker, format beep.Format) *Loop {
	return &Loop{
		source: source,
		format: format,
		end:    source.Len(),
	}
}

// Duration is the length of the source, the natural domain of a slider
// driving this loop.
func (l *Loop) Duration() time.Duration {
	return l.format.SampleRate.D(l.source.Len())
}

// Update moves the loop to [lower, upper] seconds. Bounds are clamped to
// the source.
func (l *Loop) Update(lower, upper float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := l.source.Len()
	l.start = clampFrame(l.frames(lower), n)
	l.end = clampFrame(l.frames(upper), n)
	if l.end < l.start {
		l.end = l.start
	}
	log.Debugf("🐞 Loop region set to frames [%d, %d)", l.start, l.end)
}

// Bounds returns the selected frames as [start, end).
func (l *Loop) Bounds() (int, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.start, l.end
}

// Stream fills samples from the selected region, seeking back to its start
// each time the end is reached. An empty region ends the stream.
func (l *Loop) Stream(samples [][2]float64) (n int, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.err != nil || l.end <= l.start {
		return 0, false
	}

	for n < len(samples) {
		pos := l.source.Position()
		if pos < l.start || pos >= l.end {
			if err := l.source.Seek(l.start); err != nil {
				l.err = err
				return n, n > 0
			}
			pos = l.start
		}

		want := min(len(samples)-n, l.end-pos)
		sn, sok := l.source.Stream(samples[n : n+want])
		n += sn
		if !sok || sn == 0 {
			if err := l.source.Err(); err != nil {
				l.err = err
			}
			return n, n > 0
		}
	}
	return n, true
}

func (l *Loop) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *Loop) frames(seconds float64) int {
	if math.IsNaN(seconds) || seconds <= 0 {
		return 0
	}
	return l.format.SampleRate.N(time.Duration(seconds * float64(time.Second)))
}

func clampFrame(f, n int) int {
	if f < 0 {
		return 0
	}
	if f > n {
		return n
	}
	return f
}
