package region

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
	log "github.com/sirupsen/logrus"
)

// decoder turns an open file into a seekable stream. The stream owns the
// file and closes it.
type decoder func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

var decoders = map[string]decoder{
	".flac": func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(rc) },
	".wav":  func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(rc) },
	".mp3":  mp3.Decode,
	".ogg":  vorbis.Decode,
}

// Extensions lists the file extensions Open can decode.
func Extensions() []string {
	return slices.Sorted(maps.Keys(decoders))
}

// Open decodes an audio file into a seekable stream, a loop source. The
// decoder is chosen from the file extension before the file is touched.
func Open(uri string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(uri))
	decode, ok := decoders[ext]
	if !ok {
		return nil, beep.Format{}, fmt.Errorf("unsupported format %q for %s (want one of %s)",
			ext, uri, strings.Join(Extensions(), ", "))
	}

	f, err := os.Open(uri)
	if err != nil {
		return nil, beep.Format{}, err
	}

	streamer, format, err := decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decoding %s: %w", uri, err)
	}
	log.Debugf("🐞 Opened %s: %d frames at %d Hz", uri, streamer.Len(), format.SampleRate)
	return streamer, format, nil
}
