package superzk

import (
	"github.com/gtank/merlin"
)

const TRANSCRIPT_DOMAIN_TAG = "superzk randomness"

// TranscriptReader is a deterministic io.Reader over a merlin transcript.
// Each Read squeezes fresh bytes, so two readers built from the same
// label and seed produce the same stream. It is meant for reproducible
// fixtures and must not replace crypto/rand in production.
type TranscriptReader struct {
	t *merlin.Transcript
}

func NewTranscriptReader(label string, seed []byte) *TranscriptReader {
	t := merlin.NewTranscript(TRANSCRIPT_DOMAIN_TAG)
	t.AppendMessage([]byte("label"), []byte(label))
	t.AppendMessage([]byte("seed"), seed)
	return &TranscriptReader{t: t}
}

func (r *TranscriptReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	copy(p, r.t.ExtractBytes([]byte("rng"), len(p)))
	return len(p), nil
}
