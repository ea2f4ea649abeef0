package narration

import "context"

// DiscardPlayer is a Player that drops audio. Actual playback is an external
// capability; this keeps the synthesis path exercised when no device is
// wired in.
type DiscardPlayer struct{}

// Play discards the audio.
func (DiscardPlayer) Play(_ context.Context, _ []byte) error { return nil }
