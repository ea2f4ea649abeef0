// Package narration provides best-effort spoken output: a serialized speech
// queue fed by game output, synthesized through a remote TTS relay. The whole
// package is a convenience layer; the engine works identically without it.
package narration

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Synthesizer converts a line of text into audio. It is an opaque remote
// capability; failures are logged and the line is skipped.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Player consumes synthesized audio. Implementations are external; a nil
// check is the caller's job, not this package's.
type Player interface {
	Play(ctx context.Context, audio []byte) error
}

// Speaker queues utterances and speaks them one at a time: at most one
// synthesis/playback is ever in flight. New player input interrupts the
// current utterance and flushes everything queued behind it.
type Speaker struct {
	synth  Synthesizer
	player Player
	logger *zap.Logger

	queue chan string

	mu     sync.Mutex
	cancel context.CancelFunc // cancels the in-flight utterance
	closed bool
	done   chan struct{}
}

// NewSpeaker creates a Speaker and starts its worker goroutine.
//
// Precondition: synth, player, and logger must be non-nil.
// Postcondition: Returns a running Speaker; callers must Close it.
func NewSpeaker(synth Synthesizer, player Player, logger *zap.Logger) *Speaker {
	s := &Speaker{
		synth:  synth,
		player: player,
		logger: logger,
		queue:  make(chan string, 32),
		done:   make(chan struct{}),
	}
	go s.run()
	return s
}

// Speak enqueues a line for narration. If the queue is full the line is
// dropped; narration is best-effort and must never block the game.
func (s *Speaker) Speak(text string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	select {
	case s.queue <- text:
	default:
		s.logger.Debug("narration queue full, dropping line")
	}
}

// Interrupt stops the in-flight utterance and flushes the queue. Frontends
// call it on every new player keystroke.
func (s *Speaker) Interrupt() {
	// Drain before cancelling: the worker is still busy with the in-flight
	// utterance, so it cannot pull a queued line out from under the drain.
	for {
		select {
		case <-s.queue:
		default:
			s.mu.Lock()
			if s.cancel != nil {
				s.cancel()
			}
			s.mu.Unlock()
			return
		}
	}
}

// Close interrupts any utterance and stops the worker.
//
// Postcondition: Speak becomes a no-op; the worker goroutine exits.
func (s *Speaker) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.Interrupt()
	close(s.queue)
	<-s.done
}

func (s *Speaker) run() {
	defer close(s.done)
	for text := range s.queue {
		s.speakOne(text)
	}
}

func (s *Speaker) speakOne(text string) {
	ctx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.cancel = nil
		s.mu.Unlock()
		cancel()
	}()

	audio, err := s.synth.Synthesize(ctx, text)
	if err != nil {
		s.logger.Debug("tts synthesis failed", zap.Error(err))
		return
	}
	if err := s.player.Play(ctx, audio); err != nil {
		s.logger.Debug("audio playback failed", zap.Error(err))
	}
}
