package narration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RelayClient is a Synthesizer backed by the TTS relay service: an HTTP
// endpoint accepting {"text": ...} and returning an audio byte stream.
type RelayClient struct {
	endpoint string
	client   *http.Client
}

// NewRelayClient creates a RelayClient for the given endpoint URL.
//
// Precondition: endpoint must be a valid URL.
func NewRelayClient(endpoint string, timeout time.Duration) *RelayClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RelayClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Synthesize posts the text to the relay and returns the audio bytes.
//
// Postcondition: Returns non-empty audio or a non-nil error.
func (c *RelayClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("encoding tts request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building tts request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling tts relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts relay returned status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading tts audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("tts relay returned no audio")
	}
	return audio, nil
}
