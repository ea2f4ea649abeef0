package narration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelayClientSynthesize(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte("fake-audio-bytes"))
	}))
	defer srv.Close()

	client := NewRelayClient(srv.URL, 5*time.Second)
	audio, err := client.Synthesize(context.Background(), "You open the Drawer.")
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-audio-bytes"), audio)
	assert.Equal(t, map[string]string{"text": "You open the Drawer."}, gotBody)
}

func TestRelayClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "relay overloaded", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewRelayClient(srv.URL, 5*time.Second)
	_, err := client.Synthesize(context.Background(), "hello")
	assert.ErrorContains(t, err, "status 502")
}

func TestRelayClientEmptyAudio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	defer srv.Close()

	client := NewRelayClient(srv.URL, 5*time.Second)
	_, err := client.Synthesize(context.Background(), "hello")
	assert.ErrorContains(t, err, "no audio")
}

func TestRelayClientContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewRelayClient(srv.URL, 5*time.Second)
	_, err := client.Synthesize(ctx, "hello")
	assert.Error(t, err)
}
