package openai

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

func TestAsk_ReturnsFirstChoice(t *testing.T) {
	var got chatCompletionsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Yes, 80% match"}}]}`))
	}))
	defer srv.Close()

	c := New("sk-test", srv.URL+"/", "gpt-test", time.Second)
	reply, err := c.Ask(context.Background(), "match job skills", "skills: SQL")
	require.NoError(t, err)
	assert.Equal(t, "Yes, 80% match", reply)

	assert.Equal(t, "gpt-test", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, message{Role: "system", Content: "match job skills"}, got.Messages[0])
	assert.Equal(t, message{Role: "user", Content: "skills: SQL"}, got.Messages[1])
}

func TestAsk_AttributionHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "https://jobs.example.com", r.Header.Get("HTTP-Referer"))
		assert.Equal(t, "job-portal", r.Header.Get("X-Title"))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"no"}}]}`))
	}))
	defer srv.Close()

	c := New("sk-test", srv.URL, "", time.Second)
	c.Referer = "https://jobs.example.com"
	c.AppTitle = "job-portal"
	reply, err := c.Ask(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "no", reply)
}

func TestAsk_Failures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"http error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
		},
		"no choices": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		},
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(h)
			defer srv.Close()
			_, err := New("sk-test", srv.URL, "", time.Second).Ask(context.Background(), "s", "u")
			assert.Error(t, err)
		})
	}
}

func TestAsk_RateLimitMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	_, err := New("sk-test", srv.URL, "", time.Second).Ask(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestAsk_RespectsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := New("sk-test", srv.URL, "", 5*time.Second).Ask(ctx, "s", "u")
	assert.Error(t, err)
}

func TestAsk_RequiresKey(t *testing.T) {
	_, err := New("", "", "", 0).Ask(context.Background(), "s", "u")
	assert.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	c := New("k", "", "", 0)
	assert.Equal(t, DefaultBaseURL, c.BaseURL)
	assert.Equal(t, DefaultModel, c.Model)
}
