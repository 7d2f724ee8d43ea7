package ai

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

func TestGenerate(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]string{"result": `{"summary": "hi"}`})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	raw, err := c.Generate(context.Background(), "write my resume")
	require.NoError(t, err)

	assert.Equal(t, "write my resume", gotBody["prompt"])
	assert.JSONEq(t, `{"summary": "hi"}`, string(raw))
}

func TestGenerateNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGenerateUnexpectedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Generate(context.Background(), "p")
	assert.Error(t, err)
}

func TestGenerateSingleRequest(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Generate(context.Background(), "p")
	require.Error(t, err)
	// failures are reported, never retried
	assert.Equal(t, 1, calls)
}

func TestNewClientDefaults(t *testing.T) {
	t.Setenv("GENERATE_URL", "")
	c := NewClient("", 0)
	assert.Equal(t, "http://ai-service:8000/api/generate", c.Endpoint)
	assert.Equal(t, 60*time.Second, c.HTTP.Timeout)

	t.Setenv("GENERATE_URL", "http://elsewhere/gen")
	c = NewClient("", 0)
	assert.Equal(t, "http://elsewhere/gen", c.Endpoint)
}
