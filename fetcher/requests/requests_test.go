package requests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRequestSetsTokenAndParams(t *testing.T) {
	var gotToken string
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Riot-Token")
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient("RGAPI-test-key")
	resp, err := client.AuthRequest(context.Background(), server.URL, map[string]string{
		"start": "0",
		"count": "12",
	})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "RGAPI-test-key", gotToken)
	assert.Contains(t, gotQuery, "count=12")
	assert.Contains(t, gotQuery, "start=0")
}

func TestAuthRequestWithoutKey(t *testing.T) {
	client := NewClient("")
	_, err := client.AuthRequest(context.Background(), "http://localhost", nil)
	assert.Error(t, err)
}

func TestRateLimiterAllowsBurstWithinWindow(t *testing.T) {
	limiter := CreateRateLimiter()

	start := time.Now()
	for i := 0; i < lowerLimitCount; i++ {
		limiter.WaitApi()
	}
	assert.Less(t, time.Since(start), lowerLimitInterval)
}
