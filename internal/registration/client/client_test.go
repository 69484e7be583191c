package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sofia-hackathon/registration/internal/registration/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelayClient_Submit(t *testing.T) {
	var got domain.FormRecord
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, SubmitPath, r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	rec := domain.FormRecord{StudentName: "Ada", Signature: "data:image/png;base64,AAAA"}
	err := NewRelayClient(server.URL+"/").Submit(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.StudentName)
	assert.Equal(t, "data:image/png;base64,AAAA", got.Signature)
}

func TestRelayClient_Submit_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to submit form"}`))
	}))
	defer server.Close()

	err := NewRelayClient(server.URL).Submit(context.Background(), domain.FormRecord{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestRelayClient_Submit_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	err := NewRelayClient(url).Submit(context.Background(), domain.FormRecord{})
	assert.Error(t, err)
}
