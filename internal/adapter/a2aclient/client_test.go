package a2aclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyang/currency-mesh/internal/adapter/a2aclient"
	"github.com/alanyang/currency-mesh/internal/domain/conversion"
	"github.com/alanyang/currency-mesh/internal/domain/report"
	"github.com/alanyang/currency-mesh/internal/protocol"
)

func validConv(t *testing.T) conversion.Result {
	t.Helper()
	conv, err := conversion.New("USD", "EUR", 0.92, nil)
	require.NoError(t, err)
	return conv
}

func TestGenerateReport_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/a2a", r.URL.Path)

		var req protocol.Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, protocol.MethodSend, req.Method)
		assert.NotEmpty(t, req.ID)

		var params protocol.SendParams
		require.NoError(t, json.Unmarshal(req.Params, &params))
		assert.Equal(t, "USD", params.ConversionResult.From)
		assert.Equal(t, "s-1", params.SessionID)

		json.NewEncoder(w).Encode(protocol.ResultResponse(protocol.SendResult{
			Result:    report.Completed("a fine report"),
			SessionID: "s-1",
		}))
	}))
	defer srv.Close()

	client := a2aclient.NewClient(srv.URL, 5*time.Second)
	rep, err := client.GenerateReport(context.Background(), validConv(t), "s-1")
	require.NoError(t, err)
	assert.Equal(t, report.StatusCompleted, rep.Status)
	assert.Equal(t, "a fine report", rep.Report)
}

func TestGenerateReport_RemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(protocol.ErrorResponse("unknown method"))
	}))
	defer srv.Close()

	client := a2aclient.NewClient(srv.URL, 5*time.Second)
	_, err := client.GenerateReport(context.Background(), validConv(t), "s-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, a2aclient.ErrRemote))
	assert.Contains(t, err.Error(), "unknown method")
}

func TestGenerateReport_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server can detect the client disconnect
		// and cancel the request context; otherwise srv.Close deadlocks.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := a2aclient.NewClient(srv.URL, 50*time.Millisecond)
	_, err := client.GenerateReport(context.Background(), validConv(t), "s-1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, a2aclient.ErrRemote))
}

func TestGenerateReport_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := a2aclient.NewClient(srv.URL, 5*time.Second)
	_, err := client.GenerateReport(context.Background(), validConv(t), "s-1")
	require.Error(t, err)
}

func TestGenerateReport_EmptyEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := a2aclient.NewClient(srv.URL, 5*time.Second)
	_, err := client.GenerateReport(context.Background(), validConv(t), "s-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither result nor error")
}

func TestCard_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/.well-known/agent.json", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"name": "reporting-agent", "version": "1.0.0"})
	}))
	defer srv.Close()

	client := a2aclient.NewClient(srv.URL, 5*time.Second)
	card, err := client.Card(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "reporting-agent", card["name"])
}

func TestCard_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := a2aclient.NewClient(srv.URL, 5*time.Second)
	_, err := client.Card(context.Background())
	require.Error(t, err)
}
