package a2a_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alanyang/currency-mesh/internal/adapter/memory"
	"github.com/alanyang/currency-mesh/internal/domain/conversion"
	"github.com/alanyang/currency-mesh/internal/domain/report"
	"github.com/alanyang/currency-mesh/internal/mocks"
	portbus "github.com/alanyang/currency-mesh/internal/port/eventbus"
	"github.com/alanyang/currency-mesh/internal/port/rates"
	"github.com/alanyang/currency-mesh/internal/protocol"
	currencysvc "github.com/alanyang/currency-mesh/internal/service/currency"
	reportingsvc "github.com/alanyang/currency-mesh/internal/service/reporting"
	"github.com/alanyang/currency-mesh/internal/transport/a2a"
)

func init() { gin.SetMode(gin.TestMode) }

// envelope mirrors the wire response so tests can assert the
// result-or-error exclusivity directly.
type envelope struct {
	Result json.RawMessage `json:"result"`
	Error  *protocol.Error `json:"error"`
}

type currencyDeps struct {
	extractor *mocks.MockExtractor
	rates     *mocks.MockProvider
	reporter  *mocks.MockClient
	bus       portbus.EventBus
}

func newCurrencyRouter(t *testing.T) (*gin.Engine, currencyDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := currencyDeps{
		extractor: mocks.NewMockExtractor(ctrl),
		rates:     mocks.NewMockProvider(ctrl),
		reporter:  mocks.NewMockClient(ctrl),
		bus:       memory.NewBus(),
	}
	svc := currencysvc.NewService(d.extractor, d.rates, d.reporter, memory.NewSessionStore(), d.bus)

	r := gin.New()
	a2a.RegisterCurrency(r.Group("/a2a"), svc, d.bus)
	return r, d
}

func newReportingRouter(t *testing.T) (*gin.Engine, *mocks.MockGenerator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	bus := memory.NewBus()
	svc := reportingsvc.NewService(gen, memory.NewSessionStore(), bus)

	r := gin.New()
	a2a.RegisterReporting(r.Group("/a2a"), svc, bus)
	return r, gen
}

func post(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "/a2a", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func happyConversion(d currencyDeps) {
	d.extractor.EXPECT().
		ExtractPair(gomock.Any(), gomock.Any()).
		Return(conversion.Pair{From: "USD", To: "EUR"}, nil).AnyTimes()
	d.rates.EXPECT().
		GetRate(gomock.Any(), "USD", "EUR", "").
		Return(rates.Quote{Rate: 0.92, Date: "2026-08-28"}, nil).AnyTimes()
	d.reporter.EXPECT().
		GenerateReport(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(report.Completed("A fine report."), nil).AnyTimes()
}

// ── currency agent ────────────────────────────────────────────────────────────

func TestCurrency_SendWithReport(t *testing.T) {
	r, d := newCurrencyRouter(t)
	happyConversion(d)

	w := post(t, r, protocol.Request{
		ID:     "req-1",
		Method: protocol.MethodSendWithReport,
		Params: json.RawMessage(`{"query":"How much is 100 USD in EUR today?","session_id":"s-1"}`),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	require.Nil(t, env.Error)
	require.NotNil(t, env.Result)

	var result protocol.SendWithReportResult
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, protocol.StatusCompleted, result.Status)
	require.NotNil(t, result.Conversion)
	assert.Equal(t, 0.92, result.Conversion.Rate)
	require.NotNil(t, result.Report)
	assert.Equal(t, "A fine report.", result.Report.Report)
	assert.Equal(t, "s-1", result.SessionID)
}

func TestCurrency_StreamCollectsProgress(t *testing.T) {
	r, d := newCurrencyRouter(t)
	happyConversion(d)

	w := post(t, r, protocol.Request{
		ID:     "req-2",
		Method: protocol.MethodStream,
		Params: json.RawMessage(`{"query":"USD to EUR","session_id":"s-2"}`),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	require.Nil(t, env.Error)

	var result struct {
		Chunks []protocol.StreamChunk `json:"chunks"`
		Result json.RawMessage        `json:"result"`
	}
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.NotEmpty(t, result.Chunks)
	for _, chunk := range result.Chunks {
		assert.NotEmpty(t, chunk.Content)
	}

	var final protocol.SendWithReportResult
	require.NoError(t, json.Unmarshal(result.Result, &final))
	assert.Equal(t, protocol.StatusCompleted, final.Status)
}

func TestCurrency_UnknownMethodIsErrorEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		method  protocol.Method
		wantMsg string
	}{
		{"unknown everywhere", "message/destroy", "unknown method"},
		{"served by the other agent", protocol.MethodSend, "not served by this agent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newCurrencyRouter(t)

			w := post(t, r, protocol.Request{
				ID:     "req-3",
				Method: tt.method,
				Params: json.RawMessage(`{}`),
			})

			assert.Equal(t, http.StatusBadRequest, w.Code)
			env := decodeEnvelope(t, w)
			assert.Nil(t, env.Result)
			require.NotNil(t, env.Error)
			assert.Contains(t, env.Error.Message, tt.wantMsg)
		})
	}
}

func TestCurrency_MalformedRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `not json at all`},
		{"missing method", `{"id":"x","params":{}}`},
		{"unknown params field", `{"method":"message/send_with_report","params":{"query":"USD to EUR","bogus":1}}`},
		{"missing params", `{"method":"message/send_with_report"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newCurrencyRouter(t)

			w := httptest.NewRecorder()
			req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "/a2a", bytes.NewReader([]byte(tt.body)))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			env := decodeEnvelope(t, w)
			assert.Nil(t, env.Result)
			require.NotNil(t, env.Error)
			assert.NotEmpty(t, env.Error.Message)
		})
	}
}

func TestCurrency_InputRequired(t *testing.T) {
	r, d := newCurrencyRouter(t)
	d.extractor.EXPECT().
		ExtractPair(gomock.Any(), gomock.Any()).
		Return(conversion.Pair{}, nil)

	w := post(t, r, protocol.Request{
		ID:     "req-4",
		Method: protocol.MethodSendWithReport,
		Params: json.RawMessage(`{"query":"what is money"}`),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	require.Nil(t, env.Error)

	var result protocol.SendWithReportResult
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, protocol.StatusInputRequired, result.Status)
	assert.NotEmpty(t, result.SessionID, "session id is minted when absent")
}

// ── reporting agent ───────────────────────────────────────────────────────────

func TestReporting_Send(t *testing.T) {
	r, gen := newReportingRouter(t)
	gen.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("One US dollar buys 0.92 euro.", nil)

	w := post(t, r, protocol.Request{
		ID:     "req-5",
		Method: protocol.MethodSend,
		Params: json.RawMessage(`{"conversion_result":{"from":"USD","to":"EUR","rate":0.92},"session_id":"s-9"}`),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	require.Nil(t, env.Error)

	var result protocol.SendResult
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, report.StatusCompleted, result.Status)
	assert.Equal(t, "One US dollar buys 0.92 euro.", result.Report)
	assert.Equal(t, "s-9", result.SessionID)
}

func TestReporting_InvalidConversionIsErrorStatus(t *testing.T) {
	// The generator has no expectations: the handler must answer without
	// touching it.
	r, _ := newReportingRouter(t)

	w := post(t, r, protocol.Request{
		ID:     "req-6",
		Method: protocol.MethodSend,
		Params: json.RawMessage(`{"conversion_result":{"from":"USD","to":"EUR","rate":0}}`),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	require.Nil(t, env.Error)

	var result protocol.SendResult
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, report.StatusError, result.Status)
	assert.Contains(t, result.ErrorMessage, "invalid conversion result")
}

func TestReporting_RejectsCurrencyMethod(t *testing.T) {
	r, _ := newReportingRouter(t)

	w := post(t, r, protocol.Request{
		ID:     "req-7",
		Method: protocol.MethodSendWithReport,
		Params: json.RawMessage(`{"query":"USD to EUR"}`),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Nil(t, env.Result)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "not served by this agent")
}
