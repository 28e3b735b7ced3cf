// Package a2a is the inbound side of the agent envelope: one POST
// endpoint per agent, dispatching on the request's method. Unknown
// methods and malformed params answer with an error envelope, never a
// result.
package a2a

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/alanyang/currency-mesh/internal/domain/event"
	domainsession "github.com/alanyang/currency-mesh/internal/domain/session"
	portbus "github.com/alanyang/currency-mesh/internal/port/eventbus"
	"github.com/alanyang/currency-mesh/internal/protocol"
	currencysvc "github.com/alanyang/currency-mesh/internal/service/currency"
	reportingsvc "github.com/alanyang/currency-mesh/internal/service/reporting"
)

// RegisterCurrency mounts the currency agent's endpoint. It serves
// message/send_with_report and the streaming variant.
func RegisterCurrency(rg *gin.RouterGroup, svc *currencysvc.Service, bus portbus.EventBus) {
	rg.POST("", currencyHandler(svc, bus))
}

// RegisterReporting mounts the reporting agent's endpoint. It serves
// message/send and the streaming variant.
func RegisterReporting(rg *gin.RouterGroup, svc *reportingsvc.Service, bus portbus.EventBus) {
	rg.POST("", reportingHandler(svc, bus))
}

func currencyHandler(svc *currencysvc.Service, bus portbus.EventBus) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindRequest(c)
		if !ok {
			return
		}

		switch req.Method {
		case protocol.MethodSendWithReport:
			params, ok := decodeParams[protocol.SendWithReportParams](c, req.Method, req.Params)
			if !ok {
				return
			}
			result, err := svc.ConvertWithReport(c.Request.Context(), params.Query, orMint(params.SessionID))
			writeResult(c, result, err)

		case protocol.MethodStream:
			params, ok := decodeParams[protocol.SendWithReportParams](c, protocol.MethodSendWithReport, req.Params)
			if !ok {
				return
			}
			sessionID := orMint(params.SessionID)
			collect, stop := collectChunks(c, bus, sessionID)
			result, err := svc.ConvertWithReport(c.Request.Context(), params.Query, sessionID)
			stop()
			if err != nil {
				writeResult(c, nil, err)
				return
			}
			writeResult(c, protocol.StreamResult{Chunks: collect(), Result: result}, nil)

		default:
			writeUnknownMethod(c, req.Method)
		}
	}
}

func reportingHandler(svc *reportingsvc.Service, bus portbus.EventBus) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindRequest(c)
		if !ok {
			return
		}

		switch req.Method {
		case protocol.MethodSend:
			params, ok := decodeParams[protocol.SendParams](c, req.Method, req.Params)
			if !ok {
				return
			}
			sessionID := orMint(params.SessionID)
			rep, err := svc.GenerateReport(c.Request.Context(), params.ConversionResult, sessionID)
			writeResult(c, protocol.SendResult{Result: rep, SessionID: sessionID}, err)

		case protocol.MethodStream:
			params, ok := decodeParams[protocol.SendParams](c, protocol.MethodSend, req.Params)
			if !ok {
				return
			}
			sessionID := orMint(params.SessionID)
			collect, stop := collectChunks(c, bus, sessionID)
			rep, err := svc.GenerateReport(c.Request.Context(), params.ConversionResult, sessionID)
			stop()
			if err != nil {
				writeResult(c, nil, err)
				return
			}
			writeResult(c, protocol.StreamResult{
				Chunks: collect(),
				Result: protocol.SendResult{Result: rep, SessionID: sessionID},
			}, nil)

		default:
			writeUnknownMethod(c, req.Method)
		}
	}
}

// ── envelope plumbing ─────────────────────────────────────────────────────────

func bindRequest(c *gin.Context) (protocol.Request, bool) {
	var req protocol.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, protocol.ErrorResponse("malformed request envelope: "+err.Error()))
		return protocol.Request{}, false
	}
	if req.Method == "" {
		c.JSON(http.StatusBadRequest, protocol.ErrorResponse("method is required"))
		return protocol.Request{}, false
	}
	return req, true
}

func decodeParams[T any](c *gin.Context, method protocol.Method, raw []byte) (T, bool) {
	var zero T
	decoded, err := protocol.DecodeParamsFor(method, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, protocol.ErrorResponse(err.Error()))
		return zero, false
	}
	params, ok := decoded.(T)
	if !ok {
		c.JSON(http.StatusBadRequest, protocol.ErrorResponse("invalid params for method "+string(method)))
		return zero, false
	}
	return params, true
}

func writeResult(c *gin.Context, result any, err error) {
	if err != nil {
		c.JSON(http.StatusInternalServerError, protocol.ErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, protocol.ResultResponse(result))
}

func writeUnknownMethod(c *gin.Context, m protocol.Method) {
	msg := "unknown method: " + string(m)
	if protocol.Known(m) {
		msg = "method not served by this agent: " + string(m)
	}
	c.JSON(http.StatusBadRequest, protocol.ErrorResponse(msg))
}

// orMint returns the caller's session id, or a fresh one when absent, so
// progress events can always be correlated.
func orMint(sessionID string) string {
	if sessionID == "" {
		return domainsession.NewSessionID()
	}
	return sessionID
}

// collectChunks subscribes to the bus for the duration of one request
// and gathers this session's progress messages in arrival order.
func collectChunks(c *gin.Context, bus portbus.EventBus, sessionID string) (collect func() []protocol.StreamChunk, stop func()) {
	var mu sync.Mutex
	var chunks []protocol.StreamChunk

	sub, err := bus.Subscribe(c.Request.Context(), func(_ context.Context, e event.Event) {
		if e.SessionID != sessionID || e.Message == "" {
			return
		}
		mu.Lock()
		chunks = append(chunks, protocol.StreamChunk{Content: e.Message})
		mu.Unlock()
	})
	if err != nil {
		// Streaming degrades to the plain result.
		return func() []protocol.StreamChunk { return nil }, func() {}
	}

	collect = func() []protocol.StreamChunk {
		mu.Lock()
		defer mu.Unlock()
		out := make([]protocol.StreamChunk, len(chunks))
		copy(out, chunks)
		return out
	}
	return collect, sub.Unsubscribe
}
