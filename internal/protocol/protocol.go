// Package protocol defines the envelope exchanged between agents: a
// request naming a method from a closed set with method-specific params,
// answered by a response carrying either a result or an error, never both.
package protocol

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alanyang/currency-mesh/internal/domain/conversion"
	"github.com/alanyang/currency-mesh/internal/domain/report"
)

// Method is the closed set of operations an agent can serve. Each agent
// registers the subset it implements; everything else is an input error.
type Method string

const (
	// MethodSend delegates report generation for a finished conversion.
	// Served by the reporting agent.
	MethodSend Method = "message/send"
	// MethodSendWithReport runs the combined conversion+report flow for a
	// free-text query. Served by the currency agent.
	MethodSendWithReport Method = "message/send_with_report"
	// MethodStream is the streaming variant of the agent's primary
	// method: the result is the ordered list of progress chunks followed
	// by the terminal payload.
	MethodStream Method = "message/stream"
)

type Status string

const (
	StatusCompleted     Status = "completed"
	StatusInputRequired Status = "input-required"
	StatusError         Status = "error"
)

// Request is the inbound envelope. Params stays raw until the method is
// known; DecodeParams selects the typed record.
type Request struct {
	ID     string          `json:"id,omitempty"`
	Method Method          `json:"method"`
	Params json.RawMessage `json:"params"`
}

// SendParams carries a conversion to the reporting agent.
type SendParams struct {
	ConversionResult conversion.Result `json:"conversion_result"`
	SessionID        string            `json:"session_id"`
}

// SendWithReportParams carries a user query to the currency agent.
type SendWithReportParams struct {
	Query     string `json:"query"`
	SessionID string `json:"session_id"`
}

// SendResult is the reporting agent's terminal payload: the report
// record with the caller's session id echoed back.
type SendResult struct {
	report.Result
	SessionID string `json:"session_id,omitempty"`
}

// SendWithReportResult is the currency agent's terminal payload. The
// conversion is present whenever the rate lookup succeeded, even if the
// delegated report failed.
type SendWithReportResult struct {
	Status     Status             `json:"status"`
	Conversion *conversion.Result `json:"conversion,omitempty"`
	Report     *report.Result     `json:"report,omitempty"`
	Message    string             `json:"message,omitempty"`
	SessionID  string             `json:"session_id,omitempty"`
}

// StreamResult is the message/stream payload: progress chunks in emit
// order, then the terminal payload of the agent's primary method.
type StreamResult struct {
	Chunks []StreamChunk `json:"chunks"`
	Result any           `json:"result"`
}

type StreamChunk struct {
	Content string `json:"content"`
}

var (
	ErrUnknownMethod = errors.New("protocol: unknown method")
	ErrBadParams     = errors.New("protocol: invalid params")
)

// paramsDecoders is the dispatch table over the closed method set.
// MethodStream reuses the caller's primary params shape, so it is
// resolved by the transport layer against the agent's own method.
var paramsDecoders = map[Method]func(json.RawMessage) (any, error){
	MethodSend:           decodeInto[SendParams],
	MethodSendWithReport: decodeInto[SendWithReportParams],
}

func decodeInto[T any](raw json.RawMessage) (any, error) {
	var p T
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadParams, err)
	}
	return p, nil
}

// DecodeParams returns the typed params record for the request's method.
func DecodeParams(req Request) (any, error) {
	return DecodeParamsFor(req.Method, req.Params)
}

// DecodeParamsFor decodes raw params against the given method's shape.
// Transports use this for MethodStream, which borrows the params of the
// agent's primary method.
func DecodeParamsFor(m Method, raw json.RawMessage) (any, error) {
	decode, ok := paramsDecoders[m]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, m)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: params missing", ErrBadParams)
	}
	return decode(raw)
}

// Known reports whether m is in the closed method set.
func Known(m Method) bool {
	_, ok := paramsDecoders[m]
	return ok || m == MethodStream
}

// Response is the outbound envelope. Exactly one of Result and Error is
// set; MarshalJSON enforces the exclusion.
type Response struct {
	Result any    `json:"result,omitempty"`
	Error  *Error `json:"error,omitempty"`
}

type Error struct {
	Message string `json:"message"`
}

func ResultResponse(result any) Response {
	return Response{Result: result}
}

func ErrorResponse(msg string) Response {
	return Response{Error: &Error{Message: msg}}
}

var errBothSet = errors.New("protocol: response carries both result and error")

func (r Response) MarshalJSON() ([]byte, error) {
	if r.Result != nil && r.Error != nil {
		return nil, errBothSet
	}
	type plain Response
	return json.Marshal(plain(r))
}
