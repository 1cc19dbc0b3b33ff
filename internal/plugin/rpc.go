package plugin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	perrors "gtranslate/plugin/internal/errors"
)

// ShowMsgMethod asks the launcher to display a transient notification.
const ShowMsgMethod = "Flow.Launcher.ShowMsg"

// QueryMethod is the launcher's query invocation.
const QueryMethod = "query"

// Request is a JSON-RPC invocation from the launcher.
type Request struct {
	Method     string            `json:"method"`
	Parameters []json.RawMessage `json:"parameters"`
	Settings   json.RawMessage   `json:"settings,omitempty"`
}

// Result is one item in the launcher's result list.
type Result struct {
	Title         string  `json:"Title"`
	SubTitle      string  `json:"SubTitle"`
	IcoPath       string  `json:"IcoPath"`
	ContextData   string  `json:"ContextData"`
	JsonRPCAction *Action `json:"JsonRPCAction,omitempty"`
}

// Action is the call the launcher makes when a result is selected.
type Action struct {
	Method     string `json:"method"`
	Parameters []any  `json:"parameters"`
}

// Response wraps the result list of a query.
type Response struct {
	Result []Result `json:"result"`
}

// ShowMsg is a launcher API call printed in reply to an action.
type ShowMsg struct {
	Method     string   `json:"method"`
	Parameters []string `json:"parameters"`
}

// NewShowMsg builds a ShowMsg call with title, subtitle and icon.
func NewShowMsg(title, subTitle, icon string) *ShowMsg {
	return &ShowMsg{Method: ShowMsgMethod, Parameters: []string{title, subTitle, icon}}
}

// DecodeRequest parses a launcher request.
func DecodeRequest(data []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return req, perrors.Wrap(perrors.InvalidRequest, "decode request", err)
	}
	if req.Method == "" {
		return req, perrors.New(perrors.InvalidRequest, "missing method")
	}
	return req, nil
}

// LooksLikeRequest reports whether arg is a JSON object rather than plain text.
func LooksLikeRequest(arg string) bool {
	return strings.HasPrefix(strings.TrimSpace(arg), "{")
}

// StringParam returns parameter i as a string. Missing parameters are "";
// non-string JSON values are returned in their JSON form.
func (r Request) StringParam(i int) string {
	if i < 0 || i >= len(r.Parameters) {
		return ""
	}
	var s string
	if err := json.Unmarshal(r.Parameters[i], &s); err == nil {
		return s
	}
	return string(r.Parameters[i])
}

// Dispatch runs req against svc and returns the value to print on stdout.
func Dispatch(ctx context.Context, svc *Service, req Request) (any, error) {
	switch req.Method {
	case QueryMethod:
		return Response{Result: svc.Query(ctx, req.StringParam(0))}, nil
	case CopyMethod:
		return svc.Copy(ctx, req.StringParam(0))
	default:
		return nil, perrors.New(perrors.InvalidRequest, fmt.Sprintf("unknown method %q", req.Method))
	}
}

// Serve decodes one request from data, dispatches it and writes the JSON reply to w.
func Serve(ctx context.Context, svc *Service, data []byte, w io.Writer) error {
	req, err := DecodeRequest(data)
	if err != nil {
		return err
	}
	out, err := Dispatch(ctx, svc, req)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
