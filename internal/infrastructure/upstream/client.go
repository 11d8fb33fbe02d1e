// Package upstream sends JSON requests to the third-party APIs the relay
// depends on and reads their answers without trusting them to be JSON.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const maxResponseBytes = 1 << 20

// Response is an upstream answer. Body holds the decoded JSON payload, or an
// empty object when the payload was empty or not JSON; Raw keeps the bytes.
type Response struct {
	StatusCode int
	Body       any
	Raw        []byte
	Parsed     bool
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the raw payload into v.
func (r *Response) Decode(v any) error {
	if !r.Parsed {
		return fmt.Errorf("response body is not json")
	}
	return json.Unmarshal(r.Raw, v)
}

// Send issues a single request. Non-2xx statuses are not errors here; only
// failures to build, send or read the request are.
func Send[Req any](ctx context.Context, httpClient *http.Client, method, url string, reqBody *Req, headers http.Header) (*Response, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	for k, vs := range headers {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	out := &Response{StatusCode: resp.StatusCode, Raw: raw}
	out.Body, out.Parsed = decodeLenient(raw)

	return out, nil
}

func decodeLenient(raw []byte) (any, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return map[string]any{}, false
	}

	var body any
	if err := json.Unmarshal(trimmed, &body); err != nil {
		return map[string]any{}, false
	}
	if body == nil {
		return map[string]any{}, true
	}
	return body, true
}
