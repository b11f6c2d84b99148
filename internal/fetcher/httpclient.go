package fetcher

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"resty.dev/v3"
)

const defaultClientTimeout = 20 * time.Second

// NewHTTPClient creates the resty client shared by every upstream source.
// Upstream calls are attempted exactly once; partial failure is absorbed by
// the fan-out, not by retries.
func NewHTTPClient(baseURL string) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(defaultClientTimeout)
}

// GetJSON issues req as a GET against path and returns the raw JSON body.
// Transport errors and non-2xx statuses are classified into *FetchError.
func GetJSON(ctx context.Context, req *resty.Request, path string) (json.RawMessage, error) {
	var raw json.RawMessage

	resp, err := req.
		SetContext(ctx).
		SetResult(&raw).
		Get(path)
	if err != nil {
		return nil, ClassifyTransportError(err)
	}

	if !resp.IsSuccess() {
		slog.Debug("upstream returned non-2xx status",
			"url", resp.Request.URL,
			"status_code", resp.StatusCode())
		return nil, ClassifyHTTPError(resp.StatusCode())
	}

	// Bodies served without a JSON content type are not auto-parsed.
	if len(raw) == 0 {
		raw = json.RawMessage(resp.Bytes())
	}
	if !json.Valid(raw) {
		return nil, NewValidationError("response body is not valid JSON")
	}

	return raw, nil
}
