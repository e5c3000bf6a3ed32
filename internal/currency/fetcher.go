package currency

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ratePayloadSchema describes the rate-provider response. The payload is
// checked against it before anything reaches the cache, so a malformed
// provider answer degrades to stale data like any other fetch failure.
var ratePayloadSchema = map[string]any{
	"type":     "object",
	"required": []any{"rates"},
	"properties": map[string]any{
		"base": map[string]any{"type": "string"},
		"rates": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":             "number",
				"exclusiveMinimum": 0,
			},
		},
	},
}

type ratePayload struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// HTTPFetcher fetches the rate table from a JSON endpoint of the shape
// {"base": "USD", "rates": {"EUR": 1.09, ...}}, rates being base-currency
// units per 1 unit of each code.
type HTTPFetcher struct {
	url     string
	client  *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

func NewHTTPFetcher(url string, timeout time.Duration, logger *slog.Logger) *HTTPFetcher {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPFetcher{
		url:     url,
		client:  &http.Client{},
		timeout: timeout,
		logger:  logger,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context) (map[string]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch rates: %s returned %s", f.url, resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read rates body: %w", err)
	}

	if err := validateJSONAgainstSchema(ratePayloadSchema, body); err != nil {
		return nil, err
	}
	var payload ratePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode rates: %w", err)
	}
	f.logger.Debug("currency.fetch.ok", "base", payload.Base, "codes", len(payload.Rates))
	return payload.Rates, nil
}

// validateJSONAgainstSchema validates "data" against "schemaMap".
func validateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
