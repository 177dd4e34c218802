// Package predict is the HTTP client for the external carbon prediction
// service. The service is an opaque dependency: it receives the survey under
// its human-readable labels and answers with a predicted emission plus a
// model-derived insight payload.
package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const DefaultTimeout = 10 * time.Second

// Prediction is the /predict response. The insight parts are kept as raw
// JSON so they can be passed through to clients verbatim.
type Prediction struct {
	Prediction            float64         `json:"prediction"`
	CategoryBreakdown     json.RawMessage `json:"category_breakdown"`
	TopIndividualFeatures json.RawMessage `json:"top_individual_features"`
	Recommendations       json.RawMessage `json:"recommendations"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the prediction service at baseURL. A
// non-positive timeout falls back to DefaultTimeout; the service has no
// timeout of its own, so an unbounded client would hang requests with it.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("prediction service: %s returned %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Predict asks the service for an emission prediction over the labeled survey.
func (c *Client) Predict(ctx context.Context, labels map[string]any) (*Prediction, error) {
	var p Prediction
	if err := c.post(ctx, "/predict", labels, &p); err != nil {
		return nil, err
	}
	if p.Prediction < 0 {
		return nil, fmt.Errorf("prediction service: negative prediction %f", p.Prediction)
	}
	return &p, nil
}

// Insights asks the service for the insight payload only. The service wraps
// the survey under a carbonData key on this route.
func (c *Client) Insights(ctx context.Context, labels map[string]any) (json.RawMessage, error) {
	var out struct {
		Insights json.RawMessage `json:"insights"`
	}
	if err := c.post(ctx, "/insights", map[string]any{"carbonData": labels}, &out); err != nil {
		return nil, err
	}
	if len(out.Insights) == 0 {
		return nil, fmt.Errorf("prediction service: response missing insights")
	}
	return out.Insights, nil
}
