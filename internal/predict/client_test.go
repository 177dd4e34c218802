package predict

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels() map[string]any {
	return map[string]any{"Body Type": "normal", "Diet": "vegan"}
}

func TestPredictSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/predict", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		require.Equal(t, "vegan", got["Diet"])

		w.Write([]byte(`{"prediction":987.6,"category_breakdown":[{"name":"Home Energy"}],"top_individual_features":[],"recommendations":[]}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 0)
	p, err := c.Predict(context.Background(), labels())
	require.NoError(t, err)
	assert.Equal(t, 987.6, p.Prediction)
	assert.JSONEq(t, `[{"name":"Home Energy"}]`, string(p.CategoryBreakdown))
}

func TestPredictNon2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Model not loaded"}`, http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 0)
	_, err := c.Predict(context.Background(), labels())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestPredictMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"prediction": not-json`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 0)
	_, err := c.Predict(context.Background(), labels())
	assert.Error(t, err)
}

func TestPredictRejectsNegativePrediction(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"prediction":-3.5}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 0)
	_, err := c.Predict(context.Background(), labels())
	assert.Error(t, err)
}

func TestInsightsWrapsPayloadAndUnwrapsResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/insights", r.URL.Path)
		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Contains(t, body, "carbonData")
		w.Write([]byte(`{"carbonEmission":12.1,"insights":{"recommendations":[]}}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 0)
	raw, err := c.Insights(context.Background(), labels())
	require.NoError(t, err)
	assert.JSONEq(t, `{"recommendations":[]}`, string(raw))
}

func TestInsightsMissingPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"Model not loaded"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 0)
	_, err := c.Insights(context.Background(), labels())
	assert.Error(t, err)
}

func TestClientHonorsTimeout(t *testing.T) {
	block := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer ts.Close()
	defer close(block)

	c := NewClient(ts.URL, 50*time.Millisecond)
	start := time.Now()
	_, err := c.Predict(context.Background(), labels())
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}
