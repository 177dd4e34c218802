package insights

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"carboncare/internal/models"
	"carboncare/internal/predict"
	"carboncare/internal/survey"
)

// PredictionService is the slice of the external prediction client the
// orchestrator uses.
type PredictionService interface {
	Predict(ctx context.Context, labels map[string]any) (*predict.Prediction, error)
	Insights(ctx context.Context, labels map[string]any) (json.RawMessage, error)
}

// Result pairs an insight payload with the emission change against the
// previous submission. Insights is either the service's payload verbatim
// (json.RawMessage) or a locally built *Payload.
type Result struct {
	Insights         any     `json:"insights"`
	ChangePercentage float64 `json:"changePercentage"`
}

// Orchestrator obtains insights for a record, falling back to the local
// estimator whenever the prediction service fails. It holds no state beyond
// its collaborators.
type Orchestrator struct {
	svc       PredictionService
	estimator *Estimator
	logger    *zap.Logger
}

func NewOrchestrator(svc PredictionService, estimator *Estimator, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{svc: svc, estimator: estimator, logger: logger}
}

// ChangePercentage is the relative emission change from prev to rec, in
// percent. It is zero when there is no previous record or its emission is
// zero.
func ChangePercentage(rec models.CarbonRecord, prev *models.CarbonRecord) float64 {
	if prev == nil || prev.CarbonEmission == 0 {
		return 0
	}
	return (rec.CarbonEmission - prev.CarbonEmission) / prev.CarbonEmission * 100
}

// GetInsights returns an insight payload for rec plus its change percentage
// against prev. Service failures are absorbed: the caller always receives a
// usable payload. One outbound call, no retries.
func (o *Orchestrator) GetInsights(ctx context.Context, rec models.CarbonRecord, prev *models.CarbonRecord) Result {
	res := Result{ChangePercentage: ChangePercentage(rec, prev)}

	raw, err := o.svc.Insights(ctx, survey.ExternalLabels(rec))
	if err != nil {
		o.logger.Warn("prediction service insights failed, using fallback", zap.Error(err))
		res.Insights = FallbackInsights(rec)
		return res
	}
	res.Insights = raw
	return res
}

// PredictEmission obtains a predicted emission and insight payload for a new
// submission. When the service fails, both come from the local estimator.
func (o *Orchestrator) PredictEmission(ctx context.Context, rec models.CarbonRecord) (float64, any) {
	p, err := o.svc.Predict(ctx, survey.ExternalLabels(rec))
	if err != nil {
		o.logger.Warn("prediction service predict failed, using fallback", zap.Error(err))
		return o.estimator.EstimateEmission(rec), FallbackInsights(rec)
	}
	return p.Prediction, map[string]any{
		"category_breakdown":      p.CategoryBreakdown,
		"top_individual_features": p.TopIndividualFeatures,
		"recommendations":         p.Recommendations,
	}
}
