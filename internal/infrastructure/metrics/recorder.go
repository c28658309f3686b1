package metrics

import (
	"context"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MeterName is the instrumentation scope of every screening instrument.
const MeterName = "github.com/bibbank/screening-service"

// Recorder implements port.Recorder with OpenTelemetry counters.
type Recorder struct {
	riskAssessments      metric.Int64Counter
	duplicateChecks      metric.Int64Counter
	queryClassifications metric.Int64Counter
	publishFailures      metric.Int64Counter
}

// NewRecorder creates the screening counters on the given meter provider.
func NewRecorder(provider metric.MeterProvider) (*Recorder, error) {
	meter := provider.Meter(MeterName)

	var (
		r   Recorder
		err error
	)

	r.riskAssessments, err = meter.Int64Counter("screening_risk_assessments",
		metric.WithDescription("Risk profiles scored, by resulting level."))
	if err != nil {
		return nil, fmt.Errorf("create risk assessments counter: %w", err)
	}

	r.duplicateChecks, err = meter.Int64Counter("screening_duplicate_checks",
		metric.WithDescription("Record pairs compared, by verdict."))
	if err != nil {
		return nil, fmt.Errorf("create duplicate checks counter: %w", err)
	}

	r.queryClassifications, err = meter.Int64Counter("screening_query_classifications",
		metric.WithDescription("Investigator queries analyzed, by intent."))
	if err != nil {
		return nil, fmt.Errorf("create query classifications counter: %w", err)
	}

	r.publishFailures, err = meter.Int64Counter("screening_event_publish_failures",
		metric.WithDescription("Domain events that could not be published."))
	if err != nil {
		return nil, fmt.Errorf("create publish failures counter: %w", err)
	}

	return &r, nil
}

func (r *Recorder) RiskAssessed(ctx context.Context, level string) {
	r.riskAssessments.Add(ctx, 1, metric.WithAttributes(attribute.String("level", level)))
}

func (r *Recorder) DuplicateChecked(ctx context.Context, duplicate bool) {
	r.duplicateChecks.Add(ctx, 1, metric.WithAttributes(attribute.String("duplicate", strconv.FormatBool(duplicate))))
}

func (r *Recorder) QueryClassified(ctx context.Context, intent string) {
	r.queryClassifications.Add(ctx, 1, metric.WithAttributes(attribute.String("intent", intent)))
}

func (r *Recorder) EventPublishFailed(ctx context.Context, eventType string) {
	r.publishFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", eventType)))
}
