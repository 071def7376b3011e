package txsubmit

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/txsend/internal/pkg/telemetry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instruments groups the metrics recorded by the service.
type instruments struct {
	submissions   metric.Int64Counter
	confirmations metric.Int64Counter
	confirmWait   metric.Float64Histogram
}

func newInstruments() instruments {
	meter := otel.Meter(telemetry.InstrumentationName + "/txsubmit")

	submissions, err := meter.Int64Counter("txsubmit.submissions",
		metric.WithDescription("Transactions submitted, by outcome."),
	)
	if err != nil {
		otel.Handle(err)
	}

	confirmations, err := meter.Int64Counter("txsubmit.confirmations",
		metric.WithDescription("Confirmation waits, by outcome."),
	)
	if err != nil {
		otel.Handle(err)
	}

	confirmWait, err := meter.Float64Histogram("txsubmit.confirmation.wait",
		metric.WithDescription("Time spent awaiting a confirmation."),
		metric.WithUnit("s"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return instruments{
		submissions:   submissions,
		confirmations: confirmations,
		confirmWait:   confirmWait,
	}
}

// outcome maps an error to a low-cardinality metric label.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrSigning):
		return "signing"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrDropped):
		return "dropped"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}

func (i instruments) recordSubmission(ctx context.Context, op string, err error) {
	if i.submissions == nil {
		return
	}

	i.submissions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("outcome", outcome(err)),
	))
}

func (i instruments) recordConfirmation(ctx context.Context, err error, elapsed time.Duration) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome(err)))

	if i.confirmations != nil {
		i.confirmations.Add(ctx, 1, attrs)
	}
	if i.confirmWait != nil {
		i.confirmWait.Record(ctx, elapsed.Seconds(), attrs)
	}
}

// endSpan records err on span, if any, and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
