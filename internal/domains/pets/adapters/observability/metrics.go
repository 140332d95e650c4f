package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"

	"github.com/gopetstore/petstore/internal/domains/pets/domain"
)

type serviceMetrics struct {
	created metric.Int64Counter
	updated metric.Int64Counter
	deleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		m = metricnoop.NewMeterProvider().Meter(tracerName)
	}
	created, err := m.Int64Counter("petstore.pets.created", metric.WithDescription("Pets created"))
	if err != nil {
		created, _ = metricnoop.NewMeterProvider().Meter(tracerName).Int64Counter("petstore.pets.created")
	}
	updated, err := m.Int64Counter("petstore.pets.updated", metric.WithDescription("Pets updated"))
	if err != nil {
		updated, _ = metricnoop.NewMeterProvider().Meter(tracerName).Int64Counter("petstore.pets.updated")
	}
	deleted, err := m.Int64Counter("petstore.pets.deleted", metric.WithDescription("Pets deleted"))
	if err != nil {
		deleted, _ = metricnoop.NewMeterProvider().Meter(tracerName).Int64Counter("petstore.pets.deleted")
	}
	return serviceMetrics{created: created, updated: updated, deleted: deleted}
}

func (m serviceMetrics) recordCreated(ctx context.Context, status domain.Status) {
	m.created.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(status))))
}

func (m serviceMetrics) recordUpdated(ctx context.Context, status domain.Status) {
	m.updated.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(status))))
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	m.deleted.Add(ctx, 1)
}
