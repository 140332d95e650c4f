// Package observability decorates the store service with tracing, logging,
// and metrics.
package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/gopetstore/petstore/internal/domains/store/domain"
	"github.com/gopetstore/petstore/internal/domains/store/ports"
)

const tracerName = "github.com/gopetstore/petstore/internal/domains/store/adapters/observability"

// Service decorates a store service port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	placed  metric.Int64Counter
	deleted metric.Int64Counter
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create order metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.placed, s.deleted = newCounters(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	s.placed, s.deleted = newCounters(nil)
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func newCounters(m metric.Meter) (metric.Int64Counter, metric.Int64Counter) {
	if m == nil {
		m = metricnoop.NewMeterProvider().Meter(tracerName)
	}
	placed, err := m.Int64Counter("petstore.orders.placed", metric.WithDescription("Orders placed"))
	if err != nil {
		placed, _ = metricnoop.NewMeterProvider().Meter(tracerName).Int64Counter("petstore.orders.placed")
	}
	deleted, err := m.Int64Counter("petstore.orders.deleted", metric.WithDescription("Orders deleted"))
	if err != nil {
		deleted, _ = metricnoop.NewMeterProvider().Meter(tracerName).Int64Counter("petstore.orders.deleted")
	}
	return placed, deleted
}

func (s *Service) PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "Service.PlaceOrder")
	defer span.End()

	saved, err := s.inner.PlaceOrder(ctx, order)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to place order")
	}
	s.placed.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(saved.Status))))
	s.logger.LogAttrs(ctx, slog.LevelInfo, "order placed",
		slog.Int64("order.id", saved.ID), slog.Int64("pet.id", saved.PetID))
	return saved, nil
}

func (s *Service) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "Service.GetOrderByID", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	order, err := s.inner.GetOrderByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to get order", slog.Int64("order.id", id))
	}
	return order, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "Service.DeleteOrder", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	if err := s.inner.DeleteOrder(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete order", slog.Int64("order.id", id))
	}
	s.deleted.Add(ctx, 1)
	s.logger.LogAttrs(ctx, slog.LevelInfo, "order deleted", slog.Int64("order.id", id))
	return nil
}

func (s *Service) Inventory(ctx context.Context) (map[string]int32, error) {
	ctx, span := s.tracer.Start(ctx, "Service.Inventory")
	defer span.End()

	inventory, err := s.inner.Inventory(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to read inventory")
	}
	return inventory, nil
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	attrs = append(attrs, slog.String("error", err.Error()))
	s.logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
	return err
}

var _ ports.Service = (*Service)(nil)
