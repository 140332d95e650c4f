// Package observability decorates the pets service with tracing, logging,
// and metrics.
package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/gopetstore/petstore/internal/domains/pets/domain"
	"github.com/gopetstore/petstore/internal/domains/pets/ports"
)

const tracerName = "github.com/gopetstore/petstore/internal/domains/pets/adapters/observability"

// Service decorates a pets service port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
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

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

func (s *Service) AddPet(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	ctx, span := s.startSpan(ctx, "Service.AddPet")
	defer span.End()

	saved, err := s.inner.AddPet(ctx, pet)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add pet")
	}
	s.metrics.recordCreated(ctx, saved.Status)
	s.logInfo(ctx, "pet added", slog.Int64("pet.id", saved.ID), slog.String("status", string(saved.Status)))
	return saved, nil
}

func (s *Service) UpdatePet(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	id := int64(0)
	if pet != nil {
		id = pet.ID
	}
	ctx, span := s.startSpan(ctx, "Service.UpdatePet", attribute.Int64("pet.id", id))
	defer span.End()

	saved, err := s.inner.UpdatePet(ctx, pet)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update pet", slog.Int64("pet.id", id))
	}
	s.metrics.recordUpdated(ctx, saved.Status)
	s.logInfo(ctx, "pet updated", slog.Int64("pet.id", saved.ID))
	return saved, nil
}

func (s *Service) UpdatePetWithForm(ctx context.Context, id int64, name, status string) error {
	ctx, span := s.startSpan(ctx, "Service.UpdatePetWithForm", attribute.Int64("pet.id", id))
	defer span.End()

	if err := s.inner.UpdatePetWithForm(ctx, id, name, status); err != nil {
		return s.handleError(ctx, span, err, "failed to update pet via form", slog.Int64("pet.id", id))
	}
	s.logInfo(ctx, "pet updated via form", slog.Int64("pet.id", id))
	return nil
}

func (s *Service) FindByStatus(ctx context.Context, statuses []string) ([]*domain.Pet, error) {
	ctx, span := s.startSpan(ctx, "Service.FindByStatus", attribute.StringSlice("pet.statuses", statuses))
	defer span.End()

	result, err := s.inner.FindByStatus(ctx, statuses)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to find pets by status")
	}
	span.SetAttributes(attribute.Int("pet.count", len(result)))
	return result, nil
}

func (s *Service) FindByTags(ctx context.Context, tags []string) ([]*domain.Pet, error) {
	ctx, span := s.startSpan(ctx, "Service.FindByTags", attribute.StringSlice("pet.tags", tags))
	defer span.End()

	result, err := s.inner.FindByTags(ctx, tags)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to find pets by tags")
	}
	span.SetAttributes(attribute.Int("pet.count", len(result)))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	ctx, span := s.startSpan(ctx, "Service.GetByID", attribute.Int64("pet.id", id))
	defer span.End()

	pet, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to get pet", slog.Int64("pet.id", id))
	}
	return pet, nil
}

func (s *Service) Delete(ctx context.Context, id int64, apiKey string) error {
	ctx, span := s.startSpan(ctx, "Service.Delete", attribute.Int64("pet.id", id))
	defer span.End()

	if err := s.inner.Delete(ctx, id, apiKey); err != nil {
		return s.handleError(ctx, span, err, "failed to delete pet", slog.Int64("pet.id", id))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "pet deleted", slog.Int64("pet.id", id))
	return nil
}

func (s *Service) UploadImage(ctx context.Context, input ports.UploadImageInput) (*ports.UploadImageResult, error) {
	ctx, span := s.startSpan(ctx, "Service.UploadImage", attribute.Int64("pet.id", input.ID))
	defer span.End()

	result, err := s.inner.UploadImage(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to upload image", slog.Int64("pet.id", input.ID))
	}
	s.logInfo(ctx, "image upload acknowledged", slog.Int64("pet.id", input.ID), slog.String("filename", input.Filename))
	return result, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Pet, error) {
	ctx, span := s.startSpan(ctx, "Service.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list pets")
	}
	span.SetAttributes(attribute.Int("pet.count", len(result)))
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	attrs = append(attrs, slog.String("error", err.Error()))
	s.logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var _ ports.Service = (*Service)(nil)
