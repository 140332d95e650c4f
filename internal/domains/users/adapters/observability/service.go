// Package observability decorates the users service with tracing, logging,
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

	"github.com/gopetstore/petstore/internal/domains/users/domain"
	"github.com/gopetstore/petstore/internal/domains/users/ports"
)

const tracerName = "github.com/gopetstore/petstore/internal/domains/users/adapters/observability"

// Service decorates a users service port with tracing, logging, and metrics.
type Service struct {
	inner  ports.Service
	tracer trace.Tracer
	logger *slog.Logger
	logins metric.Int64Counter
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

// WithMeter injects the meter used to create the login counter.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.logins = newLoginCounter(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		logins: newLoginCounter(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func newLoginCounter(m metric.Meter) metric.Int64Counter {
	if m == nil {
		m = metricnoop.NewMeterProvider().Meter(tracerName)
	}
	logins, err := m.Int64Counter("petstore.users.logins", metric.WithDescription("Login attempts"))
	if err != nil {
		logins, _ = metricnoop.NewMeterProvider().Meter(tracerName).Int64Counter("petstore.users.logins")
	}
	return logins
}

func (s *Service) CreateUser(ctx context.Context, user *domain.User) error {
	ctx, span := s.tracer.Start(ctx, "Service.CreateUser")
	defer span.End()

	if err := s.inner.CreateUser(ctx, user); err != nil {
		return s.handleError(ctx, span, err, "failed to create user")
	}
	if user.HasUsername() {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "user created", slog.String("username", user.Username))
	}
	return nil
}

func (s *Service) CreateUsers(ctx context.Context, users []*domain.User) error {
	ctx, span := s.tracer.Start(ctx, "Service.CreateUsers", trace.WithAttributes(attribute.Int("user.count", len(users))))
	defer span.End()

	if err := s.inner.CreateUsers(ctx, users); err != nil {
		return s.handleError(ctx, span, err, "failed to create users")
	}
	return nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, span := s.tracer.Start(ctx, "Service.GetByUsername", trace.WithAttributes(attribute.String("username", username)))
	defer span.End()

	user, err := s.inner.GetByUsername(ctx, username)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to get user", slog.String("username", username))
	}
	return user, nil
}

func (s *Service) Update(ctx context.Context, username string, updated *domain.User) (*domain.User, error) {
	ctx, span := s.tracer.Start(ctx, "Service.Update", trace.WithAttributes(attribute.String("username", username)))
	defer span.End()

	user, err := s.inner.Update(ctx, username, updated)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update user", slog.String("username", username))
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "user updated", slog.String("username", username))
	return user, nil
}

func (s *Service) Delete(ctx context.Context, username string) error {
	ctx, span := s.tracer.Start(ctx, "Service.Delete", trace.WithAttributes(attribute.String("username", username)))
	defer span.End()

	if err := s.inner.Delete(ctx, username); err != nil {
		return s.handleError(ctx, span, err, "failed to delete user", slog.String("username", username))
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "user deleted", slog.String("username", username))
	return nil
}

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "Service.Login")
	defer span.End()

	token, err := s.inner.Login(ctx, username, password)
	if err != nil {
		s.logins.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", false)))
		return "", s.handleError(ctx, span, err, "login rejected")
	}
	s.logins.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", true)))
	return token, nil
}

func (s *Service) Logout(ctx context.Context) {
	ctx, span := s.tracer.Start(ctx, "Service.Logout")
	defer span.End()
	s.inner.Logout(ctx)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	attrs = append(attrs, slog.String("error", err.Error()))
	s.logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
	return err
}

var _ ports.Service = (*Service)(nil)
