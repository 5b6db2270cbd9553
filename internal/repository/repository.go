// filepath: internal/repository/repository.go
package repository

import (
	"context"
	"time"

	"todohub/internal/shared"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Conn is the connection a data access function runs on. It is satisfied by
// a pooled *sqlx.Conn as well as by *sqlx.DB and *sqlx.Tx.
type Conn interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
}

// OpObserver records the outcome and latency of each store operation.
type OpObserver interface {
	ObserveStoreOp(op, outcome string, duration time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObserveStoreOp(string, string, time.Duration) {}

// Repository holds the stateless data access functions for todo lists and items.
// It owns no connection: every method runs on the Conn it is given.
type Repository struct {
	Builder  squirrel.StatementBuilderType
	Logger   *logrus.Logger
	dialect  Dialect
	observer OpObserver
	tracer   trace.Tracer
}

// NewRepository builds a Repository for the given SQL dialect.
// observer may be nil.
func NewRepository(dialect Dialect, logger *logrus.Logger, observer OpObserver) *Repository {
	if observer == nil {
		observer = noopObserver{}
	}
	return &Repository{
		Builder:  squirrel.StatementBuilder.PlaceholderFormat(dialect.Placeholder()),
		Logger:   logger,
		dialect:  dialect,
		observer: observer,
		tracer:   otel.Tracer("todohub/repository"),
	}
}

// track opens a span for op and returns a finish func that records the
// outcome. finish returns its argument so it can wrap a return value.
func (r *Repository) track(ctx context.Context, op string) (context.Context, func(*shared.AppError) error) {
	start := time.Now()
	ctx, span := r.tracer.Start(ctx, "repository."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", string(r.dialect)),
			attribute.String("db.operation", op),
		),
	)

	return ctx, func(appErr *shared.AppError) error {
		defer span.End()
		outcome := "ok"
		if appErr != nil {
			outcome = string(appErr.Kind)
			span.RecordError(appErr)
			span.SetStatus(codes.Error, appErr.Message)
		}
		r.observer.ObserveStoreOp(op, outcome, time.Since(start))
		if appErr == nil {
			return nil
		}
		return appErr
	}
}

// fail classifies a store error and logs it with its cause.
// Client-side kinds are logged as warnings, the rest as errors.
func (r *Repository) fail(op, message string, err error) *shared.AppError {
	appErr := shared.Classify(err, message)
	entry := r.Logger.WithFields(logrus.Fields{
		"op":    op,
		"kind":  appErr.Kind,
		"cause": appErr.Cause,
	})
	switch appErr.Kind {
	case shared.KindNotFound, shared.KindInvalidInput, shared.KindConflict:
		entry.Warn(appErr.Message)
	default:
		entry.Error(appErr.Message)
	}
	return appErr
}
