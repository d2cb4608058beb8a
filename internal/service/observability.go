package service

import (
	"context"
	"time"

	"github.com/alexanderramin/bossboard/internal/metrics"
	"go.uber.org/zap"
)

// Use case names reported to observers.
const (
	UseCaseLoad   = "load-roster"
	UseCaseReload = "reload-roster"
	UseCaseSave   = "save-roster"
	UseCaseSeed   = "seed-roster"
	UseCaseEdit   = "edit-roster"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type zapUseCaseObserver struct {
	logger *zap.Logger
}

// NewZapUseCaseObserver logs service use-case events.
func NewZapUseCaseObserver(logger *zap.Logger) UseCaseObserver {
	if logger == nil {
		return NoopUseCaseObserver{}
	}
	return &zapUseCaseObserver{logger: logger}
}

func (o *zapUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	fields := make([]zap.Field, 0, 4+len(event.Fields))
	fields = append(fields,
		zap.String("use_case", event.Name),
		zap.Int64("duration_ms", event.Duration.Milliseconds()),
		zap.Bool("success", event.Success),
	)
	for k, v := range event.Fields {
		fields = append(fields, zap.Any(k, v))
	}
	if event.Err != nil {
		fields = append(fields, zap.Error(event.Err))
		o.logger.Error("service_use_case", fields...)
		return
	}
	o.logger.Info("service_use_case", fields...)
}

type metricsUseCaseObserver struct {
	m *metrics.Metrics
}

// NewMetricsUseCaseObserver records use-case outcomes as Prometheus metrics.
func NewMetricsUseCaseObserver(m *metrics.Metrics) UseCaseObserver {
	if m == nil {
		return NoopUseCaseObserver{}
	}
	return &metricsUseCaseObserver{m: m}
}

func (o *metricsUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	status := metrics.Status(event.Err)
	o.m.UseCaseDuration.WithLabelValues(event.Name, status).Observe(event.Duration.Seconds())

	switch event.Name {
	case UseCaseLoad, UseCaseReload:
		if event.Success {
			o.m.RosterLoads.Inc()
		}
	case UseCaseSave:
		o.m.RosterSaves.WithLabelValues(status).Inc()
	case UseCaseEdit:
		if event.Success {
			o.m.RosterEdits.Inc()
		}
	}
}

// multiObserver fans an event out to several observers.
type multiObserver []UseCaseObserver

func (m multiObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	for _, o := range m {
		o.ObserveUseCase(ctx, event)
	}
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	var live multiObserver
	for _, obs := range observers {
		if obs != nil {
			live = append(live, obs)
		}
	}
	switch len(live) {
	case 0:
		return NoopUseCaseObserver{}
	case 1:
		return live[0]
	}
	return live
}
