package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/abhisek/snakequiz/internal/session"
)

const namespace = "snakequiz"

// Metrics holds the quiz counters on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	SessionsStarted   *prometheus.CounterVec
	SessionsCompleted *prometheus.CounterVec
	Answers           *prometheus.CounterVec
	PointsAwarded     *prometheus.CounterVec
	StreakMax         prometheus.Gauge

	mu        sync.Mutex
	maxStreak int
}

// New creates the collectors and registers them.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SessionsStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sessions_started_total",
				Help:      "Sessions started or restarted, by category.",
			},
			[]string{"category"},
		),
		SessionsCompleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sessions_completed_total",
				Help:      "Sessions played to the end, by category and grade.",
			},
			[]string{"category", "grade"},
		),
		Answers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "answers_total",
				Help:      "Checked answers, by category, difficulty and result.",
			},
			[]string{"category", "difficulty", "result"},
		),
		PointsAwarded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "points_awarded_total",
				Help:      "Points awarded for correct answers, by category.",
			},
			[]string{"category"},
		),
		StreakMax: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "streak_max",
			Help:      "Longest streak of consecutive correct answers seen.",
		}),
	}

	m.registry.MustRegister(
		m.SessionsStarted,
		m.SessionsCompleted,
		m.Answers,
		m.PointsAwarded,
		m.StreakMax,
	)
	return m
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe records a session event. It is meant to be passed to
// session.WithObserver.
func (m *Metrics) Observe(ev session.Event) {
	snap := ev.Snapshot
	category := snap.CategoryKey

	switch ev.Op {
	case session.OpStart, session.OpRestart:
		m.SessionsStarted.WithLabelValues(category).Inc()

	case session.OpCheck:
		if ev.Outcome == nil || snap.Question == nil {
			return
		}
		result := "incorrect"
		if ev.Outcome.Correct {
			result = "correct"
		}
		m.Answers.WithLabelValues(category, string(snap.Question.Difficulty), result).Inc()
		if ev.Outcome.Points > 0 {
			m.PointsAwarded.WithLabelValues(category).Add(float64(ev.Outcome.Points))
		}
		m.observeStreak(ev.Outcome.Streak)

	case session.OpAdvance:
		if snap.Phase == session.PhaseCompleted && snap.Grade != nil {
			m.SessionsCompleted.WithLabelValues(category, string(snap.Grade.Letter)).Inc()
		}
	}
}

func (m *Metrics) observeStreak(streak int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if streak > m.maxStreak {
		m.maxStreak = streak
		m.StreakMax.Set(float64(streak))
	}
}

// Handler returns an HTTP handler exposing the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, log *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("metrics server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown metrics server: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	}
}
