package logging

import (
	"go.uber.org/zap"

	"github.com/abhisek/snakequiz/internal/session"
)

// TransitionLogger returns a session observer that logs every accepted
// transition at debug level, and answers and completions at info.
func TransitionLogger(log *zap.Logger) func(session.Event) {
	return func(ev session.Event) {
		snap := ev.Snapshot
		fields := []zap.Field{
			zap.String("op", string(ev.Op)),
			zap.String("phase", snap.Phase.String()),
			zap.String("session_id", snap.SessionID),
			zap.String("category", snap.CategoryKey),
		}

		switch {
		case ev.Op == session.OpCheck && ev.Outcome != nil:
			log.Info("answer checked", append(fields,
				zap.Int("position", snap.Position),
				zap.Bool("correct", ev.Outcome.Correct),
				zap.Int("points", ev.Outcome.Points),
				zap.Int("streak", ev.Outcome.Streak),
				zap.Float64("multiplier", ev.Outcome.Multiplier),
				zap.Int("score", snap.Score),
			)...)

		case snap.Phase == session.PhaseCompleted && snap.Grade != nil:
			log.Info("session completed", append(fields,
				zap.Int("score", snap.Score),
				zap.Int("correct", snap.Grade.Correct),
				zap.Int("total", snap.Grade.Total),
				zap.Int("percentage", snap.Grade.Percentage),
				zap.String("grade", string(snap.Grade.Letter)),
			)...)

		case ev.Op == session.OpStart || ev.Op == session.OpRestart:
			log.Info("session started", append(fields, zap.Int("questions", snap.Total))...)

		default:
			log.Debug("transition", fields...)
		}
	}
}

// RejectionLogger returns a session rejection observer that logs refused
// operations at warn level.
func RejectionLogger(log *zap.Logger) func(session.Op, error) {
	return func(op session.Op, err error) {
		log.Warn("transition rejected",
			zap.String("op", string(op)),
			zap.String("reason", session.Reason(err)),
			zap.Error(err),
		)
	}
}
