package scoring

import (
	"errors"
	"fmt"

	"github.com/abhisek/snakequiz/internal/catalog"
)

// ErrInvalidSelection is returned when a selected option index is outside
// the question's options.
var ErrInvalidSelection = errors.New("invalid selection")

const (
	// MaxMultiplier caps the streak multiplier.
	MaxMultiplier = 3.0

	// StreakStep is the multiplier gained per consecutive correct answer.
	StreakStep = 0.2

	// Multipliers are computed in tenths so every award is exact.
	baseTenths = 10
	stepTenths = 2
	maxTenths  = 30
)

// Outcome is the result of evaluating one answer.
type Outcome struct {
	Correct    bool
	Points     int
	Streak     int
	Multiplier float64
}

// BasePoints returns the points a correct answer is worth before the multiplier.
func BasePoints(d catalog.Difficulty) int {
	switch d {
	case catalog.Easy:
		return 100
	case catalog.Medium:
		return 200
	case catalog.Hard:
		return 300
	default:
		return 0
	}
}

// Multiplier returns min(1.0 + 0.2*streak, 3.0).
func Multiplier(streak int) float64 {
	return float64(multiplierTenths(streak)) / 10
}

// Points returns the award for a correct answer that brings the streak to
// streak: BasePoints(d) * Multiplier(streak), rounded half up.
func Points(d catalog.Difficulty, streak int) int {
	return (BasePoints(d)*multiplierTenths(streak) + 5) / 10
}

func multiplierTenths(streak int) int {
	if streak < 0 {
		streak = 0
	}
	if streak >= (maxTenths-baseTenths)/stepTenths {
		return maxTenths
	}
	return baseTenths + stepTenths*streak
}

// Evaluate scores selected against q given the streak before this answer.
// A correct answer extends the streak and earns points at the new streak's
// multiplier; a wrong one resets streak and multiplier and earns nothing.
func Evaluate(q catalog.Question, selected, priorStreak int) (Outcome, error) {
	if selected < 0 || selected >= len(q.Options) {
		return Outcome{}, fmt.Errorf("%w: option %d, question %d has %d options",
			ErrInvalidSelection, selected, q.ID, len(q.Options))
	}

	if selected != q.CorrectIndex {
		return Outcome{Correct: false, Points: 0, Streak: 0, Multiplier: 1.0}, nil
	}

	streak := priorStreak + 1
	return Outcome{
		Correct:    true,
		Points:     Points(q.Difficulty, streak),
		Streak:     streak,
		Multiplier: Multiplier(streak),
	}, nil
}
