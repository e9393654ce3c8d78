package grading

// Letter is a letter grade for a completed session.
type Letter string

const (
	LetterS Letter = "S"
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterF Letter = "F"
)

// AllLetters returns every grade from best to worst.
func AllLetters() []Letter {
	return []Letter{LetterS, LetterA, LetterB, LetterC, LetterF}
}

// Message returns the encouragement shown with the grade.
func (l Letter) Message() string {
	switch l {
	case LetterS:
		return "🐍 Python Master!"
	case LetterA:
		return "🔥 Excellent work!"
	case LetterB:
		return "👍 Good job!"
	case LetterC:
		return "📚 Review the gotchas!"
	default:
		return "💪 Keep learning!"
	}
}

// Result summarizes a session's answer log.
type Result struct {
	Correct    int
	Total      int
	Percentage int
	Letter     Letter
}

// Grade computes the percentage correct (rounded half up) and the letter
// grade for an answer log. An empty log grades as 0% F.
func Grade(log []bool) Result {
	correct := 0
	for _, ok := range log {
		if ok {
			correct++
		}
	}

	pct := 0
	if total := len(log); total > 0 {
		// round(100*correct/total) in integers: (200c + t) / 2t
		pct = (200*correct + total) / (2 * total)
	}

	return Result{
		Correct:    correct,
		Total:      len(log),
		Percentage: pct,
		Letter:     LetterFor(pct),
	}
}

// LetterFor maps a percentage to a letter; each threshold is inclusive.
func LetterFor(pct int) Letter {
	switch {
	case pct >= 90:
		return LetterS
	case pct >= 80:
		return LetterA
	case pct >= 70:
		return LetterB
	case pct >= 60:
		return LetterC
	default:
		return LetterF
	}
}
