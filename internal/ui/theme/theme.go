// Package theme holds the SnakeQuiz palette: Python blue and yellow on
// dark slate, with traffic-light difficulty colours.
package theme

import (
	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#3B82F6") // python blue
	Secondary = lipgloss.Color("#FACC15") // python yellow
	Accent    = lipgloss.Color("#F97316")
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	BgCode    = lipgloss.Color("#111827")
	Border    = lipgloss.Color("#334155")
)

var (
	Easy   = lipgloss.Color("#34D399")
	Medium = lipgloss.Color("#FBBF24")
	Hard   = lipgloss.Color("#F87171")
)

var (
	GradeS = Secondary
	GradeA = Success
	GradeB = Primary
	GradeC = Accent
	GradeF = Error
)

var (
	Heading    = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subheading = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body       = lipgloss.NewStyle().Foreground(Text)
	Hint       = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Dim        = lipgloss.NewStyle().Foreground(TextDim)

	// CodeBlock frames the Python snippet of a question.
	CodeBlock = lipgloss.NewStyle().
			Foreground(Text).
			Background(BgCode).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// Answer options and feedback.
var (
	OptionCursor = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	OptionIdle   = lipgloss.NewStyle().Foreground(Text)
	Pass         = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Fail         = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

var (
	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)

	ButtonActive   = lipgloss.NewStyle().Background(Primary).Foreground(Text).Bold(true).Padding(0, 2)
	ButtonInactive = lipgloss.NewStyle().Background(BgCard).Foreground(TextDim).Padding(0, 2)
)
