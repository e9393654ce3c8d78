package catalog

import "strings"

// Difficulty is a question's difficulty level.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// AllDifficulties returns all difficulty levels in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// DisplayName returns the upper-case badge label for the difficulty.
func (d Difficulty) DisplayName() string {
	return strings.ToUpper(string(d))
}

// OptionCount is the number of options every question carries.
const OptionCount = 4

// Question is a single multiple-choice question.
type Question struct {
	ID           int        `yaml:"id"`
	Difficulty   Difficulty `yaml:"difficulty"`
	Prompt       string     `yaml:"prompt"`
	Options      []string   `yaml:"options"`
	CorrectIndex int        `yaml:"correct_index"`
	Explanation  string     `yaml:"explanation"`
}

// Lead returns the first line of the prompt, the sentence read out as the question.
func (q Question) Lead() string {
	lead, _, _ := strings.Cut(q.Prompt, "\n")
	return lead
}

// Code returns the code block embedded after the first line of the prompt,
// or "" when the prompt is a single line. Leading blank lines are dropped;
// the rest is returned verbatim.
func (q Question) Code() string {
	_, rest, found := strings.Cut(q.Prompt, "\n")
	if !found {
		return ""
	}
	for strings.HasPrefix(rest, "\n") {
		rest = rest[1:]
	}
	return rest
}

// HasCode reports whether the prompt embeds a code block.
func (q Question) HasCode() bool {
	return q.Code() != ""
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}

// Category is a named group of questions.
type Category struct {
	Key         string     `yaml:"key"`
	Title       string     `yaml:"title"`
	Icon        string     `yaml:"icon"`
	Description string     `yaml:"description"`
	Questions   []Question `yaml:"questions"`
}

// DifficultyMix counts the category's questions per difficulty.
func (c Category) DifficultyMix() map[Difficulty]int {
	mix := make(map[Difficulty]int, 3)
	for _, q := range c.Questions {
		mix[q.Difficulty]++
	}
	return mix
}
