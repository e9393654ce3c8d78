package catalog

import (
	"fmt"
	"strings"
)

// validateCategories performs all structural checks on the given categories.
// Returns a combined error describing all problems found, or nil if valid.
func validateCategories(categories []Category) error {
	var errs []string

	if len(categories) == 0 {
		errs = append(errs, "catalog has no categories")
	}

	keySet := make(map[string]bool, len(categories))
	for _, cat := range categories {
		if cat.Key == "" {
			errs = append(errs, fmt.Sprintf("category %q has an empty key", cat.Title))
			continue
		}
		if keySet[cat.Key] {
			errs = append(errs, fmt.Sprintf("duplicate category key: %q", cat.Key))
		}
		keySet[cat.Key] = true

		if len(cat.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("category %q has no questions", cat.Key))
		}

		idSet := make(map[int]bool, len(cat.Questions))
		for _, q := range cat.Questions {
			prefix := fmt.Sprintf("category %q question %d", cat.Key, q.ID)
			if idSet[q.ID] {
				errs = append(errs, fmt.Sprintf("category %q: duplicate question ID %d", cat.Key, q.ID))
			}
			idSet[q.ID] = true

			if !q.Difficulty.Valid() {
				errs = append(errs, fmt.Sprintf("%s: unknown difficulty %q", prefix, q.Difficulty))
			}
			if strings.TrimSpace(q.Prompt) == "" {
				errs = append(errs, fmt.Sprintf("%s: prompt is empty", prefix))
			}
			if len(q.Options) != OptionCount {
				errs = append(errs, fmt.Sprintf("%s: must have %d options, got %d", prefix, OptionCount, len(q.Options)))
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				errs = append(errs, fmt.Sprintf("%s: correct index %d out of range [0, %d)", prefix, q.CorrectIndex, len(q.Options)))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
