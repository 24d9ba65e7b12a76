package problem

import (
	"fmt"
	"strings"

	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
)

// ValidateAttributes is the single authoritative validation routine for
// author-submitted problem payloads. Both the create and the full-replace
// update paths go through it, so the two surfaces cannot drift apart.
func ValidateAttributes(attrs Attributes) error {
	if attrs.Level < 1 || attrs.Level > 5 {
		return fieldError("level", "must be between 1 and 5")
	}
	if !attrs.Type.IsValid() {
		return fieldError("type", fmt.Sprintf("unknown problem type %q", attrs.Type))
	}
	if !attrs.SubType.IsValid() {
		return fieldError("subType", fmt.Sprintf("unknown problem subtype %q", attrs.SubType))
	}
	if !attrs.SubType.IsValidFor(attrs.Type) {
		return fieldError("subType", fmt.Sprintf("subtype %s is not valid for type %s", attrs.SubType, attrs.Type))
	}
	if len(attrs.Options) != OptionCount {
		return fieldError("options", fmt.Sprintf("exactly %d options are required, got %d", OptionCount, len(attrs.Options)))
	}
	for i, opt := range attrs.Options {
		if strings.TrimSpace(opt) == "" {
			return fieldError("options", fmt.Sprintf("option %d must not be empty", i+1))
		}
	}
	if attrs.AnswerIndex < 0 || attrs.AnswerIndex >= OptionCount {
		return fieldError("answerIndex", fmt.Sprintf("must be between 0 and %d", OptionCount-1))
	}
	if strings.TrimSpace(attrs.Explanation.Ko) == "" {
		return fieldError("explanation.ko", "is required")
	}
	for i, v := range attrs.Vocab {
		if strings.TrimSpace(v.Word) == "" {
			return fieldError("vocab", fmt.Sprintf("entry %d: word is required", i+1))
		}
		if strings.TrimSpace(v.Meaning.Ko) == "" {
			return fieldError("vocab", fmt.Sprintf("entry %d: meaning.ko is required", i+1))
		}
	}
	return nil
}

func fieldError(field, message string) error {
	return apperrors.NewValidationError(fmt.Sprintf("invalid %s", field), message)
}
