package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/wchklaus97/remind-me/internal/models"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate

	hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

func init() {
	Validate = validator.New()

	// Register custom validators for enums
	// These should never fail in normal operation, but panic loudly if they do
	if err := Validate.RegisterValidation("reminder_filter", validateReminderFilter); err != nil {
		panic(fmt.Sprintf("failed to register reminder_filter validator: %v", err))
	}
	if err := Validate.RegisterValidation("reminder_sort", validateReminderSort); err != nil {
		panic(fmt.Sprintf("failed to register reminder_sort validator: %v", err))
	}
	if err := Validate.RegisterValidation("tag_color", validateTagColor); err != nil {
		panic(fmt.Sprintf("failed to register tag_color validator: %v", err))
	}
}

// validateReminderFilter validates that a string is a valid ReminderFilter value
func validateReminderFilter(fl validator.FieldLevel) bool {
	switch models.ReminderFilter(fl.Field().String()) {
	case models.FilterAll, models.FilterActive, models.FilterCompleted:
		return true
	default:
		return false
	}
}

// validateReminderSort validates that a string is a valid ReminderSort value
func validateReminderSort(fl validator.FieldLevel) bool {
	switch models.ReminderSort(fl.Field().String()) {
	case models.SortDate, models.SortTitle, models.SortStatus:
		return true
	default:
		return false
	}
}

// validateTagColor validates a "#RRGGBB" hex color
func validateTagColor(fl validator.FieldLevel) bool {
	return hexColorPattern.MatchString(fl.Field().String())
}

// SanitizeText sanitizes text input by trimming whitespace and removing
// control characters (newline and tab survive for descriptions).
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)

	var sanitized strings.Builder
	sanitized.Grow(len(text))
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}
	return sanitized.String()
}
