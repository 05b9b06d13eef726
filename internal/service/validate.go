package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"personal_profile/internal/models"
)

const dateLayout = "2006-01-02"

// invalidf builds an input validation error carrying a field-level message;
// handlers match it with errors.Is(err, models.ErrInvalidInput).
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", models.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func requireText(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", invalidf("%s is required", field)
	}
	return trimmed, nil
}

// validDate checks the YYYY-MM-DD wire format. Empty is allowed; optional
// dates are a caller concern.
func validDate(field, value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return "", invalidf("%s must be a YYYY-MM-DD date", field)
	}
	return value, nil
}

func validGoalStatus(status string) (string, error) {
	switch status {
	case models.GoalStatusPlanned, models.GoalStatusInProgress, models.GoalStatusComplete:
		return status, nil
	default:
		return "", invalidf("status must be one of %s, %s, %s",
			models.GoalStatusPlanned, models.GoalStatusInProgress, models.GoalStatusComplete)
	}
}

// validAmount enforces non-negative amounts and fixes precision to cents.
func validAmount(amount float64) (float64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0, invalidf("amount must be a non-negative number")
	}
	return math.Round(amount*100) / 100, nil
}

func normalizeQuery(q string) string {
	return strings.TrimSpace(q)
}
