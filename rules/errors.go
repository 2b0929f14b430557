package rules

import "fmt"

// ConfigError reports a malformed or incomplete rule document. It is fatal
// and surfaced at construction time; load-bearing numeric fields are never
// silently defaulted.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// FailureKind classifies a single validation failure. Failures are returned
// as values rather than errors so a caller can render every issue in one
// report.
type FailureKind string

const (
	BetTypeNotAllowed   FailureKind = "bet_type_not_allowed"
	InvalidAmount       FailureKind = "invalid_amount"
	BelowMinimum        FailureKind = "below_minimum"
	AboveMaximum        FailureKind = "above_maximum"
	TotalExceedsLimit   FailureKind = "total_exceeds_limit"
	BettingClosed       FailureKind = "betting_closed"
	InsufficientBalance FailureKind = "insufficient_balance"
)

// Failure is one rejected check with an actionable message naming the
// concrete limit that was violated.
type Failure struct {
	Kind    FailureKind
	Message string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}
