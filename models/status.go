package models

// Review statuses shared by podcast, scenario and spotlight submissions.
// Once a record leaves StatusPending it never returns to it.
const (
	StatusPending      = "pending"
	StatusApproved     = "approved"
	StatusNeedsEditing = "needs_editing"
)

// Custom production lifecycle. Forward-only; StatusApproved and
// StatusCompleted are reached via the admin lifecycle endpoint.
const (
	StatusSubmitted    = "submitted"
	StatusInReview     = "in_review"
	StatusInProduction = "in_production"
	StatusDraftReady   = "draft_ready"
	StatusCompleted    = "completed"
)

// Payment statuses tracked on custom productions. Orthogonal to the review
// status; no gateway logic lives in this service.
const (
	PaymentPending    = "pending"
	PaymentProcessing = "processing"
	PaymentPaid       = "paid"
	PaymentFailed     = "failed"
)

// productionStatusOrder defines the forward-only lifecycle positions.
var productionStatusOrder = map[string]int{
	StatusSubmitted:    0,
	StatusInReview:     1,
	StatusInProduction: 2,
	StatusDraftReady:   3,
	StatusApproved:     4,
	StatusCompleted:    5,
}

// IsValidProductionStatus reports whether s is part of the production lifecycle.
func IsValidProductionStatus(s string) bool {
	_, ok := productionStatusOrder[s]
	return ok
}

// ProductionStatusAdvances reports whether moving from current to next goes
// forward in the lifecycle. Unknown statuses never advance.
func ProductionStatusAdvances(current, next string) bool {
	from, okFrom := productionStatusOrder[current]
	to, okTo := productionStatusOrder[next]
	if !okFrom || !okTo {
		return false
	}
	return to > from
}

// IsValidPaymentStatus reports whether s is a tracked payment state.
func IsValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentProcessing, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}
