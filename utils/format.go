package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var fileSizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatFileSize renders a byte count the way the dashboard displays it:
// "0 Bytes", "1 KB", "1.5 MB". Sizes are rounded to two decimals with
// trailing zeros dropped.
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	exp := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if exp >= len(fileSizeUnits) {
		exp = len(fileSizeUnits) - 1
	}

	value := float64(bytes) / math.Pow(1024, float64(exp))
	rounded := strconv.FormatFloat(math.Round(value*100)/100, 'f', -1, 64)
	return rounded + " " + fileSizeUnits[exp]
}

// StatusBadgeLabel maps a record status to its dashboard badge text. Unknown
// statuses fall back to the pending appearance.
func StatusBadgeLabel(status string) string {
	switch strings.TrimSpace(status) {
	case "approved":
		return "Approved"
	case "needs_editing", "needs_revision":
		return "Needs Editing"
	case "in_review":
		return "In Review"
	case "in_progress":
		return "In Progress"
	case "in_production":
		return "In Production"
	case "draft_ready":
		return "Draft Ready"
	case "completed":
		return "Completed"
	default:
		return "Pending"
	}
}

// PaymentBadgeLabel maps a payment status to its badge text.
func PaymentBadgeLabel(status string) string {
	switch strings.TrimSpace(status) {
	case "paid":
		return "Paid"
	case "refunded":
		return "Refunded"
	default:
		return "Unpaid"
	}
}

// FormatDateTime renders a timestamp for review cards, e.g. "Jan 2, 2006, 03:04 PM".
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format("Jan 2, 2006, 03:04 PM")
}

// FileNameFromURL extracts the trailing path segment of an uploaded file URL.
func FileNameFromURL(url string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(url), "/")
	if trimmed == "" {
		return ""
	}
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}

// Plural returns the count with a naive pluralized noun, for log lines.
func Plural(count int, noun string) string {
	if count == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", count, noun)
}
