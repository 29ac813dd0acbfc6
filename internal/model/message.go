// Package model contains domain models and constants for the application.
package model

import "strings"

// Message status values, in lifecycle order.
const (
	MessageStatusNew        = "new"
	MessageStatusInProgress = "in_progress"
	MessageStatusReplied    = "replied"
	MessageStatusClosed     = "closed"
)

// DefaultNotSpecified is the placeholder stored when an optional
// contact-form field (project type, budget) is left empty.
const DefaultNotSpecified = "Не указано"

// ValidMessageStatuses returns all valid message statuses.
func ValidMessageStatuses() []string {
	return []string{
		MessageStatusNew,
		MessageStatusInProgress,
		MessageStatusReplied,
		MessageStatusClosed,
	}
}

// IsValidMessageStatus checks if a status is one of the enumerated values.
func IsValidMessageStatus(status string) bool {
	for _, s := range ValidMessageStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// NormalizeTelegram ensures a Telegram handle starts with "@".
// Whitespace around the handle is trimmed first.
func NormalizeTelegram(handle string) string {
	handle = strings.TrimSpace(handle)
	if handle == "" || strings.HasPrefix(handle, "@") {
		return handle
	}
	return "@" + handle
}

// TelegramURL builds the t.me deep link for a stored handle.
// The admin panel uses this to contact a lead manually.
func TelegramURL(handle string) string {
	return "https://t.me/" + strings.TrimPrefix(handle, "@")
}
