package model

import "testing"

func TestIsValidMessageStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{MessageStatusNew, true},
		{MessageStatusInProgress, true},
		{MessageStatusReplied, true},
		{MessageStatusClosed, true},
		{"", false},
		{"NEW", false},
		{"archived", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := IsValidMessageStatus(tt.status); got != tt.want {
				t.Errorf("IsValidMessageStatus(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestNormalizeTelegram(t *testing.T) {
	tests := []struct {
		name   string
		handle string
		want   string
	}{
		{"bare handle", "ann_dev", "@ann_dev"},
		{"already prefixed", "@ann_dev", "@ann_dev"},
		{"surrounding whitespace", "  ann_dev ", "@ann_dev"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTelegram(tt.handle); got != tt.want {
				t.Errorf("NormalizeTelegram(%q) = %q, want %q", tt.handle, got, tt.want)
			}
		})
	}
}

func TestTelegramURL(t *testing.T) {
	if got := TelegramURL("@ann_dev"); got != "https://t.me/ann_dev" {
		t.Errorf("TelegramURL(@ann_dev) = %q", got)
	}
	if got := TelegramURL("ann_dev"); got != "https://t.me/ann_dev" {
		t.Errorf("TelegramURL(ann_dev) = %q", got)
	}
}
