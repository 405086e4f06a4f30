package notification

import (
	"testing"
	"time"
)

func TestCertificatePriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		days int
		want string
	}{
		{0, PriorityUrgent},
		{14, PriorityUrgent},
		{15, PriorityHigh},
		{30, PriorityHigh},
		{31, PriorityMedium},
		{90, PriorityMedium},
		{91, PriorityLow},
		{365, PriorityLow},
		{-2, PriorityUrgent},
	}
	for _, tt := range tests {
		if got := CertificatePriority(tt.days); got != tt.want {
			t.Errorf("CertificatePriority(%d) = %s, want %s", tt.days, got, tt.want)
		}
	}
}

func TestTravelPriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		until time.Duration
		want  string
	}{
		{30 * time.Minute, PriorityUrgent},
		{3 * time.Hour, PriorityUrgent},
		{3*time.Hour + time.Minute, PriorityHigh},
		{24 * time.Hour, PriorityHigh},
		{25 * time.Hour, PriorityMedium},
		{72 * time.Hour, PriorityMedium},
		{73 * time.Hour, PriorityLow},
		{-time.Hour, PriorityUrgent},
	}
	for _, tt := range tests {
		if got := TravelPriority(tt.until); got != tt.want {
			t.Errorf("TravelPriority(%s) = %s, want %s", tt.until, got, tt.want)
		}
	}
}

func TestCircularFollowUpPriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		daysOverdue int
		want        string
	}{
		{0, PriorityHigh},
		{7, PriorityHigh},
		{8, PriorityUrgent},
		{30, PriorityUrgent},
	}
	for _, tt := range tests {
		if got := CircularFollowUpPriority(tt.daysOverdue); got != tt.want {
			t.Errorf("CircularFollowUpPriority(%d) = %s, want %s", tt.daysOverdue, got, tt.want)
		}
	}
}
