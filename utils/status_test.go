package utils

import (
	"testing"
	"time"

	"github.com/tomaspozo/hackathon-platform/models"

	"github.com/stretchr/testify/assert"
)

func TestCanRegister(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{models.HackathonStatusDraft, false},
		{models.HackathonStatusOpen, true},
		{models.HackathonStatusStarted, true},
		{models.HackathonStatusFinished, false},
		{models.HackathonStatusCanceled, false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			h := &models.Hackathon{Status: tt.status}
			assert.Equal(t, tt.want, CanRegister(h))
			assert.Equal(t, tt.want, CanManageTeam(h))
		})
	}
}

func TestCanSubmit(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  string
		startAt time.Time
		endAt   time.Time
		want    bool
	}{
		{
			name:    "started within window",
			status:  models.HackathonStatusStarted,
			startAt: now.Add(-time.Hour),
			endAt:   now.Add(time.Hour),
			want:    true,
		},
		{
			name:    "started but past end",
			status:  models.HackathonStatusStarted,
			startAt: now.Add(-48 * time.Hour),
			endAt:   now.Add(-time.Hour),
			want:    false,
		},
		{
			name:    "started but before start",
			status:  models.HackathonStatusStarted,
			startAt: now.Add(time.Hour),
			endAt:   now.Add(48 * time.Hour),
			want:    false,
		},
		{
			name:    "open within window",
			status:  models.HackathonStatusOpen,
			startAt: now.Add(-time.Hour),
			endAt:   now.Add(time.Hour),
			want:    false,
		},
		{
			name:    "exactly at start",
			status:  models.HackathonStatusStarted,
			startAt: now,
			endAt:   now.Add(time.Hour),
			want:    true,
		},
		{
			name:    "exactly at end",
			status:  models.HackathonStatusStarted,
			startAt: now.Add(-time.Hour),
			endAt:   now,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &models.Hackathon{
				Status:  tt.status,
				StartAt: tt.startAt,
				EndAt:   tt.endAt,
			}
			assert.Equal(t, tt.want, CanSubmit(h, now))
		})
	}
}
