package utils

import (
	"time"

	"github.com/tomaspozo/hackathon-platform/models"
)

// Lifecycle gating predicates. These are the authoritative server-side
// versions; any client-side copies are a UX optimization only.

// CanRegister reports whether participants may register for the hackathon.
// Only the lifecycle status is consulted; the registration window timestamps
// are informational.
func CanRegister(h *models.Hackathon) bool {
	return h.Status == models.HackathonStatusOpen || h.Status == models.HackathonStatusStarted
}

// CanManageTeam reports whether teams may be created or modified for the hackathon
func CanManageTeam(h *models.Hackathon) bool {
	return h.Status == models.HackathonStatusOpen || h.Status == models.HackathonStatusStarted
}

// CanSubmit reports whether project submissions are allowed: the hackathon
// must be STARTED and now must fall within [start_at, end_at]
func CanSubmit(h *models.Hackathon, now time.Time) bool {
	if h.Status != models.HackathonStatusStarted {
		return false
	}
	return !now.Before(h.StartAt) && !now.After(h.EndAt)
}
