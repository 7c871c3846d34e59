package judging

// Error messages returned by judging endpoints
const (
	ErrHackathonNotFound   = "Hackathon not found"
	ErrAssignmentNotFound  = "Assignment not found"
	ErrScoreNotFound       = "Score not found"
	ErrNotAJudge           = "User is not a judge"
	ErrNotAssigned         = "You are not assigned to judge this team"
	ErrTeamNotInHackathon  = "Team does not belong to this hackathon"
	ErrCriterionMismatch   = "Criterion does not belong to this hackathon"
	ErrScoreOutOfRange     = "Score must be between 0 and 10"
	ErrNoPermission        = "You do not have permission to perform this action"
	ErrInvalidRequest      = "Invalid request data"
	ErrFailedFetch         = "Failed to fetch judging data"
	ErrFailedSaveAssign    = "Failed to save assignment"
	ErrFailedDeleteAssign  = "Failed to delete assignment"
	ErrFailedSaveScore     = "Failed to save score"
	ErrFailedDeleteScore   = "Failed to delete score"
	ErrFailedLeaderboard   = "Failed to compute leaderboard"
	ErrFailedExport        = "Failed to export leaderboard"
	ErrAssignmentExists    = "Judge is already assigned to this team"
)

// AssignRequest pairs a judge with a team inside a hackathon
type AssignRequest struct {
	JudgeID string `json:"judge_id" binding:"required,uuid"`
	TeamID  string `json:"team_id" binding:"required,uuid"`
}

// ScoreRequest carries one score for a (team, criterion) pair
type ScoreRequest struct {
	HackathonID string  `json:"hackathon_id" binding:"required,uuid"`
	TeamID      string  `json:"team_id" binding:"required,uuid"`
	CriterionID string  `json:"criterion_id" binding:"required,uuid"`
	Score       float64 `json:"score"`
	Notes       *string `json:"notes" binding:"omitempty,max=2000"`
}
