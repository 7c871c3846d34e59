package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tomaspozo/hackathon-platform/database"
	"github.com/tomaspozo/hackathon-platform/metrics"
	"github.com/tomaspozo/hackathon-platform/models"
	"github.com/tomaspozo/hackathon-platform/utils"

	"gorm.io/gorm/clause"
)

const leaderboardCacheTTL = 30 * time.Second

// TeamScore is the per (team, category) score aggregation exposed as the
// leaderboard: total_score sums score x weight/100 across all judges and
// criteria, average_score divides the total by the number of distinct judges.
type TeamScore struct {
	TeamID       string  `json:"team_id"`
	TeamName     string  `json:"team_name"`
	HackathonID  string  `json:"hackathon_id"`
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	JudgeCount   int     `json:"judge_count"`
	TotalScore   float64 `json:"total_score"`
	AverageScore float64 `json:"average_score"`
}

// UpsertJudgingScore writes a score keyed by the (hackathon, team, judge,
// criterion) tuple. A conflicting row is updated in place: last write wins.
func UpsertJudgingScore(score *models.JudgingScore) error {
	score.SubmittedAt = time.Now()

	err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "hackathon_id"},
			{Name: "team_id"},
			{Name: "judge_id"},
			{Name: "criterion_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"score", "notes", "submitted_at", "updated_at"}),
	}).Create(score).Error
	if err != nil {
		return err
	}

	metrics.ScoreUpserts.WithLabelValues(score.HackathonID).Inc()
	InvalidateTeamScores(score.HackathonID)

	// Re-read so the caller sees the persisted row, not the insert attempt
	return database.DB.
		Where("hackathon_id = ? AND team_id = ? AND judge_id = ? AND criterion_id = ?",
			score.HackathonID, score.TeamID, score.JudgeID, score.CriterionID).
		First(score).Error
}

// ListTeamScores computes the leaderboard server-side so concurrent judges see
// a consistent aggregation, ordered by total score descending
func ListTeamScores(hackathonID string) ([]TeamScore, error) {
	start := time.Now()
	defer metrics.RecordDBOperation("aggregate", "judging_scores", start)

	var scores []TeamScore
	err := database.DB.Raw(`
        SELECT t.id AS team_id,
               t.name AS team_name,
               t.hackathon_id AS hackathon_id,
               s.category_id AS category_id,
               c.name AS category_name,
               COUNT(DISTINCT js.judge_id) AS judge_count,
               COALESCE(SUM(js.score * jc.weight / 100.0), 0) AS total_score
        FROM teams t
        JOIN project_submissions s ON s.team_id = t.id
        JOIN hackathon_categories c ON c.id = s.category_id
        LEFT JOIN judging_scores js ON js.team_id = t.id AND js.hackathon_id = t.hackathon_id
        LEFT JOIN judging_criteria jc ON jc.id = js.criterion_id
        WHERE t.hackathon_id = ?
        GROUP BY t.id, t.name, t.hackathon_id, s.category_id, c.name
        ORDER BY total_score DESC
    `, hackathonID).Scan(&scores).Error
	if err != nil {
		return nil, err
	}

	for i := range scores {
		scores[i].AverageScore = utils.AverageScore(scores[i].TotalScore, scores[i].JudgeCount)
	}
	return scores, nil
}

// CachedTeamScores serves the leaderboard from redis when available, falling
// back to the live aggregation
func CachedTeamScores(ctx context.Context, hackathonID string) ([]TeamScore, error) {
	if database.Cache == nil {
		return ListTeamScores(hackathonID)
	}

	key := leaderboardKey(hackathonID)
	if payload, err := database.Cache.Get(ctx, key).Bytes(); err == nil {
		var scores []TeamScore
		if err := json.Unmarshal(payload, &scores); err == nil {
			metrics.CacheHits.Inc()
			return scores, nil
		}
	}
	metrics.CacheMisses.Inc()

	scores, err := ListTeamScores(hackathonID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(scores); err == nil {
		database.Cache.Set(ctx, key, payload, leaderboardCacheTTL)
	}
	return scores, nil
}

// InvalidateTeamScores drops the cached leaderboard after a score write
func InvalidateTeamScores(hackathonID string) {
	if database.Cache == nil {
		return
	}
	database.Cache.Del(context.Background(), leaderboardKey(hackathonID))
}

func leaderboardKey(hackathonID string) string {
	return "leaderboard:" + hackathonID
}

// IsAssignedJudge checks whether the judge is assigned to score the team
func IsAssignedJudge(hackathonID, judgeID, teamID string) bool {
	var count int64
	database.DB.Model(&models.JudgeAssignment{}).
		Where("hackathon_id = ? AND judge_id = ? AND team_id = ?", hackathonID, judgeID, teamID).
		Count(&count)
	return count > 0
}
