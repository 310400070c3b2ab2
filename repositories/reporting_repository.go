package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/footycomp/tipping-system/models"
)

// ScoringRules names the tip-correctness rule instead of hiding it in a
// comparison operator. With DrawCountsAsCorrect a drawn game scores a point
// for whoever tipped either side; without it a draw scores for nobody.
type ScoringRules struct {
	DrawCountsAsCorrect bool
}

func DefaultScoringRules() ScoringRules {
	return ScoringRules{DrawCountsAsCorrect: true}
}

type ReportingRepository interface {
	Leaderboard(ctx context.Context, rules ScoringRules) ([]models.LeaderboardEntry, error)
	RoundLeaderboard(ctx context.Context, rules ScoringRules, roundID int) ([]models.LeaderboardEntry, error)
}

type postgresReportingRepository struct {
	db *sql.DB
}

func NewPostgresReportingRepository(db *sql.DB) ReportingRepository {
	return &postgresReportingRepository{db: db}
}

// leaderboardSQL computes per-tipper tip scores and round bonuses in one
// query. A tip scores when the picked side's final score compares favourably
// against the opponent's; games with either score missing fall through the
// CASE to 0. A round bonus is paid when every one of a tipper's tips in the
// round scored and there was at least one. Tippers are outer-joined so a
// tipper with no tips still appears with zeros.
func leaderboardSQL(rules ScoringRules, whereClause string) string {
	cmp := ">="
	if !rules.DrawCountsAsCorrect {
		cmp = ">"
	}
	return fmt.Sprintf(`
		WITH tip_scores AS (
			SELECT
				tips.tipper_id,
				games.round_id,
				tips.game_id,
				CASE
					WHEN (tips.team_id = games.home_team_id AND games.home_score %[1]s games.away_score)
					  OR (tips.team_id = games.away_team_id AND games.away_score %[1]s games.home_score)
					THEN 1 ELSE 0 END AS score
			FROM tips
			JOIN games ON tips.game_id = games.id
			%[2]s
		),
		round_perfect AS (
			SELECT
				ts.tipper_id,
				ts.round_id,
				CASE WHEN COUNT(*) = SUM(ts.score) AND COUNT(*) > 0 THEN r.bonus_points ELSE 0 END AS bonus
			FROM tip_scores ts
			JOIN rounds r ON ts.round_id = r.id
			GROUP BY ts.tipper_id, ts.round_id, r.bonus_points
		),
		tipper_scores AS (
			SELECT
				tippers.id AS tipper_id,
				tippers.name AS tipper_name,
				COALESCE(SUM(ts.score), 0) AS tip_score
			FROM tippers
			LEFT JOIN tip_scores ts ON tippers.id = ts.tipper_id
			GROUP BY tippers.id, tippers.name
		),
		tipper_bonuses AS (
			SELECT
				tippers.id AS tipper_id,
				COALESCE(SUM(rp.bonus), 0) AS bonus_score
			FROM tippers
			LEFT JOIN round_perfect rp ON tippers.id = rp.tipper_id
			GROUP BY tippers.id
		)
		SELECT
			ts.tipper_name,
			ts.tip_score,
			tb.bonus_score,
			(ts.tip_score + tb.bonus_score) AS total_score
		FROM tipper_scores ts
		JOIN tipper_bonuses tb ON ts.tipper_id = tb.tipper_id
		ORDER BY total_score DESC, ts.tipper_name ASC`,
		cmp, whereClause)
}

func (r *postgresReportingRepository) Leaderboard(ctx context.Context, rules ScoringRules) ([]models.LeaderboardEntry, error) {
	return r.query(ctx, leaderboardSQL(rules, ""))
}

func (r *postgresReportingRepository) RoundLeaderboard(ctx context.Context, rules ScoringRules, roundID int) ([]models.LeaderboardEntry, error) {
	return r.query(ctx, leaderboardSQL(rules, "WHERE games.round_id = $1"), roundID)
}

func (r *postgresReportingRepository) query(ctx context.Context, query string, args ...interface{}) ([]models.LeaderboardEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	entries := make([]models.LeaderboardEntry, 0)
	for rows.Next() {
		var entry models.LeaderboardEntry
		if scanErr := rows.Scan(&entry.TipperName, &entry.TipScore, &entry.BonusScore, &entry.TotalScore); scanErr != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", scanErr)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during leaderboard rows iteration: %w", err)
	}
	return entries, nil
}
