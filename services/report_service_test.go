package services

import (
	"context"
	"errors"
	"testing"

	"github.com/footycomp/tipping-system/models"
	"github.com/footycomp/tipping-system/repositories"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardPassesConfiguredRules(t *testing.T) {
	var gotRules repositories.ScoringRules
	repo := &fakeReportingRepository{
		LeaderboardFunc: func(ctx context.Context, rules repositories.ScoringRules) ([]models.LeaderboardEntry, error) {
			gotRules = rules
			return []models.LeaderboardEntry{
				{TipperName: "Casey", TipScore: 1, BonusScore: 3, TotalScore: 4},
				{TipperName: "Dana", TipScore: 0, BonusScore: 0, TotalScore: 0},
			}, nil
		},
	}
	s := NewReportService(repo, repositories.ScoringRules{DrawCountsAsCorrect: false})

	entries, err := s.Leaderboard(context.Background())
	require.NoError(t, err)
	require.False(t, gotRules.DrawCountsAsCorrect)

	// Every registered tipper appears, including those who never tipped.
	require.Len(t, entries, 2)
	require.Equal(t, int64(4), entries[0].TotalScore)
	require.Equal(t, int64(0), entries[1].TotalScore)
}

func TestRoundLeaderboardError(t *testing.T) {
	repo := &fakeReportingRepository{
		RoundLeaderboardFunc: func(ctx context.Context, rules repositories.ScoringRules, roundID int) ([]models.LeaderboardEntry, error) {
			return nil, errors.New("db down")
		},
	}
	s := NewReportService(repo, repositories.DefaultScoringRules())

	_, err := s.RoundLeaderboard(context.Background(), 3)
	require.Error(t, err)
	require.Contains(t, err.Error(), "round 3")
}
