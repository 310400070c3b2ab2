package services

import (
	"context"
	"fmt"

	"github.com/footycomp/tipping-system/models"
	"github.com/footycomp/tipping-system/repositories"
)

type ReportService interface {
	Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
	RoundLeaderboard(ctx context.Context, roundID int) ([]models.LeaderboardEntry, error)
}

// reportService exposes the competition standings. Failures are surfaced to
// the caller; any degrading to an empty result is the HTTP layer's decision,
// not this one's.
type reportService struct {
	reportingRepo repositories.ReportingRepository
	rules         repositories.ScoringRules
}

func NewReportService(reportingRepo repositories.ReportingRepository, rules repositories.ScoringRules) ReportService {
	return &reportService{
		reportingRepo: reportingRepo,
		rules:         rules,
	}
}

func (s *reportService) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	entries, err := s.reportingRepo.Leaderboard(ctx, s.rules)
	if err != nil {
		return nil, fmt.Errorf("failed to build leaderboard: %w", err)
	}
	return entries, nil
}

func (s *reportService) RoundLeaderboard(ctx context.Context, roundID int) ([]models.LeaderboardEntry, error) {
	entries, err := s.reportingRepo.RoundLeaderboard(ctx, s.rules, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to build leaderboard for round %d: %w", roundID, err)
	}
	return entries, nil
}
