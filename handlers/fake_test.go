package handlers

import (
	"context"
	"io"

	"github.com/footycomp/tipping-system/models"
	"github.com/footycomp/tipping-system/services"
)

type fakeRoundService struct {
	CreateRoundFunc   func(ctx context.Context, input services.RoundInput) (*models.Round, error)
	UpdateRoundFunc   func(ctx context.Context, input services.RoundInput) error
	DeleteRoundFunc   func(ctx context.Context, id int) error
	GetRoundFunc      func(ctx context.Context, id int) (*services.RoundWithGames, error)
	ListRoundsFunc    func(ctx context.Context) ([]models.Round, error)
	TemplateRoundFunc func(ctx context.Context) (*services.RoundWithGames, error)
}

func (f *fakeRoundService) CreateRound(ctx context.Context, input services.RoundInput) (*models.Round, error) {
	if f.CreateRoundFunc != nil {
		return f.CreateRoundFunc(ctx, input)
	}
	return &models.Round{ID: 1}, nil
}

func (f *fakeRoundService) UpdateRound(ctx context.Context, input services.RoundInput) error {
	if f.UpdateRoundFunc != nil {
		return f.UpdateRoundFunc(ctx, input)
	}
	return nil
}

func (f *fakeRoundService) DeleteRound(ctx context.Context, id int) error {
	if f.DeleteRoundFunc != nil {
		return f.DeleteRoundFunc(ctx, id)
	}
	return nil
}

func (f *fakeRoundService) GetRound(ctx context.Context, id int) (*services.RoundWithGames, error) {
	if f.GetRoundFunc != nil {
		return f.GetRoundFunc(ctx, id)
	}
	return &services.RoundWithGames{}, nil
}

func (f *fakeRoundService) ListRounds(ctx context.Context) ([]models.Round, error) {
	if f.ListRoundsFunc != nil {
		return f.ListRoundsFunc(ctx)
	}
	return nil, nil
}

func (f *fakeRoundService) TemplateRound(ctx context.Context) (*services.RoundWithGames, error) {
	if f.TemplateRoundFunc != nil {
		return f.TemplateRoundFunc(ctx)
	}
	return &services.RoundWithGames{Games: []models.Game{}}, nil
}

type fakeReportService struct {
	LeaderboardFunc      func(ctx context.Context) ([]models.LeaderboardEntry, error)
	RoundLeaderboardFunc func(ctx context.Context, roundID int) ([]models.LeaderboardEntry, error)
}

func (f *fakeReportService) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	if f.LeaderboardFunc != nil {
		return f.LeaderboardFunc(ctx)
	}
	return nil, nil
}

func (f *fakeReportService) RoundLeaderboard(ctx context.Context, roundID int) ([]models.LeaderboardEntry, error) {
	if f.RoundLeaderboardFunc != nil {
		return f.RoundLeaderboardFunc(ctx, roundID)
	}
	return nil, nil
}

type fakeTipService struct {
	SaveTipsFunc          func(ctx context.Context, roundID int, tips []models.Tip) error
	TipsForRoundFunc      func(ctx context.Context, tipperID, roundID int) ([]models.Tip, error)
	TipsExistForRoundFunc func(ctx context.Context, roundID int) (bool, error)
}

func (f *fakeTipService) SaveTips(ctx context.Context, roundID int, tips []models.Tip) error {
	if f.SaveTipsFunc != nil {
		return f.SaveTipsFunc(ctx, roundID, tips)
	}
	return nil
}

func (f *fakeTipService) TipsForRound(ctx context.Context, tipperID, roundID int) ([]models.Tip, error) {
	if f.TipsForRoundFunc != nil {
		return f.TipsForRoundFunc(ctx, tipperID, roundID)
	}
	return nil, nil
}

func (f *fakeTipService) TipsExistForRound(ctx context.Context, roundID int) (bool, error) {
	if f.TipsExistForRoundFunc != nil {
		return f.TipsExistForRoundFunc(ctx, roundID)
	}
	return false, nil
}

type fakeTeamService struct {
	ListTeamsFunc   func(ctx context.Context) ([]models.Team, error)
	GetTeamByIDFunc func(ctx context.Context, id int) (*models.Team, error)
	CreateTeamFunc  func(ctx context.Context, team *models.Team) error
	UpdateTeamFunc  func(ctx context.Context, team *models.Team) error
	DeleteTeamFunc  func(ctx context.Context, id int) error
	UploadLogoFunc  func(ctx context.Context, teamID int, contentType string, reader io.Reader) (*models.Team, error)
}

func (f *fakeTeamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	if f.ListTeamsFunc != nil {
		return f.ListTeamsFunc(ctx)
	}
	return nil, nil
}

func (f *fakeTeamService) GetTeamByID(ctx context.Context, id int) (*models.Team, error) {
	if f.GetTeamByIDFunc != nil {
		return f.GetTeamByIDFunc(ctx, id)
	}
	return &models.Team{ID: id}, nil
}

func (f *fakeTeamService) CreateTeam(ctx context.Context, team *models.Team) error {
	if f.CreateTeamFunc != nil {
		return f.CreateTeamFunc(ctx, team)
	}
	return nil
}

func (f *fakeTeamService) UpdateTeam(ctx context.Context, team *models.Team) error {
	if f.UpdateTeamFunc != nil {
		return f.UpdateTeamFunc(ctx, team)
	}
	return nil
}

func (f *fakeTeamService) DeleteTeam(ctx context.Context, id int) error {
	if f.DeleteTeamFunc != nil {
		return f.DeleteTeamFunc(ctx, id)
	}
	return nil
}

func (f *fakeTeamService) UploadLogo(ctx context.Context, teamID int, contentType string, reader io.Reader) (*models.Team, error) {
	if f.UploadLogoFunc != nil {
		return f.UploadLogoFunc(ctx, teamID, contentType, reader)
	}
	return &models.Team{ID: teamID}, nil
}
