package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/footycomp/tipping-system/models"
	"github.com/footycomp/tipping-system/repositories"
	"github.com/footycomp/tipping-system/storage"
)

type TeamService interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	GetTeamByID(ctx context.Context, id int) (*models.Team, error)
	CreateTeam(ctx context.Context, team *models.Team) error
	UpdateTeam(ctx context.Context, team *models.Team) error
	// DeleteTeam refuses to remove a team that still appears in any game.
	DeleteTeam(ctx context.Context, id int) error
	UploadLogo(ctx context.Context, teamID int, contentType string, reader io.Reader) (*models.Team, error)
}

type teamService struct {
	teamRepo repositories.TeamRepository
	gameRepo repositories.GameRepository
	uploader storage.FileUploader
}

func NewTeamService(teamRepo repositories.TeamRepository, gameRepo repositories.GameRepository, uploader storage.FileUploader) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		gameRepo: gameRepo,
		uploader: uploader,
	}
}

func (s *teamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range teams {
		s.decorateLogoURL(&teams[i])
	}
	return teams, nil
}

func (s *teamService) GetTeamByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.decorateLogoURL(team)
	return team, nil
}

func (s *teamService) CreateTeam(ctx context.Context, team *models.Team) error {
	if strings.TrimSpace(team.Name) == "" {
		return ErrTeamNameRequired
	}
	if team.Nickname == "" {
		team.Nickname = team.Name
	}
	return s.teamRepo.Create(ctx, team)
}

func (s *teamService) UpdateTeam(ctx context.Context, team *models.Team) error {
	if strings.TrimSpace(team.Name) == "" {
		return ErrTeamNameRequired
	}
	return s.teamRepo.Update(ctx, team)
}

func (s *teamService) DeleteTeam(ctx context.Context, id int) error {
	inUse, err := s.gameRepo.TeamHasGames(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrTeamInUse
	}
	return s.teamRepo.Delete(ctx, id)
}

func (s *teamService) UploadLogo(ctx context.Context, teamID int, contentType string, reader io.Reader) (*models.Team, error) {
	if s.uploader == nil {
		return nil, fmt.Errorf("logo storage is not configured")
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("teams/%d/logo%s", teamID, extensionFor(contentType))
	result, err := s.uploader.Upload(ctx, key, contentType, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to upload logo for team %d: %w", teamID, err)
	}

	// Replacing a logo with a different extension leaves the old object
	// behind; clean it up after the new one is live.
	if team.LogoKey != nil && *team.LogoKey != result.Key {
		_ = s.uploader.Delete(ctx, *team.LogoKey)
	}

	if err := s.teamRepo.UpdateLogoKey(ctx, teamID, &result.Key); err != nil {
		return nil, err
	}
	team.LogoKey = &result.Key
	s.decorateLogoURL(team)
	return team, nil
}

func (s *teamService) decorateLogoURL(team *models.Team) {
	if s.uploader == nil || team.LogoKey == nil {
		return
	}
	url := s.uploader.GetPublicURL(*team.LogoKey)
	if url != "" {
		team.LogoURL = &url
	}
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/svg+xml":
		return ".svg"
	default:
		return ""
	}
}
