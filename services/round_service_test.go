package services

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/footycomp/tipping-system/fixtures"
	"github.com/footycomp/tipping-system/models"
	"github.com/footycomp/tipping-system/repositories"
	"github.com/stretchr/testify/require"
)

func newTestRoundService(roundRepo *fakeRoundRepository, gameRepo *fakeGameRepository, teamRepo *fakeTeamRepository) *roundService {
	return &roundService{
		roundRepo: roundRepo,
		gameRepo:  gameRepo,
		tipRepo:   &fakeTipRepository{},
		teamRepo:  teamRepo,
		allocator: fixtures.NewWithRand(rand.New(rand.NewSource(1))),
		logger:    slog.Default(),
	}
}

func TestRoundValidation(t *testing.T) {
	start := models.NewDate(2026, 4, 3)
	end := models.NewDate(2026, 4, 5)

	tests := []struct {
		name       string
		round      models.Round
		games      []models.Game
		numberUsed bool
		wantErr    error
		wantText   string
	}{
		{
			name:  "valid round",
			round: models.Round{RoundNumber: 5, StartDate: start, EndDate: end},
			games: []models.Game{
				{HomeTeamID: 1, AwayTeamID: 2, GameDate: start},
				{HomeTeamID: 3, AwayTeamID: 4, GameDate: end},
			},
		},
		{
			name:    "round number zero",
			round:   models.Round{RoundNumber: 0, StartDate: start, EndDate: end},
			wantErr: ErrRoundNumberInvalid,
		},
		{
			name:    "round number negative",
			round:   models.Round{RoundNumber: -3, StartDate: start, EndDate: end},
			wantErr: ErrRoundNumberInvalid,
		},
		{
			name:       "round number taken",
			round:      models.Round{RoundNumber: 5, StartDate: start, EndDate: end},
			numberUsed: true,
			wantErr:    ErrRoundNumberTaken,
		},
		{
			name:    "start after end",
			round:   models.Round{RoundNumber: 5, StartDate: end, EndDate: start},
			wantErr: ErrRoundDateOrder,
		},
		{
			name:  "team appears twice",
			round: models.Round{RoundNumber: 5, StartDate: start, EndDate: end},
			games: []models.Game{
				{HomeTeamID: 1, AwayTeamID: 2, GameDate: start},
				{HomeTeamID: 2, AwayTeamID: 3, GameDate: start},
			},
			wantText: "team Hawks is used more than once in this round",
		},
		{
			name:  "game before window",
			round: models.Round{RoundNumber: 5, StartDate: start, EndDate: end},
			games: []models.Game{
				{HomeTeamID: 1, AwayTeamID: 2, GameDate: start.AddDays(-1)},
			},
			wantText: "game date 2026-04-02 is not between the round start date 2026-04-03 and end date 2026-04-05",
		},
		{
			name:  "game after window",
			round: models.Round{RoundNumber: 5, StartDate: start, EndDate: end},
			games: []models.Game{
				{HomeTeamID: 1, AwayTeamID: 2, GameDate: end.AddDays(1)},
			},
			wantText: "game date 2026-04-06 is not between the round start date 2026-04-03 and end date 2026-04-05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roundRepo := &fakeRoundRepository{
				NumberInUseFunc: func(ctx context.Context, exec repositories.SQLExecutor, roundNumber, excludeRoundID int) (bool, error) {
					return tt.numberUsed, nil
				},
			}
			teamRepo := &fakeTeamRepository{
				GetByIDFunc: func(ctx context.Context, id int) (*models.Team, error) {
					return &models.Team{ID: id, Name: "Hawthorn", Nickname: "Hawks"}, nil
				},
			}
			s := newTestRoundService(roundRepo, &fakeGameRepository{}, teamRepo)

			err := s.validate(context.Background(), nil, &tt.round, tt.games, 0)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.wantText != "":
				require.EqualError(t, err, tt.wantText)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestRoundValidationChecksNumberBeforeDates(t *testing.T) {
	// A round that is wrong in several ways reports the number problem first.
	roundRepo := &fakeRoundRepository{}
	s := newTestRoundService(roundRepo, &fakeGameRepository{}, &fakeTeamRepository{})

	round := models.Round{RoundNumber: 0, StartDate: models.NewDate(2026, 4, 5), EndDate: models.NewDate(2026, 4, 3)}
	err := s.validate(context.Background(), nil, &round, nil, 0)

	require.ErrorIs(t, err, ErrRoundNumberInvalid)
	require.Empty(t, roundRepo.trace, "uniqueness is not queried for an invalid number")
}

func TestTeamReusedErrorFallsBackToID(t *testing.T) {
	teamRepo := &fakeTeamRepository{
		GetByIDFunc: func(ctx context.Context, id int) (*models.Team, error) {
			return nil, repositories.ErrTeamNotFound
		},
	}
	s := newTestRoundService(&fakeRoundRepository{}, &fakeGameRepository{}, teamRepo)

	start := models.NewDate(2026, 4, 3)
	round := models.Round{RoundNumber: 1, StartDate: start, EndDate: start}
	games := []models.Game{
		{HomeTeamID: 7, AwayTeamID: 8, GameDate: start},
		{HomeTeamID: 7, AwayTeamID: 9, GameDate: start},
	}

	err := s.validate(context.Background(), nil, &round, games, 0)

	var reused *TeamReusedError
	require.ErrorAs(t, err, &reused)
	require.Equal(t, 7, reused.TeamID)
	require.EqualError(t, err, "team 7 is used more than once in this round")
}

func TestTemplateRoundBuildsSuccessor(t *testing.T) {
	last := models.Round{
		ID:          3,
		RoundNumber: 3,
		StartDate:   models.NewDate(2026, 4, 3),
		EndDate:     models.NewDate(2026, 4, 5),
		BonusPoints: 2,
	}
	roundRepo := &fakeRoundRepository{
		GetLastFunc: func(ctx context.Context) (*models.Round, error) { return &last, nil },
	}
	teamRepo := &fakeTeamRepository{
		ListFunc: func(ctx context.Context) ([]models.Team, error) {
			teams := make([]models.Team, 8)
			for i := range teams {
				teams[i] = models.Team{ID: i + 1}
			}
			return teams, nil
		},
	}
	s := newTestRoundService(roundRepo, &fakeGameRepository{}, teamRepo)

	got, err := s.TemplateRound(context.Background())
	require.NoError(t, err)

	require.Zero(t, got.Round.ID, "a template is a proposal, not a persisted row")
	require.Equal(t, 4, got.Round.RoundNumber)
	require.Equal(t, "2026-04-10", got.Round.StartDate.String())
	require.Equal(t, "2026-04-12", got.Round.EndDate.String())
	require.Equal(t, 2, got.Round.BonusPoints)
	require.Len(t, got.Games, 4)
	for _, g := range got.Games {
		require.False(t, g.GameDate.Before(got.Round.StartDate.Time))
		require.False(t, g.GameDate.After(got.Round.EndDate.Time))
	}
}

func TestTemplateRoundWithNoRounds(t *testing.T) {
	s := newTestRoundService(&fakeRoundRepository{}, &fakeGameRepository{}, &fakeTeamRepository{})

	got, err := s.TemplateRound(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.Round{}, got.Round)
	require.NotNil(t, got.Games)
	require.Empty(t, got.Games)
}

func TestTemplateRoundSurfacesRosterError(t *testing.T) {
	rosterErr := errors.New("boom")
	roundRepo := &fakeRoundRepository{
		GetLastFunc: func(ctx context.Context) (*models.Round, error) {
			return &models.Round{RoundNumber: 1, StartDate: models.NewDate(2026, 4, 3), EndDate: models.NewDate(2026, 4, 5)}, nil
		},
	}
	teamRepo := &fakeTeamRepository{
		ListFunc: func(ctx context.Context) ([]models.Team, error) { return nil, rosterErr },
	}
	s := newTestRoundService(roundRepo, &fakeGameRepository{}, teamRepo)

	_, err := s.TemplateRound(context.Background())
	require.ErrorIs(t, err, rosterErr)
}

func TestGetRound(t *testing.T) {
	roundRepo := &fakeRoundRepository{
		GetByIDFunc: func(ctx context.Context, id int) (*models.Round, error) {
			return &models.Round{ID: id, RoundNumber: 2}, nil
		},
	}
	gameRepo := &fakeGameRepository{
		ListByRoundFunc: func(ctx context.Context, exec repositories.SQLExecutor, roundID int) ([]models.Game, error) {
			return []models.Game{{ID: 10, RoundID: roundID}}, nil
		},
	}
	s := newTestRoundService(roundRepo, gameRepo, &fakeTeamRepository{})

	got, err := s.GetRound(context.Background(), 9)
	require.NoError(t, err)
	require.Equal(t, 9, got.Round.ID)
	require.Len(t, got.Games, 1)
	require.Equal(t, 9, got.Games[0].RoundID)
}

func TestGetRoundNotFound(t *testing.T) {
	roundRepo := &fakeRoundRepository{
		GetByIDFunc: func(ctx context.Context, id int) (*models.Round, error) {
			return nil, repositories.ErrRoundNotFound
		},
	}
	s := newTestRoundService(roundRepo, &fakeGameRepository{}, &fakeTeamRepository{})

	_, err := s.GetRound(context.Background(), 404)
	require.ErrorIs(t, err, repositories.ErrRoundNotFound)
}

func TestUpdateRoundRequiresID(t *testing.T) {
	s := newTestRoundService(&fakeRoundRepository{}, &fakeGameRepository{}, &fakeTeamRepository{})

	err := s.UpdateRound(context.Background(), RoundInput{Round: models.Round{RoundNumber: 1}})
	require.ErrorIs(t, err, ErrRoundIDRequired)
}
