package services

import (
	"context"
	"io"

	"github.com/footycomp/tipping-system/models"
	"github.com/footycomp/tipping-system/repositories"
	"github.com/footycomp/tipping-system/storage"
)

// Hand-rolled fakes for the repository interfaces. Each method delegates to
// an optional func field and records its name in trace, so tests can both
// script behaviour and assert call order.

type fakeRoundRepository struct {
	trace []string

	CreateFunc      func(ctx context.Context, exec repositories.SQLExecutor, round *models.Round) error
	GetByIDFunc     func(ctx context.Context, id int) (*models.Round, error)
	GetLastFunc     func(ctx context.Context) (*models.Round, error)
	ListFunc        func(ctx context.Context) ([]models.Round, error)
	UpdateFunc      func(ctx context.Context, exec repositories.SQLExecutor, round *models.Round) error
	DeleteFunc      func(ctx context.Context, exec repositories.SQLExecutor, id int) error
	NumberInUseFunc func(ctx context.Context, exec repositories.SQLExecutor, roundNumber, excludeRoundID int) (bool, error)
}

func (f *fakeRoundRepository) record(step string) { f.trace = append(f.trace, step) }

func (f *fakeRoundRepository) Create(ctx context.Context, exec repositories.SQLExecutor, round *models.Round) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, exec, round)
	}
	return nil
}

func (f *fakeRoundRepository) GetByID(ctx context.Context, id int) (*models.Round, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return &models.Round{ID: id}, nil
}

func (f *fakeRoundRepository) GetLast(ctx context.Context) (*models.Round, error) {
	f.record("GetLast")
	if f.GetLastFunc != nil {
		return f.GetLastFunc(ctx)
	}
	return nil, repositories.ErrRoundNotFound
}

func (f *fakeRoundRepository) List(ctx context.Context) ([]models.Round, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	return nil, nil
}

func (f *fakeRoundRepository) Update(ctx context.Context, exec repositories.SQLExecutor, round *models.Round) error {
	f.record("Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, exec, round)
	}
	return nil
}

func (f *fakeRoundRepository) Delete(ctx context.Context, exec repositories.SQLExecutor, id int) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, exec, id)
	}
	return nil
}

func (f *fakeRoundRepository) NumberInUse(ctx context.Context, exec repositories.SQLExecutor, roundNumber, excludeRoundID int) (bool, error) {
	f.record("NumberInUse")
	if f.NumberInUseFunc != nil {
		return f.NumberInUseFunc(ctx, exec, roundNumber, excludeRoundID)
	}
	return false, nil
}

type fakeGameRepository struct {
	trace []string

	CreateFunc        func(ctx context.Context, exec repositories.SQLExecutor, game *models.Game) error
	GetByIDFunc       func(ctx context.Context, id int) (*models.Game, error)
	ListByRoundFunc   func(ctx context.Context, exec repositories.SQLExecutor, roundID int) ([]models.Game, error)
	UpdateFunc        func(ctx context.Context, exec repositories.SQLExecutor, game *models.Game) error
	DeleteFunc        func(ctx context.Context, exec repositories.SQLExecutor, id int) error
	DeleteByRoundFunc func(ctx context.Context, exec repositories.SQLExecutor, roundID int) error
	TeamHasGamesFunc  func(ctx context.Context, teamID int) (bool, error)
}

func (f *fakeGameRepository) record(step string) { f.trace = append(f.trace, step) }

func (f *fakeGameRepository) Create(ctx context.Context, exec repositories.SQLExecutor, game *models.Game) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, exec, game)
	}
	return nil
}

func (f *fakeGameRepository) GetByID(ctx context.Context, id int) (*models.Game, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return &models.Game{ID: id}, nil
}

func (f *fakeGameRepository) ListByRound(ctx context.Context, exec repositories.SQLExecutor, roundID int) ([]models.Game, error) {
	f.record("ListByRound")
	if f.ListByRoundFunc != nil {
		return f.ListByRoundFunc(ctx, exec, roundID)
	}
	return nil, nil
}

func (f *fakeGameRepository) Update(ctx context.Context, exec repositories.SQLExecutor, game *models.Game) error {
	f.record("Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, exec, game)
	}
	return nil
}

func (f *fakeGameRepository) Delete(ctx context.Context, exec repositories.SQLExecutor, id int) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, exec, id)
	}
	return nil
}

func (f *fakeGameRepository) DeleteByRound(ctx context.Context, exec repositories.SQLExecutor, roundID int) error {
	f.record("DeleteByRound")
	if f.DeleteByRoundFunc != nil {
		return f.DeleteByRoundFunc(ctx, exec, roundID)
	}
	return nil
}

func (f *fakeGameRepository) TeamHasGames(ctx context.Context, teamID int) (bool, error) {
	f.record("TeamHasGames")
	if f.TeamHasGamesFunc != nil {
		return f.TeamHasGamesFunc(ctx, teamID)
	}
	return false, nil
}

type fakeTeamRepository struct {
	trace []string

	CreateFunc        func(ctx context.Context, team *models.Team) error
	GetByIDFunc       func(ctx context.Context, id int) (*models.Team, error)
	ListFunc          func(ctx context.Context) ([]models.Team, error)
	UpdateFunc        func(ctx context.Context, team *models.Team) error
	DeleteFunc        func(ctx context.Context, id int) error
	UpdateLogoKeyFunc func(ctx context.Context, teamID int, logoKey *string) error
}

func (f *fakeTeamRepository) record(step string) { f.trace = append(f.trace, step) }

func (f *fakeTeamRepository) Create(ctx context.Context, team *models.Team) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, team)
	}
	return nil
}

func (f *fakeTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return &models.Team{ID: id}, nil
}

func (f *fakeTeamRepository) List(ctx context.Context) ([]models.Team, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	return nil, nil
}

func (f *fakeTeamRepository) Update(ctx context.Context, team *models.Team) error {
	f.record("Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, team)
	}
	return nil
}

func (f *fakeTeamRepository) Delete(ctx context.Context, id int) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return nil
}

func (f *fakeTeamRepository) UpdateLogoKey(ctx context.Context, teamID int, logoKey *string) error {
	f.record("UpdateLogoKey")
	if f.UpdateLogoKeyFunc != nil {
		return f.UpdateLogoKeyFunc(ctx, teamID, logoKey)
	}
	return nil
}

type fakeTipRepository struct {
	trace []string

	InsertFunc               func(ctx context.Context, exec repositories.SQLExecutor, tip *models.Tip) error
	UpdateFunc               func(ctx context.Context, exec repositories.SQLExecutor, tip *models.Tip) (int64, error)
	ListByTipperAndRoundFunc func(ctx context.Context, tipperID, roundID int) ([]models.Tip, error)
	ExistForRoundFunc        func(ctx context.Context, roundID int) (bool, error)
	DeleteByRoundFunc        func(ctx context.Context, exec repositories.SQLExecutor, roundID int) error
}

func (f *fakeTipRepository) record(step string) { f.trace = append(f.trace, step) }

func (f *fakeTipRepository) Insert(ctx context.Context, exec repositories.SQLExecutor, tip *models.Tip) error {
	f.record("Insert")
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, exec, tip)
	}
	return nil
}

func (f *fakeTipRepository) Update(ctx context.Context, exec repositories.SQLExecutor, tip *models.Tip) (int64, error) {
	f.record("Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, exec, tip)
	}
	return 0, nil
}

func (f *fakeTipRepository) ListByTipperAndRound(ctx context.Context, tipperID, roundID int) ([]models.Tip, error) {
	f.record("ListByTipperAndRound")
	if f.ListByTipperAndRoundFunc != nil {
		return f.ListByTipperAndRoundFunc(ctx, tipperID, roundID)
	}
	return nil, nil
}

func (f *fakeTipRepository) ExistForRound(ctx context.Context, roundID int) (bool, error) {
	f.record("ExistForRound")
	if f.ExistForRoundFunc != nil {
		return f.ExistForRoundFunc(ctx, roundID)
	}
	return false, nil
}

func (f *fakeTipRepository) DeleteByRound(ctx context.Context, exec repositories.SQLExecutor, roundID int) error {
	f.record("DeleteByRound")
	if f.DeleteByRoundFunc != nil {
		return f.DeleteByRoundFunc(ctx, exec, roundID)
	}
	return nil
}

type fakeTipperRepository struct {
	CreateFunc  func(ctx context.Context, tipper *models.Tipper) error
	GetByIDFunc func(ctx context.Context, id int) (*models.Tipper, error)
	ListFunc    func(ctx context.Context) ([]models.Tipper, error)
	UpdateFunc  func(ctx context.Context, tipper *models.Tipper) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (f *fakeTipperRepository) Create(ctx context.Context, tipper *models.Tipper) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, tipper)
	}
	return nil
}

func (f *fakeTipperRepository) GetByID(ctx context.Context, id int) (*models.Tipper, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return &models.Tipper{ID: id}, nil
}

func (f *fakeTipperRepository) List(ctx context.Context) ([]models.Tipper, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	return nil, nil
}

func (f *fakeTipperRepository) Update(ctx context.Context, tipper *models.Tipper) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, tipper)
	}
	return nil
}

func (f *fakeTipperRepository) Delete(ctx context.Context, id int) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return nil
}

type fakeUserRepository struct {
	CreateFunc     func(ctx context.Context, user *models.User) error
	GetByIDFunc    func(ctx context.Context, id int) (*models.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*models.User, error)
}

func (f *fakeUserRepository) Create(ctx context.Context, user *models.User) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, user)
	}
	user.ID = 1
	return nil
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.GetByEmailFunc != nil {
		return f.GetByEmailFunc(ctx, email)
	}
	return nil, repositories.ErrUserNotFound
}

type fakeReportingRepository struct {
	LeaderboardFunc      func(ctx context.Context, rules repositories.ScoringRules) ([]models.LeaderboardEntry, error)
	RoundLeaderboardFunc func(ctx context.Context, rules repositories.ScoringRules, roundID int) ([]models.LeaderboardEntry, error)
}

func (f *fakeReportingRepository) Leaderboard(ctx context.Context, rules repositories.ScoringRules) ([]models.LeaderboardEntry, error) {
	if f.LeaderboardFunc != nil {
		return f.LeaderboardFunc(ctx, rules)
	}
	return nil, nil
}

func (f *fakeReportingRepository) RoundLeaderboard(ctx context.Context, rules repositories.ScoringRules, roundID int) ([]models.LeaderboardEntry, error) {
	if f.RoundLeaderboardFunc != nil {
		return f.RoundLeaderboardFunc(ctx, rules, roundID)
	}
	return nil, nil
}

type fakeNotifier struct {
	roundsUpdated []int
	tipsSaved     []int
}

func (f *fakeNotifier) NotifyRoundUpdated(roundID int) {
	f.roundsUpdated = append(f.roundsUpdated, roundID)
}

func (f *fakeNotifier) NotifyTipsSaved(roundID int) {
	f.tipsSaved = append(f.tipsSaved, roundID)
}

type fakeUploader struct {
	uploaded []string
	deleted  []string

	UploadFunc func(ctx context.Context, key, contentType string, reader io.Reader) (*storage.UploadResult, error)
}

func (f *fakeUploader) Upload(ctx context.Context, key, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	f.uploaded = append(f.uploaded, key)
	if f.UploadFunc != nil {
		return f.UploadFunc(ctx, key, contentType, reader)
	}
	return &storage.UploadResult{Key: key, Location: "https://cdn.example.com/" + key}, nil
}

func (f *fakeUploader) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeUploader) GetPublicURL(key string) string {
	return "https://cdn.example.com/" + key
}
