package services

import (
	"context"
	"strings"

	"github.com/footycomp/tipping-system/models"
	"github.com/footycomp/tipping-system/repositories"
)

type TipperService interface {
	ListTippers(ctx context.Context) ([]models.Tipper, error)
	GetTipperByID(ctx context.Context, id int) (*models.Tipper, error)
	CreateTipper(ctx context.Context, tipper *models.Tipper) error
	UpdateTipper(ctx context.Context, tipper *models.Tipper) error
	DeleteTipper(ctx context.Context, id int) error
}

type tipperService struct {
	tipperRepo repositories.TipperRepository
}

func NewTipperService(tipperRepo repositories.TipperRepository) TipperService {
	return &tipperService{tipperRepo: tipperRepo}
}

func (s *tipperService) ListTippers(ctx context.Context) ([]models.Tipper, error) {
	return s.tipperRepo.List(ctx)
}

func (s *tipperService) GetTipperByID(ctx context.Context, id int) (*models.Tipper, error) {
	return s.tipperRepo.GetByID(ctx, id)
}

func (s *tipperService) CreateTipper(ctx context.Context, tipper *models.Tipper) error {
	if strings.TrimSpace(tipper.Name) == "" {
		return ErrTipperNameRequired
	}
	return s.tipperRepo.Create(ctx, tipper)
}

func (s *tipperService) UpdateTipper(ctx context.Context, tipper *models.Tipper) error {
	if strings.TrimSpace(tipper.Name) == "" {
		return ErrTipperNameRequired
	}
	return s.tipperRepo.Update(ctx, tipper)
}

func (s *tipperService) DeleteTipper(ctx context.Context, id int) error {
	return s.tipperRepo.Delete(ctx, id)
}
