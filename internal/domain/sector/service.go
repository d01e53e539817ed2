package sector

import (
	"context"
	"errors"
	"time"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/ordering"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/shared"
	appErrors "github.com/jupiter96/tradespeoplehub-sub000/internal/errors"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) Create(ctx context.Context, sector *Sector) error {
	sector.Name = shared.NormalizeName(sector.Name)
	if sector.Name == "" {
		return appErrors.NewValidationError("name", "nome é obrigatório")
	}
	if sector.Slug == "" {
		sector.Slug = pkg.Slugify(sector.Name)
	}

	if err := s.checkNameNotExists(ctx, sector.Name, nil); err != nil {
		return err
	}

	siblings, err := s.Repository.ListSiblings(ctx)
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}

	now := time.Now()
	sector.Id = pkg.GenerateULIDObject()
	sector.SortOrder = ordering.NextOrder(siblings)
	sector.IsActive = true
	sector.CreatedAt = now
	sector.UpdatedAt = now

	if err := s.Repository.Create(ctx, sector); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return appErrors.NewConflictError("setor")
		}
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) Update(ctx context.Context, sectorID ulid.ULID, input UpdateInput) (*Sector, error) {
	existing, err := s.GetByID(ctx, sectorID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := shared.NormalizeName(*input.Name)
		if name == "" {
			return nil, appErrors.NewValidationError("name", "nome é obrigatório")
		}
		if !shared.SameName(existing.Name, name) {
			if err := s.checkNameNotExists(ctx, name, &existing.Id); err != nil {
				return nil, err
			}
		}
		existing.Name = name
	}
	if input.Slug != nil {
		existing.Slug = pkg.Slugify(*input.Slug)
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.Icon != nil {
		existing.Icon = *input.Icon
	}
	existing.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, existing); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return nil, appErrors.NewConflictError("setor")
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return existing, nil
}

func (s *Service) SetActive(ctx context.Context, sectorID ulid.ULID, active bool) (*Sector, error) {
	existing, err := s.GetByID(ctx, sectorID)
	if err != nil {
		return nil, err
	}
	existing.IsActive = active
	existing.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, existing); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, sectorID ulid.ULID) error {
	if _, err := s.GetByID(ctx, sectorID); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, sectorID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, sectorID ulid.ULID) (*Sector, error) {
	sector, err := s.Repository.GetByID(ctx, sectorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrSectorNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return sector, nil
}

func (s *Service) List(ctx context.Context, params *pkg.ListParams) ([]*Sector, int64, error) {
	sectors, total, err := s.Repository.List(ctx, params)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return sectors, total, nil
}

// Move aplica um arrastar e soltar na lista de setores (ordenada por ordem e nome).
func (s *Service) Move(ctx context.Context, oldIndex, newIndex int) (ordering.Result[*Sector], error) {
	siblings, err := s.Repository.ListSiblings(ctx)
	if err != nil {
		return ordering.Result[*Sector]{}, appErrors.NewDatabaseError(err)
	}
	return shared.MoveSiblings(ctx, siblings, oldIndex, newIndex, s.Repository)
}

// ApplyOrder grava um diff {id, order} calculado pelo painel.
func (s *Service) ApplyOrder(ctx context.Context, updates []ordering.Update) ([]*Sector, error) {
	siblings, err := s.Repository.ListSiblings(ctx)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	if err := shared.ValidateOrderUpdates(siblings, updates); err != nil {
		return nil, err
	}
	if err := shared.PersistOrderUpdates(ctx, updates, s.Repository); err != nil {
		return nil, err
	}

	reordered, err := s.Repository.ListSiblings(ctx)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return reordered, nil
}

func (s *Service) checkNameNotExists(ctx context.Context, name string, except *ulid.ULID) error {
	existing, err := s.Repository.GetByName(ctx, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	if except != nil && existing.Id == *except {
		return nil
	}
	return appErrors.NewConflictError("setor")
}
