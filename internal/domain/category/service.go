package category

import (
	"context"
	"errors"
	"time"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/ordering"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/shared"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/taxonomy"
	appErrors "github.com/jupiter96/tradespeoplehub-sub000/internal/errors"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type Service struct {
	Repository Repository
	Sectors    SectorChecker
}

func NewService(repo Repository, sectors SectorChecker) *Service {
	return &Service{
		Repository: repo,
		Sectors:    sectors,
	}
}

func (s *Service) Create(ctx context.Context, category *ServiceCategory) error {
	if _, err := s.Sectors.GetByID(ctx, category.SectorId); err != nil {
		return err
	}

	category.Name = shared.NormalizeName(category.Name)
	if category.Name == "" {
		return appErrors.NewValidationError("name", "nome é obrigatório")
	}
	if category.Slug == "" {
		category.Slug = pkg.Slugify(category.Name)
	}

	if category.Level == 0 {
		category.Level = DefaultDepth
	}
	mapping, err := resolveMapping(category.LevelMapping, category.Level)
	if err != nil {
		return err
	}
	category.LevelMapping = mapping

	if err := s.checkNameNotExists(ctx, category.SectorId, category.Name, nil); err != nil {
		return err
	}

	siblings, err := s.Repository.ListSiblings(ctx, category.SectorId)
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}

	now := time.Now()
	category.Id = pkg.GenerateULIDObject()
	category.SortOrder = ordering.NextOrder(siblings)
	category.IsActive = true
	category.CreatedAt = now
	category.UpdatedAt = now

	if err := s.Repository.Create(ctx, category); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return appErrors.NewConflictError("categoria")
		}
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// resolveMapping gera o mapeamento padrão quando nenhum foi enviado e valida o enviado.
func resolveMapping(supplied taxonomy.LevelMapping, depth int) (taxonomy.LevelMapping, error) {
	if len(supplied) == 0 {
		return taxonomy.SetDepth(nil, depth)
	}
	if err := supplied.Validate(depth); err != nil {
		return nil, err
	}
	return supplied.Sorted(), nil
}

func (s *Service) Update(ctx context.Context, categoryID ulid.ULID, input UpdateInput) (*ServiceCategory, error) {
	existing, err := s.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := shared.NormalizeName(*input.Name)
		if name == "" {
			return nil, appErrors.NewValidationError("name", "nome é obrigatório")
		}
		if !shared.SameName(existing.Name, name) {
			if err := s.checkNameNotExists(ctx, existing.SectorId, name, &existing.Id); err != nil {
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
			return nil, appErrors.NewConflictError("categoria")
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return existing, nil
}

func (s *Service) SetActive(ctx context.Context, categoryID ulid.ULID, active bool) (*ServiceCategory, error) {
	existing, err := s.GetByID(ctx, categoryID)
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

func (s *Service) Delete(ctx context.Context, categoryID ulid.ULID) error {
	if _, err := s.GetByID(ctx, categoryID); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, categoryID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, categoryID ulid.ULID) (*ServiceCategory, error) {
	category, err := s.Repository.GetByID(ctx, categoryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrServiceCategoryNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return category, nil
}

func (s *Service) List(ctx context.Context, sectorID *ulid.ULID, params *pkg.ListParams) ([]*ServiceCategory, int64, error) {
	categories, total, err := s.Repository.List(ctx, sectorID, params)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return categories, total, nil
}

// SetDepth muda a profundidade declarada. Os níveis que continuam existindo mantêm o tipo;
// reduzir abaixo de uma subcategoria existente é recusado.
func (s *Service) SetDepth(ctx context.Context, categoryID ulid.ULID, depth int) (*ServiceCategory, error) {
	if err := taxonomy.ValidateDepth(depth); err != nil {
		return nil, err
	}

	existing, err := s.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	mapping, err := taxonomy.SetDepth(existing.LevelMapping, depth)
	if err != nil {
		return nil, err
	}
	return s.saveMapping(ctx, existing, depth, mapping)
}

// ReplaceMapping troca o mapeamento inteiro mantendo a profundidade atual.
func (s *Service) ReplaceMapping(ctx context.Context, categoryID ulid.ULID, mapping taxonomy.LevelMapping) (*ServiceCategory, error) {
	existing, err := s.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if err := mapping.Validate(existing.Level); err != nil {
		return nil, err
	}
	return s.saveMapping(ctx, existing, existing.Level, mapping.Sorted())
}

func (s *Service) saveMapping(ctx context.Context, existing *ServiceCategory, depth int, mapping taxonomy.LevelMapping) (*ServiceCategory, error) {
	retyped := existing.LevelMapping.Diff(mapping)
	if err := s.Repository.ReplaceMapping(ctx, existing.Id, depth, mapping, retyped); err != nil {
		var inUse *DepthInUseError
		if errors.As(err, &inUse) {
			return nil, appErrors.ErrDepthInUse.WithDetails(map[string]interface{}{
				"level":        inUse.Depth,
				"deepestLevel": inUse.Deepest,
			})
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	existing.Level = depth
	existing.LevelMapping = mapping
	existing.UpdatedAt = time.Now()
	return existing, nil
}

// Move reordena as categorias de um setor.
func (s *Service) Move(ctx context.Context, sectorID ulid.ULID, oldIndex, newIndex int) (ordering.Result[*ServiceCategory], error) {
	if _, err := s.Sectors.GetByID(ctx, sectorID); err != nil {
		return ordering.Result[*ServiceCategory]{}, err
	}
	siblings, err := s.Repository.ListSiblings(ctx, sectorID)
	if err != nil {
		return ordering.Result[*ServiceCategory]{}, appErrors.NewDatabaseError(err)
	}
	return shared.MoveSiblings(ctx, siblings, oldIndex, newIndex, s.Repository)
}

// ApplyOrder grava um diff de ordem; todos os ids precisam ser do mesmo setor.
func (s *Service) ApplyOrder(ctx context.Context, updates []ordering.Update) ([]*ServiceCategory, error) {
	sectorID, err := s.groupOf(ctx, updates)
	if err != nil {
		return nil, err
	}
	siblings, err := s.Repository.ListSiblings(ctx, sectorID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	if err := shared.ValidateOrderUpdates(siblings, updates); err != nil {
		return nil, err
	}
	if err := shared.PersistOrderUpdates(ctx, updates, s.Repository); err != nil {
		return nil, err
	}

	reordered, err := s.Repository.ListSiblings(ctx, sectorID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return reordered, nil
}

// groupOf descobre o setor pelo primeiro item do diff; os demais são conferidos na validação.
func (s *Service) groupOf(ctx context.Context, updates []ordering.Update) (ulid.ULID, error) {
	if len(updates) == 0 {
		return ulid.ULID{}, appErrors.NewValidationError("items", "itens é obrigatório")
	}
	id, err := pkg.ParseULID(updates[0].ID)
	if err != nil {
		return ulid.ULID{}, appErrors.NewValidationError("id", "id inválido")
	}
	first, err := s.GetByID(ctx, id)
	if err != nil {
		return ulid.ULID{}, err
	}
	return first.SectorId, nil
}

func (s *Service) checkNameNotExists(ctx context.Context, sectorID ulid.ULID, name string, except *ulid.ULID) error {
	existing, err := s.Repository.GetByName(ctx, sectorID, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	if except != nil && existing.Id == *except {
		return nil
	}
	return appErrors.NewConflictError("categoria")
}
