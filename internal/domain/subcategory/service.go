package subcategory

import (
	"context"
	"errors"
	"time"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/category"
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
	Categories CategoryChecker
}

func NewService(repo Repository, categories CategoryChecker) *Service {
	return &Service{
		Repository: repo,
		Categories: categories,
	}
}

// Create posiciona a subcategoria a partir do pai: sem pai ela fica no nível 2, com pai ela
// herda nível+1 e o tipo que o mapeamento da categoria define para esse nível. Sem tipo
// mapeado nada é gravado e o erro é um MappingGapError.
func (s *Service) Create(ctx context.Context, sub *SubCategory) error {
	cat, err := s.Categories.GetByID(ctx, sub.CategoryId)
	if err != nil {
		return err
	}

	placement, err := s.placeUnder(ctx, cat, sub.ParentId)
	if err != nil {
		return err
	}
	sub.applyPlacement(placement)

	sub.Name = shared.NormalizeName(sub.Name)
	if sub.Name == "" {
		return appErrors.NewValidationError("name", "nome é obrigatório")
	}
	if sub.Slug == "" {
		sub.Slug = pkg.Slugify(sub.Name)
	}

	if err := s.checkNameNotExists(ctx, sub.CategoryId, sub.ParentId, sub.Name, nil); err != nil {
		return err
	}

	siblings, err := s.Repository.ListSiblings(ctx, sub.CategoryId, sub.ParentId)
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}

	now := time.Now()
	sub.Id = pkg.GenerateULIDObject()
	sub.SortOrder = ordering.NextOrder(siblings)
	sub.IsActive = true
	sub.CreatedAt = now
	sub.UpdatedAt = now

	if err := s.Repository.Create(ctx, sub); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return appErrors.NewConflictError("subcategoria")
		}
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) placeUnder(ctx context.Context, cat *category.ServiceCategory, parentID *ulid.ULID) (taxonomy.Placement, error) {
	var parentPlacement taxonomy.Placement = taxonomy.SectorPlacement{}
	if parentID != nil {
		parent, err := s.GetByID(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if parent.CategoryId != cat.Id {
			return nil, appErrors.NewValidationError("parentId", "subcategoria pai pertence a outra categoria")
		}
		parentPlacement, err = parent.Placement()
		if err != nil {
			return nil, err
		}
		// o pai pode ter ficado fora do mapeamento atual da categoria
		if err := taxonomy.Conforms(parentPlacement, cat.LevelMapping); err != nil {
			return nil, err
		}
	}
	return taxonomy.ChildPlacement(parentPlacement, cat.LevelMapping)
}

func (s *Service) Update(ctx context.Context, subCategoryID ulid.ULID, input UpdateInput) (*SubCategory, error) {
	existing, err := s.GetByID(ctx, subCategoryID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := shared.NormalizeName(*input.Name)
		if name == "" {
			return nil, appErrors.NewValidationError("name", "nome é obrigatório")
		}
		if !shared.SameName(existing.Name, name) {
			if err := s.checkNameNotExists(ctx, existing.CategoryId, existing.ParentId, name, &existing.Id); err != nil {
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
			return nil, appErrors.NewConflictError("subcategoria")
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return existing, nil
}

func (s *Service) SetActive(ctx context.Context, subCategoryID ulid.ULID, active bool) (*SubCategory, error) {
	existing, err := s.GetByID(ctx, subCategoryID)
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

// Delete remove a subcategoria e todos os descendentes. Devolve os ids removidos.
func (s *Service) Delete(ctx context.Context, subCategoryID ulid.ULID) ([]ulid.ULID, error) {
	existing, err := s.GetByID(ctx, subCategoryID)
	if err != nil {
		return nil, err
	}

	all, err := s.Repository.ListByCategory(ctx, existing.CategoryId)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	ids := append([]ulid.ULID{existing.Id}, Descendants(all, existing.Id)...)

	if err := s.Repository.DeleteMany(ctx, ids); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return ids, nil
}

func (s *Service) GetByID(ctx context.Context, subCategoryID ulid.ULID) (*SubCategory, error) {
	sub, err := s.Repository.GetByID(ctx, subCategoryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrSubCategoryNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return sub, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter, params *pkg.ListParams) ([]*SubCategory, int64, error) {
	subs, total, err := s.Repository.List(ctx, filter, params)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return subs, total, nil
}

// Tree devolve a categoria com as subcategorias aninhadas.
func (s *Service) Tree(ctx context.Context, categoryID ulid.ULID) (*category.ServiceCategory, []*Node, error) {
	cat, err := s.Categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}
	all, err := s.Repository.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, appErrors.NewDatabaseError(err)
	}
	return cat, BuildTree(all), nil
}

// Move reordena o grupo (categoria, pai).
func (s *Service) Move(ctx context.Context, categoryID ulid.ULID, parentID *ulid.ULID, oldIndex, newIndex int) (ordering.Result[*SubCategory], error) {
	if _, err := s.Categories.GetByID(ctx, categoryID); err != nil {
		return ordering.Result[*SubCategory]{}, err
	}
	siblings, err := s.Repository.ListSiblings(ctx, categoryID, parentID)
	if err != nil {
		return ordering.Result[*SubCategory]{}, appErrors.NewDatabaseError(err)
	}
	return shared.MoveSiblings(ctx, siblings, oldIndex, newIndex, s.Repository)
}

// ApplyOrder grava um diff de ordem; todos os ids precisam ter a mesma categoria e o mesmo pai.
func (s *Service) ApplyOrder(ctx context.Context, updates []ordering.Update) ([]*SubCategory, error) {
	if len(updates) == 0 {
		return nil, appErrors.NewValidationError("items", "itens é obrigatório")
	}
	id, err := pkg.ParseULID(updates[0].ID)
	if err != nil {
		return nil, appErrors.NewValidationError("id", "id inválido")
	}
	first, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	siblings, err := s.Repository.ListSiblings(ctx, first.CategoryId, first.ParentId)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	if err := shared.ValidateOrderUpdates(siblings, updates); err != nil {
		return nil, err
	}
	if err := shared.PersistOrderUpdates(ctx, updates, s.Repository); err != nil {
		return nil, err
	}

	reordered, err := s.Repository.ListSiblings(ctx, first.CategoryId, first.ParentId)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return reordered, nil
}

func (s *Service) checkNameNotExists(ctx context.Context, categoryID ulid.ULID, parentID *ulid.ULID, name string, except *ulid.ULID) error {
	existing, err := s.Repository.GetByName(ctx, categoryID, parentID, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	if except != nil && existing.Id == *except {
		return nil
	}
	return appErrors.NewConflictError("subcategoria")
}
