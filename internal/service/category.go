package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/hance08/tally/internal/constants"
	applog "github.com/hance08/tally/internal/log"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/validation"
)

type CategoryService struct {
	book   *book
	logger *slog.Logger
}

func (cs *CategoryService) Create(ctx context.Context, spec model.CategorySpec) (model.Category, error) {
	spec.Name = strings.TrimSpace(spec.Name)
	if err := validation.Struct(spec); err != nil {
		return model.Category{}, err
	}

	c := cs.book.categories.Create(spec)
	cs.logger.Info("category created", applog.FieldOperation, applog.OpCreate, applog.FieldCategoryID, c.ID)
	cs.book.persist(ctx, constants.KeyCategories)
	return c, nil
}

func (cs *CategoryService) Update(ctx context.Context, id string, patch model.CategoryPatch) (model.Category, error) {
	if err := validation.Struct(patch); err != nil {
		return model.Category{}, err
	}

	c, err := cs.book.categories.Update(id, patch)
	if err != nil {
		return model.Category{}, err
	}
	cs.book.persist(ctx, constants.KeyCategories)
	return c, nil
}

// Delete removes the category. Transactions keep the dangling id and show up
// as Uncategorized.
func (cs *CategoryService) Delete(ctx context.Context, id string) error {
	if err := cs.book.categories.Delete(id); err != nil {
		return err
	}
	cs.logger.Info("category deleted",
		applog.FieldOperation, applog.OpDelete,
		applog.FieldCategoryID, id,
		applog.FieldCount, len(cs.book.txns.ByCategory(id)))
	cs.book.persist(ctx, constants.KeyCategories)
	return nil
}

func (cs *CategoryService) Get(id string) (model.Category, error) {
	return cs.book.categories.ByID(id)
}

// Find resolves a category by id, or by name ignoring case. When t is set a
// name only matches categories of that type.
func (cs *CategoryService) Find(ref string, t model.TransactionType) (model.Category, error) {
	ref = strings.TrimSpace(ref)
	if c, err := cs.book.categories.ByID(ref); err == nil {
		return c, nil
	}
	for _, c := range cs.List(t) {
		if strings.EqualFold(c.Name, ref) {
			return c, nil
		}
	}
	return model.Category{}, fmt.Errorf("category %q: %w", ref, apperrors.ErrNotFound)
}

// List returns every category, or only those of type t when t is set.
func (cs *CategoryService) List(t model.TransactionType) []model.Category {
	if t == "" {
		return cs.book.categories.All()
	}
	return cs.book.categories.ByType(t)
}

// Label returns the category name and color, or Uncategorized for unknown ids.
func (cs *CategoryService) Label(id string) (name, color string) {
	return cs.book.categoryLabel(id)
}

func (b *book) categoryLabel(id string) (name, color string) {
	c, err := b.categories.ByID(id)
	if err != nil {
		return constants.Uncategorized, ""
	}
	return c.Name, c.Color
}

// checkCategory verifies that id exists and belongs to transactions of type t.
func (b *book) checkCategory(id string, t model.TransactionType) error {
	c, err := b.categories.ByID(id)
	if err != nil {
		return err
	}
	if c.Type != t {
		return fmt.Errorf("category %q is for %s, not %s transactions: %w", c.Name, c.Type, t, apperrors.ErrValidation)
	}
	return nil
}
