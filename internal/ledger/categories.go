package ledger

import (
	"fmt"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/hance08/tally/internal/model"
)

// DefaultCategories is the starter category table.
var DefaultCategories = []model.CategorySpec{
	{Name: "Salary", Type: model.TxIncome, Color: "#4CD964", Icon: "briefcase"},
	{Name: "Investments", Type: model.TxIncome, Color: "#3E7BFA", Icon: "trending-up"},
	{Name: "Gifts", Type: model.TxIncome, Color: "#AF52DE", Icon: "gift"},
	{Name: "Food & Dining", Type: model.TxExpense, Color: "#FF9500", Icon: "utensils"},
	{Name: "Transportation", Type: model.TxExpense, Color: "#5AC8FA", Icon: "car"},
	{Name: "Housing", Type: model.TxExpense, Color: "#FF3B30", Icon: "home"},
	{Name: "Entertainment", Type: model.TxExpense, Color: "#FFCC00", Icon: "film"},
	{Name: "Shopping", Type: model.TxExpense, Color: "#FF2D55", Icon: "shopping-bag"},
	{Name: "Healthcare", Type: model.TxExpense, Color: "#4CD964", Icon: "activity"},
}

// CategoryRegistry holds the category table. Transactions reference
// categories by id only, so removing a category never touches them.
type CategoryRegistry struct {
	order []string
	byID  map[string]*model.Category
	opts  options
}

func NewCategoryRegistry(opts ...Option) *CategoryRegistry {
	return &CategoryRegistry{
		byID: make(map[string]*model.Category),
		opts: buildOptions(opts),
	}
}

// SeedDefaults adds DefaultCategories flagged as defaults.
func (r *CategoryRegistry) SeedDefaults() {
	for _, spec := range DefaultCategories {
		c := r.Create(spec)
		r.byID[c.ID].IsDefault = true
	}
}

func (r *CategoryRegistry) Create(spec model.CategorySpec) model.Category {
	now := r.opts.now()
	c := &model.Category{
		ID:        r.opts.newID(),
		Name:      spec.Name,
		Type:      spec.Type,
		Color:     spec.Color,
		Icon:      spec.Icon,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.order = append(r.order, c.ID)
	r.byID[c.ID] = c
	return *c
}

func (r *CategoryRegistry) Update(id string, patch model.CategoryPatch) (model.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return model.Category{}, fmt.Errorf("category %s: %w", id, apperrors.ErrNotFound)
	}

	changed := false
	if patch.Name != nil {
		c.Name = *patch.Name
		changed = true
	}
	if patch.Color != nil {
		c.Color = *patch.Color
		changed = true
	}
	if patch.Icon != nil {
		c.Icon = *patch.Icon
		changed = true
	}
	if changed {
		c.UpdatedAt = r.opts.now()
	}

	return *c, nil
}

func (r *CategoryRegistry) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("category %s: %w", id, apperrors.ErrNotFound)
	}
	delete(r.byID, id)
	for i, cID := range r.order {
		if cID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *CategoryRegistry) ByID(id string) (model.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return model.Category{}, fmt.Errorf("category %s: %w", id, apperrors.ErrNotFound)
	}
	return *c, nil
}

func (r *CategoryRegistry) ByType(t model.TransactionType) []model.Category {
	var out []model.Category
	for _, id := range r.order {
		if c := r.byID[id]; c.Type == t {
			out = append(out, *c)
		}
	}
	return out
}

func (r *CategoryRegistry) All() []model.Category {
	out := make([]model.Category, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.byID[id])
	}
	return out
}

func (r *CategoryRegistry) Restore(categories []model.Category) {
	r.order = make([]string, 0, len(categories))
	r.byID = make(map[string]*model.Category, len(categories))
	for i := range categories {
		c := categories[i]
		if _, dup := r.byID[c.ID]; dup {
			continue
		}
		r.order = append(r.order, c.ID)
		r.byID[c.ID] = &c
	}
}
