package category_test

import (
	"context"
	"sort"

	"github.com/jhoicas/hogar-api/internal/domain/entity"
	"github.com/jhoicas/hogar-api/internal/domain/repository"
)

// Fakes en memoria para el motor de jerarquía. memTxRunner emula la
// atomicidad con snapshot/restore del estado completo.

type memStore struct {
	categories map[string]entity.Category
	items      map[string]entity.Item
	records    []*entity.Record
}

func newMemStore() *memStore {
	return &memStore{
		categories: map[string]entity.Category{},
		items:      map[string]entity.Item{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	c.records = append([]*entity.Record(nil), s.records...)
	return c
}

type memTxRunner struct {
	s *memStore
}

func (r *memTxRunner) RunCategory(_ context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	itemRepo repository.ItemRepository,
	recordRepo repository.RecordRepository,
) error) error {
	snapshot := r.s.clone()
	err := fn(&memCategoryRepo{r.s}, &memItemRepo{r.s}, &memRecordRepo{r.s})
	if err != nil {
		*r.s = *snapshot
	}
	return err
}

// raceTxRunner aplica una mutación ajena justo antes de abrir la transacción,
// emulando un commit concurrente entre la llamada al caso de uso y el BEGIN.
// La validación del motor debe ver ese estado, no uno anterior.
type raceTxRunner struct {
	inner  *memTxRunner
	before func(*memStore)
}

func (r *raceTxRunner) RunCategory(ctx context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	itemRepo repository.ItemRepository,
	recordRepo repository.RecordRepository,
) error) error {
	if r.before != nil {
		r.before(r.inner.s)
		r.before = nil
	}
	return r.inner.RunCategory(ctx, fn)
}

type memCategoryRepo struct{ s *memStore }

func (r *memCategoryRepo) Create(category *entity.Category) error {
	r.s.categories[category.ID] = *category
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	if c, ok := r.s.categories[id]; ok {
		cp := c
		return &cp, nil
	}
	return nil, nil
}

func (r *memCategoryRepo) GetForUpdate(id string) (*entity.Category, error) {
	return r.GetByID(id)
}

func (r *memCategoryRepo) ListByHousehold(householdID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.s.categories {
		if c.HouseholdID == householdID {
			cp := c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Level != out[b].Level {
			return out[a].Level < out[b].Level
		}
		return out[a].Name < out[b].Name
	})
	return out, nil
}

func (r *memCategoryRepo) ListByParent(householdID, parentID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.s.categories {
		if c.HouseholdID == householdID && c.ParentID == parentID {
			cp := c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out, nil
}

func (r *memCategoryRepo) ExistsSiblingName(householdID, parentID, name string) (bool, error) {
	for _, c := range r.s.categories {
		if c.HouseholdID == householdID && c.ParentID == parentID && c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *memCategoryRepo) Update(category *entity.Category) error {
	r.s.categories[category.ID] = *category
	return nil
}

func (r *memCategoryRepo) DeleteByIDs(ids []string) error {
	for _, id := range ids {
		delete(r.s.categories, id)
	}
	return nil
}

type memItemRepo struct{ s *memStore }

func (r *memItemRepo) Create(item *entity.Item) error {
	r.s.items[item.ID] = *item
	return nil
}

func (r *memItemRepo) GetByID(id string) (*entity.Item, error) {
	if i, ok := r.s.items[id]; ok {
		cp := i
		return &cp, nil
	}
	return nil, nil
}

func (r *memItemRepo) ListByHousehold(householdID string, _ repository.ItemFilter) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, i := range r.s.items {
		if i.HouseholdID == householdID {
			cp := i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memItemRepo) Update(item *entity.Item) error {
	r.s.items[item.ID] = *item
	return nil
}

func (r *memItemRepo) Delete(id string) error {
	delete(r.s.items, id)
	return nil
}

func (r *memItemRepo) ClearCategoryRefs(householdID string, categoryIDs []string) error {
	for id, i := range r.s.items {
		if i.HouseholdID != householdID {
			continue
		}
		for _, cid := range categoryIDs {
			if i.CategoryID == cid {
				i.CategoryID = ""
				r.s.items[id] = i
				break
			}
		}
	}
	return nil
}

type memRecordRepo struct{ s *memStore }

func (r *memRecordRepo) Create(record *entity.Record) error {
	cp := *record
	r.s.records = append(r.s.records, &cp)
	return nil
}

func (r *memRecordRepo) ListByHousehold(householdID string, _ repository.RecordFilter) ([]*entity.Record, error) {
	var out []*entity.Record
	for _, rec := range r.s.records {
		if rec.HouseholdID == householdID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memRecordRepo) DeleteByHousehold(householdID string, _ repository.RecordFilter) error {
	keep := r.s.records[:0]
	for _, rec := range r.s.records {
		if rec.HouseholdID != householdID {
			keep = append(keep, rec)
		}
	}
	r.s.records = keep
	return nil
}

func seedCategory(s *memStore, householdID, id, parentID, name string, level int) {
	s.categories[id] = entity.Category{
		ID: id, HouseholdID: householdID, ParentID: parentID, Name: name, Level: level,
	}
}

func seedItem(s *memStore, householdID, id, name, categoryID string) {
	s.items[id] = entity.Item{ID: id, HouseholdID: householdID, Name: name, CategoryID: categoryID}
}
