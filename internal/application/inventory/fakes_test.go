package inventory_test

import (
	"context"
	"sort"

	"github.com/jhoicas/hogar-api/internal/domain/entity"
	"github.com/jhoicas/hogar-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: implementan los puertos de repositorio sobre mapas para
// probar los casos de uso sin PostgreSQL. memTxRunner emula la atomicidad
// real con snapshot/restore: si fn falla, el estado vuelve al de antes.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	items      map[string]entity.Item
	cabinets   map[string]entity.Cabinet
	categories map[string]entity.Category
	ledger     map[string]map[entity.LocationRef]entity.LedgerEntry
	records    []*entity.Record
}

func newMemStore() *memStore {
	return &memStore{
		items:      map[string]entity.Item{},
		cabinets:   map[string]entity.Cabinet{},
		categories: map[string]entity.Category{},
		ledger:     map[string]map[entity.LocationRef]entity.LedgerEntry{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.items {
		c.items[k] = v
	}
	for k, v := range s.cabinets {
		c.cabinets[k] = v
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for item, locs := range s.ledger {
		m := map[entity.LocationRef]entity.LedgerEntry{}
		for loc, e := range locs {
			m[loc] = e
		}
		c.ledger[item] = m
	}
	c.records = append([]*entity.Record(nil), s.records...)
	return c
}

// memTxRunner implementa inventory.TxRunner con semántica todo-o-nada.
type memTxRunner struct {
	s *memStore
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
	itemRepo repository.ItemRepository,
	cabinetRepo repository.CabinetRepository,
	recordRepo repository.RecordRepository,
) error) error {
	snapshot := r.s.clone()
	err := fn(&memLedgerRepo{r.s}, &memItemRepo{r.s}, &memCabinetRepo{r.s}, &memRecordRepo{r.s})
	if err != nil {
		*r.s = *snapshot
	}
	return err
}

// ───────────────────────────── ledger ─────────────────────────────

type memLedgerRepo struct{ s *memStore }

func (r *memLedgerRepo) Get(itemID string, loc entity.LocationRef) (*entity.LedgerEntry, error) {
	if e, ok := r.s.ledger[itemID][loc]; ok {
		cp := e
		return &cp, nil
	}
	return &entity.LedgerEntry{ItemID: itemID, Location: loc}, nil
}

func (r *memLedgerRepo) GetForUpdate(itemID string, loc entity.LocationRef) (*entity.LedgerEntry, error) {
	return r.Get(itemID, loc)
}

func (r *memLedgerRepo) Upsert(entry *entity.LedgerEntry) error {
	if r.s.ledger[entry.ItemID] == nil {
		r.s.ledger[entry.ItemID] = map[entity.LocationRef]entity.LedgerEntry{}
	}
	r.s.ledger[entry.ItemID][entry.Location] = *entry
	return nil
}

func (r *memLedgerRepo) Delete(itemID string, loc entity.LocationRef) error {
	delete(r.s.ledger[itemID], loc)
	return nil
}

func (r *memLedgerRepo) ListByItem(itemID string) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range r.s.ledger[itemID] {
		cp := e
		out = append(out, &cp)
	}
	// sin asignar primero, luego por gabinete (mismo orden que el SQL)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Location.Assigned != out[j].Location.Assigned {
			return !out[i].Location.Assigned
		}
		return out[i].Location.CabinetID < out[j].Location.CabinetID
	})
	return out, nil
}

func (r *memLedgerRepo) SumByItem(itemID string) (int, error) {
	total := 0
	for _, e := range r.s.ledger[itemID] {
		total += e.Quantity
	}
	return total, nil
}

func (r *memLedgerRepo) DeleteByItem(itemID string) error {
	delete(r.s.ledger, itemID)
	return nil
}

func (r *memLedgerRepo) ListByCabinet(cabinetID string) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, locs := range r.s.ledger {
		for loc, e := range locs {
			if loc.Assigned && loc.CabinetID == cabinetID {
				cp := e
				out = append(out, &cp)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

// ───────────────────────────── items ─────────────────────────────

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

func (r *memItemRepo) ListByHousehold(householdID string, filter repository.ItemFilter) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, i := range r.s.items {
		if i.HouseholdID != householdID {
			continue
		}
		if filter.CabinetID != "" {
			if _, ok := r.s.ledger[i.ID][entity.AtCabinet(filter.CabinetID)]; !ok {
				continue
			}
		}
		if len(filter.CategoryIDs) > 0 {
			match := false
			for _, cid := range filter.CategoryIDs {
				if i.CategoryID == cid {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		cp := i
		out = append(out, &cp)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
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

// ───────────────────────────── cabinets ─────────────────────────────

type memCabinetRepo struct{ s *memStore }

func (r *memCabinetRepo) Create(cabinet *entity.Cabinet) error {
	r.s.cabinets[cabinet.ID] = *cabinet
	return nil
}

func (r *memCabinetRepo) GetByID(id string) (*entity.Cabinet, error) {
	if c, ok := r.s.cabinets[id]; ok {
		cp := c
		return &cp, nil
	}
	return nil, nil
}

func (r *memCabinetRepo) GetByIDs(householdID string, ids []string) ([]*entity.Cabinet, error) {
	var out []*entity.Cabinet
	for _, id := range ids {
		if c, ok := r.s.cabinets[id]; ok && c.HouseholdID == householdID {
			cp := c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memCabinetRepo) ListByHousehold(householdID string) ([]*entity.Cabinet, error) {
	var out []*entity.Cabinet
	for _, c := range r.s.cabinets {
		if c.HouseholdID == householdID {
			cp := c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (r *memCabinetRepo) Update(cabinet *entity.Cabinet) error {
	r.s.cabinets[cabinet.ID] = *cabinet
	return nil
}

func (r *memCabinetRepo) Delete(id string) error {
	delete(r.s.cabinets, id)
	return nil
}

// ───────────────────────────── categories ─────────────────────────────

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

// ───────────────────────────── records ─────────────────────────────

type memRecordRepo struct{ s *memStore }

func (r *memRecordRepo) Create(record *entity.Record) error {
	cp := *record
	r.s.records = append(r.s.records, &cp)
	return nil
}

func (r *memRecordRepo) ListByHousehold(householdID string, filter repository.RecordFilter) ([]*entity.Record, error) {
	var out []*entity.Record
	for _, rec := range r.s.records {
		if rec.HouseholdID != householdID {
			continue
		}
		if filter.ID != "" && rec.ID != filter.ID {
			continue
		}
		if filter.OperateType != nil && rec.OperateType != *filter.OperateType {
			continue
		}
		if filter.EntityType != nil && rec.EntityType != *filter.EntityType {
			continue
		}
		if filter.StartDate != nil && rec.CreatedAt.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && rec.CreatedAt.After(*filter.EndDate) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *memRecordRepo) DeleteByHousehold(householdID string, filter repository.RecordFilter) error {
	keep := r.s.records[:0]
	matches, _ := r.ListByHousehold(householdID, filter)
	matched := map[*entity.Record]bool{}
	for _, m := range matches {
		matched[m] = true
	}
	for _, rec := range r.s.records {
		if !matched[rec] {
			keep = append(keep, rec)
		}
	}
	r.s.records = keep
	return nil
}

// ───────────────────────────── seeds ─────────────────────────────

func seedItem(s *memStore, householdID, id, name string, minStock int) {
	s.items[id] = entity.Item{ID: id, HouseholdID: householdID, Name: name, MinStockAlert: minStock}
}

func seedCabinet(s *memStore, householdID, id, name string) {
	s.cabinets[id] = entity.Cabinet{ID: id, HouseholdID: householdID, Name: name}
}

func seedLedger(s *memStore, householdID, itemID string, loc entity.LocationRef, qty int) {
	if s.ledger[itemID] == nil {
		s.ledger[itemID] = map[entity.LocationRef]entity.LedgerEntry{}
	}
	s.ledger[itemID][loc] = entity.LedgerEntry{
		ID: "seed-" + itemID + "-" + loc.CabinetID, HouseholdID: householdID,
		ItemID: itemID, Location: loc, Quantity: qty,
	}
}

func quantityAt(s *memStore, itemID string, loc entity.LocationRef) int {
	return s.ledger[itemID][loc].Quantity
}

func hasRow(s *memStore, itemID string, loc entity.LocationRef) bool {
	_, ok := s.ledger[itemID][loc]
	return ok
}

func totalOf(s *memStore, itemID string) int {
	total := 0
	for _, e := range s.ledger[itemID] {
		total += e.Quantity
	}
	return total
}
