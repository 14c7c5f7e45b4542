package usecase_test

import (
	"context"
	"strings"
	"time"

	"github.com/lucasmgo/frota-gr-api/internal/domain/entity"
	"github.com/lucasmgo/frota-gr-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositórios em memória para os testes de caso de uso
// ──────────────────────────────────────────────────────────────────────────────

type memBaseRepo struct {
	bases map[string]*entity.Base
}

func newMemBaseRepo() *memBaseRepo { return &memBaseRepo{bases: map[string]*entity.Base{}} }

func (r *memBaseRepo) Create(b *entity.Base) error { r.bases[b.ID] = b; return nil }

func (r *memBaseRepo) GetByID(id string) (*entity.Base, error) { return r.bases[id], nil }

func (r *memBaseRepo) GetByName(name string) (*entity.Base, error) {
	for _, b := range r.bases {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, nil
}

func (r *memBaseRepo) Update(b *entity.Base) error { r.bases[b.ID] = b; return nil }

func (r *memBaseRepo) List(limit, offset int) ([]*entity.Base, error) {
	out := make([]*entity.Base, 0, len(r.bases))
	for _, b := range r.bases {
		out = append(out, b)
	}
	return out, nil
}

func (r *memBaseRepo) Delete(id string) error { delete(r.bases, id); return nil }

type memItemRepo struct {
	items map[string]*entity.ServiceItem
}

func newMemItemRepo() *memItemRepo { return &memItemRepo{items: map[string]*entity.ServiceItem{}} }

func (r *memItemRepo) Create(it *entity.ServiceItem) error { r.items[it.ID] = it; return nil }

func (r *memItemRepo) GetByID(id string) (*entity.ServiceItem, error) { return r.items[id], nil }

func (r *memItemRepo) Update(it *entity.ServiceItem) error { r.items[it.ID] = it; return nil }

func (r *memItemRepo) List(baseID string, limit, offset int) ([]*entity.ServiceItem, error) {
	out := make([]*entity.ServiceItem, 0, len(r.items))
	for _, it := range r.items {
		if it.Deleted() {
			continue
		}
		if baseID != "" && it.BaseID != baseID {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (r *memItemRepo) SoftDelete(id string, at time.Time) error {
	if it, ok := r.items[id]; ok {
		it.DeletedAt = &at
		it.UpdatedAt = at
	}
	return nil
}

type memOrderRepo struct {
	orders map[string]*entity.RepairOrder
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: map[string]*entity.RepairOrder{}}
}

func (r *memOrderRepo) Create(o *entity.RepairOrder) error { r.orders[o.ID] = o; return nil }

func (r *memOrderRepo) GetByID(id string) (*entity.RepairOrder, error) { return r.orders[id], nil }

func (r *memOrderRepo) Update(o *entity.RepairOrder) error { r.orders[o.ID] = o; return nil }

func (r *memOrderRepo) List(plate string, limit, offset int) ([]*entity.RepairOrder, error) {
	out := make([]*entity.RepairOrder, 0, len(r.orders))
	for _, o := range r.orders {
		if plate != "" && !strings.Contains(o.Plate, plate) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *memOrderRepo) Delete(id string) error { delete(r.orders, id); return nil }

func (r *memOrderRepo) CountByBase(baseID string) (int, error) {
	n := 0
	for _, o := range r.orders {
		if o.BaseID == baseID {
			n++
		}
	}
	return n, nil
}

type memServiceRepo struct {
	services map[string]*entity.RepairOrderService
}

func newMemServiceRepo() *memServiceRepo {
	return &memServiceRepo{services: map[string]*entity.RepairOrderService{}}
}

func (r *memServiceRepo) Create(s *entity.RepairOrderService) error {
	r.services[s.ID] = s
	return nil
}

func (r *memServiceRepo) GetByID(id string) (*entity.RepairOrderService, error) {
	return r.services[id], nil
}

func (r *memServiceRepo) Update(s *entity.RepairOrderService) error {
	r.services[s.ID] = s
	return nil
}

func (r *memServiceRepo) ListByOrder(repairOrderID string) ([]*entity.RepairOrderService, error) {
	out := make([]*entity.RepairOrderService, 0)
	for _, s := range r.services {
		if s.RepairOrderID != repairOrderID || s.Deleted() {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *memServiceRepo) SoftDelete(id string, at time.Time) error {
	if s, ok := r.services[id]; ok {
		s.DeletedAt = &at
		s.UpdatedAt = at
	}
	return nil
}

func (r *memServiceRepo) DeleteByOrder(repairOrderID string) error {
	for id, s := range r.services {
		if s.RepairOrderID == repairOrderID {
			delete(r.services, id)
		}
	}
	return nil
}

// fakeTxRunner executa o fechamento direto sobre os repositórios em memória,
// sem semântica transacional (os testes não exercitam rollback).
type fakeTxRunner struct {
	orders *memOrderRepo
	svcs   *memServiceRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.RepairOrderRepository, repository.RepairOrderServiceRepository) error) error {
	return fn(r.orders, r.svcs)
}
