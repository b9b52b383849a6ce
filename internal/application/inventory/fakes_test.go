package inventory_test

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/vinoteca/cavastock/internal/domain"
	"github.com/vinoteca/cavastock/internal/domain/entity"
	"github.com/vinoteca/cavastock/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios falsos en memoria. El fakeTxRunner trabaja sobre una copia del
// estado y solo la publica si fn no falla, imitando el Commit/Rollback real:
// así los tests pueden afirmar "ningún escrito parcial observable".
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products    map[string]*entity.Product
	warehouses  map[string]*entity.Warehouse
	typesByName map[string]*entity.MovementType
	stock       map[string]*entity.WarehouseStock // clave productID|warehouseID
	movements   []*entity.StockMovement
}

func newMemStore() *memStore {
	return &memStore{
		products:    map[string]*entity.Product{},
		warehouses:  map[string]*entity.Warehouse{},
		typesByName: map[string]*entity.MovementType{},
		stock:       map[string]*entity.WarehouseStock{},
	}
}

func stockKey(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.products {
		cp := *v
		c.products[k] = &cp
	}
	for k, v := range s.warehouses {
		cp := *v
		c.warehouses[k] = &cp
	}
	for k, v := range s.typesByName {
		cp := *v
		c.typesByName[k] = &cp
	}
	for k, v := range s.stock {
		cp := *v
		c.stock[k] = &cp
	}
	c.movements = make([]*entity.StockMovement, len(s.movements))
	for i, m := range s.movements {
		cp := *m
		c.movements[i] = &cp
	}
	return c
}

type fakeTxRunner struct {
	store *memStore
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	typeRepo repository.MovementTypeRepository,
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.WarehouseStockRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	work := r.store.clone()
	err := fn(
		&fakeMovementTypeRepo{store: work},
		&fakeWarehouseRepo{store: work},
		&fakeProductRepo{store: work},
		&fakeWarehouseStockRepo{store: work},
		&fakeStockMovementRepo{store: work},
	)
	if err != nil {
		return err // rollback: se descarta la copia
	}
	*r.store = *work
	return nil
}

// ── MovementTypeRepository ────────────────────────────────────────────────────

type fakeMovementTypeRepo struct{ store *memStore }

func (r *fakeMovementTypeRepo) GetOrCreate(_ context.Context, name string) (*entity.MovementType, error) {
	if mt, ok := r.store.typesByName[name]; ok {
		cp := *mt
		return &cp, nil
	}
	mt := &entity.MovementType{ID: uuid.New().String(), Name: name, CreatedAt: time.Now()}
	r.store.typesByName[name] = mt
	cp := *mt
	return &cp, nil
}

// ── WarehouseRepository ───────────────────────────────────────────────────────

type fakeWarehouseRepo struct{ store *memStore }

func (r *fakeWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	for _, existing := range r.store.warehouses {
		if existing.Code == w.Code {
			return domain.ErrDuplicate
		}
	}
	cp := *w
	r.store.warehouses[w.ID] = &cp
	return nil
}

func (r *fakeWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	w, ok := r.store.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWarehouseRepo) GetByCode(_ context.Context, code string) (*entity.Warehouse, error) {
	for _, w := range r.store.warehouses {
		if w.Code == code {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeWarehouseRepo) EnsureDefault(ctx context.Context) (*entity.Warehouse, error) {
	if w, err := r.GetByCode(ctx, entity.DefaultWarehouseCode); err != nil || w != nil {
		return w, err
	}
	w := &entity.Warehouse{
		ID:        uuid.New().String(),
		Code:      entity.DefaultWarehouseCode,
		Name:      entity.DefaultWarehouseName,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.store.warehouses[w.ID] = w
	cp := *w
	return &cp, nil
}

func (r *fakeWarehouseRepo) List(_ context.Context, limit, offset int) ([]*entity.Warehouse, error) {
	var list []*entity.Warehouse
	for _, w := range r.store.warehouses {
		cp := *w
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return paginate(list, limit, offset), nil
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type fakeProductRepo struct{ store *memStore }

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateTotalStock(_ context.Context, productID string, total int64) error {
	p, ok := r.store.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.TotalStockQuantity = total
	p.UpdatedAt = time.Now()
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.store.products {
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return paginate(list, limit, offset), nil
}

// ── WarehouseStockRepository ──────────────────────────────────────────────────

type fakeWarehouseStockRepo struct{ store *memStore }

func (r *fakeWarehouseStockRepo) Get(_ context.Context, productID, warehouseID string) (*entity.WarehouseStock, error) {
	if s, ok := r.store.stock[stockKey(productID, warehouseID)]; ok {
		cp := *s
		return &cp, nil
	}
	return &entity.WarehouseStock{ProductID: productID, WarehouseID: warehouseID}, nil
}

func (r *fakeWarehouseStockRepo) GetForUpdate(ctx context.Context, productID, warehouseID string) (*entity.WarehouseStock, error) {
	return r.Get(ctx, productID, warehouseID)
}

func (r *fakeWarehouseStockRepo) Upsert(_ context.Context, s *entity.WarehouseStock) error {
	cp := *s
	r.store.stock[stockKey(s.ProductID, s.WarehouseID)] = &cp
	return nil
}

func (r *fakeWarehouseStockRepo) ListByProduct(_ context.Context, productID string) ([]repository.StockByWarehouse, error) {
	var list []repository.StockByWarehouse
	for _, s := range r.store.stock {
		if s.ProductID != productID {
			continue
		}
		w := r.store.warehouses[s.WarehouseID]
		row := repository.StockByWarehouse{
			WarehouseID:      s.WarehouseID,
			QuantityOnHand:   s.QuantityOnHand,
			QuantityReserved: s.QuantityReserved,
			MinLevel:         s.MinLevel,
			UpdatedAt:        s.UpdatedAt,
		}
		if w != nil {
			row.WarehouseCode = w.Code
			row.WarehouseName = w.Name
		}
		list = append(list, row)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].WarehouseCode < list[j].WarehouseCode })
	return list, nil
}

// ── StockMovementRepository ───────────────────────────────────────────────────

type fakeStockMovementRepo struct{ store *memStore }

func (r *fakeStockMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	cp := *m
	r.store.movements = append(r.store.movements, &cp)
	return nil
}

func (r *fakeStockMovementRepo) ListRecent(_ context.Context, limit int) ([]repository.MovementRecord, error) {
	var records []repository.MovementRecord
	// orden de inserción invertido = más recientes primero
	for i := len(r.store.movements) - 1; i >= 0 && len(records) < limit; i-- {
		records = append(records, r.toRecord(r.store.movements[i]))
	}
	return records, nil
}

func (r *fakeStockMovementRepo) ListByProduct(_ context.Context, productID string, limit, offset int) ([]repository.MovementRecord, error) {
	var records []repository.MovementRecord
	for _, m := range r.store.movements {
		if m.ProductID == productID {
			records = append(records, r.toRecord(m))
		}
	}
	return paginate(records, limit, offset), nil
}

func (r *fakeStockMovementRepo) toRecord(m *entity.StockMovement) repository.MovementRecord {
	rec := repository.MovementRecord{
		ID:              m.ID,
		ProductID:       m.ProductID,
		WarehouseID:     m.WarehouseID,
		Quantity:        m.Quantity,
		Reason:          m.Reason,
		CurrentQuantity: m.CurrentQuantity,
		CreatedAt:       m.CreatedAt,
	}
	if p := r.store.products[m.ProductID]; p != nil {
		rec.ProductName = p.Name
	}
	if w := r.store.warehouses[m.WarehouseID]; w != nil {
		rec.WarehouseCode = w.Code
	}
	for _, t := range r.store.typesByName {
		if t.ID == m.MovementTypeID {
			rec.MovementTypeName = t.Name
			break
		}
	}
	return rec
}

func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
