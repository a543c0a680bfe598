package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/wekesa/dukapos-api/internal/domain/entity"
	"github.com/wekesa/dukapos-api/internal/domain/repository"
	"github.com/wekesa/dukapos-api/pkg/pagination"
)

// memStore is an in-memory stand-in for the database shared by the fake
// repositories. The fake transactor snapshots it before a unit of work and
// restores the snapshot on error, so tests can assert that failed flows
// leave no partial writes behind.
type memStore struct {
	products  map[uuid.UUID]*entity.Product
	locations map[uuid.UUID]*entity.Location
	balances  map[balanceKey]*entity.StockBalance
	moves     []entity.StockMove
	sales     map[uuid.UUID]*entity.SalesTransaction
	saleItems []entity.SalesItem
	users     map[uuid.UUID]*entity.User
}

type balanceKey struct {
	productID  uuid.UUID
	locationID uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		products:  make(map[uuid.UUID]*entity.Product),
		locations: make(map[uuid.UUID]*entity.Location),
		balances:  make(map[balanceKey]*entity.StockBalance),
		sales:     make(map[uuid.UUID]*entity.SalesTransaction),
		users:     make(map[uuid.UUID]*entity.User),
	}
}

func (s *memStore) addProduct(p entity.Product) *entity.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := p
	s.products[cp.ID] = &cp
	return &cp
}

func (s *memStore) addLocation(l entity.Location) *entity.Location {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	cp := l
	s.locations[cp.ID] = &cp
	return &cp
}

func (s *memStore) setBalance(productID, locationID uuid.UUID, onHand int) {
	s.balances[balanceKey{productID, locationID}] = &entity.StockBalance{
		ID:           uuid.New(),
		ProductID:    productID,
		LocationID:   locationID,
		OnHandQty:    onHand,
		AvailableQty: onHand,
	}
}

// snapshot deep-copies every table
func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for id, p := range s.products {
		v := *p
		cp.products[id] = &v
	}
	for id, l := range s.locations {
		v := *l
		cp.locations[id] = &v
	}
	for k, b := range s.balances {
		v := *b
		cp.balances[k] = &v
	}
	cp.moves = append([]entity.StockMove(nil), s.moves...)
	for id, t := range s.sales {
		v := *t
		cp.sales[id] = &v
	}
	cp.saleItems = append([]entity.SalesItem(nil), s.saleItems...)
	for id, u := range s.users {
		v := *u
		cp.users[id] = &v
	}
	return cp
}

func (s *memStore) restore(from *memStore) {
	s.products = from.products
	s.locations = from.locations
	s.balances = from.balances
	s.moves = from.moves
	s.sales = from.sales
	s.saleItems = from.saleItems
	s.users = from.users
}

// fakeTransactor snapshots the store at the outermost unit of work and rolls
// back on error. A nested call joins the outer unit instead of snapshotting
// again, matching how the real transactor joins an in-flight transaction.
type fakeTransactor struct {
	store *memStore
	depth int
}

func (t *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if t.depth > 0 {
		t.depth++
		err := fn(ctx)
		t.depth--
		return err
	}

	before := t.store.snapshot()
	t.depth++
	err := fn(ctx)
	t.depth--
	if err != nil {
		t.store.restore(before)
	}
	return err
}

// fakeStockRepo

type fakeStockRepo struct{ s *memStore }

func (r *fakeStockRepo) CreateMove(ctx context.Context, move *entity.StockMove) error {
	if move.ID == uuid.Nil {
		move.ID = uuid.New()
	}
	move.CreatedAt = time.Now()
	r.s.moves = append(r.s.moves, *move)
	return nil
}

func (r *fakeStockRepo) AddToBalance(ctx context.Context, productID, locationID uuid.UUID, delta int) (*entity.StockBalance, error) {
	b, ok := r.s.balances[balanceKey{productID, locationID}]
	if !ok {
		return nil, repository.ErrBalanceNotFound
	}
	b.OnHandQty += delta
	b.AvailableQty += delta
	cp := *b
	return &cp, nil
}

func (r *fakeStockRepo) CreateBalance(ctx context.Context, balance *entity.StockBalance) error {
	if balance.ID == uuid.Nil {
		balance.ID = uuid.New()
	}
	cp := *balance
	r.s.balances[balanceKey{balance.ProductID, balance.LocationID}] = &cp
	return nil
}

func (r *fakeStockRepo) GetBalance(ctx context.Context, productID, locationID uuid.UUID) (*entity.StockBalance, error) {
	b, ok := r.s.balances[balanceKey{productID, locationID}]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeStockRepo) SumAvailable(ctx context.Context, productID uuid.UUID) (int, error) {
	total := 0
	for k, b := range r.s.balances {
		if k.productID == productID {
			total += b.AvailableQty
		}
	}
	return total, nil
}

func (r *fakeStockRepo) ListBalances(ctx context.Context) ([]entity.StockBalance, error) {
	out := make([]entity.StockBalance, 0, len(r.s.balances))
	for _, b := range r.s.balances {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out, nil
}

func (r *fakeStockRepo) ListMoves(ctx context.Context, params *repository.MoveFilterParams) ([]entity.StockMove, int64, error) {
	var out []entity.StockMove
	for _, m := range r.s.moves {
		if params.ProductID != nil && m.ProductID != *params.ProductID {
			continue
		}
		if params.RefID != "" && m.RefID != params.RefID {
			continue
		}
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

// fakeProductRepo

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	cp := *product
	r.s.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := r.s.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	cp := *product
	r.s.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.s.products, id)
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range r.s.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) ListWithBalances(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.s.products {
		cp := *p
		for k, b := range r.s.balances {
			if k.productID == p.ID {
				cp.StockBalances = append(cp.StockBalances, *b)
			}
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) UpdateTotalStock(ctx context.Context, id uuid.UUID, total int, inStock bool) error {
	p, ok := r.s.products[id]
	if !ok {
		return nil
	}
	p.TotalStock = total
	p.IsInStock = inStock
	return nil
}

func (r *fakeProductRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	p, ok := r.s.products[id]
	if !ok {
		return nil
	}
	p.IsActive = active
	return nil
}

func (r *fakeProductRepo) CountOutOfStock(ctx context.Context) (int64, error) {
	var count int64
	for _, p := range r.s.products {
		if !p.IsInStock {
			count++
		}
	}
	return count, nil
}

// fakeLocationRepo

type fakeLocationRepo struct{ s *memStore }

func (r *fakeLocationRepo) Create(ctx context.Context, location *entity.Location) error {
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}
	cp := *location
	r.s.locations[location.ID] = &cp
	return nil
}

func (r *fakeLocationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	l, ok := r.s.locations[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLocationRepo) ListActive(ctx context.Context) ([]entity.Location, error) {
	var out []entity.Location
	for _, l := range r.s.locations {
		if l.IsActive {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeLocationRepo) Update(ctx context.Context, location *entity.Location) error {
	cp := *location
	r.s.locations[location.ID] = &cp
	return nil
}

// fakeSaleRepo

type fakeSaleRepo struct{ s *memStore }

func (r *fakeSaleRepo) CreateTransaction(ctx context.Context, txn *entity.SalesTransaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	txn.CreatedAt = time.Now()
	cp := *txn
	r.s.sales[txn.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) CreateItems(ctx context.Context, items []entity.SalesItem) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	r.s.saleItems = append(r.s.saleItems, items...)
	return nil
}

func (r *fakeSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.SalesTransaction, error) {
	txn, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *txn
	for _, item := range r.s.saleItems {
		if item.SalesTransactionID == id {
			cp.Items = append(cp.Items, item)
		}
	}
	return &cp, nil
}

func (r *fakeSaleRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.SalesTransaction, int64, error) {
	var out []entity.SalesTransaction
	for _, txn := range r.s.sales {
		out = append(out, *txn)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, int64(len(out)), nil
}

func (r *fakeSaleRepo) Summary(ctx context.Context, since time.Time) (*repository.SalesSummary, error) {
	summary := &repository.SalesSummary{}
	for _, txn := range r.s.sales {
		if txn.CreatedAt.Before(since) {
			continue
		}
		summary.Transactions++
		summary.Revenue = summary.Revenue.Add(txn.Amount)
	}
	for _, item := range r.s.saleItems {
		if txn, ok := r.s.sales[item.SalesTransactionID]; ok && !txn.CreatedAt.Before(since) {
			summary.ItemsSold += int64(item.Quantity)
		}
	}
	return summary, nil
}

func (r *fakeSaleRepo) TopProducts(ctx context.Context, limit int) ([]repository.TopProductRow, error) {
	byProduct := make(map[uuid.UUID]*repository.TopProductRow)
	for _, item := range r.s.saleItems {
		row, ok := byProduct[item.ProductID]
		if !ok {
			row = &repository.TopProductRow{ProductID: item.ProductID}
			if p, found := r.s.products[item.ProductID]; found {
				row.Name = p.Name
				row.SKU = p.SKU
			}
			byProduct[item.ProductID] = row
		}
		row.QtySold += int64(item.Quantity)
		row.Revenue = row.Revenue.Add(item.Revenue)
	}
	var out []repository.TopProductRow
	for _, row := range byProduct {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Revenue.GreaterThan(out[j].Revenue) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeUserRepo

type fakeUserRepo struct{ s *memStore }

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

// testEnv bundles a fully wired service stack over one shared store
type testEnv struct {
	store    *memStore
	tx       *fakeTransactor
	ledger   *LedgerService
	stock    *StockService
	products *fakeProductRepo
	stocks   *fakeStockRepo
	sales    *fakeSaleRepo
}

func newTestEnv() *testEnv {
	store := newMemStore()
	tx := &fakeTransactor{store: store}
	productRepo := &fakeProductRepo{s: store}
	locationRepo := &fakeLocationRepo{s: store}
	stockRepo := &fakeStockRepo{s: store}
	saleRepo := &fakeSaleRepo{s: store}

	ledger := NewLedgerService(stockRepo, productRepo, locationRepo, tx)
	stock := NewStockService(ledger, stockRepo, productRepo, tx)

	return &testEnv{
		store:    store,
		tx:       tx,
		ledger:   ledger,
		stock:    stock,
		products: productRepo,
		stocks:   stockRepo,
		sales:    saleRepo,
	}
}

func (e *testEnv) checkout(locationID uuid.UUID) *CheckoutService {
	return NewCheckoutService(e.products, e.stocks, e.sales, e.ledger, e.tx, locationID)
}
