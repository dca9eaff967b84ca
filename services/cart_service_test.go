package services

import (
	"context"
	"sync"
	"testing"

	"shophub/models"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/sync/errgroup"
)

// --- In-memory fakes ---

type fakeUsers struct {
	ids map[int]bool
}

func (f *fakeUsers) Create(ctx context.Context, user *models.User) error { return nil }
func (f *fakeUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, pgx.ErrNoRows
}
func (f *fakeUsers) FindByID(ctx context.Context, id int) (*models.User, error) {
	if f.ids[id] {
		return &models.User{ID: id}, nil
	}
	return nil, pgx.ErrNoRows
}
func (f *fakeUsers) Exists(ctx context.Context, id int) (bool, error) {
	return f.ids[id], nil
}

type fakeItems struct {
	mu sync.Mutex
	m  map[int]models.Item
}

func (f *fakeItems) Create(ctx context.Context, item *models.Item) error { return nil }
func (f *fakeItems) FindAll(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	return nil, nil
}
func (f *fakeItems) FindByID(ctx context.Context, id int) (*models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.m[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &item, nil
}
func (f *fakeItems) Exists(ctx context.Context, id int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.m[id]
	return ok, nil
}
func (f *fakeItems) Update(ctx context.Context, item *models.Item) error { return nil }
func (f *fakeItems) Delete(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.m, id)
	return nil
}
func (f *fakeItems) Categories(ctx context.Context) ([]string, error) { return nil, nil }

type cartKey struct{ userID, itemID int }

// fakeCart applies each mutation under a lock, mirroring the storage-level
// atomic upsert.
type fakeCart struct {
	mu    sync.Mutex
	order []cartKey
	qty   map[cartKey]int
	items *fakeItems
}

func newFakeCart(items *fakeItems) *fakeCart {
	return &fakeCart{qty: map[cartKey]int{}, items: items}
}

func (f *fakeCart) AddItem(ctx context.Context, userID, itemID, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := cartKey{userID, itemID}
	if _, ok := f.qty[key]; !ok {
		f.order = append(f.order, key)
	}
	f.qty[key] += quantity
	return nil
}

func (f *fakeCart) RemoveItem(ctx context.Context, userID, itemID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := cartKey{userID, itemID}
	if _, ok := f.qty[key]; !ok {
		return nil
	}
	delete(f.qty, key)
	for i, k := range f.order {
		if k == key {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeCart) ResolvedLines(ctx context.Context, userID int) ([]models.ResolvedCartLine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items.mu.Lock()
	defer f.items.mu.Unlock()

	lines := []models.ResolvedCartLine{}
	for _, key := range f.order {
		if key.userID != userID {
			continue
		}
		item, ok := f.items.m[key.itemID]
		if !ok {
			continue
		}
		lines = append(lines, models.ResolvedCartLine{Item: item, Quantity: f.qty[key]})
	}
	return lines, nil
}

func newTestCartService(userIDs []int, items map[int]models.Item) (*CartService, *fakeCart) {
	users := &fakeUsers{ids: map[int]bool{}}
	for _, id := range userIDs {
		users.ids[id] = true
	}
	itemStore := &fakeItems{m: items}
	cart := newFakeCart(itemStore)
	return NewCartService(users, itemStore, cart), cart
}

// --- Mocks for not-called assertions ---

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) AddItem(ctx context.Context, userID, itemID, quantity int) error {
	args := m.Called(ctx, userID, itemID, quantity)
	return args.Error(0)
}
func (m *MockCartRepository) RemoveItem(ctx context.Context, userID, itemID int) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}
func (m *MockCartRepository) ResolvedLines(ctx context.Context, userID int) ([]models.ResolvedCartLine, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ResolvedCartLine), args.Error(1)
}

// --- Tests ---

func TestAddItemMergesQuantities(t *testing.T) {
	svc, _ := newTestCartService([]int{1}, map[int]models.Item{
		42: {ID: 42, Name: "Mug", Price: 9.5},
	})
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, 42, 2)
	assert.NoError(t, err)

	lines, err := svc.AddItem(ctx, 1, 42, 3)
	assert.NoError(t, err)

	assert.Len(t, lines, 1)
	assert.Equal(t, 42, lines[0].Item.ID)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddItemRoundTripResolvesItemData(t *testing.T) {
	svc, _ := newTestCartService([]int{1}, map[int]models.Item{
		42: {ID: 42, Name: "Mug", Price: 9.5},
	})
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, 42, 1)
	assert.NoError(t, err)

	lines, err := svc.GetCart(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, "Mug", lines[0].Item.Name)
	assert.Equal(t, 9.5, lines[0].Item.Price)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	cartRepo := new(MockCartRepository)
	svc := NewCartService(&fakeUsers{ids: map[int]bool{1: true}}, &fakeItems{m: map[int]models.Item{}}, cartRepo)

	for _, quantity := range []int{0, -1, -10} {
		_, err := svc.AddItem(context.Background(), 1, 42, quantity)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
	cartRepo.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddItemUnknownItemLeavesCartUnchanged(t *testing.T) {
	cartRepo := new(MockCartRepository)
	svc := NewCartService(
		&fakeUsers{ids: map[int]bool{1: true}},
		&fakeItems{m: map[int]models.Item{42: {ID: 42}}},
		cartRepo,
	)

	_, err := svc.AddItem(context.Background(), 1, 999, 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
	cartRepo.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetCartUnknownUser(t *testing.T) {
	svc, _ := newTestCartService(nil, map[int]models.Item{})

	_, err := svc.GetCart(context.Background(), 7)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	svc, _ := newTestCartService([]int{1}, map[int]models.Item{
		42: {ID: 42, Name: "Mug"},
	})
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, 42, 1)
	assert.NoError(t, err)

	// Removing an item never in the cart is a no-op.
	lines, err := svc.RemoveItem(ctx, 1, 999)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)

	lines, err = svc.RemoveItem(ctx, 1, 42)
	assert.NoError(t, err)
	assert.Len(t, lines, 0)

	// And removing it again still succeeds.
	lines, err = svc.RemoveItem(ctx, 1, 42)
	assert.NoError(t, err)
	assert.Len(t, lines, 0)
}

func TestGetCartDropsDeletedItems(t *testing.T) {
	items := map[int]models.Item{
		42: {ID: 42, Name: "Mug"},
		43: {ID: 43, Name: "Plate"},
	}
	svc, _ := newTestCartService([]int{1}, items)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, 42, 1)
	assert.NoError(t, err)
	_, err = svc.AddItem(ctx, 1, 43, 2)
	assert.NoError(t, err)

	// Catalog deletion while the line still references the item.
	itemStore := svc.itemRepo.(*fakeItems)
	assert.NoError(t, itemStore.Delete(ctx, 42))

	lines, err := svc.GetCart(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, 43, lines[0].Item.ID)
}

func TestConcurrentAddsAreNotLost(t *testing.T) {
	svc, _ := newTestCartService([]int{1}, map[int]models.Item{
		42: {ID: 42, Name: "Mug"},
	})
	ctx := context.Background()

	const n = 100
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, err := svc.AddItem(ctx, 1, 42, 1)
			return err
		})
	}
	assert.NoError(t, g.Wait())

	lines, err := svc.GetCart(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, n, lines[0].Quantity)
}

func TestGetCartPreservesInsertionOrder(t *testing.T) {
	svc, _ := newTestCartService([]int{1}, map[int]models.Item{
		1: {ID: 1}, 2: {ID: 2}, 3: {ID: 3},
	})
	ctx := context.Background()

	for _, id := range []int{3, 1, 2} {
		_, err := svc.AddItem(ctx, 1, id, 1)
		assert.NoError(t, err)
	}

	lines, err := svc.GetCart(ctx, 1)
	assert.NoError(t, err)
	got := []int{}
	for _, line := range lines {
		got = append(got, line.Item.ID)
	}
	assert.Equal(t, []int{3, 1, 2}, got)
}
