package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"inventory-api/internal/model"
	"inventory-api/internal/paging"
)

func roleNameFor(id int) string {
	switch id {
	case model.RoleAdminID:
		return model.RoleAdminName
	case model.RoleManagementID:
		return model.RoleManagementName
	case model.RoleAuditorID:
		return model.RoleAuditorName
	}
	return ""
}

// fakeUserStore is an in-memory UserStore. Setting err makes every call fail
// with that error.
type fakeUserStore struct {
	mu     sync.Mutex
	users  map[int]model.User
	nextID int
	err    error

	storeTokenCalls int
	touchCalls      int
}

func newFakeUserStore(seed ...model.User) *fakeUserStore {
	f := &fakeUserStore{users: make(map[int]model.User), nextID: 1}
	for _, u := range seed {
		if u.ID >= f.nextID {
			f.nextID = u.ID + 1
		}
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserStore) get(id int) (model.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	return u, ok
}

func (f *fakeUserStore) FindByID(_ context.Context, id int) (model.User, error) {
	if f.err != nil {
		return model.User{}, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (model.User, error) {
	if f.err != nil {
		return model.User{}, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (f *fakeUserStore) FindByRefreshToken(_ context.Context, token string) (model.User, error) {
	if f.err != nil {
		return model.User{}, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.RefreshToken != nil && *u.RefreshToken == token {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (f *fakeUserStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) List(_ context.Context, p paging.Params, filter string) ([]model.User, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	all := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		if filter == "" || strings.Contains(u.Email, filter) {
			all = append(all, u)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Email < all[j].Email })

	total := len(all)
	limit, offset := p.Window()
	if offset >= total {
		return nil, total, nil
	}
	if offset+limit > total {
		limit = total - offset
	}
	return all[offset : offset+limit], total, nil
}

func (f *fakeUserStore) Create(_ context.Context, u model.User) (model.User, error) {
	if f.err != nil {
		return model.User{}, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u.ID = f.nextID
	f.nextID++
	u.RoleName = roleNameFor(u.RoleID)
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserStore) Update(_ context.Context, u model.User) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, ok := f.users[u.ID]
	if !ok {
		return model.ErrNotFound
	}
	cur.Email = u.Email
	cur.FullName = u.FullName
	cur.RoleID = u.RoleID
	cur.RoleName = roleNameFor(u.RoleID)
	cur.Active = u.Active
	f.users[u.ID] = cur
	return nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, userID int, passwordHash string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return model.ErrNotFound
	}
	u.PasswordHash = passwordHash
	f.users[userID] = u
	return nil
}

func (f *fakeUserStore) StoreRefreshToken(_ context.Context, userID int, token string, expiresAt time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.storeTokenCalls++
	u, ok := f.users[userID]
	if !ok {
		return model.ErrNotFound
	}
	u.RefreshToken = &token
	u.RefreshTokenExpiry = &expiresAt
	f.users[userID] = u
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return model.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserStore) Touch(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touchCalls++
	return f.err
}

type fakeWarehouseStore struct {
	mu         sync.Mutex
	warehouses map[int]model.Warehouse
	nextID     int
	err        error
}

func newFakeWarehouseStore(seed ...model.Warehouse) *fakeWarehouseStore {
	f := &fakeWarehouseStore{warehouses: make(map[int]model.Warehouse), nextID: 1}
	for _, w := range seed {
		if w.ID >= f.nextID {
			f.nextID = w.ID + 1
		}
		f.warehouses[w.ID] = w
	}
	return f
}

func (f *fakeWarehouseStore) FindByID(_ context.Context, id int) (model.Warehouse, error) {
	if f.err != nil {
		return model.Warehouse{}, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.warehouses[id]
	if !ok {
		return model.Warehouse{}, model.ErrNotFound
	}
	return w, nil
}

func (f *fakeWarehouseStore) ExistsByName(_ context.Context, name string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.warehouses {
		if w.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWarehouseStore) List(_ context.Context, p paging.Params, filter string) ([]model.Warehouse, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	all := make([]model.Warehouse, 0, len(f.warehouses))
	for _, w := range f.warehouses {
		if filter == "" || strings.Contains(w.Name, filter) {
			all = append(all, w)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	total := len(all)
	limit, offset := p.Window()
	if offset >= total {
		return nil, total, nil
	}
	if offset+limit > total {
		limit = total - offset
	}
	return all[offset : offset+limit], total, nil
}

func (f *fakeWarehouseStore) Create(_ context.Context, w model.Warehouse) (model.Warehouse, error) {
	if f.err != nil {
		return model.Warehouse{}, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	w.ID = f.nextID
	f.nextID++
	f.warehouses[w.ID] = w
	return w, nil
}

func (f *fakeWarehouseStore) Update(_ context.Context, w model.Warehouse) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, ok := f.warehouses[w.ID]
	if !ok {
		return model.ErrNotFound
	}
	cur.Name = w.Name
	cur.Address = w.Address
	cur.City = w.City
	cur.Country = w.Country
	f.warehouses[w.ID] = cur
	return nil
}

func (f *fakeWarehouseStore) Delete(_ context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.warehouses[id]; !ok {
		return model.ErrNotFound
	}
	delete(f.warehouses, id)
	return nil
}

type fakeItemStore struct {
	mu     sync.Mutex
	items  map[int]model.WarehouseItem
	nextID int
	err    error
}

func newFakeItemStore(seed ...model.WarehouseItem) *fakeItemStore {
	f := &fakeItemStore{items: make(map[int]model.WarehouseItem), nextID: 1}
	for _, it := range seed {
		if it.ID >= f.nextID {
			f.nextID = it.ID + 1
		}
		f.items[it.ID] = it
	}
	return f
}

func (f *fakeItemStore) FindByID(_ context.Context, id int) (model.WarehouseItem, error) {
	if f.err != nil {
		return model.WarehouseItem{}, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.items[id]
	if !ok {
		return model.WarehouseItem{}, model.ErrNotFound
	}
	return it, nil
}

func (f *fakeItemStore) ExistsInWarehouse(_ context.Context, warehouseID int, itemName string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.WarehouseID == warehouseID && it.ItemName == itemName {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeItemStore) List(_ context.Context, p paging.Params, filter string) ([]model.WarehouseItem, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	all := make([]model.WarehouseItem, 0, len(f.items))
	for _, it := range f.items {
		if filter == "" || strings.Contains(it.ItemName, filter) {
			all = append(all, it)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ItemName < all[j].ItemName })

	total := len(all)
	limit, offset := p.Window()
	if offset >= total {
		return nil, total, nil
	}
	if offset+limit > total {
		limit = total - offset
	}
	return all[offset : offset+limit], total, nil
}

func (f *fakeItemStore) TopByQuantity(_ context.Context, limit int, lowest bool) ([]model.WarehouseItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	all := make([]model.WarehouseItem, 0, len(f.items))
	for _, it := range f.items {
		all = append(all, it)
	}
	sort.Slice(all, func(i, j int) bool {
		if lowest {
			return all[i].Quantity < all[j].Quantity
		}
		return all[i].Quantity > all[j].Quantity
	})

	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeItemStore) Create(_ context.Context, it model.WarehouseItem) (model.WarehouseItem, error) {
	if f.err != nil {
		return model.WarehouseItem{}, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	it.ID = f.nextID
	f.nextID++
	f.items[it.ID] = it
	return it, nil
}

func (f *fakeItemStore) Update(_ context.Context, it model.WarehouseItem) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[it.ID]; !ok {
		return model.ErrNotFound
	}
	f.items[it.ID] = it
	return nil
}

func (f *fakeItemStore) Delete(_ context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return model.ErrNotFound
	}
	delete(f.items, id)
	return nil
}
