package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"tiembanh_mousse/internal/domain/entities"
	"tiembanh_mousse/internal/usecase/interfaces"
	"tiembanh_mousse/pkg/identity"
)

var ErrCatalogRecordNotFound = errors.New("record not found")

// CatalogUseCase serves the plain CRUD screens (customers, products,
// employees): a live snapshot list plus create-or-replace and delete. No
// derivation happens here beyond decoding.
type CatalogUseCase[T any] struct {
	store interfaces.IRealtimeStore
	path  string
	live  *liveList[T]
	getID func(T) string
	setID func(*T, string)
}

func newCatalogUseCase[T any](store interfaces.IRealtimeStore, path string, getID func(T) string, setID func(*T, string)) *CatalogUseCase[T] {
	u := &CatalogUseCase[T]{store: store, path: path, getID: getID, setID: setID}
	u.live = newLiveList(store, path, func(id string, doc json.RawMessage) (T, bool) {
		var item T
		if err := json.Unmarshal(doc, &item); err != nil {
			return item, false
		}
		u.setID(&item, id)
		return item, true
	})
	return u
}

func NewCustomerUseCase(store interfaces.IRealtimeStore) *CatalogUseCase[entities.Customer] {
	return newCatalogUseCase(store, "customers",
		func(c entities.Customer) string { return c.ID },
		func(c *entities.Customer, id string) { c.ID = id })
}

func NewProductUseCase(store interfaces.IRealtimeStore) *CatalogUseCase[entities.Product] {
	return newCatalogUseCase(store, "products",
		func(p entities.Product) string { return p.ID },
		func(p *entities.Product, id string) { p.ID = id })
}

func NewEmployeeUseCase(store interfaces.IRealtimeStore) *CatalogUseCase[entities.Employee] {
	return newCatalogUseCase(store, "employees",
		func(e entities.Employee) string { return e.ID },
		func(e *entities.Employee, id string) { e.ID = id })
}

func (u *CatalogUseCase[T]) Start(ctx context.Context) error {
	return u.live.Start(ctx)
}

func (u *CatalogUseCase[T]) Stop() {
	u.live.Stop()
}

func (u *CatalogUseCase[T]) List() ([]T, error) {
	return u.live.Items()
}

func (u *CatalogUseCase[T]) Get(id string) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	if id == "" {
		return zero, ErrCatalogRecordNotFound
	}
	items, err := u.live.Items()
	if err != nil {
		return zero, err
	}
	for _, it := range items {
		if u.getID(it) == id {
			return it, nil
		}
	}
	return zero, ErrCatalogRecordNotFound
}

// Save creates or fully replaces a record; a missing id gets generated.
func (u *CatalogUseCase[T]) Save(ctx context.Context, item T) (T, error) {
	id := strings.TrimSpace(u.getID(item))
	if id == "" {
		id = identity.NewRecordID()
		u.setID(&item, id)
	}
	if err := u.store.Write(ctx, u.path+"/"+id, item); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

func (u *CatalogUseCase[T]) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	if _, err := u.Get(id); err != nil {
		return err
	}
	return u.store.Delete(ctx, u.path+"/"+strings.TrimSpace(id))
}
