package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"go.uber.org/mock/gomock"

	"tiembanh_mousse/internal/domain/entities"
	"tiembanh_mousse/internal/usecase/interfaces"
	mock_interfaces "tiembanh_mousse/internal/usecase/interfaces/mocks"
)

func startCustomers(t *testing.T, ctrl *gomock.Controller, snap interfaces.Snapshot) (*CatalogUseCase[entities.Customer], *mock_interfaces.MockIRealtimeStore) {
	t.Helper()
	store := mock_interfaces.NewMockIRealtimeStore(ctrl)
	store.EXPECT().Subscribe(gomock.Any(), "customers", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, fn func(interfaces.Snapshot)) (func(), error) {
			fn(snap)
			return func() {}, nil
		},
	)
	u := NewCustomerUseCase(store)
	if err := u.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(u.Stop)
	return u, store
}

func TestCatalogUseCase_ListAndGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	u, _ := startCustomers(t, ctrl, interfaces.Snapshot{
		"c1": json.RawMessage(`{"name":"Chị Lan","phone":"0901"}`),
		"c2": json.RawMessage(`{"name":"Anh Minh"}`),
		"xx": json.RawMessage(`not-json`),
	})

	list, err := u.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The undecodable document is skipped, not fatal.
	if len(list) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(list))
	}

	got, err := u.Get("c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "c1" || got.Name != "Chị Lan" {
		t.Fatalf("unexpected customer %+v", got)
	}

	if _, err := u.Get("nope"); !errors.Is(err, ErrCatalogRecordNotFound) {
		t.Fatalf("expected ErrCatalogRecordNotFound, got %v", err)
	}
}

func TestCatalogUseCase_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_interfaces.NewMockIRealtimeStore(ctrl)
	u := NewProductUseCase(store)

	t.Run("generates id when missing", func(t *testing.T) {
		pathRe := regexp.MustCompile(`^products/[0-9a-f]{24}$`)
		store.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, path string, _ interface{}) error {
				if !pathRe.MatchString(path) {
					t.Fatalf("unexpected path %q", path)
				}
				return nil
			},
		)
		p, err := u.Save(context.Background(), entities.Product{Name: "Mousse chanh dây", Price: 55000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("keeps given id", func(t *testing.T) {
		store.EXPECT().Write(gomock.Any(), "products/p1", gomock.Any()).Return(nil)
		p, err := u.Save(context.Background(), entities.Product{ID: "p1", Name: "Tiramisu"})
		if err != nil || p.ID != "p1" {
			t.Fatalf("unexpected result %+v %v", p, err)
		}
	})
}

func TestCatalogUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	u, store := startCustomers(t, ctrl, interfaces.Snapshot{
		"c1": json.RawMessage(`{"name":"Chị Lan"}`),
	})

	if err := u.Delete(context.Background(), "c1", false); !errors.Is(err, ErrDeleteNotConfirmed) {
		t.Fatalf("expected ErrDeleteNotConfirmed, got %v", err)
	}

	store.EXPECT().Delete(gomock.Any(), "customers/c1").Return(nil)
	if err := u.Delete(context.Background(), "c1", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
