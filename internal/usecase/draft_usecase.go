package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"tiembanh_mousse/internal/usecase/interfaces"
)

var (
	ErrInvalidDraftNamespace = errors.New("invalid draft namespace")
	ErrInvalidDraftPayload   = errors.New("invalid draft payload")
)

// DraftNamespaceNew is the fixed slot for an order that has no id yet.
const DraftNamespaceNew = "new"

type IDraftUseCase interface {
	Save(ctx context.Context, namespace string, payload json.RawMessage) error
	Load(ctx context.Context, namespace string) (json.RawMessage, error)
	Discard(ctx context.Context, namespace string) error
}

// DraftUseCase persists in-progress order edits. Each save overwrites the
// namespace; loading something missing or corrupt yields nil, not an error.
type DraftUseCase struct {
	store interfaces.IDraftStore
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(store interfaces.IDraftStore) *DraftUseCase {
	return &DraftUseCase{store: store}
}

func validDraftNamespace(namespace string) (string, error) {
	ns := strings.TrimSpace(namespace)
	if ns == "" || strings.Contains(ns, "/") {
		return "", ErrInvalidDraftNamespace
	}
	return ns, nil
}

func (u *DraftUseCase) Save(ctx context.Context, namespace string, payload json.RawMessage) error {
	ns, err := validDraftNamespace(namespace)
	if err != nil {
		return err
	}
	if !json.Valid(payload) {
		return ErrInvalidDraftPayload
	}
	return u.store.Save(ctx, ns, payload)
}

func (u *DraftUseCase) Load(ctx context.Context, namespace string) (json.RawMessage, error) {
	ns, err := validDraftNamespace(namespace)
	if err != nil {
		return nil, err
	}
	payload, err := u.store.Load(ctx, ns)
	if err != nil {
		return nil, err
	}
	if payload == nil || !json.Valid(payload) {
		return nil, nil
	}
	return payload, nil
}

func (u *DraftUseCase) Discard(ctx context.Context, namespace string) error {
	ns, err := validDraftNamespace(namespace)
	if err != nil {
		return err
	}
	return u.store.Delete(ctx, ns)
}
