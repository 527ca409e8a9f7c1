package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"tiembanh_mousse/internal/domain/entities"
	"tiembanh_mousse/internal/usecase/interfaces"
	"tiembanh_mousse/pkg/identity"
	"tiembanh_mousse/pkg/timecodec"
)

const preOrdersCollection = "preorders"

var ErrPreOrderNotFound = errors.New("pre-order not found")

// PreOrderInput is the editable pre-order shape. Pre-orders carry no
// delivery slot; the date alone places them (midday on the chosen day).
type PreOrderInput struct {
	ID       string
	Customer entities.RawCustomer
	Items    []entities.LineItem
	Date     string // YYYY-MM-DD, local calendar
	ShipFee  float64
	OtherFee float64
	Discount float64
	Status   string
}

type IPreOrderUseCase interface {
	List(criteria Criteria, sortSpec SortSpec) ([]entities.DerivedOrder, error)
	Get(id string) (entities.DerivedOrder, error)
	Create(ctx context.Context, in PreOrderInput) (entities.DerivedOrder, error)
	Update(ctx context.Context, id string, in PreOrderInput) (entities.DerivedOrder, error)
	UpdateStatus(ctx context.Context, id, status string) (entities.DerivedOrder, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}

// PreOrderUseCase mirrors OrderUseCase over the looser pre-order records.
type PreOrderUseCase struct {
	store interfaces.IRealtimeStore
	live  *liveList[entities.DerivedOrder]
}

var _ IPreOrderUseCase = (*PreOrderUseCase)(nil)

func NewPreOrderUseCase(store interfaces.IRealtimeStore) *PreOrderUseCase {
	u := &PreOrderUseCase{store: store}
	u.live = newLiveList(store, preOrdersCollection, func(id string, doc json.RawMessage) (entities.DerivedOrder, bool) {
		return decodePreOrderDoc(id, doc), true
	})
	return u
}

func (u *PreOrderUseCase) Start(ctx context.Context) error {
	if err := u.live.Start(ctx); err != nil {
		log.Error().Err(err).Str("collection", preOrdersCollection).Msg("subscription failed")
		return err
	}
	return nil
}

func (u *PreOrderUseCase) Stop() {
	u.live.Stop()
}

func (u *PreOrderUseCase) List(criteria Criteria, sortSpec SortSpec) ([]entities.DerivedOrder, error) {
	records, err := u.live.Items()
	if err != nil {
		return []entities.DerivedOrder{}, err
	}
	return ApplyFilter(records, criteria, sortSpec), nil
}

func (u *PreOrderUseCase) Get(id string) (entities.DerivedOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DerivedOrder{}, ErrInvalidOrderID
	}
	records, err := u.live.Items()
	if err != nil {
		return entities.DerivedOrder{}, err
	}
	for _, o := range records {
		if o.ID == id {
			return o, nil
		}
	}
	return entities.DerivedOrder{}, ErrPreOrderNotFound
}

func (u *PreOrderUseCase) Create(ctx context.Context, in PreOrderInput) (entities.DerivedOrder, error) {
	raw, err := rawPreOrderFromInput(in, nil)
	if err != nil {
		return entities.DerivedOrder{}, err
	}
	if raw.Customer.ID == "" {
		raw.Customer.ID = identity.NewCustomerID()
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = identity.NewRecordID()
	}

	if err := u.store.Write(ctx, preOrdersCollection+"/"+id, raw); err != nil {
		return entities.DerivedOrder{}, err
	}
	log.Info().Str("preorder_id", id).Msg("pre-order created")
	return NormalizePreOrder(id, raw), nil
}

func (u *PreOrderUseCase) Update(ctx context.Context, id string, in PreOrderInput) (entities.DerivedOrder, error) {
	existing, err := u.Get(id)
	if err != nil {
		return entities.DerivedOrder{}, err
	}

	raw, err := rawPreOrderFromInput(in, existing.Original.CreateDate)
	if err != nil {
		return entities.DerivedOrder{}, err
	}
	// A UUID is minted only when neither the edit nor the stored record
	// carries one; otherwise the original id survives the rewrite.
	if raw.Customer.ID == "" {
		raw.Customer.ID = existing.Original.Customer.ID
	}
	if raw.Customer.ID == "" {
		raw.Customer.ID = identity.NewCustomerID()
	}

	if err := u.store.Write(ctx, preOrdersCollection+"/"+existing.ID, raw); err != nil {
		return entities.DerivedOrder{}, err
	}
	return NormalizePreOrder(existing.ID, raw), nil
}

func (u *PreOrderUseCase) UpdateStatus(ctx context.Context, id, status string) (entities.DerivedOrder, error) {
	existing, err := u.Get(id)
	if err != nil {
		return entities.DerivedOrder{}, err
	}
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		return entities.DerivedOrder{}, ErrInvalidOrderInput
	}

	if err := u.store.Patch(ctx, preOrdersCollection+"/"+existing.ID, map[string]interface{}{"status": status}); err != nil {
		return entities.DerivedOrder{}, err
	}

	raw := existing.Original
	raw.State = status
	return NormalizeOrder(existing.ID, raw), nil
}

func (u *PreOrderUseCase) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	existing, err := u.Get(id)
	if err != nil {
		return err
	}
	return u.store.Delete(ctx, preOrdersCollection+"/"+existing.ID)
}

func rawPreOrderFromInput(in PreOrderInput, createDate *float64) (entities.RawPreOrder, error) {
	if len(in.Items) == 0 && strings.TrimSpace(in.Customer.Name) == "" {
		return entities.RawPreOrder{}, ErrInvalidOrderInput
	}

	day, err := time.ParseInLocation("2006-01-02", in.Date, time.Local)
	if err != nil {
		return entities.RawPreOrder{}, ErrInvalidOrderInput
	}
	deliveryDate := timecodec.ToCocoaSeconds(day.Add(12 * time.Hour))

	if createDate == nil {
		now := timecodec.ToCocoaSeconds(time.Now())
		createDate = &now
	}

	status := strings.ToLower(strings.TrimSpace(in.Status))
	if status == "" {
		status = "pending"
	}

	raw := entities.RawPreOrder{
		DeliveryDate: &deliveryDate,
		CreateDate:   createDate,
		Items:        entities.ItemList(in.Items),
		Customer:     in.Customer,
		ShipFee:      in.ShipFee,
		OtherFee:     in.OtherFee,
		Discount:     in.Discount,
		Status:       status,
	}

	// The persisted total follows the same derivation as the displayed
	// price, discount rule included.
	total := raw.AsOrder().TotalPrice()
	raw.Total = &total
	return raw, nil
}
