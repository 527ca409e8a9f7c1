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

const ordersCollection = "orders"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrderInput  = errors.New("invalid order input")
	ErrDeleteNotConfirmed = errors.New("delete not confirmed")
)

// OrderInput is the edited-order shape the presentation layer sends back.
// Date + TimeSlot are converted to the store's epoch on write.
type OrderInput struct {
	ID       string
	Customer entities.RawCustomer
	Items    []entities.LineItem
	Date     string // YYYY-MM-DD, local calendar
	TimeSlot string
	ShipFee  float64
	OtherFee float64
	Discount float64
	State    string
	Priority string
}

// IOrderUseCase exposes the order screen operations: the derived list with
// compound filtering, aggregations over the filtered slice, and mutations
// that translate back to the raw persisted shape.
type IOrderUseCase interface {
	List(criteria Criteria, sortSpec SortSpec) ([]entities.DerivedOrder, error)
	Get(id string) (entities.DerivedOrder, error)
	Create(ctx context.Context, in OrderInput) (entities.DerivedOrder, error)
	Update(ctx context.Context, id string, in OrderInput) (entities.DerivedOrder, error)
	UpdateState(ctx context.Context, id, state string) (entities.DerivedOrder, error)
	Delete(ctx context.Context, id string, confirmed bool) error
	CountsByDate(criteria Criteria) (map[string]int, error)
	Shifts(criteria Criteria) (ShiftReport, error)
}

type OrderUseCase struct {
	store interfaces.IRealtimeStore
	live  *liveList[entities.DerivedOrder]
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase wires the order collection. windowDays bounds the initial
// fetch window: orders promised before midnight UTC windowDays ago are
// dropped from the derived list (0 disables the bound).
func NewOrderUseCase(store interfaces.IRealtimeStore, windowDays int) *OrderUseCase {
	u := &OrderUseCase{store: store}
	u.live = newLiveList(store, ordersCollection, windowedDecoder(decodeOrderDoc, windowDays))
	return u
}

// windowedDecoder drops records older than the fetch window. Records without
// a parseable delivery time cannot be aged and are kept.
func windowedDecoder(decode func(string, json.RawMessage) entities.DerivedOrder, windowDays int) func(string, json.RawMessage) (entities.DerivedOrder, bool) {
	var cutoff time.Time
	if windowDays > 0 {
		cutoff = timecodec.FromCocoaSeconds(timecodec.WindowStartSeconds(windowDays))
	}
	return func(id string, doc json.RawMessage) (entities.DerivedOrder, bool) {
		d := decode(id, doc)
		if !cutoff.IsZero() && !d.Timeline.ReceivedAt.IsZero() && d.Timeline.ReceivedAt.Before(cutoff) {
			return entities.DerivedOrder{}, false
		}
		return d, true
	}
}

// Start opens the live subscription. Safe to call once; the derived list is
// recomputed in full on every snapshot the store pushes.
func (u *OrderUseCase) Start(ctx context.Context) error {
	if err := u.live.Start(ctx); err != nil {
		log.Error().Err(err).Str("collection", ordersCollection).Msg("subscription failed")
		return err
	}
	return nil
}

func (u *OrderUseCase) Stop() {
	u.live.Stop()
}

func (u *OrderUseCase) List(criteria Criteria, sortSpec SortSpec) ([]entities.DerivedOrder, error) {
	records, err := u.live.Items()
	if err != nil {
		return []entities.DerivedOrder{}, err
	}
	return ApplyFilter(records, criteria, sortSpec), nil
}

func (u *OrderUseCase) Get(id string) (entities.DerivedOrder, error) {
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
	return entities.DerivedOrder{}, ErrOrderNotFound
}

func (u *OrderUseCase) Create(ctx context.Context, in OrderInput) (entities.DerivedOrder, error) {
	raw, err := rawOrderFromInput(in, nil)
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

	if err := u.store.Write(ctx, ordersCollection+"/"+id, raw); err != nil {
		return entities.DerivedOrder{}, err
	}
	log.Info().Str("order_id", id).Msg("order created")
	return NormalizeOrder(id, raw), nil
}

func (u *OrderUseCase) Update(ctx context.Context, id string, in OrderInput) (entities.DerivedOrder, error) {
	existing, err := u.Get(id)
	if err != nil {
		return entities.DerivedOrder{}, err
	}

	// Edits rewrite the record but keep the original placement time.
	raw, err := rawOrderFromInput(in, existing.Original.CreateDate)
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

	if err := u.store.Write(ctx, ordersCollection+"/"+existing.ID, raw); err != nil {
		return entities.DerivedOrder{}, err
	}
	log.Info().Str("order_id", existing.ID).Msg("order updated")
	return NormalizeOrder(existing.ID, raw), nil
}

func (u *OrderUseCase) UpdateState(ctx context.Context, id, state string) (entities.DerivedOrder, error) {
	existing, err := u.Get(id)
	if err != nil {
		return entities.DerivedOrder{}, err
	}
	state = strings.TrimSpace(state)
	if state == "" {
		return entities.DerivedOrder{}, ErrInvalidOrderInput
	}

	if err := u.store.Patch(ctx, ordersCollection+"/"+existing.ID, map[string]interface{}{"state": state}); err != nil {
		return entities.DerivedOrder{}, err
	}

	raw := existing.Original
	raw.State = state
	return NormalizeOrder(existing.ID, raw), nil
}

// Delete removes an order. The confirmed flag is the explicit user
// confirmation required before a destructive call goes out; there is no undo.
func (u *OrderUseCase) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	existing, err := u.Get(id)
	if err != nil {
		return err
	}
	if err := u.store.Delete(ctx, ordersCollection+"/"+existing.ID); err != nil {
		return err
	}
	log.Info().Str("order_id", existing.ID).Msg("order deleted")
	return nil
}

func (u *OrderUseCase) CountsByDate(criteria Criteria) (map[string]int, error) {
	filtered, err := u.List(criteria, SortSpec{})
	if err != nil {
		return nil, err
	}
	return OrderCountsByDate(filtered), nil
}

func (u *OrderUseCase) Shifts(criteria Criteria) (ShiftReport, error) {
	filtered, err := u.List(criteria, SortSpec{})
	if err != nil {
		return ShiftReport{}, err
	}
	return ShiftBreakdown(filtered), nil
}

// rawOrderFromInput rebuilds the persisted shape from an edited order.
// createDate nil means a fresh order (stamped now); on edits the caller
// passes the original so placement time survives the rewrite.
func rawOrderFromInput(in OrderInput, createDate *float64) (entities.RawOrder, error) {
	if len(in.Items) == 0 && strings.TrimSpace(in.Customer.Name) == "" {
		return entities.RawOrder{}, ErrInvalidOrderInput
	}

	day, err := time.ParseInLocation("2006-01-02", in.Date, time.Local)
	if err != nil {
		return entities.RawOrder{}, ErrInvalidOrderInput
	}
	hour := 8
	if h, ok := entities.SlotStartHour(in.TimeSlot); ok {
		hour = h
	}
	orderDate := timecodec.ToCocoaSeconds(day.Add(time.Duration(hour) * time.Hour))

	if createDate == nil {
		now := timecodec.ToCocoaSeconds(time.Now())
		createDate = &now
	}

	state := in.State
	if strings.TrimSpace(state) == "" {
		state = "Đặt trước"
	}

	return entities.RawOrder{
		OrderDate:        &orderDate,
		CreateDate:       createDate,
		Cakes:            entities.ItemList(in.Items),
		Customer:         in.Customer,
		ShipFee:          in.ShipFee,
		OtherFee:         in.OtherFee,
		Discount:         in.Discount,
		State:            state,
		DeliveryTimeSlot: in.TimeSlot,
		Priority:         in.Priority,
	}, nil
}
