package domain

import "fmt"

type DeliveryStatus string

const (
	StatusPending   DeliveryStatus = "pending"
	StatusDelivered DeliveryStatus = "delivered"
	StatusRejected  DeliveryStatus = "rejected"
	StatusCancelled DeliveryStatus = "cancelled"
)

func (s DeliveryStatus) Valid() bool {
	switch s {
	case StatusPending, StatusDelivered, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// DeliveryAction is what an operator clicks on a sheet row.
type DeliveryAction string

const (
	ActionDeliver   DeliveryAction = "deliver"
	ActionReject    DeliveryAction = "reject"
	ActionCancel    DeliveryAction = "cancel"
	ActionUndeliver DeliveryAction = "undeliver"
)

// Target is the status an action moves to.
func (a DeliveryAction) Target() (DeliveryStatus, bool) {
	switch a {
	case ActionDeliver:
		return StatusDelivered, true
	case ActionReject:
		return StatusRejected, true
	case ActionCancel:
		return StatusCancelled, true
	case ActionUndeliver:
		return StatusPending, true
	}
	return "", false
}

// Transition returns the status reached by applying a to from. Only pending
// may leave for delivered, rejected or cancelled, and only those three may
// go back to pending.
func Transition(from DeliveryStatus, a DeliveryAction) (DeliveryStatus, error) {
	to, ok := a.Target()
	if !ok {
		return "", fmt.Errorf("%w: unknown action %q", ErrInvalidTransition, a)
	}
	if !from.Valid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, from)
	}
	if from == StatusPending && to != StatusPending {
		return to, nil
	}
	if from != StatusPending && to == StatusPending {
		return to, nil
	}
	return "", fmt.Errorf("%w: %s cannot %s", ErrInvalidTransition, from, a)
}

type DeliveryBoy struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

type DeliveryItem struct {
	ID                int64          `json:"id"`
	VariantID         int64          `json:"variant_id"`
	ProductName       string         `json:"product_name"`
	VariantName       string         `json:"variant_name"`
	Unit              string         `json:"unit,omitempty"`
	OrderedQuantity   float64        `json:"ordered_quantity"`
	DeliveredQuantity float64        `json:"delivered_quantity"`
	Rate              float64        `json:"rate"`
	Status            DeliveryStatus `json:"status"`
}

type Delivery struct {
	ID     int64          `json:"id"`
	Date   string         `json:"date"`
	Status DeliveryStatus `json:"status"`
	Items  []DeliveryItem `json:"items"`
}

type SheetEntry struct {
	Customer Customer `json:"customer"`
	Delivery Delivery `json:"delivery"`
}

type DriverSheet struct {
	DeliveryBoy DeliveryBoy  `json:"delivery_boy"`
	Deliveries  []SheetEntry `json:"deliveries"`
}

// DeliverySheet is one day of deliveries grouped by driver.
type DeliverySheet struct {
	Date    string        `json:"date"`
	Drivers []DriverSheet `json:"drivers"`
}

// Find returns the entry holding delivery id.
func (s *DeliverySheet) Find(deliveryID int64) (*SheetEntry, bool) {
	for i := range s.Drivers {
		for j := range s.Drivers[i].Deliveries {
			if s.Drivers[i].Deliveries[j].Delivery.ID == deliveryID {
				return &s.Drivers[i].Deliveries[j], true
			}
		}
	}
	return nil, false
}

func (d *Delivery) Item(itemID int64) (*DeliveryItem, bool) {
	for i := range d.Items {
		if d.Items[i].ID == itemID {
			return &d.Items[i], true
		}
	}
	return nil, false
}

type PickupRow struct {
	VariantID   int64   `json:"variant_id"`
	ProductName string  `json:"product_name"`
	VariantName string  `json:"variant_name"`
	Unit        string  `json:"unit,omitempty"`
	Quantity    float64 `json:"quantity"`
}

// PickupSummary is what a driver loads at the hub.
type PickupSummary struct {
	DeliveryBoy DeliveryBoy `json:"delivery_boy"`
	Rows        []PickupRow `json:"rows"`
	Total       float64     `json:"total"`
}

type DetailRow struct {
	ItemID            int64          `json:"item_id"`
	ProductName       string         `json:"product_name"`
	VariantName       string         `json:"variant_name"`
	OrderedQuantity   float64        `json:"ordered_quantity"`
	DeliveredQuantity float64        `json:"delivered_quantity"`
	Rate              float64        `json:"rate"`
	Amount            float64        `json:"amount"`
	Status            DeliveryStatus `json:"status"`
}

type DetailTotals struct {
	OrderedQuantity   float64 `json:"ordered_quantity"`
	DeliveredQuantity float64 `json:"delivered_quantity"`
	Amount            float64 `json:"amount"`
}

// CustomerDetail is the per-customer order table of a sheet.
type CustomerDetail struct {
	Customer   Customer       `json:"customer"`
	DeliveryID int64          `json:"delivery_id"`
	Status     DeliveryStatus `json:"status"`
	Rows       []DetailRow    `json:"rows"`
	Totals     DetailTotals   `json:"totals"`
}

// StatusChange is the body sent to the deliveries endpoints.
type StatusChange struct {
	DeliveryID int64          `json:"delivery_id"`
	ItemID     int64          `json:"item_id,omitempty"`
	Date       string         `json:"date"`
	Status     DeliveryStatus `json:"status"`
}

// ItemEdit changes quantity or rate of one delivery item, or adds one when
// ItemID is zero.
type ItemEdit struct {
	DeliveryID int64   `json:"delivery_id,omitempty"`
	CustomerID int64   `json:"customer_id" validate:"required"`
	ItemID     int64   `json:"item_id,omitempty"`
	VariantID  int64   `json:"variant_id" validate:"required"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	Quantity   float64 `json:"quantity" validate:"gte=0"`
	Rate       float64 `json:"rate" validate:"gte=0"`
}
