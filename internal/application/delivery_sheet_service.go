package application

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
)

const (
	dateLayout     = "2006-01-02"
	sheetPath      = "/delivery_boys/delivery_sheets"
	deliveriesPath = "/deliveries"
	modifyPath     = "/deliveries/modify?modifier=admin"
)

// DeliverySheetService drives the daily delivery sheet: it reads the sheet the
// API computes, derives the pickup and per-customer tables, and sends status
// and quantity changes to the endpoint matching the sheet date.
type DeliverySheetService struct {
	g   *Gateway
	loc *time.Location
}

func NewDeliverySheetService(g *Gateway, loc *time.Location) *DeliverySheetService {
	return &DeliverySheetService{g: g, loc: loc}
}

func (s *DeliverySheetService) GetSheet(ctx context.Context, date string) (*domain.DeliverySheet, error) {
	if err := checkDate(date); err != nil {
		return nil, err
	}
	var drivers []domain.DriverSheet
	if err := s.g.api.Get(ctx, sheetPath, url.Values{"date": {date}}, &drivers); err != nil {
		return nil, err
	}
	return &domain.DeliverySheet{Date: date, Drivers: drivers}, nil
}

// IsFuture reports whether date falls after today in the business time zone.
func (s *DeliverySheetService) IsFuture(date string) (bool, error) {
	d, err := time.ParseInLocation(dateLayout, date, s.loc)
	if err != nil {
		return false, err
	}
	now := s.g.now().In(s.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	return d.After(today), nil
}

type StatusRequest struct {
	Date       string
	DeliveryID int64
	ItemID     int64
	Action     domain.DeliveryAction
}

// ApplyAction moves one item, or a whole delivery when ItemID is zero, to the
// status the action targets. The current status is read from the server and
// the refreshed sheet is returned once the change is confirmed.
func (s *DeliverySheetService) ApplyAction(ctx context.Context, req StatusRequest) (*domain.DeliverySheet, error) {
	if err := requireID(req.DeliveryID); err != nil {
		return nil, err
	}
	sheet, err := s.GetSheet(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	entry, ok := sheet.Find(req.DeliveryID)
	if !ok {
		return nil, fmt.Errorf("delivery %d on %s: %w", req.DeliveryID, req.Date, domain.ErrNotFound)
	}
	from := entry.Delivery.Status
	if req.ItemID > 0 {
		item, ok := entry.Delivery.Item(req.ItemID)
		if !ok {
			return nil, fmt.Errorf("item %d of delivery %d: %w", req.ItemID, req.DeliveryID, domain.ErrNotFound)
		}
		from = item.Status
	}
	to, err := domain.Transition(from, req.Action)
	if err != nil {
		return nil, err
	}

	future, err := s.IsFuture(req.Date)
	if err != nil {
		return nil, err
	}
	change := domain.StatusChange{DeliveryID: req.DeliveryID, ItemID: req.ItemID, Date: req.Date, Status: to}
	if future {
		if to == domain.StatusDelivered || to == domain.StatusRejected {
			return nil, fmt.Errorf("%w: cannot mark %s on %s", domain.ErrFutureDelivery, to, req.Date)
		}
		err = s.g.mutate(ctx, http.MethodPost, modifyPath, func() error {
			return s.g.api.Post(ctx, modifyPath, change, nil)
		})
	} else {
		err = s.g.mutate(ctx, http.MethodPut, deliveriesPath, func() error {
			return s.g.api.Put(ctx, deliveriesPath, change, nil)
		})
	}
	if err != nil {
		return nil, err
	}
	s.g.logger.Info("delivery status changed",
		zap.Int64("delivery", req.DeliveryID),
		zap.Int64("item", req.ItemID),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.Bool("future", future))
	return s.GetSheet(ctx, req.Date)
}

// EditItem changes quantity or rate of a delivery item, or adds an item.
// Future dates go through the modify endpoint, never the plain one.
func (s *DeliverySheetService) EditItem(ctx context.Context, edit *domain.ItemEdit) (*domain.DeliverySheet, error) {
	if err := check(edit); err != nil {
		return nil, err
	}
	future, err := s.IsFuture(edit.Date)
	if err != nil {
		return nil, err
	}
	path := deliveriesPath
	if future {
		path = modifyPath
	}
	err = s.g.mutate(ctx, http.MethodPost, path, func() error {
		return s.g.api.Post(ctx, path, edit, nil)
	})
	if err != nil {
		return nil, err
	}
	return s.GetSheet(ctx, edit.Date)
}

// PickupSummaries totals, per driver, what has to be loaded for the day.
// Cancelled items are left out.
func PickupSummaries(sheet *domain.DeliverySheet) []domain.PickupSummary {
	out := make([]domain.PickupSummary, 0, len(sheet.Drivers))
	for _, d := range sheet.Drivers {
		rows := map[int64]*domain.PickupRow{}
		sum := domain.PickupSummary{DeliveryBoy: d.DeliveryBoy, Rows: []domain.PickupRow{}}
		for _, e := range d.Deliveries {
			for _, it := range e.Delivery.Items {
				if it.Status == domain.StatusCancelled {
					continue
				}
				row, ok := rows[it.VariantID]
				if !ok {
					row = &domain.PickupRow{VariantID: it.VariantID, ProductName: it.ProductName, VariantName: it.VariantName, Unit: it.Unit}
					rows[it.VariantID] = row
				}
				row.Quantity += it.OrderedQuantity
				sum.Total += it.OrderedQuantity
			}
		}
		for _, r := range rows {
			sum.Rows = append(sum.Rows, *r)
		}
		sort.Slice(sum.Rows, func(i, j int) bool {
			if sum.Rows[i].ProductName != sum.Rows[j].ProductName {
				return sum.Rows[i].ProductName < sum.Rows[j].ProductName
			}
			return sum.Rows[i].VariantID < sum.Rows[j].VariantID
		})
		out = append(out, sum)
	}
	return out
}

// CustomerDetails builds the per-customer order tables of one driver, or of
// every driver when driverID is zero.
func CustomerDetails(sheet *domain.DeliverySheet, driverID int64) []domain.CustomerDetail {
	var out []domain.CustomerDetail
	for _, d := range sheet.Drivers {
		if driverID != 0 && d.DeliveryBoy.ID != driverID {
			continue
		}
		for _, e := range d.Deliveries {
			detail := domain.CustomerDetail{
				Customer:   e.Customer,
				DeliveryID: e.Delivery.ID,
				Status:     e.Delivery.Status,
				Rows:       make([]domain.DetailRow, 0, len(e.Delivery.Items)),
			}
			for _, it := range e.Delivery.Items {
				amount := it.DeliveredQuantity * it.Rate
				detail.Rows = append(detail.Rows, domain.DetailRow{
					ItemID:            it.ID,
					ProductName:       it.ProductName,
					VariantName:       it.VariantName,
					OrderedQuantity:   it.OrderedQuantity,
					DeliveredQuantity: it.DeliveredQuantity,
					Rate:              it.Rate,
					Amount:            amount,
					Status:            it.Status,
				})
				detail.Totals.OrderedQuantity += it.OrderedQuantity
				detail.Totals.DeliveredQuantity += it.DeliveredQuantity
				detail.Totals.Amount += amount
			}
			out = append(out, detail)
		}
	}
	return out
}

func checkDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return &domain.ValidationError{Fields: []domain.FieldError{{Field: "date", Rule: "datetime"}}}
	}
	return nil
}
