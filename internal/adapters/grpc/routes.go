package grpc

import (
	"context"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/application"
	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
)

const methodLogin = "Login"

func (s *Server) routes() map[string]handler {
	v := s.svc
	return map[string]handler{
		"Logout": func(ctx context.Context, _ *request) (string, any, error) {
			return "Successfully logged out", nil, v.Auth.Logout(ctx)
		},
		"LoadReferenceData": func(ctx context.Context, _ *request) (string, any, error) {
			ref, err := v.Reference.Load(ctx)
			return "Reference data loaded", ref, err
		},

		"ListCustomers": func(ctx context.Context, r *request) (string, any, error) {
			out, err := v.Customers.List(ctx, application.CustomerFilter{Search: r.Query.Search, AreaID: r.Query.AreaID, Page: r.Query.Page})
			return "Customers fetched", out, err
		},
		"GetCustomer":    get(v.Customers.Get, "Customer fetched"),
		"CreateCustomer": create(v.Customers.Create, "Customer created"),
		"UpdateCustomer": update(v.Customers.Update, "Customer updated"),
		"DeleteCustomer": remove(v.Customers.Delete, "Customer deleted"),
		"ListWalletTransactions": func(ctx context.Context, r *request) (string, any, error) {
			out, err := v.Customers.Wallet(ctx, r.ID)
			return "Wallet fetched", out, err
		},

		"ListSubscriptions": func(ctx context.Context, r *request) (string, any, error) {
			out, err := v.Subscriptions.List(ctx, r.Query.CustomerID, r.Query.Status)
			return "Subscriptions fetched", out, err
		},
		"GetSubscription":    get(v.Subscriptions.Get, "Subscription fetched"),
		"CreateSubscription": create(v.Subscriptions.Create, "Subscription created"),
		"UpdateSubscription": update(v.Subscriptions.Update, "Subscription updated"),
		"DeleteSubscription": remove(v.Subscriptions.Delete, "Subscription deleted"),
		"SetSubscriptionStatus": func(ctx context.Context, r *request) (string, any, error) {
			out, err := v.Subscriptions.SetStatus(ctx, r.ID, r.Action)
			return "Subscription updated", out, err
		},

		"ListTrials": func(ctx context.Context, r *request) (string, any, error) {
			out, err := v.Trials.List(ctx, r.Query.CustomerID)
			return "Trials fetched", out, err
		},
		"CreateTrial": create(v.Trials.Create, "Trial created"),
		"UpdateTrial": update(v.Trials.Update, "Trial updated"),
		"DeleteTrial": remove(v.Trials.Delete, "Trial deleted"),

		"ListOrders": func(ctx context.Context, r *request) (string, any, error) {
			out, err := v.Orders.List(ctx, application.OrderFilter{Date: r.Query.Date, Status: r.Query.Status, CustomerID: r.Query.CustomerID})
			return "Orders fetched", out, err
		},
		"GetOrder":    get(v.Orders.Get, "Order fetched"),
		"CreateOrder": create(v.Orders.Create, "Order created"),
		"UpdateOrder": update(v.Orders.Update, "Order updated"),
		"CancelOrder": func(ctx context.Context, r *request) (string, any, error) {
			out, err := v.Orders.Cancel(ctx, r.ID)
			return "Order cancelled", out, err
		},

		"ListProducts":  list(v.Catalogue.ListProducts, "Products fetched"),
		"GetProduct":    get(v.Catalogue.GetProduct, "Product fetched"),
		"CreateProduct": createForm(v.Catalogue.CreateProduct, "Product created"),
		"UpdateProduct": updateForm(v.Catalogue.UpdateProduct, "Product updated"),
		"DeleteProduct": remove(v.Catalogue.DeleteProduct, "Product deleted"),
		"ListVariants": func(ctx context.Context, r *request) (string, any, error) {
			out, err := v.Catalogue.ListVariants(ctx, r.ParentID)
			return "Variants fetched", out, err
		},
		"CreateVariant": func(ctx context.Context, r *request) (string, any, error) {
			var in domain.Variant
			if err := r.decodeData(&in); err != nil {
				return "", nil, err
			}
			out, err := v.Catalogue.CreateVariant(ctx, r.ParentID, &in)
			return "Variant created", out, err
		},
		"UpdateVariant": func(ctx context.Context, r *request) (string, any, error) {
			var in domain.Variant
			if err := r.decodeData(&in); err != nil {
				return "", nil, err
			}
			out, err := v.Catalogue.UpdateVariant(ctx, r.ParentID, r.ID, &in)
			return "Variant updated", out, err
		},
		"DeleteVariant": func(ctx context.Context, r *request) (string, any, error) {
			return "Variant deleted", nil, v.Catalogue.DeleteVariant(ctx, r.ParentID, r.ID)
		},

		"ListCoupons":  list(v.Coupons.List, "Coupons fetched"),
		"CreateCoupon": create(v.Coupons.Create, "Coupon created"),
		"UpdateCoupon": update(v.Coupons.Update, "Coupon updated"),
		"DeleteCoupon": remove(v.Coupons.Delete, "Coupon deleted"),
		"ListOffers":   list(v.Offers.List, "Offers fetched"),
		"CreateOffer":  createForm(v.Offers.Create, "Offer created"),
		"UpdateOffer":  updateForm(v.Offers.Update, "Offer updated"),
		"DeleteOffer":  remove(v.Offers.Delete, "Offer deleted"),

		"ListComplaints": func(ctx context.Context, r *request) (string, any, error) {
			out, err := v.Complaints.List(ctx, r.Query.Status)
			return "Complaints fetched", out, err
		},
		"GetComplaint":    get(v.Complaints.Get, "Complaint fetched"),
		"UpdateComplaint": update(v.Complaints.Update, "Complaint updated"),

		"ListHubs":      list(v.Areas.ListHubs, "Hubs fetched"),
		"CreateHub":     create(v.Areas.CreateHub, "Hub created"),
		"UpdateHub":     update(v.Areas.UpdateHub, "Hub updated"),
		"DeleteHub":     remove(v.Areas.DeleteHub, "Hub deleted"),
		"ListAreas":     list(v.Areas.ListAreas, "Areas fetched"),
		"CreateArea":    create(v.Areas.CreateArea, "Area created"),
		"UpdateArea":    update(v.Areas.UpdateArea, "Area updated"),
		"DeleteArea":    remove(v.Areas.DeleteArea, "Area deleted"),
		"ListSubareas":  list(v.Areas.ListSubareas, "Subareas fetched"),
		"CreateSubarea": create(v.Areas.CreateSubarea, "Subarea created"),
		"UpdateSubarea": update(v.Areas.UpdateSubarea, "Subarea updated"),
		"DeleteSubarea": remove(v.Areas.DeleteSubarea, "Subarea deleted"),

		"ListPartners":  list(v.Partners.List, "Delivery partners fetched"),
		"CreatePartner": create(v.Partners.Create, "Delivery partner created"),
		"UpdatePartner": update(v.Partners.Update, "Delivery partner updated"),
		"DeletePartner": remove(v.Partners.Delete, "Delivery partner deleted"),

		"GetDeliverySheet": func(ctx context.Context, r *request) (string, any, error) {
			sheet, err := v.Sheets.GetSheet(ctx, r.Date)
			return "Delivery sheet fetched", sheet, err
		},
		"GetPickupSummary": func(ctx context.Context, r *request) (string, any, error) {
			sheet, err := v.Sheets.GetSheet(ctx, r.Date)
			if err != nil {
				return "", nil, err
			}
			return "Pickup summary fetched", application.PickupSummaries(sheet), nil
		},
		"GetCustomerDetails": func(ctx context.Context, r *request) (string, any, error) {
			sheet, err := v.Sheets.GetSheet(ctx, r.Date)
			if err != nil {
				return "", nil, err
			}
			return "Customer details fetched", application.CustomerDetails(sheet, r.ParentID), nil
		},
		"ApplyDeliveryAction": func(ctx context.Context, r *request) (string, any, error) {
			var target struct {
				ItemID int64 `json:"item_id"`
			}
			if len(r.Data) > 0 {
				if err := r.decodeData(&target); err != nil {
					return "", nil, err
				}
			}
			sheet, err := v.Sheets.ApplyAction(ctx, application.StatusRequest{
				Date:       r.Date,
				DeliveryID: r.ID,
				ItemID:     target.ItemID,
				Action:     domain.DeliveryAction(r.Action),
			})
			return "Delivery updated", sheet, err
		},
		"EditDeliveryItem": func(ctx context.Context, r *request) (string, any, error) {
			var edit domain.ItemEdit
			if err := r.decodeData(&edit); err != nil {
				return "", nil, err
			}
			if edit.Date == "" {
				edit.Date = r.Date
			}
			sheet, err := v.Sheets.EditItem(ctx, &edit)
			return "Delivery item saved", sheet, err
		},

		"ListActivity": func(ctx context.Context, r *request) (string, any, error) {
			page, err := v.Activity.List(ctx, r.Query.Limit, r.Query.Page)
			return "Activity fetched", page, err
		},
	}
}

func list[T any](fn func(context.Context) ([]T, error), msg string) handler {
	return func(ctx context.Context, _ *request) (string, any, error) {
		out, err := fn(ctx)
		return msg, out, err
	}
}

func get[T any](fn func(context.Context, int64) (*T, error), msg string) handler {
	return func(ctx context.Context, r *request) (string, any, error) {
		out, err := fn(ctx, r.ID)
		return msg, out, err
	}
}

func create[T any](fn func(context.Context, *T) (*T, error), msg string) handler {
	return func(ctx context.Context, r *request) (string, any, error) {
		var in T
		if err := r.decodeData(&in); err != nil {
			return "", nil, err
		}
		out, err := fn(ctx, &in)
		return msg, out, err
	}
}

func update[T any](fn func(context.Context, int64, *T) (*T, error), msg string) handler {
	return func(ctx context.Context, r *request) (string, any, error) {
		var in T
		if err := r.decodeData(&in); err != nil {
			return "", nil, err
		}
		out, err := fn(ctx, r.ID, &in)
		return msg, out, err
	}
}

func createForm[T any](fn func(context.Context, *T, *domain.FilePart) (*T, error), msg string) handler {
	return func(ctx context.Context, r *request) (string, any, error) {
		var in T
		if err := r.decodeData(&in); err != nil {
			return "", nil, err
		}
		out, err := fn(ctx, &in, r.Image.filePart())
		return msg, out, err
	}
}

func updateForm[T any](fn func(context.Context, int64, *T, *domain.FilePart) (*T, error), msg string) handler {
	return func(ctx context.Context, r *request) (string, any, error) {
		var in T
		if err := r.decodeData(&in); err != nil {
			return "", nil, err
		}
		out, err := fn(ctx, r.ID, &in, r.Image.filePart())
		return msg, out, err
	}
}

func remove(fn func(context.Context, int64) error, msg string) handler {
	return func(ctx context.Context, r *request) (string, any, error) {
		return msg, nil, fn(ctx, r.ID)
	}
}
