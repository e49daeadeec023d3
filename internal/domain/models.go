package domain

import "time"

type Operator struct {
	SessionID string `json:"session_id"`
	Username  string `json:"username"`
}

type Customer struct {
	ID            int64   `json:"id,omitempty"`
	Name          string  `json:"name" validate:"required"`
	Phone         string  `json:"phone" validate:"required,numeric,len=10"`
	Email         string  `json:"email,omitempty" validate:"omitempty,email"`
	Address       string  `json:"address" validate:"required"`
	Landmark      string  `json:"landmark,omitempty"`
	HubID         int64   `json:"hub_id,omitempty"`
	AreaID        int64   `json:"area_id" validate:"required"`
	SubareaID     int64   `json:"subarea_id,omitempty"`
	WalletBalance float64 `json:"wallet_balance,omitempty"`
	Active        bool    `json:"active"`
}

type WalletTransaction struct {
	ID        int64     `json:"id"`
	Amount    float64   `json:"amount"`
	Type      string    `json:"type"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Subscription struct {
	ID         int64    `json:"id,omitempty"`
	CustomerID int64    `json:"customer_id" validate:"required"`
	ProductID  int64    `json:"product_id,omitempty"`
	VariantID  int64    `json:"variant_id" validate:"required"`
	Quantity   float64  `json:"quantity" validate:"gt=0"`
	Price      float64  `json:"price" validate:"gt=0"`
	Frequency  string   `json:"frequency" validate:"required,oneof=daily alternate weekly custom"`
	Days       []string `json:"days,omitempty" validate:"required_if=Frequency weekly,required_if=Frequency custom,dive,oneof=mon tue wed thu fri sat sun"`
	StartDate  string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string   `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status     string   `json:"status,omitempty" validate:"omitempty,oneof=active paused cancelled"`
}

// Trial is a short, non-recurring product trial for a customer.
type Trial struct {
	ID         int64   `json:"id,omitempty"`
	CustomerID int64   `json:"customer_id" validate:"required"`
	VariantID  int64   `json:"variant_id" validate:"required"`
	Quantity   float64 `json:"quantity" validate:"gt=0"`
	StartDate  string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Status     string  `json:"status,omitempty"`
}

type OrderItem struct {
	ID        int64   `json:"id,omitempty"`
	VariantID int64   `json:"variant_id" validate:"required"`
	Quantity  float64 `json:"quantity" validate:"gt=0"`
	Rate      float64 `json:"rate" validate:"gte=0"`
}

type Order struct {
	ID           int64       `json:"id,omitempty"`
	CustomerID   int64       `json:"customer_id" validate:"required"`
	DeliveryDate string      `json:"delivery_date" validate:"required,datetime=2006-01-02"`
	Items        []OrderItem `json:"items" validate:"required,min=1,dive"`
	Status       string      `json:"status,omitempty"`
	Total        float64     `json:"total,omitempty"`
	Note         string      `json:"note,omitempty"`
}

type Variant struct {
	ID        int64   `json:"id,omitempty"`
	ProductID int64   `json:"product_id,omitempty"`
	Name      string  `json:"name" validate:"required"`
	Unit      string  `json:"unit" validate:"required"`
	Price     float64 `json:"price" validate:"gt=0"`
	MRP       float64 `json:"mrp,omitempty"`
	Active    bool    `json:"active"`
}

type Product struct {
	ID          int64     `json:"id,omitempty"`
	Name        string    `json:"name" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Active      bool      `json:"active"`
	Variants    []Variant `json:"variants,omitempty"`
}

type Coupon struct {
	ID           int64   `json:"id,omitempty"`
	Code         string  `json:"code" validate:"required"`
	DiscountType string  `json:"discount_type" validate:"required,oneof=flat percent"`
	Value        float64 `json:"value" validate:"gt=0"`
	MinOrder     float64 `json:"min_order,omitempty"`
	MaxDiscount  float64 `json:"max_discount,omitempty"`
	ValidFrom    string  `json:"valid_from" validate:"required,datetime=2006-01-02"`
	ValidTo      string  `json:"valid_to" validate:"required,datetime=2006-01-02"`
	UsageLimit   int64   `json:"usage_limit,omitempty"`
	Active       bool    `json:"active"`
}

type Offer struct {
	ID          int64   `json:"id,omitempty"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description,omitempty"`
	VariantID   int64   `json:"variant_id" validate:"required"`
	Price       float64 `json:"price" validate:"gt=0"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	ImageURL    string  `json:"image_url,omitempty"`
	Active      bool    `json:"active"`
}

type Complaint struct {
	ID          int64     `json:"id,omitempty"`
	CustomerID  int64     `json:"customer_id,omitempty"`
	Subject     string    `json:"subject,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status" validate:"required,oneof=open in_progress resolved closed"`
	Resolution  string    `json:"resolution,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

type Hub struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type Area struct {
	ID    int64  `json:"id,omitempty"`
	Name  string `json:"name" validate:"required"`
	HubID int64  `json:"hub_id" validate:"required"`
}

type Subarea struct {
	ID     int64  `json:"id,omitempty"`
	Name   string `json:"name" validate:"required"`
	AreaID int64  `json:"area_id" validate:"required"`
}

// DeliveryPartner is a delivery boy as the API names it.
type DeliveryPartner struct {
	ID      int64   `json:"id,omitempty"`
	Name    string  `json:"name" validate:"required"`
	Phone   string  `json:"phone" validate:"required,numeric,len=10"`
	HubID   int64   `json:"hub_id" validate:"required"`
	AreaIDs []int64 `json:"area_ids,omitempty"`
	Active  bool    `json:"active"`
}

type ReferenceData struct {
	Customers []Customer `json:"customers"`
	Products  []Product  `json:"products"`
	Areas     []Area     `json:"areas"`
}

// Activity is one journalled mutation.
type Activity struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Operator  string    `json:"operator"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Outcome   string    `json:"outcome"`
	CreatedAt time.Time `json:"created_at"`
}

type FilePart struct {
	Field    string
	Filename string
	Data     []byte
}

// Form is a multipart submission, used where a screen uploads an image.
type Form struct {
	Fields map[string]string
	Files  []FilePart
}
