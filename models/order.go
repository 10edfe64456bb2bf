package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting processing
	OrderStatusProcessing OrderStatus = "processing" // Being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the item
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before shipping

	// Payment statuses
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Order is a snapshot taken at checkout. Shipping fields are copied from the
// checkout form, not referenced from the profile, so later profile edits do
// not alter past orders. Only the status fields are mutable afterwards.
type Order struct {
	ID              uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint          `gorm:"index;not null" json:"user_id"`
	User            User          `json:"user,omitempty"`
	OrderNumber     string        `gorm:"uniqueIndex;size:50;not null" json:"order_number"`
	TotalAmount     float64       `gorm:"not null" json:"total_amount"`
	Status          OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	ShippingName    string        `gorm:"size:100" json:"shipping_name"`
	ShippingPhone   string        `gorm:"size:20" json:"shipping_phone"`
	ShippingAddress string        `json:"shipping_address"`
	ShippingCity    string        `gorm:"size:100" json:"shipping_city"`
	ShippingState   string        `gorm:"size:100" json:"shipping_state"`
	ShippingPincode string        `gorm:"size:10" json:"shipping_pincode"`
	PaymentMethod   string        `gorm:"size:50" json:"payment_method"`
	PaymentStatus   PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	Notes           string        `json:"notes"`
	Items           []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// OrderItem freezes the unit price at order time; later catalog price
// changes must never alter historical totals.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `json:"product,omitempty"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
	Size      string  `gorm:"size:10" json:"size"`
	Color     string  `gorm:"size:50" json:"color"`
}

// Total is the frozen line total
func (oi *OrderItem) Total() float64 {
	return oi.Price * float64(oi.Quantity)
}
