package domain

import "time"

// OrderStatus is the lifecycle state of an order. An order starts Pending and
// moves exactly once to one of the two terminal states.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderSelesai   OrderStatus = "Selesai"
	OrderBatal     OrderStatus = "Dibatalkan"
)

var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderPending: {OrderSelesai: true, OrderBatal: true},
	OrderSelesai: {},
	OrderBatal:   {},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

// Terminal reports whether no further transition is permitted from s.
func (s OrderStatus) Terminal() bool {
	return len(validNext[s]) == 0
}

// Order is a storefront purchase handed off to WhatsApp at checkout time.
// ProductName is a denormalized snapshot, not a foreign key, so the receipt
// stays accurate when the catalog item is renamed or removed later.
type Order struct {
	ID           int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName string      `gorm:"index;column:customer_name" json:"customer_name" form:"customer_name"`
	ProductName  string      `gorm:"column:product_name" json:"product_name" form:"product_name"`
	Qty          int         `json:"qty" form:"qty"`
	TotalPrice   string      `gorm:"size:64;column:total_price" json:"total_price" form:"total_price"`
	Status       OrderStatus `gorm:"size:32;index" json:"status" form:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}
