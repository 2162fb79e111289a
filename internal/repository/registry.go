package repository

import (
	"time"

	"backend/internal/domain/models"
)

// Entity schemas. Declaring columns here instead of introspecting the
// store keeps coercion compile-time checked and query assembly
// independent of the live schema.

var userColumns = []Column{
	{Name: "id", Kind: KindUUID},
	{Name: "name", Kind: KindString},
	{Name: "email", Kind: KindString},
}

var orderItemColumns = []Column{
	{Name: "id", Kind: KindUUID},
	{Name: "order_id", Kind: KindUUID},
	{Name: "product_id", Kind: KindUUID},
	{Name: "pdf", Kind: KindBool},
	{Name: "hard_back_qty", Kind: KindInt},
	{Name: "paper_back_qty", Kind: KindInt},
}

var productColumns = []Column{
	{Name: "id", Kind: KindUUID},
	{Name: "name", Kind: KindString},
	{Name: "slug", Kind: KindString},
	{Name: "pdf_price", Kind: KindFloat},
	{Name: "hard_back_price", Kind: KindFloat},
	{Name: "paper_back_price", Kind: KindFloat},
	{Name: "discount", Kind: KindFloat},
}

var Users = Schema[models.User]{
	Table:   "users",
	Columns: userColumns,
	FromRecord: func(rec Record) models.User {
		return models.User{
			ID:    str(rec, "id"),
			Name:  str(rec, "name"),
			Email: str(rec, "email"),
		}
	},
}

var Addresses = Schema[models.ShippingAddress]{
	Table: "shipping_addresses",
	Columns: []Column{
		{Name: "id", Kind: KindUUID},
		{Name: "street", Kind: KindString},
		{Name: "city", Kind: KindString},
		{Name: "state", Kind: KindString},
		{Name: "user_id", Kind: KindUUID},
	},
	Relations: []Relation{
		{Name: "user", Table: "users", LocalKey: "user_id", Key: "id", Columns: userColumns},
	},
	FromRecord: func(rec Record) models.ShippingAddress {
		return models.ShippingAddress{
			ID:     str(rec, "id"),
			Street: str(rec, "street"),
			City:   str(rec, "city"),
			State:  str(rec, "state"),
			UserID: str(rec, "user_id"),
		}
	},
}

var Orders = Schema[models.Order]{
	Table: "orders",
	Columns: []Column{
		{Name: "id", Kind: KindUUID},
		{Name: "order_id", Kind: KindString},
		{Name: "user_id", Kind: KindUUID},
		{Name: "status", Kind: KindEnum, Enum: []string{
			models.OrderStatusPending, models.OrderStatusPaid, models.OrderStatusCancelled,
		}},
		{Name: "total", Kind: KindFloat},
		{Name: "paid", Kind: KindBool},
		{Name: "placed_at", Kind: KindDateTime},
	},
	Relations: []Relation{
		{Name: "items", Table: "order_items", LocalKey: "id", Key: "order_id", Columns: orderItemColumns, Many: true},
		{Name: "user", Table: "users", LocalKey: "user_id", Key: "id", Columns: userColumns},
	},
	FromRecord: func(rec Record) models.Order {
		order := models.Order{
			ID:       str(rec, "id"),
			OrderID:  str(rec, "order_id"),
			UserID:   str(rec, "user_id"),
			Status:   str(rec, "status"),
			Total:    f64(rec, "total"),
			Paid:     boolean(rec, "paid"),
			PlacedAt: ts(rec, "placed_at"),
		}
		if items, ok := rec["items"].([]Record); ok {
			for _, item := range items {
				order.Items = append(order.Items, OrderItems.FromRecord(item))
			}
		}
		if user, ok := rec["user"].(Record); ok {
			order.User = Users.FromRecord(user)
		}
		return order
	},
}

var OrderItems = Schema[models.OrderItem]{
	Table:   "order_items",
	Columns: orderItemColumns,
	Relations: []Relation{
		{Name: "product", Table: "products", LocalKey: "product_id", Key: "id", Columns: productColumns},
	},
	FromRecord: func(rec Record) models.OrderItem {
		item := models.OrderItem{
			ID:           str(rec, "id"),
			OrderID:      str(rec, "order_id"),
			ProductID:    str(rec, "product_id"),
			PDF:          boolean(rec, "pdf"),
			HardBackQty:  i64(rec, "hard_back_qty"),
			PaperBackQty: i64(rec, "paper_back_qty"),
		}
		if product, ok := rec["product"].(Record); ok {
			item.Product = Products.FromRecord(product)
		}
		return item
	},
}

var Products = Schema[models.Product]{
	Table:   "products",
	Columns: productColumns,
	FromRecord: func(rec Record) models.Product {
		return models.Product{
			ID:   str(rec, "id"),
			Name: str(rec, "name"),
			Slug: str(rec, "slug"),
			Property: models.ProductProperty{
				PdfPrice:       f64(rec, "pdf_price"),
				HardBackPrice:  f64(rec, "hard_back_price"),
				PaperBackPrice: f64(rec, "paper_back_price"),
				Discount:       f64(rec, "discount"),
			},
		}
	},
}

func str(rec Record, key string) string {
	v, _ := rec[key].(string)
	return v
}

func i64(rec Record, key string) int64 {
	v, _ := rec[key].(int64)
	return v
}

func f64(rec Record, key string) float64 {
	v, _ := rec[key].(float64)
	return v
}

func boolean(rec Record, key string) bool {
	v, _ := rec[key].(bool)
	return v
}

func ts(rec Record, key string) time.Time {
	v, _ := rec[key].(time.Time)
	return v
}
