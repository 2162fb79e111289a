package services

import (
	"bytes"
	"testing"
	"time"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGenerateReceipt(t *testing.T) {
	svc := ReceiptService{
		RequestID: "test-req",
		Loader: func(orderID string) (receiptData, error) {
			return receiptData{
				OrderID:   orderID,
				OrderRef:  "IW-ABC123",
				BuyerName: "Ada",
				PlacedAt:  time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
				Items: []models.OrderItem{
					{
						PDF: true,
						Product: models.Product{
							Name:     "Go in Practice",
							Property: models.ProductProperty{PdfPrice: 100, Discount: 10},
						},
					},
					{
						HardBackQty: 2,
						Product: models.Product{
							Name:     "Clean Architecture",
							Property: models.ProductProperty{HardBackPrice: 50},
						},
					},
				},
			}, nil
		},
	}

	pdf, filename, err := svc.GenerateReceipt("o1")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if filename != "RECEIPT_IW-ABC123.pdf" {
		t.Fatalf("unexpected filename: %q", filename)
	}
	if len(pdf) == 0 || !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("expected PDF bytes, got %d bytes", len(pdf))
	}
}

func TestGenerateReceiptUnknownOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM `orders` WHERE `id` = \\? LIMIT 1").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "user_id", "status", "total", "paid", "placed_at"}))

	svc := ReceiptService{
		OrderRepo: repository.New(db, repository.Orders),
		RequestID: "test-req",
	}
	if _, _, err := svc.GenerateReceipt("missing"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
