package services

import (
	"testing"

	"backend/internal/domain/models"
)

func TestCalculateDiscount(t *testing.T) {
	if got := CalculateDiscount(100, 10); got != 90 {
		t.Fatalf("expected 90, got %v", got)
	}
	if got := CalculateDiscount(100, 0); got != 100 {
		t.Fatalf("expected unchanged price, got %v", got)
	}
	if got := CalculateDiscount(100, -5); got != 100 {
		t.Fatalf("negative discount must not raise the price, got %v", got)
	}
	if got := CalculateDiscount(100, 100); got != 0 {
		t.Fatalf("full discount must zero the price, got %v", got)
	}
}

func TestGetProductTotalPrice(t *testing.T) {
	items := []models.OrderItem{
		{
			PDF: true,
			Product: models.Product{Property: models.ProductProperty{
				PdfPrice: 100, Discount: 10,
			}},
		},
		{
			HardBackQty: 2,
			Product: models.Product{Property: models.ProductProperty{
				HardBackPrice: 50,
			}},
		},
	}

	if got := GetProductTotalPrice(items); got != 190 {
		t.Fatalf("expected 190, got %v", got)
	}
}

func TestGetProductTotalPriceMixedFormats(t *testing.T) {
	items := []models.OrderItem{
		{
			PDF:          true,
			HardBackQty:  1,
			PaperBackQty: 3,
			Product: models.Product{Property: models.ProductProperty{
				PdfPrice: 20, HardBackPrice: 40, PaperBackPrice: 10, Discount: 50,
			}},
		},
	}

	// 10 (pdf) + 20 (hardback) + 15 (paperback), all at half price.
	if got := GetProductTotalPrice(items); got != 45 {
		t.Fatalf("expected 45, got %v", got)
	}
}

func TestGetProductTotalPriceEmpty(t *testing.T) {
	if got := GetProductTotalPrice(nil); got != 0 {
		t.Fatalf("expected 0 for empty cart, got %v", got)
	}
}
