package services

import "backend/internal/domain/models"

// CalculateDiscount reduces price by a percentage in [0,100].
// Non-positive discounts leave the price unchanged.
func CalculateDiscount(price, discountPercent float64) float64 {
	if discountPercent <= 0 {
		return price
	}
	return price - price*discountPercent/100
}

// GetProductTotalPrice sums the discounted price of every requested
// format across all items: the PDF price when the digital copy is
// requested, plus quantity times unit price for each physical format.
// An empty item list totals 0.
func GetProductTotalPrice(items []models.OrderItem) float64 {
	var pdfPrice, hardBackPrice, paperBackPrice float64
	for _, item := range items {
		prop := item.Product.Property
		if item.PDF {
			pdfPrice += CalculateDiscount(prop.PdfPrice, prop.Discount)
		}
		hardBackPrice += float64(item.HardBackQty) * CalculateDiscount(prop.HardBackPrice, prop.Discount)
		paperBackPrice += float64(item.PaperBackQty) * CalculateDiscount(prop.PaperBackPrice, prop.Discount)
	}
	return pdfPrice + hardBackPrice + paperBackPrice
}
