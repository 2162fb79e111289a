package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repository"
	"backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReceiptService renders a PDF receipt for one order.
type ReceiptService struct {
	OrderRepo   repository.Repository[models.Order]
	ItemRepo    repository.Repository[models.OrderItem]
	ProductRepo repository.Repository[models.Product]
	UserRepo    repository.Repository[models.User]
	RequestID   string
	Loader      func(string) (receiptData, error)
}

type receiptData struct {
	OrderID   string
	OrderRef  string
	BuyerName string
	PlacedAt  time.Time
	Items     []models.OrderItem
}

func (s ReceiptService) GenerateReceipt(orderID string) ([]byte, string, error) {
	data, err := s.loadReceiptData(orderID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "receipt", "generate", "order_id="+orderID)
	return buildReceiptPDF(data)
}

func (s ReceiptService) loadReceiptData(orderID string) (receiptData, error) {
	if s.Loader != nil {
		return s.Loader(orderID)
	}

	var out receiptData
	order, err := s.OrderRepo.GetByID(orderID)
	if err != nil {
		return out, err
	}
	if order == nil {
		return out, domain.NotFoundError{Resource: "order"}
	}

	items, err := s.ItemRepo.GetByAttr(map[string]any{"order_id": order.ID})
	if err != nil {
		return out, err
	}

	productIDs := []string{}
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := s.ProductRepo.GetByIDs(productIDs)
	if err != nil {
		return out, err
	}
	byID := map[string]models.Product{}
	for _, p := range products {
		byID[p.ID] = p
	}
	for i := range items {
		items[i].Product = byID[items[i].ProductID]
	}

	out.OrderID = order.ID
	out.OrderRef = order.OrderID
	out.PlacedAt = order.PlacedAt
	out.Items = items

	if buyer, err := s.UserRepo.GetByID(order.UserID); err == nil && buyer != nil {
		out.BuyerName = buyer.Name
	}
	return out, nil
}

func buildReceiptPDF(d receiptData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Order Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ORDER RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Order   : "+safe(d.OrderRef, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Buyer   : "+safe(d.BuyerName, "-"))
	pdf.Ln(7)
	placed := "-"
	if !d.PlacedAt.IsZero() {
		placed = d.PlacedAt.Format("2006-01-02 15:04")
	}
	pdf.Cell(0, 7, "Placed  : "+placed)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Items:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for i, item := range d.Items {
		prop := item.Product.Property
		formats := []string{}
		if item.PDF {
			formats = append(formats, fmt.Sprintf("PDF %s", formatMoney(CalculateDiscount(prop.PdfPrice, prop.Discount))))
		}
		if item.HardBackQty > 0 {
			formats = append(formats, fmt.Sprintf("hardback x%d @ %s",
				item.HardBackQty, formatMoney(CalculateDiscount(prop.HardBackPrice, prop.Discount))))
		}
		if item.PaperBackQty > 0 {
			formats = append(formats, fmt.Sprintf("paperback x%d @ %s",
				item.PaperBackQty, formatMoney(CalculateDiscount(prop.PaperBackPrice, prop.Discount))))
		}
		line := fmt.Sprintf("%d) %s - %s", i+1, safe(item.Product.Name, "-"), strings.Join(formats, ", "))
		pdf.MultiCell(0, 6, line, "", "", false)
		pdf.Ln(1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+formatMoney(GetProductTotalPrice(d.Items)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Thank you for your purchase. Digital copies are delivered by email.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%s.pdf", safeFilenamePart(d.OrderRef))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}

func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
