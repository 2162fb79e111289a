package models

// ProductProperty holds per-format pricing and the discount percentage
// applied to every format of the product.
type ProductProperty struct {
	PdfPrice       float64 `json:"pdf_price"`
	HardBackPrice  float64 `json:"hard_back_price"`
	PaperBackPrice float64 `json:"paper_back_price"`
	Discount       float64 `json:"discount"`
}

type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Slug     string          `json:"slug"`
	Property ProductProperty `json:"property"`
}
