package handlers

import (
	"net/http"

	"backend/internal/domain/models"
	"backend/internal/http/middleware"
	"backend/internal/payment"
	"backend/internal/repository"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PaymentHandlers holds the injected gateway client; the credential is
// constructed once at process start, never referenced as ambient state.
type PaymentHandlers struct {
	Client *payment.Client
}

func NewPaymentHandlers(client *payment.Client) PaymentHandlers {
	return PaymentHandlers{Client: client}
}

// POST /api/payments/link
func (h PaymentHandlers) GenerateLink(c *gin.Context) {
	var in payment.LinkRequest
	if !BindJSONOrError(c, &in) {
		return
	}
	if in.TxRef == "" {
		in.TxRef = services.NewOrderRef()
	}

	resp, err := h.Client.GenerateLink(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /api/payments/verify/:tx_ref
func (h PaymentHandlers) VerifyPayment(c *gin.Context) {
	resp, err := h.Client.VerifyPayment(c.Param("tx_ref"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

type quoteItem struct {
	ProductID    string `json:"product_id" binding:"required"`
	PDF          bool   `json:"pdf"`
	HardBackQty  int64  `json:"hard_back_qty"`
	PaperBackQty int64  `json:"paper_back_qty"`
}

type quoteRequest struct {
	Items []quoteItem `json:"items"`
}

// POST /api/orders/quote computes the discounted total for a cart.
func OrderQuote(c *gin.Context) {
	var in quoteRequest
	if !BindJSONOrError(c, &in) {
		return
	}

	productIDs := make([]string, 0, len(in.Items))
	for _, item := range in.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := repository.New(nil, repository.Products).GetByIDs(productIDs)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	byID := map[string]models.Product{}
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	for _, q := range in.Items {
		items = append(items, models.OrderItem{
			ProductID:    q.ProductID,
			PDF:          q.PDF,
			HardBackQty:  q.HardBackQty,
			PaperBackQty: q.PaperBackQty,
			Product:      byID[q.ProductID],
		})
	}

	c.JSON(http.StatusOK, gin.H{"total": services.GetProductTotalPrice(items)})
}

// GET /api/orders/:id/receipt streams the order receipt PDF.
func OrderReceipt(c *gin.Context) {
	svc := services.ReceiptService{
		OrderRepo:   repository.New(nil, repository.Orders),
		ItemRepo:    repository.New(nil, repository.OrderItems),
		ProductRepo: repository.New(nil, repository.Products),
		UserRepo:    repository.New(nil, repository.Users),
		RequestID:   middleware.GetRequestID(c),
	}

	pdf, filename, err := svc.GenerateReceipt(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
