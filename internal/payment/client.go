// Package payment is a thin adapter over the provider's payment API:
// link initialization and transaction verification. No retries and no
// idempotency keys; transport failures surface to the caller.
package payment

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"backend/internal/domain"
)

// Customer identifies the paying customer in a link request.
type Customer struct {
	Email       string `json:"email"`
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phonenumber,omitempty"`
}

// Customizations control the hosted payment page.
type Customizations struct {
	Title string `json:"title,omitempty"`
	Logo  string `json:"logo,omitempty"`
}

// LinkRequest is the payment-initialization payload.
type LinkRequest struct {
	TxRef          string         `json:"tx_ref"`
	Amount         string         `json:"amount"`
	Currency       string         `json:"currency"`
	RedirectURL    string         `json:"redirect_url"`
	Customer       Customer       `json:"customer"`
	Customizations Customizations `json:"customizations,omitempty"`
}

// LinkResponse is the provider's response envelope, returned verbatim
// whether the provider reports success or failure.
type LinkResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Link string `json:"link"`
	} `json:"data"`
}

// VerifyResponse is the envelope of a transaction verification.
type VerifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		ID       int64   `json:"id"`
		TxRef    string  `json:"tx_ref"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
		Status   string  `json:"status"`
	} `json:"data"`
}

// Client calls the payment provider. Construct it once during process
// initialization and pass it to call sites; the credential lives here,
// not in ambient state.
type Client struct {
	BaseURL    string
	SecretKey  string
	HTTPClient *http.Client
}

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		BaseURL:    baseURL,
		SecretKey:  secretKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// GenerateLink POSTs the payment-initialization payload and returns
// the parsed envelope.
func (c *Client) GenerateLink(data LinkRequest) (*LinkResponse, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, domain.UpstreamError{Provider: "payment", Err: err}
	}
	defer resp.Body.Close()

	var out LinkResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, domain.UpstreamError{Provider: "payment", Err: err}
	}
	return &out, nil
}

// VerifyPayment verifies a transaction by its reference. Synchronous
// and blocking, like the SDK call it replaces.
func (c *Client) VerifyPayment(txRef string) (*VerifyResponse, error) {
	endpoint := c.BaseURL + "/transactions/verify_by_reference?tx_ref=" + url.QueryEscape(txRef)
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, domain.UpstreamError{Provider: "payment", Err: err}
	}
	defer resp.Body.Close()

	var out VerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, domain.UpstreamError{Provider: "payment", Err: err}
	}
	return &out, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
