package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/checkout"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

// Verificar en tiempo de compilación que Client implementa PaymentGateway.
var _ checkout.PaymentGateway = (*Client)(nil)

const defaultBaseURL = "https://api.stripe.com"

// Client adaptador que implementa el puerto PaymentGateway contra la API REST
// de Stripe Checkout Sessions. Usa net/http de la librería estándar con
// cuerpos form-encoded, que es el formato de la API de Stripe; no requiere
// el SDK oficial.
type Client struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el adaptador. Si secretKey está vacío las llamadas
// devuelven error descriptivo en lugar de panic.
func NewClient(secretKey string) *Client {
	return &Client{
		secretKey: secretKey,
		baseURL:   defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 25 * time.Second,
		},
	}
}

// NewClientWithBaseURL igual que NewClient pero apuntando a otra URL base
// (stripe-mock o un httptest.Server en tests).
func NewClientWithBaseURL(secretKey, baseURL string) *Client {
	c := NewClient(secretKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// ── Estructuras del protocolo Checkout Sessions ───────────────────────────────

type sessionResponse struct {
	ID              string            `json:"id"`
	URL             string            `json:"url"`
	PaymentStatus   string            `json:"payment_status"`
	AmountTotal     int64             `json:"amount_total"`
	Metadata        map[string]string `json:"metadata"`
	CustomerDetails *struct {
		Email string `json:"email"`
	} `json:"customer_details"`
	LineItems *struct {
		Data []struct {
			Description    string `json:"description"`
			Quantity       int64  `json:"quantity"`
			AmountSubtotal int64  `json:"amount_subtotal"`
			AmountTotal    int64  `json:"amount_total"`
			Price          *struct {
				Product *struct {
					Name   string   `json:"name"`
					Images []string `json:"images"`
				} `json:"product"`
			} `json:"price"`
		} `json:"data"`
	} `json:"line_items"`
}

type errorResponse struct {
	Error *struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// CreateSession crea una sesión de Checkout en modo payment con las líneas,
// URLs de redirección y metadata indicadas.
func (c *Client) CreateSession(ctx context.Context, in checkout.CreateSessionInput) (*checkout.Session, error) {
	if c.secretKey == "" {
		return nil, fmt.Errorf("stripe: STRIPE_SECRET_KEY no configurado")
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", in.SuccessURL)
	form.Set("cancel_url", in.CancelURL)
	if in.CustomerEmail != "" {
		form.Set("customer_email", in.CustomerEmail)
	}
	for k, v := range in.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}
	for i, li := range in.LineItems {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[quantity]", strconv.FormatInt(li.Quantity, 10))
		form.Set(prefix+"[price_data][currency]", "usd")
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(li.UnitAmount, 10))
		form.Set(prefix+"[price_data][product_data][name]", li.Name)
		if li.ImageURL != "" {
			form.Set(prefix+"[price_data][product_data][images][0]", li.ImageURL)
		}
	}

	var out sessionResponse
	if err := c.do(ctx, http.MethodPost, "/v1/checkout/sessions", form, &out); err != nil {
		return nil, err
	}
	return &checkout.Session{ID: out.ID, URL: out.URL}, nil
}

// RetrieveSession consulta una sesión expandiendo los line items con su
// producto, para que la confirmación pueda reconstruir líneas de carrito.
func (c *Client) RetrieveSession(ctx context.Context, sessionID string) (*checkout.RetrievedSession, error) {
	if c.secretKey == "" {
		return nil, fmt.Errorf("stripe: STRIPE_SECRET_KEY no configurado")
	}
	if sessionID == "" {
		return nil, fmt.Errorf("stripe: sessionID vacío")
	}

	path := "/v1/checkout/sessions/" + url.PathEscape(sessionID) + "?expand[]=line_items.data.price.product"
	var out sessionResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	session := &checkout.RetrievedSession{
		ID:            out.ID,
		PaymentStatus: out.PaymentStatus,
		AmountTotal:   out.AmountTotal,
		Metadata:      out.Metadata,
	}
	if session.Metadata == nil {
		session.Metadata = map[string]string{}
	}
	if out.CustomerDetails != nil {
		session.CustomerEmail = out.CustomerDetails.Email
	}
	if out.LineItems != nil {
		for _, li := range out.LineItems.Data {
			item := checkout.SessionLineItem{
				Description:    li.Description,
				Quantity:       li.Quantity,
				AmountSubtotal: li.AmountSubtotal,
				AmountTotal:    li.AmountTotal,
			}
			if li.Price != nil && li.Price.Product != nil {
				item.ProductName = li.Price.Product.Name
				if len(li.Price.Product.Images) > 0 {
					item.ImageURL = li.Price.Product.Images[0]
				}
			}
			session.LineItems = append(session.LineItems, item)
		}
	}
	return session, nil
}

// do ejecuta una llamada a la API de Stripe y deserializa la respuesta.
// Un 404 de recurso se traduce a domain.ErrNotFound para que el caso de uso
// pueda distinguir "sesión inexistente" de un fallo del upstream.
func (c *Client) do(ctx context.Context, method, path string, form url.Values, out *sessionResponse) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("stripe: crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("stripe: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("stripe: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return fmt.Errorf("stripe: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("stripe: %w", domain.ErrNotFound)
		}
		var errResp errorResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return fmt.Errorf("stripe: error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return fmt.Errorf("stripe: HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("stripe: deserializar respuesta: %w", err)
	}
	return nil
}
