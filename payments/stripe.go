package payments

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// StripeGateway talks to the Stripe REST API with form-encoded POSTs.
// BaseURL is swappable so tests can point it at a local server.
type StripeGateway struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewStripeGateway(apiKey, baseURL string) *StripeGateway {
	return &StripeGateway{
		APIKey:  apiKey,
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *StripeGateway) CreateSubscription(description, email, cardToken, plan string) (*Customer, error) {
	form := url.Values{}
	form.Set("description", description)
	form.Set("email", email)
	form.Set("source", cardToken)
	form.Set("plan", plan)

	var cust Customer
	if err := g.post("/v1/customers", form, &cust); err != nil {
		return nil, err
	}
	return &cust, nil
}

func (g *StripeGateway) CreateOneTimeCharge(description, cardToken string, amount int64, currency string) (*Charge, error) {
	form := url.Values{}
	form.Set("description", description)
	form.Set("source", cardToken)
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)

	var charge Charge
	if err := g.post("/v1/charges", form, &charge); err != nil {
		return nil, err
	}
	return &charge, nil
}

func (g *StripeGateway) post(path string, form url.Values, out interface{}) error {
	req, err := http.NewRequest(http.MethodPost, g.BaseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(g.APIKey, "")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var body struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		// Best effort; the status code alone is enough to fail the call.
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &ProcessorError{
			StatusCode: resp.StatusCode,
			Code:       body.Error.Code,
			Message:    body.Error.Message,
		}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
