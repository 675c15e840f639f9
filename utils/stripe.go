package utils

import (
	"fmt"
	"strconv"

	"schoolhub/config"

	"github.com/go-resty/resty/v2"
)

// PaymentIntentResponse represents the processor's payment intent object
type PaymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int    `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// CreatePaymentIntent creates a Stripe payment intent for a card payment.
// amount is in the currency's minor units (cents for usd).
func CreatePaymentIntent(amount int, currency string) (*PaymentIntentResponse, error) {
	if config.AppConfig.StripeSecretKey == "" {
		return nil, fmt.Errorf("payment processor secret key is not configured")
	}

	client := resty.New()

	resp, err := client.R().
		SetAuthToken(config.AppConfig.StripeSecretKey).
		SetFormData(map[string]string{
			"amount":                 strconv.Itoa(amount),
			"currency":               currency,
			"payment_method_types[]": "card",
		}).
		SetResult(&PaymentIntentResponse{}).
		Post(config.AppConfig.StripeApiURL + "/payment_intents")
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %v", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("payment API error: %s", resp.String())
	}

	intent, ok := resp.Result().(*PaymentIntentResponse)
	if !ok || intent.ClientSecret == "" {
		return nil, fmt.Errorf("payment API returned no client secret")
	}

	return intent, nil
}
