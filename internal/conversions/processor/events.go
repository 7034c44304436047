package processor

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v79"
)

const (
	ProviderPaystack = "paystack"
	ProviderStripe   = "stripe"

	// AffiliateLinkField is the metadata key carrying the affiliate link id on a charge
	AffiliateLinkField = "affiliate_link_id"

	paystackChargeSuccess = "charge.success"
	stripeChargeSucceeded = "charge.succeeded"
)

// ErrMalformedEvent is returned when a webhook body cannot be decoded
var ErrMalformedEvent = errors.New("malformed payment event")

// ChargeEvent is a provider-neutral view of a payment webhook
type ChargeEvent struct {
	Provider         string
	Type             string
	Successful       bool
	CustomerEmail    string
	AffiliateLinkRef string
}

type paystackEvent struct {
	Event string `json:"event"`
	Data  struct {
		Customer struct {
			Email string `json:"email"`
		} `json:"customer"`
		Metadata json.RawMessage `json:"metadata"`
	} `json:"data"`
}

type paystackMetadata struct {
	CustomFields []struct {
		VariableName string      `json:"variable_name"`
		Value        interface{} `json:"value"`
	} `json:"custom_fields"`
}

// DecodePaystackEvent parses a Paystack webhook body.
// Non-charge events are returned unsuccessful without inspecting their data.
func DecodePaystackEvent(body []byte) (ChargeEvent, error) {
	var raw paystackEvent
	if err := json.Unmarshal(body, &raw); err != nil {
		return ChargeEvent{}, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}

	event := ChargeEvent{
		Provider:   ProviderPaystack,
		Type:       raw.Event,
		Successful: raw.Event == paystackChargeSuccess,
	}
	if !event.Successful {
		return event, nil
	}

	event.CustomerEmail = raw.Data.Customer.Email
	event.AffiliateLinkRef = paystackCustomField(raw.Data.Metadata, AffiliateLinkField)
	return event, nil
}

// paystackCustomField finds a custom field value. Metadata may arrive as an object,
// as a JSON-encoded string, or not at all.
func paystackCustomField(metadata json.RawMessage, name string) string {
	if len(metadata) == 0 {
		return ""
	}

	var encoded string
	if err := json.Unmarshal(metadata, &encoded); err == nil {
		metadata = json.RawMessage(encoded)
	}

	var meta paystackMetadata
	if err := json.Unmarshal(metadata, &meta); err != nil {
		return ""
	}

	for _, field := range meta.CustomFields {
		if field.VariableName != name || field.Value == nil {
			continue
		}
		if s, ok := field.Value.(string); ok {
			return strings.TrimSpace(s)
		}
		return fmt.Sprint(field.Value)
	}
	return ""
}

// ChargeEventFromStripe maps a verified Stripe event onto a charge event
func ChargeEventFromStripe(event stripe.Event) (ChargeEvent, error) {
	charge := ChargeEvent{
		Provider:   ProviderStripe,
		Type:       string(event.Type),
		Successful: string(event.Type) == stripeChargeSucceeded,
	}
	if !charge.Successful {
		return charge, nil
	}
	if event.Data == nil {
		return ChargeEvent{}, fmt.Errorf("%w: missing event data", ErrMalformedEvent)
	}

	var sc stripe.Charge
	if err := json.Unmarshal(event.Data.Raw, &sc); err != nil {
		return ChargeEvent{}, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}

	if sc.BillingDetails != nil && sc.BillingDetails.Email != "" {
		charge.CustomerEmail = sc.BillingDetails.Email
	} else {
		charge.CustomerEmail = sc.ReceiptEmail
	}
	charge.AffiliateLinkRef = strings.TrimSpace(sc.Metadata[AffiliateLinkField])

	return charge, nil
}
