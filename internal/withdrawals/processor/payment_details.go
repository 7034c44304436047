package processor

import (
	"affiliate-server/internal/store"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// PaymentDetails is the method-specific payout destination of a withdrawal request
type PaymentDetails interface {
	Method() string
	Validate() error
	toJSONB() store.JSONB
}

// BankDetails is a bank transfer destination
type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	RoutingNumber string `json:"routing_number,omitempty"`
	SwiftCode     string `json:"swift_code,omitempty"`
}

func (d BankDetails) Method() string { return store.PaymentMethodBank }

func (d BankDetails) Validate() error {
	return requireFields(map[string]string{
		"bank_name":      d.BankName,
		"account_name":   d.AccountName,
		"account_number": d.AccountNumber,
	})
}

func (d BankDetails) toJSONB() store.JSONB {
	out := store.JSONB{
		"bank_name":      d.BankName,
		"account_name":   d.AccountName,
		"account_number": d.AccountNumber,
	}
	if d.RoutingNumber != "" {
		out["routing_number"] = d.RoutingNumber
	}
	if d.SwiftCode != "" {
		out["swift_code"] = d.SwiftCode
	}
	return out
}

// CryptoDetails is a crypto wallet destination
type CryptoDetails struct {
	Address string `json:"address"`
	Network string `json:"network"`
}

func (d CryptoDetails) Method() string { return store.PaymentMethodCrypto }

func (d CryptoDetails) Validate() error {
	return requireFields(map[string]string{
		"address": d.Address,
		"network": d.Network,
	})
}

func (d CryptoDetails) toJSONB() store.JSONB {
	return store.JSONB{"address": d.Address, "network": d.Network}
}

// PaypalDetails is a PayPal account destination
type PaypalDetails struct {
	Email string `json:"email"`
}

func (d PaypalDetails) Method() string { return store.PaymentMethodPaypal }

func (d PaypalDetails) Validate() error {
	if err := requireFields(map[string]string{"email": d.Email}); err != nil {
		return err
	}
	if !strings.Contains(d.Email, "@") {
		return fmt.Errorf("%w: email is not a valid address", ErrInvalidPaymentDetails)
	}
	return nil
}

func (d PaypalDetails) toJSONB() store.JSONB {
	return store.JSONB{"email": d.Email}
}

// DecodePaymentDetails decodes the details object for the given method and validates it
func DecodePaymentDetails(method string, raw json.RawMessage) (PaymentDetails, error) {
	var details PaymentDetails
	switch method {
	case store.PaymentMethodBank:
		var d BankDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPaymentDetails, err)
		}
		details = d
	case store.PaymentMethodCrypto:
		var d CryptoDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPaymentDetails, err)
		}
		details = d
	case store.PaymentMethodPaypal:
		var d PaypalDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPaymentDetails, err)
		}
		details = d
	default:
		return nil, fmt.Errorf("%w: unsupported payment method %q", ErrInvalidPaymentDetails, method)
	}

	if err := details.Validate(); err != nil {
		return nil, err
	}
	return details, nil
}

func requireFields(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%w: %s required", ErrInvalidPaymentDetails, strings.Join(missing, ", "))
}
