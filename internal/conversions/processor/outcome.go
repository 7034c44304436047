package processor

import "net/http"

// Outcome is the terminal classification of one payment event
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeNoAffiliateData
	OutcomeInvalidReference
	OutcomeSelfReferral
	OutcomeIneligibleSubscriber
	OutcomeDuplicateEvent
	OutcomeCredited
	OutcomeProcessingError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeNoAffiliateData:
		return "no_affiliate_data"
	case OutcomeInvalidReference:
		return "invalid_reference"
	case OutcomeSelfReferral:
		return "self_referral"
	case OutcomeIneligibleSubscriber:
		return "ineligible_subscriber"
	case OutcomeDuplicateEvent:
		return "duplicate_event"
	case OutcomeCredited:
		return "credited"
	default:
		return "processing_error"
	}
}

// StatusCode is the HTTP status acknowledged to the payment provider.
// Only 5xx asks the provider to redeliver.
func (o Outcome) StatusCode() int {
	switch o {
	case OutcomeInvalidReference:
		return http.StatusBadRequest
	case OutcomeProcessingError:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}

// Message is the plain-text response body for the outcome
func (o Outcome) Message() string {
	switch o {
	case OutcomeIgnored:
		return "Event ignored"
	case OutcomeNoAffiliateData:
		return "Processing complete (No affiliate data)"
	case OutcomeInvalidReference:
		return "Invalid affiliate link"
	case OutcomeSelfReferral:
		return "Self-referrals are not rewarded"
	case OutcomeIneligibleSubscriber:
		return "Customer is not eligible for affiliate credit"
	case OutcomeDuplicateEvent:
		return "Conversion already acknowledged for this user"
	case OutcomeCredited:
		return "Conversion verified and wallet updated"
	default:
		return "Internal Server Error"
	}
}
