package params

import (
	"strings"

	"wayforpay/entity"
)

// rule checks a normalized value and optionally rewrites it before it is
// stored. Fields without a rule accept any value.
type rule struct {
	validate  func(value any) bool
	transform func(value any) any
}

var rules = buildRules()

func buildRules() map[string]rule {
	r := make(map[string]rule)
	for _, field := range allRequiredFields() {
		r[field] = rule{validate: notEmpty}
	}
	r[FieldTransactionType] = rule{validate: knownTransactionType}
	r[FieldLanguage] = rule{validate: supportedLanguage}
	r[FieldPaymentSystems] = rule{validate: knownPaymentSystems, transform: joinPaymentSystems}
	return r
}

func notEmpty(value any) bool {
	return !isEmpty(value)
}

func knownTransactionType(value any) bool {
	s, ok := value.(string)
	return ok && entity.TransactionType(s).IsValid()
}

func supportedLanguage(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	for _, language := range entity.SupportedLanguages {
		if s == string(language) {
			return true
		}
	}
	return false
}

func knownPaymentSystems(value any) bool {
	seq, ok := value.([]any)
	if !ok {
		return false
	}
	for _, item := range seq {
		s, ok := item.(string)
		if !ok || !isPaymentSystem(s) {
			return false
		}
	}
	return true
}

func isPaymentSystem(s string) bool {
	for _, system := range entity.PaymentSystems {
		if s == string(system) {
			return true
		}
	}
	return false
}

// joinPaymentSystems stores the list as the single ";"-separated string the
// gateway expects.
func joinPaymentSystems(value any) any {
	seq := value.([]any)
	parts := make([]string, len(seq))
	for i, item := range seq {
		parts[i] = item.(string)
	}
	return strings.Join(parts, ";")
}
