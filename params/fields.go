package params

import "wayforpay/entity"

const (
	FieldTransactionType   = "transactionType"
	FieldMerchantAccount   = "merchantAccount"
	FieldMerchantSignature = "merchantSignature"
	FieldOrderReference    = "orderReference"
	FieldRecToken          = "recToken"
	FieldLanguage          = "language"
	FieldPaymentSystems    = "paymentSystems"
)

// The order of signature fields is the order their values are joined in
// before signing. The gateway verifies the same order.
var purchaseSignatureFields = []string{
	"merchantAccount",
	"merchantDomainName",
	"orderReference",
	"orderDate",
	"amount",
	"currency",
	"productName",
	"productCount",
	"productPrice",
}

var signatureFields = map[entity.TransactionType][]string{
	entity.Purchase:      purchaseSignatureFields,
	entity.Charge:        purchaseSignatureFields,
	entity.CreateInvoice: purchaseSignatureFields,
	entity.Refund: {
		"merchantAccount",
		"orderReference",
		"amount",
		"currency",
	},
	entity.CheckStatus: {
		"merchantAccount",
		"orderReference",
	},
	entity.Settle: {
		"merchantAccount",
		"orderReference",
		"amount",
		"currency",
	},
	entity.P2PCredit: {
		"merchantAccount",
		"orderReference",
		"amount",
		"currency",
		"cardBeneficiary",
		"rec2Token",
	},
	entity.P2Phone: {
		"merchantAccount",
		"orderReference",
		"amount",
		"currency",
		"phone",
	},
	entity.TransactionList: {
		"merchantAccount",
		"dateBegin",
		"dateEnd",
	},
}

var chargeRequiredFields = []string{
	"merchantAccount",
	"transactionType",
	"merchantDomainName",
	"orderReference",
	"apiVersion",
	"orderDate",
	"amount",
	"currency",
	"productName",
	"productCount",
	"productPrice",
	"clientFirstName",
	"clientLastName",
	"clientEmail",
	"clientPhone",
	"clientCountry",
	"clientIpAddress",
}

var requiredFields = map[entity.TransactionType][]string{
	entity.Purchase: {
		"merchantAccount",
		"merchantDomainName",
		"merchantTransactionSecureType",
		"orderReference",
		"orderDate",
		"amount",
		"currency",
		"productName",
		"productCount",
		"productPrice",
	},
	entity.Refund: {
		"merchantAccount",
		"transactionType",
		"orderReference",
		"amount",
		"currency",
		"comment",
		"apiVersion",
	},
	entity.CheckStatus: {
		"merchantAccount",
		"transactionType",
		"orderReference",
		"apiVersion",
	},
	entity.Settle: {
		"merchantAccount",
		"transactionType",
		"orderReference",
		"amount",
		"currency",
		"apiVersion",
	},
	entity.Charge: chargeRequiredFields,
	entity.P2PCredit: {
		"merchantAccount",
		"transactionType",
		"orderReference",
		"amount",
		"currency",
		"cardBeneficiary",
		"merchantSignature",
	},
	entity.P2Phone: {
		"merchantAccount",
		"orderReference",
		"orderDate",
		"currency",
		"amount",
		"phone",
	},
	entity.TransactionList: {
		"merchantAccount",
		"dateBegin",
		"dateEnd",
	},
	entity.CreateInvoice: {
		"merchantAccount",
		"transactionType",
		"merchantDomainName",
		"orderReference",
		"amount",
		"currency",
		"productName",
		"productCount",
		"productPrice",
	},
}

var chargeTypeRequiredFields = map[entity.ChargeType][]string{
	entity.ChargeRecToken:   concat(chargeRequiredFields, "recToken"),
	entity.ChargeNoRecToken: concat(chargeRequiredFields, "card", "expMonth", "expYear", "cardCvv", "cardHolder"),
}

func concat(base []string, extra ...string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}

// signatureFieldsOf returns a copy of the signature field order for t.
func signatureFieldsOf(t entity.TransactionType) []string {
	return concat(signatureFields[t])
}

// requiredFieldsOf returns the required fields for t. For CHARGE the list
// depends on how the card is supplied.
func requiredFieldsOf(t entity.TransactionType, charge entity.ChargeType) []string {
	if t == entity.Charge {
		if fields, ok := chargeTypeRequiredFields[charge]; ok {
			return concat(fields)
		}
	}
	return concat(requiredFields[t])
}

// allRequiredFields is every name that appears in any required list.
func allRequiredFields() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(fields []string) {
		for _, field := range fields {
			if !seen[field] {
				seen[field] = true
				out = append(out, field)
			}
		}
	}
	for _, t := range entity.TransactionTypes {
		add(requiredFields[t])
	}
	add(chargeTypeRequiredFields[entity.ChargeRecToken])
	add(chargeTypeRequiredFields[entity.ChargeNoRecToken])
	return out
}
