package entity

const (
	// ApiUrl accepts JSON requests for every transaction type except PURCHASE.
	ApiUrl = "https://api.wayforpay.com/api"
	// PurchaseUrl is the checkout page a purchase form is posted to.
	PurchaseUrl = "https://secure.wayforpay.com/pay"
	// PurchaseRedirectUrl is the checkout page for GET redirects.
	PurchaseRedirectUrl = "https://secure.wayforpay.com/get"
)

// Language is the checkout page locale.
type Language string

const (
	LanguageAuto Language = "AUTO"
	LanguageRu   Language = "RU"
	LanguageUa   Language = "UA"
	LanguageEn   Language = "EN"
)

// SupportedLanguages are the only accepted values of the language field.
var SupportedLanguages = []Language{LanguageAuto, LanguageRu, LanguageUa, LanguageEn}

// PaymentSystem identifies a payment method offered on the checkout page.
type PaymentSystem string

const (
	PaymentCard         PaymentSystem = "card"
	PaymentPrivat24     PaymentSystem = "privat24"
	PaymentLpTerminal   PaymentSystem = "lpTerminal"
	PaymentBtc          PaymentSystem = "btc"
	PaymentCredit       PaymentSystem = "credit"
	PaymentPayParts     PaymentSystem = "payParts"
	PaymentQrCode       PaymentSystem = "qrCode"
	PaymentMasterPass   PaymentSystem = "masterPass"
	PaymentVisaCheckout PaymentSystem = "visaCheckout"
	PaymentGooglePay    PaymentSystem = "googlePay"
	PaymentApplePay     PaymentSystem = "applePay"
)

// PaymentSystems are the accepted elements of the paymentSystems field.
var PaymentSystems = []PaymentSystem{
	PaymentCard,
	PaymentPrivat24,
	PaymentLpTerminal,
	PaymentBtc,
	PaymentCredit,
	PaymentPayParts,
	PaymentQrCode,
	PaymentMasterPass,
	PaymentVisaCheckout,
	PaymentGooglePay,
	PaymentApplePay,
}
