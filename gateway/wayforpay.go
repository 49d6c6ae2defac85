package gateway

import "wayforpay/params"

// WayForPay bundles the three ways of sending a request for one merchant.
type WayForPay struct {
	API *Client

	account string
	key     string
}

func New(account, key string) *WayForPay {
	return &WayForPay{
		API:     NewClient(account, key),
		account: account,
		key:     key,
	}
}

func (w *WayForPay) Form(fields ...params.Field) (*Form, error) {
	return NewForm(w.account, w.key, fields...)
}

func (w *WayForPay) PurchaseURL(fields ...params.Field) (string, error) {
	return PurchaseURL(w.account, w.key, fields...)
}
