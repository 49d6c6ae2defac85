package gateway

import (
	"net/url"
	"strings"

	"wayforpay/entity"
	"wayforpay/params"
)

// PurchaseURL signs a PURCHASE request and encodes it as a checkout redirect
// URL. Pairs keep the request order; sequences repeat as field[]=value.
func PurchaseURL(account, key string, fields ...params.Field) (string, error) {
	frozen, err := params.NewFrozen(account, key, entity.Purchase, fields...)
	if err != nil {
		return "", err
	}
	return entity.PurchaseRedirectUrl + "?" + encodeQuery(frozen), nil
}

func encodeQuery(frozen *params.Frozen) string {
	var b strings.Builder
	write := func(name string, value any) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params.Stringify(value)))
	}
	frozen.Range(func(name string, value any) bool {
		if seq, ok := value.([]any); ok {
			for _, item := range seq {
				write(name+"[]", item)
			}
			return true
		}
		write(name, value)
		return true
	})
	return b.String()
}
