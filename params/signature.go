package params

import (
	"crypto/hmac"
	"crypto/md5"
	"encoding/hex"
	"reflect"
	"strings"
)

// Sign computes a merchantSignature over values. Sequences among values are
// spliced in place (one level only), every element is rendered with
// Stringify, the results are joined with ";" and hashed with HMAC-MD5 keyed
// by merchantKey. The digest is returned as lowercase hex.
//
// A ";" inside a value is not escaped; the gateway does the same.
func Sign(merchantKey string, values []any) string {
	hash := macMd5(signatureString(values), []byte(merchantKey))
	return hex.EncodeToString(hash)
}

func signatureString(values []any) string {
	flat := flatten(values)
	parts := make([]string, len(flat))
	for i, value := range flat {
		parts[i] = Stringify(value)
	}
	return strings.Join(parts, ";")
}

func flatten(values []any) []any {
	out := make([]any, 0, len(values))
	for _, value := range values {
		if seq, ok := value.([]any); ok {
			out = append(out, seq...)
			continue
		}
		rv := reflect.ValueOf(value)
		if value != nil && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
			for i := 0; i < rv.Len(); i++ {
				out = append(out, rv.Index(i).Interface())
			}
			continue
		}
		out = append(out, value)
	}
	return out
}

func macMd5(message string, key []byte) []byte {
	mac := hmac.New(md5.New, key)
	mac.Write([]byte(message))
	return mac.Sum(nil)
}
