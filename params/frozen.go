package params

import (
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"wayforpay/entity"
)

// Frozen is a prepared parameter set that can no longer change. It is the
// form in which a request is sent to the gateway.
type Frozen struct {
	params          *Params
	transactionType entity.TransactionType
}

// NewFrozen seeds a parameter set with transactionType and merchantAccount,
// applies fields in order and prepares it with merchantKey. The seeded names
// cannot be overridden by fields.
func NewFrozen(merchantAccount, merchantKey string, t entity.TransactionType, fields ...Field) (*Frozen, error) {
	p, err := New(
		Field{Name: FieldTransactionType, Value: string(t)},
		Field{Name: FieldMerchantAccount, Value: merchantAccount},
	)
	if err != nil {
		return nil, err
	}
	for _, field := range fields {
		if field.Name == FieldTransactionType || field.Name == FieldMerchantAccount {
			return nil, &ValidationError{Field: field.Name}
		}
		if err = p.Set(field.Name, field.Value); err != nil {
			return nil, err
		}
	}
	if err = p.Prepare(merchantKey); err != nil {
		return nil, err
	}
	return &Frozen{params: p, transactionType: t}, nil
}

func (f *Frozen) Get(name string) (any, bool) {
	return f.params.Get(name)
}

func (f *Frozen) Has(name string) bool {
	return f.params.Has(name)
}

func (f *Frozen) Keys() []string {
	return f.params.Keys()
}

func (f *Frozen) Len() int {
	return f.params.Len()
}

func (f *Frozen) Fields() []Field {
	return f.params.Fields()
}

// Range calls fn for every field in order until fn returns false.
func (f *Frozen) Range(fn func(name string, value any) bool) {
	for _, key := range f.params.keys {
		if !fn(key, copyValue(f.params.values[key])) {
			return
		}
	}
}

func (f *Frozen) Signature() string {
	s, _ := f.params.values[FieldMerchantSignature].(string)
	return s
}

func (f *Frozen) TransactionType() entity.TransactionType {
	return f.transactionType
}

// MarshalJSON writes the fields as one JSON object in order. Numbers are
// written with the same text they are signed with.
func (f *Frozen) MarshalJSON() ([]byte, error) {
	stream := jsoniter.ConfigCompatibleWithStandardLibrary.BorrowStream(nil)
	defer jsoniter.ConfigCompatibleWithStandardLibrary.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, key := range f.params.keys {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(key)
		if err := writeValue(stream, f.params.values[key]); err != nil {
			return nil, err
		}
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}
	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}

func writeValue(stream *jsoniter.Stream, value any) error {
	switch v := value.(type) {
	case []any:
		stream.WriteArrayStart()
		for i, item := range v {
			if i > 0 {
				stream.WriteMore()
			}
			if err := writeValue(stream, item); err != nil {
				return err
			}
		}
		stream.WriteArrayEnd()
	case string:
		stream.WriteString(v)
	case bool:
		stream.WriteBool(v)
	case int64:
		stream.WriteInt64(v)
	case uint64:
		stream.WriteUint64(v)
	case int, int8, int16, int32, uint, uint8, uint16, uint32,
		float32, float64, json.Number, decimal.Decimal:
		stream.WriteRaw(Stringify(v))
	default:
		return fmt.Errorf("unsupported value type %T", value)
	}
	return nil
}
