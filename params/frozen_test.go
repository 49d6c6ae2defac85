package params

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"wayforpay/entity"
)

func TestNewFrozenCheckStatus(t *testing.T) {
	f, err := NewFrozen("acc", "key", entity.CheckStatus,
		F(FieldOrderReference, "new_order"),
		F("apiVersion", 1),
	)
	if err != nil {
		t.Fatalf("NewFrozen() error = %v", err)
	}
	if f.Signature() != "128bc357970b1dc6dd55c23f6f6c2b4a" {
		t.Errorf("Signature() = %s", f.Signature())
	}
	want := []string{FieldTransactionType, FieldMerchantAccount, FieldOrderReference, "apiVersion", FieldMerchantSignature}
	if got := f.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if f.TransactionType() != entity.CheckStatus {
		t.Errorf("TransactionType() = %s", f.TransactionType())
	}
}

func TestNewFrozenSignatures(t *testing.T) {
	tests := []struct {
		name   string
		t      entity.TransactionType
		fields []Field
		want   string
	}{
		{
			name: "refund",
			t:    entity.Refund,
			fields: []Field{
				F("orderReference", "ord-1"), F("amount", 10.5), F("currency", "UAH"),
				F("comment", "refund"), F("apiVersion", 1),
			},
			want: "5425fb8d9fac96e208564089880a3f3c",
		},
		{
			name: "settle",
			t:    entity.Settle,
			fields: []Field{
				F("orderReference", "s1"), F("amount", 100), F("currency", "UAH"), F("apiVersion", 1),
			},
			want: "106c4055f767e3e0d1848894b0796d92",
		},
		{
			name: "purchase with products",
			t:    entity.Purchase,
			fields: []Field{
				F("orderReference", "multi"),
				F("orderDate", 1421412898),
				F("amount", 1547.36),
				F("currency", "UAH"),
				F("productName", []string{"Samsung WB1100F", "Samsung Galaxy Tab 4 7.0 8GB 3G Black"}),
				F("productCount", []int{1, 2}),
				F("productPrice", []int{18, 1}),
				F("merchantDomainName", "www.market.ua"),
				F("merchantTransactionSecureType", "AUTO"),
				F("paymentSystems", []string{"card", "privat24"}),
			},
			want: "6b7d41de19d48d672455593347621ba3",
		},
		{
			name: "transaction list",
			t:    entity.TransactionList,
			fields: []Field{
				F("dateBegin", 1421412898), F("dateEnd", 1421499298), F("apiVersion", 1),
			},
			want: "8003c3252521f58f10f6d8aeaec82859",
		},
		{
			name: "account to phone",
			t:    entity.P2Phone,
			fields: []Field{
				F("orderReference", "p2p"), F("orderDate", 1), F("amount", 5),
				F("currency", "UAH"), F("phone", "380501234567"),
			},
			want: "c7f430df6a5544dac04ef541730e8e27",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFrozen("acc", "key", tt.t, tt.fields...)
			if err != nil {
				t.Fatalf("NewFrozen() error = %v", err)
			}
			if f.Signature() != tt.want {
				t.Errorf("Signature() = %s, want %s", f.Signature(), tt.want)
			}
		})
	}
}

func TestNewFrozenErrors(t *testing.T) {
	_, err := NewFrozen("acc", "key", entity.CheckStatus, F(FieldOrderReference, "o"))
	var re *RequiredError
	if !errors.As(err, &re) || !reflect.DeepEqual(re.Fields, []string{"apiVersion"}) {
		t.Errorf("missing field: error = %v", err)
	}

	_, err = NewFrozen("acc", "key", entity.CheckStatus, F(FieldOrderReference, ""), F("apiVersion", 1))
	if !errors.Is(err, ErrValidation) {
		t.Errorf("empty field: error = %v", err)
	}

	_, err = NewFrozen("", "key", entity.CheckStatus, F(FieldOrderReference, "o"), F("apiVersion", 1))
	if !errors.Is(err, ErrValidation) {
		t.Errorf("empty account: error = %v", err)
	}

	_, err = NewFrozen("acc", "key", entity.Purchase, F(FieldTransactionType, "REFUND"))
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != FieldTransactionType {
		t.Errorf("seeded field override: error = %v", err)
	}
}

func TestFrozenReadsAreCopies(t *testing.T) {
	f, err := NewFrozen("acc", "key", entity.Purchase,
		F("orderReference", "multi"),
		F("orderDate", 1421412898),
		F("amount", 19),
		F("currency", "UAH"),
		F("productName", []string{"a", "b"}),
		F("productCount", []int{1, 1}),
		F("productPrice", []int{18, 1}),
		F("merchantDomainName", "www.market.ua"),
		F("merchantTransactionSecureType", "AUTO"),
	)
	if err != nil {
		t.Fatal(err)
	}
	value, _ := f.Get("productName")
	value.([]any)[0] = "changed"
	f.Range(func(name string, value any) bool {
		if name == "productName" {
			value.([]any)[1] = "changed"
			return false
		}
		return true
	})
	for _, field := range f.Fields() {
		if field.Name == "productName" && !reflect.DeepEqual(field.Value, []any{"a", "b"}) {
			t.Errorf("productName = %v", field.Value)
		}
	}
}

func TestFrozenMarshalJSON(t *testing.T) {
	f, err := NewFrozen("acc", "key", entity.Refund,
		F("orderReference", "ord-1"), F("amount", 10.5), F("currency", "UAH"),
		F("comment", "refund"), F("apiVersion", 1),
	)
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"transactionType":"REFUND","merchantAccount":"acc","orderReference":"ord-1","amount":10.5,` +
		`"currency":"UAH","comment":"refund","apiVersion":1,"merchantSignature":"5425fb8d9fac96e208564089880a3f3c"}`
	if string(data) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", data, want)
	}
}

func TestFrozenMarshalJSONSequences(t *testing.T) {
	f, err := NewFrozen("acc", "key", entity.CreateInvoice,
		F("merchantDomainName", "shop"),
		F("orderReference", "inv"),
		F("orderDate", 1421412898),
		F("amount", 2.0),
		F("currency", "UAH"),
		F("productName", []string{"x"}),
		F("productCount", []int{2}),
		F("productPrice", []float64{1.0}),
	)
	if err != nil {
		t.Fatal(err)
	}
	data, _ := f.MarshalJSON()
	var decoded map[string]any
	if err = json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not JSON: %s", data)
	}
	if !reflect.DeepEqual(decoded["productPrice"], []any{1.0}) {
		t.Errorf("productPrice = %v", decoded["productPrice"])
	}
}
