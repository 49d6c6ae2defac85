package gateway

import (
	"testing"

	"wayforpay/params"
)

func purchaseFields(orderReference string) []params.Field {
	return []params.Field{
		params.F("orderReference", orderReference),
		params.F("amount", 1),
		params.F("productName", "<Prod>"),
		params.F("productCount", 2),
		params.F("currency", "UAH"),
		params.F("orderDate", "dummy"),
		params.F("merchantDomainName", "example.com"),
		params.F("productPrice", 1),
		params.F("merchantTransactionSecureType", "dummy"),
	}
}

func TestFormRender(t *testing.T) {
	form, err := NewForm("acc", "key", purchaseFields(`new order"`)...)
	if err != nil {
		t.Fatalf("NewForm() error = %v", err)
	}
	want := `<form method="post" action="https://secure.wayforpay.com/pay" accept-charset="utf-8">
    <input type="hidden" name="transactionType" value="PURCHASE" />
    <input type="hidden" name="merchantAccount" value="acc" />
    <input type="hidden" name="orderReference" value="new order&quot;" />
    <input type="hidden" name="amount" value="1" />
    <input type="hidden" name="productName" value="&lt;Prod&gt;" />
    <input type="hidden" name="productCount" value="2" />
    <input type="hidden" name="currency" value="UAH" />
    <input type="hidden" name="orderDate" value="dummy" />
    <input type="hidden" name="merchantDomainName" value="example.com" />
    <input type="hidden" name="productPrice" value="1" />
    <input type="hidden" name="merchantTransactionSecureType" value="dummy" />
    <input type="hidden" name="merchantSignature" value="10ed98888624ab4aff668bdda555ef2c" />
    <input type="submit" value="Submit purchase form">
</form>`
	if got := form.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormInputsExpandSequences(t *testing.T) {
	form, err := NewForm("acc", "key",
		params.F("orderReference", "multi"),
		params.F("orderDate", 1421412898),
		params.F("amount", 19),
		params.F("currency", "UAH"),
		params.F("productName", []string{"a&b", "it's"}),
		params.F("productCount", []int{1, 1}),
		params.F("productPrice", []int{18, 1}),
		params.F("merchantDomainName", "shop"),
		params.F("merchantTransactionSecureType", "AUTO"),
	)
	if err != nil {
		t.Fatal(err)
	}
	inputs := form.Inputs()
	want := map[int]string{
		6: `<input type="hidden" name="productName[]" value="a&amp;b" />`,
		7: `<input type="hidden" name="productName[]" value="it&#x27;s" />`,
		8: `<input type="hidden" name="productCount[]" value="1" />`,
	}
	for i, input := range want {
		if inputs[i] != input {
			t.Errorf("input %d = %s, want %s", i, inputs[i], input)
		}
	}
	if len(inputs) != 15 {
		t.Errorf("got %d inputs", len(inputs))
	}
}

func TestFormRequiresPurchaseFields(t *testing.T) {
	if _, err := NewForm("acc", "key", params.F("orderReference", "o")); err == nil {
		t.Fatal("expected missing field error")
	}
}
