package gateway

import (
	"fmt"
	"strings"

	"wayforpay/entity"
	"wayforpay/params"
)

const formTemplate = `<form method="post" action="%s" accept-charset="utf-8">
    %s
    <input type="submit" value="Submit purchase form">
</form>`

// quotes render as &quot; and &#x27;, unlike html.EscapeString
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// Form is a signed PURCHASE request rendered as an auto-submittable HTML form.
type Form struct {
	action string
	params *params.Frozen
}

func NewForm(account, key string, fields ...params.Field) (*Form, error) {
	frozen, err := params.NewFrozen(account, key, entity.Purchase, fields...)
	if err != nil {
		return nil, err
	}
	return &Form{action: entity.PurchaseUrl, params: frozen}, nil
}

// Params returns the signed request behind the form.
func (f *Form) Params() *params.Frozen {
	return f.params
}

// Inputs renders one hidden input per field, or one per element named
// field[] for sequences.
func (f *Form) Inputs() []string {
	var inputs []string
	f.params.Range(func(name string, value any) bool {
		if seq, ok := value.([]any); ok {
			for _, item := range seq {
				inputs = append(inputs, renderInput(name+"[]", item))
			}
			return true
		}
		inputs = append(inputs, renderInput(name, value))
		return true
	})
	return inputs
}

func (f *Form) Render() string {
	return fmt.Sprintf(formTemplate, f.action, strings.Join(f.Inputs(), "\n    "))
}

func (f *Form) String() string {
	return f.Render()
}

func renderInput(name string, value any) string {
	return fmt.Sprintf(`<input type="hidden" name="%s" value="%s" />`, name, attrEscaper.Replace(params.Stringify(value)))
}
