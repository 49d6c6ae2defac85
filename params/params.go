// Package params builds, validates and signs WayForPay request parameter sets.
package params

import (
	"sort"

	"wayforpay/entity"
)

// Field is one name/value pair of a request. Fields are applied in the order
// they are supplied, and that order is kept for rendering.
type Field struct {
	Name  string
	Value any
}

// F is shorthand for a Field literal.
func F(name string, value any) Field {
	return Field{Name: name, Value: value}
}

// FieldsFromMap returns the entries of m as fields ordered by name.
func FieldsFromMap(m map[string]any) []Field {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	fields := make([]Field, len(names))
	for i, name := range names {
		fields[i] = Field{Name: name, Value: m[name]}
	}
	return fields
}

// Params is a mutable, insertion-ordered parameter set. Every assignment is
// validated against the rule registered for the field name. Reassigning a
// field keeps its original position.
type Params struct {
	keys   []string
	values map[string]any
}

// New creates a parameter set and assigns fields in order.
func New(fields ...Field) (*Params, error) {
	p := &Params{values: make(map[string]any)}
	if err := p.Update(fields...); err != nil {
		return nil, err
	}
	return p, nil
}

// Set validates value and stores it under name.
func (p *Params) Set(name string, value any) error {
	stored, ok := normalize(value)
	if !ok {
		return &ValidationError{Field: name}
	}
	if r, ok := rules[name]; ok {
		if r.validate != nil && !r.validate(stored) {
			return &ValidationError{Field: name}
		}
		if r.transform != nil {
			stored = r.transform(stored)
		}
	}
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, exists := p.values[name]; !exists {
		p.keys = append(p.keys, name)
	}
	p.values[name] = stored
	return nil
}

// Update assigns fields in order and stops at the first rejected value.
func (p *Params) Update(fields ...Field) error {
	for _, field := range fields {
		if err := p.Set(field.Name, field.Value); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the stored value. Sequences are returned as a copy.
func (p *Params) Get(name string) (any, bool) {
	value, ok := p.values[name]
	if !ok {
		return nil, false
	}
	return copyValue(value), true
}

func (p *Params) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// Delete removes name and reports whether it was present.
func (p *Params) Delete(name string) bool {
	if _, ok := p.values[name]; !ok {
		return false
	}
	delete(p.values, name)
	for i, key := range p.keys {
		if key == name {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
	return true
}

func (p *Params) Keys() []string {
	return concat(p.keys)
}

func (p *Params) Len() int {
	return len(p.keys)
}

// Fields returns the stored pairs in order.
func (p *Params) Fields() []Field {
	fields := make([]Field, len(p.keys))
	for i, key := range p.keys {
		fields[i] = Field{Name: key, Value: copyValue(p.values[key])}
	}
	return fields
}

// TransactionType resolves the stored transactionType.
func (p *Params) TransactionType() (entity.TransactionType, error) {
	if err := p.require([]string{FieldTransactionType}); err != nil {
		return "", err
	}
	s, _ := p.values[FieldTransactionType].(string)
	t, err := entity.ParseTransactionType(s)
	if err != nil {
		return "", &ValidationError{Field: FieldTransactionType}
	}
	return t, nil
}

// ChargeType tells which card details a CHARGE request carries.
func (p *Params) ChargeType() entity.ChargeType {
	if !isEmpty(p.values[FieldRecToken]) {
		return entity.ChargeRecToken
	}
	return entity.ChargeNoRecToken
}

// RequiredFields lists every field the request needs: the required fields of
// its transaction type followed by any signature fields not already listed.
func (p *Params) RequiredFields() ([]string, error) {
	t, err := p.TransactionType()
	if err != nil {
		return nil, err
	}
	fields := requiredFieldsOf(t, p.ChargeType())
	seen := make(map[string]bool, len(fields))
	for _, field := range fields {
		seen[field] = true
	}
	for _, field := range signatureFieldsOf(t) {
		if !seen[field] {
			seen[field] = true
			fields = append(fields, field)
		}
	}
	return fields, nil
}

// SignatureFields lists the signed fields in signing order.
func (p *Params) SignatureFields() ([]string, error) {
	t, err := p.TransactionType()
	if err != nil {
		return nil, err
	}
	return signatureFieldsOf(t), nil
}

// Signature computes the merchantSignature for the current values without
// storing it.
func (p *Params) Signature(merchantKey string) (string, error) {
	fields, err := p.SignatureFields()
	if err != nil {
		return "", err
	}
	if err = p.require(fields); err != nil {
		return "", err
	}
	values := make([]any, len(fields))
	for i, field := range fields {
		values[i] = p.values[field]
	}
	return Sign(merchantKey, values), nil
}

// Prepare checks that every required field is present and stores the
// merchantSignature.
func (p *Params) Prepare(merchantKey string) error {
	required, err := p.RequiredFields()
	if err != nil {
		return err
	}
	needed := required[:0]
	for _, field := range required {
		if field != FieldMerchantSignature {
			needed = append(needed, field)
		}
	}
	if err = p.require(needed); err != nil {
		return err
	}
	signature, err := p.Signature(merchantKey)
	if err != nil {
		return err
	}
	return p.Set(FieldMerchantSignature, signature)
}

func (p *Params) require(fields []string) error {
	var missing []string
	for _, field := range fields {
		if _, ok := p.values[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &RequiredError{Fields: missing}
	}
	return nil
}

func copyValue(value any) any {
	if seq, ok := value.([]any); ok {
		out := make([]any, len(seq))
		copy(out, seq)
		return out
	}
	return value
}
