package internal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wayforpay/config"
	"wayforpay/entity"
	"wayforpay/gateway"
	"wayforpay/params"
	"wayforpay/services"
)

// fields never written to logs or the journal in clear
var sensitiveFields = map[string]bool{
	"card":            true,
	"cardCvv":         true,
	"cardHolder":      true,
	"recToken":        true,
	"rec2Token":       true,
	"cardBeneficiary": true,
}

// Payments signs checkout requests for the configured merchant and relays
// API requests to WayForPay. Requests for the same order are serialized;
// different orders run in parallel.
type Payments struct {
	conf     *config.Config
	database services.Database
	logger   services.LogHandler
	mutex    sync.Mutex
	locks    map[string]*orderLock
	client   *gateway.Client
}

type orderLock struct {
	sync.Mutex
	refs int
}

func NewPayments(conf *config.Config) *Payments {
	client := gateway.NewClient(conf.Merchant.Account, conf.Merchant.Key)
	client.SetEndpoint(conf.Merchant.ApiUrl)
	return &Payments{
		conf:   conf,
		locks:  make(map[string]*orderLock),
		client: client,
	}
}

// lockOrder acquires the lock of an order. The lock is dropped from the map
// when its last holder or waiter releases it.
func (p *Payments) lockOrder(orderReference string) *orderLock {
	p.mutex.Lock()
	lock, ok := p.locks[orderReference]
	if !ok {
		lock = &orderLock{}
		p.locks[orderReference] = lock
	}
	lock.refs++
	p.mutex.Unlock()

	lock.Lock()
	return lock
}

func (p *Payments) unlockOrder(orderReference string, lock *orderLock) {
	lock.Unlock()

	p.mutex.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(p.locks, orderReference)
	}
	p.mutex.Unlock()
}

func (p *Payments) SetDatabase(database services.Database) {
	p.database = database
}

func (p *Payments) SetLogger(logger services.LogHandler) {
	p.logger = logger
	p.client.SetLogger(logger)
	p.logger.Info(fmt.Sprintf("merchant %s; api %s", p.conf.Merchant.Account, p.conf.Merchant.ApiUrl))
}

// PurchaseForm returns the signed checkout form for a purchase.
func (p *Payments) PurchaseForm(ctx context.Context, fields []params.Field) (string, error) {
	reqID := GetRequestID(ctx)
	form, err := gateway.NewForm(p.conf.Merchant.Account, p.conf.Merchant.Key, p.withDomain(fields)...)
	if err != nil {
		p.logger.Warn(fmt.Sprintf("[%s] purchase form: %v", reqID, err))
		return "", err
	}
	orderReference, _ := form.Params().Get(params.FieldOrderReference)
	p.logger.Info(fmt.Sprintf("[%s] purchase form: order %v", reqID, orderReference))
	return form.Render(), nil
}

// PurchaseURL returns the signed checkout redirect URL for a purchase.
func (p *Payments) PurchaseURL(ctx context.Context, fields []params.Field) (string, error) {
	reqID := GetRequestID(ctx)
	url, err := gateway.PurchaseURL(p.conf.Merchant.Account, p.conf.Merchant.Key, p.withDomain(fields)...)
	if err != nil {
		p.logger.Warn(fmt.Sprintf("[%s] purchase url: %v", reqID, err))
		return "", err
	}
	p.logger.Info(fmt.Sprintf("[%s] purchase url: order %s", reqID, orderReferenceOf(fields)))
	return url, nil
}

// Query sends one API request and journals the exchange.
func (p *Payments) Query(ctx context.Context, t entity.TransactionType, fields []params.Field) (map[string]interface{}, error) {
	reqID := GetRequestID(ctx)
	if t == entity.Purchase || !t.IsValid() {
		return nil, fmt.Errorf("transaction type %s is not supported by the api", t)
	}

	orderReference := orderReferenceOf(fields)
	if orderReference != "" {
		lock := p.lockOrder(orderReference)
		defer p.unlockOrder(orderReference, lock)
	}
	p.logger.Info(fmt.Sprintf("[%s] %s: order %s", reqID, t, orderReference))

	record := &entity.JournalRecord{
		RequestId:       reqID,
		OrderReference:  orderReference,
		TransactionType: t.String(),
		Request:         maskFields(fields),
		TimeSent:        time.Now().UTC(),
	}

	response, err := p.client.Query(ctx, t, fields...)
	record.TimeReceived = time.Now().UTC()
	if err != nil {
		record.Error = err.Error()
		p.journal(record)
		p.logger.Error(fmt.Sprintf("[%s] %s: order %s", reqID, t, orderReference), err)
		return nil, fmt.Errorf("%s: %w", t, err)
	}
	record.Response = maskResponse(response)
	p.journal(record)

	if reason, ok := response["reason"]; ok {
		p.logger.Debug(fmt.Sprintf("[%s] %s: order %s; reason: %v; code: %v", reqID, t, orderReference, reason, response["reasonCode"]))
	}
	return response, nil
}

// Journal lists the recorded exchanges of an order.
func (p *Payments) Journal(_ context.Context, orderReference string) ([]*entity.JournalRecord, error) {
	if p.database == nil {
		return nil, fmt.Errorf("journal is not available")
	}
	records, err := p.database.GetJournalRecords(orderReference)
	if err != nil {
		return nil, fmt.Errorf("get journal records: %w", err)
	}
	return records, nil
}

func (p *Payments) journal(record *entity.JournalRecord) {
	if p.database == nil {
		return
	}
	if err := p.database.SaveJournalRecord(record); err != nil {
		p.logger.Error("save journal record", err)
	}
}

// withDomain adds the configured merchantDomainName to purchases that do
// not carry one.
func (p *Payments) withDomain(fields []params.Field) []params.Field {
	if p.conf.Merchant.Domain == "" {
		return fields
	}
	for _, field := range fields {
		if field.Name == "merchantDomainName" {
			return fields
		}
	}
	out := make([]params.Field, 0, len(fields)+1)
	out = append(out, fields...)
	return append(out, params.F("merchantDomainName", p.conf.Merchant.Domain))
}

func orderReferenceOf(fields []params.Field) string {
	for _, field := range fields {
		if field.Name == params.FieldOrderReference {
			return params.Stringify(field.Value)
		}
	}
	return ""
}

func maskFields(fields []params.Field) map[string]interface{} {
	masked := make(map[string]interface{}, len(fields))
	for _, field := range fields {
		if sensitiveFields[field.Name] {
			masked[field.Name] = secret(params.Stringify(field.Value))
			continue
		}
		masked[field.Name] = field.Value
	}
	return masked
}

func maskResponse(response gateway.Response) map[string]interface{} {
	masked := make(map[string]interface{}, len(response))
	for key, value := range response {
		if sensitiveFields[key] {
			masked[key] = secret(fmt.Sprint(value))
			continue
		}
		masked[key] = value
	}
	return masked
}

func secret(some string) string {
	if len(some) > 5 {
		return fmt.Sprintf("%s***", some[0:5])
	}
	if some == "" {
		return "?"
	}
	return "***"
}
