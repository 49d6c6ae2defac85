package internal

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"

	"wayforpay/config"
	"wayforpay/entity"
	"wayforpay/params"
	"wayforpay/services"
)

const (
	purchaseForm = "/purchase/form"
	purchaseUrl  = "/purchase/url"
	apiOperation = "/api/:operation"
	orderJournal = "/journal/:order_reference"
)

var operations = map[string]entity.TransactionType{
	"settle":           entity.Settle,
	"charge":           entity.Charge,
	"refund":           entity.Refund,
	"check_status":     entity.CheckStatus,
	"account2card":     entity.P2PCredit,
	"create_invoice":   entity.CreateInvoice,
	"account2phone":    entity.P2Phone,
	"transaction_list": entity.TransactionList,
}

// request bodies keep field order and number text
var bodyJson = jsoniter.Config{UseNumber: true}.Froze()

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	payments   services.Payments
	logger     services.LogHandler
}

func NewServer(conf *config.Config) *Server {

	server := Server{
		conf: conf,
	}

	// register itself as a router for httpServer handler
	router := httprouter.New()
	server.Register(router)
	server.httpServer = &http.Server{
		Handler: router,
	}

	return &server
}

func (s *Server) Register(router *httprouter.Router) {
	router.POST(purchaseForm, s.purchaseForm)
	router.POST(purchaseUrl, s.purchaseUrl)
	router.POST(apiOperation, s.apiOperation)
	router.GET(orderJournal, s.orderJournal)
}

func (s *Server) SetPaymentsService(payments services.Payments) {
	s.payments = payments
}

func (s *Server) SetLogger(logger services.LogHandler) {
	s.logger = logger
}

func (s *Server) Start() error {
	if s.conf == nil {
		return fmt.Errorf("configuration not loaded")
	}

	serverAddress := fmt.Sprintf("%s:%s", s.conf.Listen.BindIP, s.conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	if s.conf.Listen.TLS {
		s.logger.Info(fmt.Sprintf("starting https TLS on %s", serverAddress))
		err = s.httpServer.ServeTLS(listener, s.conf.Listen.CertFile, s.conf.Listen.KeyFile)
	} else {
		s.logger.Info(fmt.Sprintf("starting http on %s", serverAddress))
		err = s.httpServer.Serve(listener)
	}

	return err
}

func (s *Server) purchaseForm(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	fields, err := readFields(r.Body)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] purchase form: %v", reqID, err))
		writeError(w, http.StatusBadRequest, err)
		return
	}

	form, err := s.payments.PurchaseForm(ctx, fields)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(form))
}

func (s *Server) purchaseUrl(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	fields, err := readFields(r.Body)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] purchase url: %v", reqID, err))
		writeError(w, http.StatusBadRequest, err)
		return
	}

	url, err := s.payments.PurchaseURL(ctx, fields)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}

	writeJson(w, http.StatusOK, map[string]string{"url": url})
}

func (s *Server) apiOperation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	operation := ps.ByName("operation")
	transactionType, ok := operations[operation]
	if !ok {
		s.logger.Warn(fmt.Sprintf("[%s] unknown operation: %s", reqID, operation))
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown operation: %s", operation))
		return
	}

	fields, err := readFields(r.Body)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] %s: %v", reqID, operation, err))
		writeError(w, http.StatusBadRequest, err)
		return
	}

	response, err := s.payments.Query(ctx, transactionType, fields)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}

	writeJson(w, http.StatusOK, response)
}

func (s *Server) orderJournal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	orderReference := ps.ByName("order_reference")
	records, err := s.payments.Journal(ctx, orderReference)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] journal of order %s", reqID, orderReference), err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJson(w, http.StatusOK, records)
}

// readFields decodes a JSON object body into fields in document order.
func readFields(body io.Reader) ([]params.Field, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	iter := bodyJson.BorrowIterator(data)
	defer bodyJson.ReturnIterator(iter)

	var fields []params.Field
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, name string) bool {
		value := iter.Read()
		if iter.Error != nil {
			return false
		}
		fields = append(fields, params.F(name, value))
		return true
	})
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, fmt.Errorf("decode body: %w", iter.Error)
	}
	return fields, nil
}

// statusOf maps request data errors to 400; anything else failed at the gateway.
func statusOf(err error) int {
	if errors.Is(err, params.ErrValidation) || errors.Is(err, params.ErrRequired) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJson(w, status, map[string]interface{}{
		"success": false,
		"message": err.Error(),
	})
}

func writeJson(w http.ResponseWriter, status int, data interface{}) {
	body, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
