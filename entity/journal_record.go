package entity

import "time"

const JournalRecordType = "journalRecord"

// JournalRecord stores one exchange with the gateway: the signed request
// (sensitive values masked) and the response as returned.
type JournalRecord struct {
	RequestId       string                 `json:"request_id" bson:"request_id"`
	OrderReference  string                 `json:"order_reference" bson:"order_reference"`
	TransactionType string                 `json:"transaction_type" bson:"transaction_type"`
	Request         map[string]interface{} `json:"request" bson:"request"`
	Response        map[string]interface{} `json:"response,omitempty" bson:"response,omitempty"`
	Error           string                 `json:"error,omitempty" bson:"error,omitempty"`
	TimeSent        time.Time              `json:"time_sent" bson:"time_sent"`
	TimeReceived    time.Time              `json:"time_received" bson:"time_received"`
}

func (r *JournalRecord) DataType() string {
	return JournalRecordType
}
