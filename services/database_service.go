package services

import "wayforpay/entity"

type Database interface {
	WriteLogMessage(data Data) error

	SaveJournalRecord(record *entity.JournalRecord) error
	GetJournalRecords(orderReference string) ([]*entity.JournalRecord, error)
}

type Data interface {
	DataType() string
}
