package internal

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wayforpay/entity"
	"wayforpay/services"
)

// Logger writes console logs through zap and, when a database is set, keeps
// warnings and errors in the service log collection.
type Logger struct {
	category string
	log      *zap.SugaredLogger
	database services.Database
}

func NewLogger(category string, debug bool, database services.Database) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(os.Stdout), level)
	return newLogger(category, core, database)
}

func newLogger(category string, core zapcore.Core, database services.Database) *Logger {
	return &Logger{
		category: category,
		log:      zap.New(core).Named(category).Sugar(),
		database: database,
	}
}

func (l *Logger) Debug(text string) {
	l.log.Debug(text)
}

func (l *Logger) Info(text string) {
	l.log.Info(text)
}

func (l *Logger) Warn(text string) {
	l.log.Warn(text)
	l.store("warning", text)
}

func (l *Logger) Error(text string, err error) {
	l.log.Errorw(text, "error", err)
	l.store("error", fmt.Sprintf("%s: %v", text, err))
}

func (l *Logger) store(level, text string) {
	if l.database == nil {
		return
	}
	message := &entity.LogMessage{
		Time:     time.Now().UTC(),
		Level:    level,
		Category: l.category,
		Text:     text,
	}
	if err := l.database.WriteLogMessage(message); err != nil {
		l.log.Errorw("write log message", "error", err)
	}
}
