package sinks

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/loghandler"
)

// mongoRecord is the BSON document written per accepted record.
type mongoRecord struct {
	Level      uint8  `bson:"level"`
	PID        int32  `bson:"pid"`
	TID        int32  `bson:"tid"`
	Filename   string `bson:"filename"`
	Funcname   string `bson:"funcname"`
	Line       int32  `bson:"line"`
	LoggerName string `bson:"logger_name"`
	LogMessage string `bson:"log_message"`
}

// Mongo returns a handler Descriptor that inserts each accepted record as a
// document into coll, an alternative document-store sink grounded on
// dmitrymomot-foundation's mongo-driver/v2 dependency.
func Mongo(coll *mongo.Collection) loghandler.Descriptor {
	var batch []any

	flush := func(*loghandler.Param) error {
		if len(batch) == 0 {
			return nil
		}
		if _, err := coll.InsertMany(context.Background(), batch); err != nil {
			return fmt.Errorf("sinks: mongo insert many: %w", err)
		}
		batch = batch[:0]
		return nil
	}

	return loghandler.Descriptor{
		Name: "mongo",
		ProcessLog: func(r loghandler.Record, _ *loghandler.Param) error {
			batch = append(batch, mongoRecord{
				Level: uint8(r.Level), PID: r.PID, TID: r.TID,
				Filename: r.Filename, Funcname: r.Funcname, Line: r.Line,
				LoggerName: r.LoggerName, LogMessage: r.LogMessage,
			})
			return nil
		},
		ProcessImplicitFlush: flush,
		ProcessExplicitFlush: flush,
		ProcessExit: func(p *loghandler.Param) error {
			return flush(p)
		},
	}
}
