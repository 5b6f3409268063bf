package sinks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	opensearch "github.com/opensearch-project/opensearch-go/v2"
	opensearchapi "github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/dmitrymomot/loghandler"
)

// openSearchDoc is the JSON document indexed per accepted record.
type openSearchDoc struct {
	Level      uint8  `json:"level"`
	PID        int32  `json:"pid"`
	TID        int32  `json:"tid"`
	Filename   string `json:"filename"`
	Funcname   string `json:"funcname"`
	Line       int32  `json:"line"`
	LoggerName string `json:"logger_name"`
	LogMessage string `json:"log_message"`
}

// OpenSearch returns a handler Descriptor that indexes each accepted record
// into index, grounded on dmitrymomot-foundation's opensearch-go/v2
// dependency.
func OpenSearch(client *opensearch.Client, index string) loghandler.Descriptor {
	return loghandler.Descriptor{
		Name: "opensearch",
		ProcessLog: func(r loghandler.Record, _ *loghandler.Param) error {
			doc := openSearchDoc{
				Level: uint8(r.Level), PID: r.PID, TID: r.TID,
				Filename: r.Filename, Funcname: r.Funcname, Line: r.Line,
				LoggerName: r.LoggerName, LogMessage: r.LogMessage,
			}
			body, err := json.Marshal(doc)
			if err != nil {
				return fmt.Errorf("sinks: opensearch marshal: %w", err)
			}
			req := opensearchapi.IndexRequest{
				Index: index,
				Body:  bytes.NewReader(body),
			}
			res, err := req.Do(context.Background(), client)
			if err != nil {
				return fmt.Errorf("sinks: opensearch index: %w", err)
			}
			defer res.Body.Close()
			if res.IsError() {
				return fmt.Errorf("sinks: opensearch index response: %s", res.String())
			}
			return nil
		},
	}
}
