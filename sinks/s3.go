package sinks

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/loghandler"
)

// S3 returns a handler Descriptor that batches accepted records as
// tab-separated text lines (level, logger, function, message) and uploads one object to bucket per
// flush, under a key prefixed by prefix and timestamped — grounded on
// dmitrymomot-foundation's aws-sdk-go-v2 + service/s3 dependency.
func S3(client *s3.Client, bucket, prefix string) loghandler.Descriptor {
	var buf bytes.Buffer

	flush := func(*loghandler.Param) error {
		if buf.Len() == 0 {
			return nil
		}
		key := fmt.Sprintf("%s/%s.log", prefix, time.Now().UTC().Format("20060102T150405.000000000"))
		body := bytes.NewReader(buf.Bytes())
		_, err := client.PutObject(context.Background(), &s3.PutObjectInput{
			Bucket: &bucket,
			Key:    &key,
			Body:   body,
		})
		if err != nil {
			return fmt.Errorf("sinks: s3 put object: %w", err)
		}
		buf.Reset()
		return nil
	}

	return loghandler.Descriptor{
		Name: "s3",
		ProcessLog: func(r loghandler.Record, _ *loghandler.Param) error {
			fmt.Fprintf(&buf, "%s\t%s\t%s\t%s\n", r.Level, r.LoggerName, r.Funcname, r.LogMessage)
			return nil
		},
		ProcessImplicitFlush: flush,
		ProcessExplicitFlush: flush,
		ProcessExit:          flush,
	}
}
