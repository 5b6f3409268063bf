package sinks

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/loghandler"
)

// Postgres returns a handler Descriptor that inserts each accepted record
// as a row via a pgxpool.Pool, batching inserts between flushes the way the
// source material batches writes to its sinks (spec.md §4.6). Run the
// migration in sinks/migrations against the same database before using
// this sink.
func Postgres(pool *pgxpool.Pool) loghandler.Descriptor {
	var batch [][]any

	flush := func(*loghandler.Param) error {
		if len(batch) == 0 {
			return nil
		}
		ctx := context.Background()
		tx, err := pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("sinks: postgres begin: %w", err)
		}
		defer tx.Rollback(ctx)

		for _, row := range batch {
			if _, err := tx.Exec(ctx,
				`INSERT INTO handler_records (level, pid, tid, filename, funcname, line, logger_name, log_message)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				row...,
			); err != nil {
				return fmt.Errorf("sinks: postgres insert: %w", err)
			}
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("sinks: postgres commit: %w", err)
		}
		batch = batch[:0]
		return nil
	}

	return loghandler.Descriptor{
		Name: "postgres",
		ProcessLog: func(r loghandler.Record, _ *loghandler.Param) error {
			batch = append(batch, []any{
				int16(r.Level), r.PID, r.TID, r.Filename, r.Funcname, r.Line, r.LoggerName, r.LogMessage,
			})
			return nil
		},
		ProcessImplicitFlush: flush,
		ProcessExplicitFlush: flush,
		ProcessExit: func(p *loghandler.Param) error {
			if err := flush(p); err != nil {
				return err
			}
			pool.Close()
			return nil
		},
	}
}
