package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"transport-data-service/internal/infrastructure/persistence"
	"transport-data-service/pkg/errs"
	"transport-data-service/pkg/logger"
	"transport-data-service/pkg/metrics"
)

// QueryResult is the outcome of one passthrough statement. For a read it
// carries the fetched rows and their count; for a write only Affected is set.
type QueryResult struct {
	Columns  []string
	Rows     [][]interface{}
	Count    int64
	Affected int64
}

// QueryExecutor runs caller-supplied statements after filtering them by
// leading verb. The filter is a policy gate on statement type, not a
// security boundary.
type QueryExecutor struct {
	connector persistence.Connector
	log       logger.Logger
	metrics   *metrics.Metrics
}

// NewQueryExecutor creates a new guarded passthrough executor
func NewQueryExecutor(connector persistence.Connector, log logger.Logger, m *metrics.Metrics) *QueryExecutor {
	return &QueryExecutor{
		connector: connector,
		log:       log,
		metrics:   m,
	}
}

var allowedVerbs = map[string]bool{
	"select": true,
	"insert": true,
	"update": true,
	"delete": true,
}

// Execute classifies the statement by its leading keyword, rejects anything
// but the four DML verbs, and runs the rest. Reads return the full row set;
// writes commit on success and roll back on failure.
func (e *QueryExecutor) Execute(ctx context.Context, statement string) (*QueryResult, error) {
	statement = strings.TrimSpace(statement)
	if statement == "" {
		return nil, &errs.ValidationError{Field: "statement", Message: "statement is empty"}
	}

	verb := strings.ToLower(strings.Fields(statement)[0])
	if !allowedVerbs[verb] {
		return nil, &errs.ValidationError{
			Field:   "statement",
			Message: fmt.Sprintf("statement verb %q is not allowed, only SELECT, INSERT, UPDATE and DELETE are", verb),
		}
	}

	opID := uuid.NewString()
	log := e.log.With("operation_id", opID, "verb", verb)

	start := time.Now()
	var result *QueryResult
	var err error
	if verb == "select" {
		result, err = e.executeRead(ctx, statement)
	} else {
		result, err = e.executeWrite(ctx, statement)
	}

	if e.metrics != nil {
		e.metrics.QueriesTotal.WithLabelValues(verb).Inc()
		e.metrics.QueryDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			e.metrics.ErrorsCount.WithLabelValues(verb).Inc()
		}
	}

	if err != nil {
		log.Error("statement failed", "error", err)
		return nil, err
	}
	log.Info("statement executed",
		"rows", result.Count, "affected", result.Affected,
		"duration_ms", time.Since(start).Milliseconds())
	return result, nil
}

func (e *QueryExecutor) executeRead(ctx context.Context, statement string) (*QueryResult, error) {
	db, release, err := e.connector.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	rows, err := db.QueryxContext(ctx, statement)
	if err != nil {
		return nil, errs.Classify(err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, errs.Classify(err)
	}

	result := &QueryResult{Columns: columns}
	for rows.Next() {
		row, err := rows.SliceScan()
		if err != nil {
			return nil, errs.Classify(err)
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Classify(err)
	}

	result.Count = int64(len(result.Rows))
	return result, nil
}

func (e *QueryExecutor) executeWrite(ctx context.Context, statement string) (*QueryResult, error) {
	db, release, err := e.connector.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errs.Classify(err)
	}

	res, err := tx.ExecContext(ctx, statement)
	if err != nil {
		tx.Rollback()
		return nil, errs.Classify(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return nil, errs.Classify(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, errs.Classify(err)
	}
	return &QueryResult{Affected: affected}, nil
}
