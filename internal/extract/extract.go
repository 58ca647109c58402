// Package extract pulls pre-aggregated measurement facts for a valuation
// month out of the measurement platform, one table per business line.
package extract

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/glbridge-dev/glbridge/internal/model"
)

// Extractor runs the per-line extraction queries on a shared pool.
type Extractor struct {
	pool *pgxpool.Pool
}

// New creates an Extractor on an open pool.
func New(pool *pgxpool.Pool) *Extractor {
	return &Extractor{pool: pool}
}

// FactTable extracts the measurement facts for one business line. period is
// the valuation month ("202412"); cutoff excludes cohorts whose coverage
// ends on or before it ("20241231"). A query failure is fatal for the line;
// the engine never runs on partial input.
func (e *Extractor) FactTable(ctx context.Context, line model.BusinessLine, period, cutoff string) (*model.FactTable, error) {
	spec, ok := lineSpecs[line]
	if !ok {
		return nil, fmt.Errorf("no extraction spec for line %q", line)
	}

	rows, err := e.pool.Query(ctx, spec.sql(), period, spec.valMethod, cutoff)
	if err != nil {
		return nil, fmt.Errorf("querying %s facts: %w", line, err)
	}
	defer rows.Close()

	table := &model.FactTable{Line: line, MeasureColumns: spec.measures}
	for rows.Next() {
		fact, err := scanFact(rows.Scan, spec)
		if err != nil {
			return nil, fmt.Errorf("scanning %s fact row: %w", line, err)
		}
		table.Rows = append(table.Rows, fact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s facts: %w", line, err)
	}
	return table, nil
}

func scanFact(scan func(...any) error, spec lineSpec) (model.MeasurementFact, error) {
	dimVals := make([]string, len(spec.dims))
	measureVals := make([]string, len(spec.measures))

	dest := make([]any, 0, len(dimVals)+len(measureVals))
	for i := range dimVals {
		dest = append(dest, &dimVals[i])
	}
	for i := range measureVals {
		dest = append(dest, &measureVals[i])
	}
	if err := scan(dest...); err != nil {
		return model.MeasurementFact{}, err
	}

	var dims model.Dimensions
	for i, d := range spec.dims {
		d.assign(&dims, dimVals[i])
	}

	measures := make(map[string]decimal.Decimal, len(spec.measures))
	for i, name := range spec.measures {
		v, err := decimal.NewFromString(measureVals[i])
		if err != nil {
			return model.MeasurementFact{}, fmt.Errorf("parsing %s value %q: %w", name, measureVals[i], err)
		}
		measures[name] = v
	}

	return model.MeasurementFact{Dimensions: dims, Measures: measures}, nil
}
