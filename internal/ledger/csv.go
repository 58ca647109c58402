package ledger

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/glbridge-dev/glbridge/internal/model"
)

// Final entry CSV column indexes, matching model.FinalColumns.
const (
	numFields      = 26
	colSJID        = 0
	colPeriod      = 1
	colDCCode      = 2
	colAcctCode    = 3
	colAcctName    = 4
	colOrgSeg      = 5
	colAgriSeg     = 6
	colCostSeg     = 7
	colDetailSeg   = 8
	colProductSeg  = 9
	colCoverageSeg = 10
	colChannelSeg  = 11
	colVehicleSeg  = 12
	colReserve1    = 13
	colReserve2    = 14
	colPortfolio   = 15
	colGroup       = 16
	colOriginCcy   = 17
	colOriginAmt   = 18
	colRate        = 19
	colLocalCcy    = 20
	colLocalAmt    = 21
	colDCLocalAmt  = 22
	colEvalMethod  = 23
	colInsType     = 24
	colOriginType  = 25
)

// WriteCSV writes final entries as CSV, header included.
func WriteCSV(w io.Writer, entries []model.FinalEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(model.FinalColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %s: %w", e.SJID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads final entries from a CSV written by WriteCSV.
func ReadCSV(r io.Reader) ([]model.FinalEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []model.FinalEntry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// MarshalEntry converts a final entry to a CSV row.
func MarshalEntry(e model.FinalEntry) []string {
	row := make([]string, numFields)
	row[colSJID] = e.SJID
	row[colPeriod] = e.AccountPeriod
	row[colDCCode] = e.DCCode
	row[colAcctCode] = e.AccountCode
	row[colAcctName] = e.AccountName
	row[colOrgSeg] = e.OrgSegment
	row[colAgriSeg] = e.AgricultureSegment
	row[colCostSeg] = e.CostCenterSegment
	row[colDetailSeg] = e.DetailSegment
	row[colProductSeg] = e.ProductSegment
	row[colCoverageSeg] = e.CoverageSegment
	row[colChannelSeg] = e.ChannelSegment
	row[colVehicleSeg] = e.VehicleSegment
	row[colReserve1] = e.Reserve1
	row[colReserve2] = e.Reserve2
	row[colPortfolio] = e.PortfolioID
	row[colGroup] = e.GroupID
	row[colOriginCcy] = e.OriginCurrencyCode
	row[colOriginAmt] = e.OriginCurrencyAmt.String()
	row[colRate] = e.ExchangeRate.String()
	row[colLocalCcy] = e.LocalCurrencyCode
	row[colLocalAmt] = e.LocalCurrencyAmt.String()
	row[colDCLocalAmt] = e.DCLocalCurrencyAmt.String()
	row[colEvalMethod] = e.EvaluateMethod
	row[colInsType] = e.InsuranceType
	row[colOriginType] = e.OriginDataType
	return row
}

// UnmarshalEntry converts a CSV row to a final entry.
func UnmarshalEntry(rec []string) (model.FinalEntry, error) {
	if len(rec) != numFields {
		return model.FinalEntry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(rec))
	}

	originAmt, err := decimal.NewFromString(rec[colOriginAmt])
	if err != nil {
		return model.FinalEntry{}, fmt.Errorf("parsing origin amount %q: %w", rec[colOriginAmt], err)
	}
	rate, err := decimal.NewFromString(rec[colRate])
	if err != nil {
		return model.FinalEntry{}, fmt.Errorf("parsing exchange rate %q: %w", rec[colRate], err)
	}
	localAmt, err := decimal.NewFromString(rec[colLocalAmt])
	if err != nil {
		return model.FinalEntry{}, fmt.Errorf("parsing local amount %q: %w", rec[colLocalAmt], err)
	}
	dcLocalAmt, err := decimal.NewFromString(rec[colDCLocalAmt])
	if err != nil {
		return model.FinalEntry{}, fmt.Errorf("parsing dc local amount %q: %w", rec[colDCLocalAmt], err)
	}

	return model.FinalEntry{
		SJID:               rec[colSJID],
		AccountPeriod:      rec[colPeriod],
		DCCode:             rec[colDCCode],
		AccountCode:        rec[colAcctCode],
		AccountName:        rec[colAcctName],
		OrgSegment:         rec[colOrgSeg],
		AgricultureSegment: rec[colAgriSeg],
		CostCenterSegment:  rec[colCostSeg],
		DetailSegment:      rec[colDetailSeg],
		ProductSegment:     rec[colProductSeg],
		CoverageSegment:    rec[colCoverageSeg],
		ChannelSegment:     rec[colChannelSeg],
		VehicleSegment:     rec[colVehicleSeg],
		Reserve1:           rec[colReserve1],
		Reserve2:           rec[colReserve2],
		PortfolioID:        rec[colPortfolio],
		GroupID:            rec[colGroup],
		OriginCurrencyCode: rec[colOriginCcy],
		OriginCurrencyAmt:  originAmt,
		ExchangeRate:       rate,
		LocalCurrencyCode:  rec[colLocalCcy],
		LocalCurrencyAmt:   localAmt,
		DCLocalCurrencyAmt: dcLocalAmt,
		EvaluateMethod:     rec[colEvalMethod],
		InsuranceType:      rec[colInsType],
		OriginDataType:     rec[colOriginType],
	}, nil
}
