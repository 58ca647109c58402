package commands

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/glbridge-dev/glbridge/internal/config"
	"github.com/glbridge-dev/glbridge/internal/engine"
	"github.com/glbridge-dev/glbridge/internal/extract"
	"github.com/glbridge-dev/glbridge/internal/ledger"
	"github.com/glbridge-dev/glbridge/internal/model"
	"github.com/glbridge-dev/glbridge/internal/rules"
	"github.com/glbridge-dev/glbridge/internal/runlog"
	"github.com/glbridge-dev/glbridge/internal/segment"
	"github.com/glbridge-dev/glbridge/internal/transform"
)

func newGenerateCommand() *cobra.Command {
	var configPath string
	var fromFacts string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Extract measurement facts and generate the ledger workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return runGenerate(cmd.Context(), cfg, fromFacts)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "glbridge.yaml", "path to run configuration")
	cmd.Flags().StringVar(&fromFacts, "from-facts", "", "replay fact snapshots from this directory instead of querying the database")

	return cmd
}

func runGenerate(ctx context.Context, cfg *config.Config, fromFacts string) error {
	mapper, err := segment.Load(segment.Files{
		Product:       cfg.Mappings.Product,
		OrgCostCenter: cfg.Mappings.OrgCostCenter,
		Channel:       cfg.Mappings.Channel,
		Vehicle:       cfg.Mappings.Vehicle,
	})
	if err != nil {
		return err
	}

	facts, err := loadFacts(ctx, cfg, fromFacts)
	if err != nil {
		return err
	}

	currency := cfg.Currency
	if currency == "" {
		currency = "CNY"
	}

	var sheets []ledger.Sheet
	var events []runlog.Event
	warnings := 0
	for _, line := range model.Lines() {
		table := facts[line]
		entries, engineReport := engine.Assemble(table, rules.ForLine(table.Line))
		final, segReport := transform.Transform(entries, mapper, transform.Params{
			Period:        cfg.Period,
			InsuranceType: transform.InsuranceType(line),
			Currency:      currency,
		})

		if verrs := transform.Validate(final); len(verrs) > 0 {
			// Null-code rows surface here too; they stay in the output
			// but block downstream posting.
			log.Printf("%s: %d validation finding(s), first: %v", line, len(verrs), verrs[0])
		}

		events = append(events, reportEvents(cfg.Period, line, engineReport, segReport)...)
		if !engineReport.Clean() || !segReport.Clean() {
			warnings++
		}

		log.Printf("%s: %d fact rows -> %d entries (skipped rules: %d, unresolved codes: %d, unresolved segments: %d)",
			line, len(table.Rows), engineReport.Entries, len(engineReport.Skipped),
			engineReport.UnresolvedCodes, segReport.MissingSegments())

		sheets = append(sheets, ledger.Sheet{Name: ledger.SheetName(line), Entries: final})
	}

	if err := ledger.WriteWorkbook(cfg.Output.Workbook, sheets); err != nil {
		return err
	}
	log.Printf("wrote %s", cfg.Output.Workbook)

	if cfg.Output.RunLog != "" {
		if err := runlog.Append(cfg.Output.RunLog, events); err != nil {
			return err
		}
	}

	if warnings > 0 {
		log.Printf("run completed with warnings on %d line(s); review %s before posting", warnings, cfg.Output.RunLog)
	} else {
		log.Printf("run completed clean")
	}
	return nil
}

// loadFacts extracts all three fact tables, from snapshots when replaying
// or from the measurement platform otherwise. Any failure aborts the run;
// the engine never sees partial input.
func loadFacts(ctx context.Context, cfg *config.Config, fromFacts string) (map[model.BusinessLine]*model.FactTable, error) {
	facts := make(map[model.BusinessLine]*model.FactTable, 3)

	if fromFacts != "" {
		for _, line := range model.Lines() {
			table, err := extract.LoadFactTable(fromFacts, line)
			if err != nil {
				return nil, err
			}
			facts[line] = table
		}
		return facts, nil
	}

	// Credentials may live in a local .env file.
	_ = godotenv.Load()

	dsn, err := cfg.Database.DSN()
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to measurement platform: %w", err)
	}
	defer pool.Close()

	extractor := extract.New(pool)
	for _, line := range model.Lines() {
		start := time.Now()
		table, err := extractor.FactTable(ctx, line, cfg.Period, cfg.EligibilityCutoff)
		if err != nil {
			return nil, err
		}
		log.Printf("%s: extracted %d fact rows in %s", line, len(table.Rows), time.Since(start).Round(time.Millisecond))

		if cfg.Output.FactsDir != "" {
			if err := extract.SaveFactTable(cfg.Output.FactsDir, table); err != nil {
				return nil, err
			}
		}
		facts[line] = table
	}
	return facts, nil
}

// reportEvents converts a line's reports into run-log events.
func reportEvents(period string, line model.BusinessLine, er *engine.Report, tr *transform.Report) []runlog.Event {
	now := time.Now()
	event := func(category, detail string) runlog.Event {
		return runlog.Event{Timestamp: now, Period: period, Line: string(line), Category: category, Detail: detail}
	}

	var events []runlog.Event
	for _, s := range er.Skipped {
		events = append(events, event(runlog.CategorySkippedRule, s.String()))
	}
	if er.UnresolvedCodes > 0 {
		events = append(events, event(runlog.CategoryUnresolvedCode, fmt.Sprintf("%d entries without account code", er.UnresolvedCodes)))
	}
	for _, m := range []struct {
		name  string
		count int
	}{
		{"product", tr.MissingProduct},
		{"org", tr.MissingOrg},
		{"cost_center", tr.MissingCost},
		{"channel", tr.MissingChannel},
		{"vehicle", tr.MissingVehicle},
	} {
		if m.count > 0 {
			events = append(events, event(runlog.CategoryUnresolvedSegment, fmt.Sprintf("%s: %d rows unmapped", m.name, m.count)))
		}
	}
	return events
}
