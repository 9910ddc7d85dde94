package pipeline

import (
	"github.com/rs/zerolog"

	"billdict/internal"
	"billdict/internal/config"
)

// Builder turns tracker rows into classification-dictionary records.
type Builder struct {
	cfg config.Config
	log zerolog.Logger
}

func NewBuilder(cfg config.Config, log zerolog.Logger) *Builder {
	return &Builder{cfg: cfg, log: log}
}

// BuildRecords produces one record per row, preserving row order. All
// per-field transforms are pure; the only side effect is the progress log.
func (b *Builder) BuildRecords(rows []internal.TrackerRow) []internal.BillRecord {
	b.log.Info().Int("rows", len(rows)).Msg("building classification records")

	records := make([]internal.BillRecord, 0, len(rows))
	for _, row := range rows {
		stateFull := ""
		if row.State != nil {
			stateFull = *row.State
		}
		records = append(records, internal.BillRecord{
			State:           StateAbbreviation(stateFull),
			BillNumber:      NormalizeBillNumber(row.BillName),
			Year:            ExtractYear(row.StatusDate, b.cfg.FallbackYear),
			StateFull:       stateFull,
			BillNumberRaw:   row.BillName,
			Status:          row.Status,
			StatusDetail:    row.StatusDetail,
			IssuesRaw:       row.Issues,
			IssueCategories: CategorizeIssues(row.Issues),
			Label:           internal.LabelHarmful,
			Source:          internal.SourceTag,
		})
	}
	return records
}
