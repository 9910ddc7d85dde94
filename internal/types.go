package internal

type InputType string

const (
	InputCSV       InputType = "csv"
	InputXLSX      InputType = "xlsx"
	InputHTMLTable InputType = "html"
)

const (
	// LabelHarmful is attached to every record: the tracker only lists
	// anti-LGBTQ+ bills, so the whole input set shares one ground-truth label.
	LabelHarmful = "harmful"

	// SourceTag identifies the upstream dataset a record came from.
	SourceTag = "aclu_tracker"
)

// TrackerRow is one data row of the tracker export. Optional cells are nil,
// never empty-string sentinels.
type TrackerRow struct {
	LineNo       int
	State        *string
	BillName     *string
	Status       *string
	StatusDetail *string
	StatusDate   *string
	Issues       *string
}

// BillRecord is the classification-dictionary entry built from one row.
// The legiscan fields stay empty at build time; a downstream enrichment step
// fills them after matching against the LegiScan API.
type BillRecord struct {
	State           string   `json:"state"`
	BillNumber      *string  `json:"bill_number"`
	Year            int      `json:"year"`
	StateFull       string   `json:"state_full"`
	BillNumberRaw   *string  `json:"bill_number_raw"`
	Status          *string  `json:"status"`
	StatusDetail    *string  `json:"status_detail"`
	IssuesRaw       *string  `json:"issues_raw"`
	IssueCategories []string `json:"issue_categories"`
	Label           string   `json:"label"`
	Source          string   `json:"source"`
	LegiscanBillID  *int     `json:"legiscan_bill_id"`
	LegiscanTextURL *string  `json:"legiscan_text_url"`
}
