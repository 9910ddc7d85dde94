package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"billdict/internal"
	"billdict/internal/util"
)

func sampleRecords() []internal.BillRecord {
	return []internal.BillRecord{
		{
			State:           "AL",
			BillNumber:      util.StringPtr("HB158"),
			Year:            2025,
			StateFull:       "Alabama",
			BillNumberRaw:   util.StringPtr("H.B.158"),
			Status:          util.StringPtr("Active"),
			StatusDetail:    util.StringPtr("In committee"),
			IssuesRaw:       util.StringPtr("Healthcare, Schools"),
			IssueCategories: []string{"education", "healthcare"},
			Label:           internal.LabelHarmful,
			Source:          internal.SourceTag,
		},
		{
			State:           "ME",
			BillNumber:      util.StringPtr("LD1134"),
			Year:            2025,
			StateFull:       "Maine",
			BillNumberRaw:   util.StringPtr("L.D. 1134 (S.P. 461)"),
			IssueCategories: []string{"other"},
			Label:           internal.LabelHarmful,
			Source:          internal.SourceTag,
		},
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	outDir := t.TempDir()
	path, err := WriteJSON(sampleRecords(), outDir)
	if err != nil {
		t.Fatal(err)
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded []internal.BillRecord
	if err := json.Unmarshal(blob, &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 2 {
		t.Fatalf("len=%d", len(decoded))
	}
	if !sameSet(decoded[0].IssueCategories, []string{"healthcare", "education"}) {
		t.Fatalf("categories: %v", decoded[0].IssueCategories)
	}
	if decoded[1].Status != nil || decoded[1].LegiscanBillID != nil {
		t.Fatalf("missing values must decode as nil: %+v", decoded[1])
	}
}

func TestWriteCSV(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "out")
	path, err := WriteCSV(sampleRecords(), outDir)
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	lines, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 3 {
		t.Fatalf("lines=%d", len(lines))
	}
	if lines[0][0] != "state" || lines[0][8] != "issue_categories" {
		t.Fatalf("header: %v", lines[0])
	}
	if lines[1][8] != `["education","healthcare"]` {
		t.Fatalf("composite field rendering: %q", lines[1][8])
	}
	if lines[2][5] != "" {
		t.Fatalf("missing status should render empty: %q", lines[2][5])
	}
}

func TestExportRecordsToXLSX(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dict.xlsx")
	if err := ExportRecordsToXLSX(sampleRecords(), out); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatal(err)
	}
}
