package storage

import (
	"path/filepath"
	"testing"

	"billdict/internal"
	"billdict/internal/util"
)

func TestWriteDictionary(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "out", "dict.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	records := []internal.BillRecord{
		{
			State:           "AL",
			BillNumber:      util.StringPtr("HB158"),
			Year:            2025,
			StateFull:       "Alabama",
			BillNumberRaw:   util.StringPtr("H.B.158"),
			IssueCategories: []string{"healthcare"},
			Label:           internal.LabelHarmful,
			Source:          internal.SourceTag,
		},
		{
			State:           "ME",
			Year:            2025,
			StateFull:       "Maine",
			IssueCategories: []string{"other"},
			Label:           internal.LabelHarmful,
			Source:          internal.SourceTag,
		},
	}

	if err := db.WriteDictionary(records, "tracker.csv"); err != nil {
		t.Fatal(err)
	}

	n, err := db.CountBills()
	if err != nil {
		t.Fatal(err)
	}
	if n != len(records) {
		t.Fatalf("bills=%d want %d", n, len(records))
	}

	// A second write replaces, not appends.
	if err := db.WriteDictionary(records[:1], "tracker.csv"); err != nil {
		t.Fatal(err)
	}
	n, err = db.CountBills()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("bills=%d after rewrite", n)
	}
}
