package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"billdict/internal"
	"billdict/internal/util"
)

const (
	CSVFileName  = "bill_classification_dict.csv"
	JSONFileName = "bill_classification_dict.json"
)

var exportHeaders = []string{
	"state", "bill_number", "year", "state_full", "bill_number_raw",
	"status", "status_detail", "issues_raw", "issue_categories",
	"label", "source", "legiscan_bill_id", "legiscan_text_url",
}

// WriteCSV writes the flat tabular dictionary. The category set is a
// composite field, rendered here as its JSON-array text; the JSON output is
// the serialization that keeps it as a real list.
func WriteCSV(records []internal.BillRecord, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(outputDir, CSVFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(exportHeaders); err != nil {
		return "", err
	}
	for _, rec := range records {
		if err := w.Write(csvLine(rec)); err != nil {
			return "", err
		}
	}
	w.Flush()
	return path, w.Error()
}

func csvLine(rec internal.BillRecord) []string {
	categories, _ := json.Marshal(rec.IssueCategories)
	billID := ""
	if rec.LegiscanBillID != nil {
		billID = strconv.Itoa(*rec.LegiscanBillID)
	}
	return []string{
		rec.State,
		util.Deref(rec.BillNumber),
		strconv.Itoa(rec.Year),
		rec.StateFull,
		util.Deref(rec.BillNumberRaw),
		util.Deref(rec.Status),
		util.Deref(rec.StatusDetail),
		util.Deref(rec.IssuesRaw),
		string(categories),
		rec.Label,
		rec.Source,
		billID,
		util.Deref(rec.LegiscanTextURL),
	}
}

// WriteJSON writes the dictionary as an indented array of records,
// preserving issue_categories as a true list and missing values as null.
func WriteJSON(records []internal.BillRecord, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(outputDir, JSONFileName)

	blob, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, append(blob, '\n'), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func ExportRecordsToXLSX(records []internal.BillRecord, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, rec := range records {
		for col, value := range csvLine(rec) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
