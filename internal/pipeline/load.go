package pipeline

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"

	"billdict/internal"
	"billdict/internal/util"
)

// footerMarker flags the tracker export's trailing metadata row ("Data is
// current as of ..."), which lands in the State column and is not a bill.
const footerMarker = "Data is current"

// LoadRows reads the tracker export at path into row records. The tracker
// publishes the same table as a CSV download, an xlsx download, and the page's
// own HTML table; inputType picks the parser.
func LoadRows(inputType internal.InputType, path string) ([]internal.TrackerRow, error) {
	switch inputType {
	case internal.InputCSV:
		return loadCSV(path)
	case internal.InputXLSX:
		blob, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return loadXLSX(blob)
	case internal.InputHTMLTable:
		blob, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return loadHTMLTable(string(blob))
	default:
		return nil, fmt.Errorf("unsupported input type: %s", inputType)
	}
}

func loadCSV(path string) ([]internal.TrackerRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	raw, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("csv %s has no header row", path)
	}

	cols := mapColumns(raw[0])
	return rowsFromCells(raw[1:], cols), nil
}

func loadXLSX(blob []byte) ([]internal.TrackerRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("sheet %s has no header row", sheet)
	}

	cols := mapColumns(raw[0])
	return rowsFromCells(raw[1:], cols), nil
}

func loadHTMLTable(html string) ([]internal.TrackerRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	out := []internal.TrackerRow{}
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		rows := table.Find("tr")
		if rows.Length() < 2 {
			return true
		}

		headers := []string{}
		rows.First().Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			headers = append(headers, strings.TrimSpace(cell.Text()))
		})
		cols := mapColumns(headers)
		if cols.state < 0 || cols.billName < 0 {
			return true
		}

		cells := [][]string{}
		rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
			line := []string{}
			row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
				line = append(line, strings.TrimSpace(cell.Text()))
			})
			cells = append(cells, line)
		})
		out = rowsFromCells(cells, cols)
		return false
	})

	if len(out) == 0 {
		return nil, fmt.Errorf("no tracker table found in html input")
	}
	return out, nil
}

type columnIndexes struct {
	state, billName, status, statusDetail, statusDate, issues int
}

func mapColumns(headers []string) columnIndexes {
	norm := make([]string, 0, len(headers))
	for _, h := range headers {
		norm = append(norm, strings.ToLower(strings.TrimSpace(h)))
	}
	return columnIndexes{
		state:        findHeaderIndex(norm, []string{"state"}),
		billName:     findHeaderIndex(norm, []string{"bill name", "bill"}),
		status:       findExactHeaderIndex(norm, "status"),
		statusDetail: findHeaderIndex(norm, []string{"status detail"}),
		statusDate:   findHeaderIndex(norm, []string{"status date"}),
		issues:       findHeaderIndex(norm, []string{"issues", "issue"}),
	}
}

// rowsFromCells applies the footer/blank-state filter and assigns line numbers
// to the rows that survive. Line numbers count data lines in the source, so a
// dropped footer still advances them.
func rowsFromCells(cells [][]string, cols columnIndexes) []internal.TrackerRow {
	out := make([]internal.TrackerRow, 0, len(cells))
	for i, line := range cells {
		state := pickCell(line, cols.state)
		if state == nil || strings.Contains(*state, footerMarker) {
			continue
		}
		out = append(out, internal.TrackerRow{
			LineNo:       i + 2, // 1-based, counting the header line
			State:        state,
			BillName:     pickCell(line, cols.billName),
			Status:       pickCell(line, cols.status),
			StatusDetail: pickCell(line, cols.statusDetail),
			StatusDate:   pickCell(line, cols.statusDate),
			Issues:       pickCell(line, cols.issues),
		})
	}
	return out
}

func findHeaderIndex(headers []string, probes []string) int {
	for _, probe := range probes {
		for i, h := range headers {
			if strings.Contains(h, probe) {
				return i
			}
		}
	}
	return -1
}

// findExactHeaderIndex avoids "status" probing into "status detail" or
// "status date" when columns are matched by containment.
func findExactHeaderIndex(headers []string, name string) int {
	for i, h := range headers {
		if h == name {
			return i
		}
	}
	return -1
}

func pickCell(cells []string, idx int) *string {
	if idx < 0 || idx >= len(cells) {
		return nil
	}
	return util.CellPtr(cells[idx])
}
