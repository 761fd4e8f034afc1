package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Jessenahat/odhf-lode-mcp-server/internal/errors"
)

// FileReader reads a delimited facility file into raw rows. CSV is the
// shipped format; .xlsx is accepted so a spreadsheet revision of the
// ODHF release drops in without conversion.
type FileReader struct {
	filePath string
	fileType string // "csv" or "xlsx"
}

// NewFileReader creates a reader dispatching on the file extension.
func NewFileReader(filePath string) *FileReader {
	fileType := "csv"
	if strings.ToLower(filepath.Ext(filePath)) == ".xlsx" {
		fileType = "xlsx"
	}
	return &FileReader{filePath: filePath, fileType: fileType}
}

// ReadRows returns every row of the source file, header first.
func (r *FileReader) ReadRows() ([][]string, error) {
	if _, err := os.Stat(r.filePath); err != nil {
		return nil, errors.DatasetUnavailable(r.filePath)
	}

	switch r.fileType {
	case "xlsx":
		return r.readExcelRows()
	default:
		return r.readCSVRows()
	}
}

func (r *FileReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open CSV file %s", r.filePath)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// ODHF revisions occasionally ship ragged rows; short rows become
	// absent cells rather than parse failures.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse CSV file %s", r.filePath)
	}
	return rows, nil
}

func (r *FileReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open Excel file %s", r.filePath)
	}
	defer f.Close()

	sheet := "Sheet1"
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New(errors.CodeDatasetUnavailable, fmt.Sprintf("Excel file %s has no sheets", r.filePath))
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheet)
	}
	return rows, nil
}
