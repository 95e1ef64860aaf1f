package fetcher

import (
	"path/filepath"
	"strings"

	"github.com/sells-group/risk-dashboard/internal/tabular"
)

// Format is the container format of an uploaded file.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Detect picks the format from the file name, then the content type.
// Anything unrecognized is treated as delimited text.
func Detect(filename, contentType string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".csv", ".txt":
		return FormatCSV
	}
	if strings.HasPrefix(contentType, xlsxContentType) {
		return FormatXLSX
	}
	return FormatCSV
}

// Upload describes a file to turn into rows.
type Upload struct {
	Data    []byte
	Format  Format
	Charset string      // text uploads only
	Sheet   XLSXOptions // xlsx uploads only
}

// Rows decodes u and parses it with the tabular header rules.
func Rows(u Upload) ([]tabular.Row, error) {
	if u.Format == FormatXLSX {
		grid, err := ReadXLSX(u.Data, u.Sheet)
		if err != nil {
			return nil, err
		}
		return tabular.FromGrid(grid), nil
	}

	text, err := DecodeCharset(u.Data, u.Charset)
	if err != nil {
		return nil, err
	}
	return tabular.Parse(text), nil
}
