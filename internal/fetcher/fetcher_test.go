package fetcher

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
	"golang.org/x/text/encoding/unicode"

	"github.com/sells-group/risk-dashboard/internal/tabular"
)

func createTestXLSX(t *testing.T, sheets map[string][][]string) []byte {
	t.Helper()
	f := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := f.AddSheet(name)
		require.NoError(t, err)
		for _, rowData := range rows {
			row := sheet.AddRow()
			for _, cellData := range rowData {
				cell := row.AddCell()
				cell.SetString(cellData)
			}
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestDecodeText_StripsUTF8BOM(t *testing.T) {
	text, err := DecodeText([]byte("\xef\xbb\xbfcompany,industry\nAcme,Energy"))
	require.NoError(t, err)
	assert.Equal(t, "company,industry\nAcme,Energy", text)

	rows := tabular.Parse(text)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme", rows[0]["company"])
}

func TestDecodeText_UTF16(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	data, err := enc.Bytes([]byte("feature,importance\nflood,0.2"))
	require.NoError(t, err)

	text, err := DecodeText(data)
	require.NoError(t, err)
	assert.Equal(t, "feature,importance\nflood,0.2", text)
}

func TestDecodeText_PlainPassesThrough(t *testing.T) {
	text, err := DecodeText([]byte("a,b\n1,2"))
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2", text)
}

func TestDecodeCharset(t *testing.T) {
	text, err := DecodeCharset([]byte("company\nCaf\xe9 Holdings"), "windows-1252")
	require.NoError(t, err)
	assert.Equal(t, "company\nCafé Holdings", text)

	text, err = DecodeCharset([]byte("\xef\xbb\xbfa"), "UTF-8")
	require.NoError(t, err)
	assert.Equal(t, "a", text)

	_, err = DecodeCharset([]byte("a"), "klingon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported charset")
}

func TestReadXLSX(t *testing.T) {
	data := createTestXLSX(t, map[string][][]string{
		"Sheet1": {
			{"company", "EHEI"},
			{"Acme", "0.7"},
		},
	})

	rows, err := ReadXLSX(data, XLSXOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"company", "EHEI"}, rows[0])
	assert.Equal(t, []string{"Acme", "0.7"}, rows[1])
}

func TestReadXLSX_SheetSelection(t *testing.T) {
	data := createTestXLSX(t, map[string][][]string{
		"Companies": {{"company"}, {"Acme"}},
	})

	rows, err := ReadXLSX(data, XLSXOptions{SheetName: "Companies"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = ReadXLSX(data, XLSXOptions{SheetName: "Missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = ReadXLSX(data, XLSXOptions{SheetIndex: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestReadXLSX_InvalidData(t *testing.T) {
	_, err := ReadXLSX([]byte("not a zip"), XLSXOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xlsx: open workbook")
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename    string
		contentType string
		want        Format
	}{
		{"companies.csv", "", FormatCSV},
		{"companies.XLSX", "", FormatXLSX},
		{"book.xlsm", "text/plain", FormatXLSX},
		{"blob", xlsxContentType, FormatXLSX},
		{"notes.txt", xlsxContentType, FormatCSV},
		{"blob", "text/csv", FormatCSV},
		{"", "", FormatCSV},
	}
	for _, tt := range tests {
		t.Run(tt.filename+"|"+tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.filename, tt.contentType))
		})
	}
}

func TestRows(t *testing.T) {
	rows, err := Rows(Upload{Data: []byte("\xef\xbb\xbffeature,importance\nflood,0.2"), Format: FormatCSV})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, tabular.Row{"feature": "flood", "importance": "0.2"}, rows[0])

	data := createTestXLSX(t, map[string][][]string{
		"Sheet1": {{"feature", "importance"}, {"", ""}, {"heat", "0.1"}},
	})
	rows, err = Rows(Upload{Data: data, Format: FormatXLSX})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, tabular.Row{"feature": "heat", "importance": "0.1"}, rows[0])

	_, err = Rows(Upload{Data: []byte("junk"), Format: FormatXLSX})
	require.Error(t, err)
}
