// Package fetcher turns uploaded file bytes into parsed rows, handling text
// encodings and XLSX workbooks.
package fetcher

import (
	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeText returns data as UTF-8 text. A UTF-8 byte order mark is stripped and
// UTF-16 input with a BOM is transcoded; anything else passes through as UTF-8.
func DecodeText(data []byte) (string, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return "", eris.Wrap(err, "fetcher: decode text")
	}
	return string(out), nil
}

// DecodeCharset transcodes data from the named charset (e.g. "windows-1252")
// to UTF-8. An empty or utf-8 charset falls back to DecodeText.
func DecodeCharset(data []byte, charset string) (string, error) {
	if charset == "" {
		return DecodeText(data)
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", eris.Wrapf(err, "fetcher: unsupported charset %q", charset)
	}
	if name, _ := htmlindex.Name(enc); name == "utf-8" {
		return DecodeText(data)
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", eris.Wrapf(err, "fetcher: decode %s", charset)
	}
	return string(out), nil
}
