package util

import (
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// ToUtf8 decodes a fetched body. A charset named by the Content-Type (or a BOM)
// wins; otherwise the charset is guessed from the bytes. Undecodable input is
// returned as-is.
func ToUtf8(raw []byte, contentType string) string {
	if utf8.Valid(raw) {
		return string(raw)
	}

	name := declaredCharset(raw, contentType)
	if name == "" {
		name = detectedCharset(raw)
	}
	if name == "" {
		return string(raw)
	}

	enc, _ := charset.Lookup(name)
	if enc == nil {
		return string(raw)
	}
	converted, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(converted)
}

func declaredCharset(raw []byte, contentType string) string {
	if contentType == "" {
		return ""
	}
	_, name, certain := charset.DetermineEncoding(raw, contentType)
	if !certain {
		return ""
	}
	return name
}

func detectedCharset(raw []byte) string {
	res, err := chardet.NewHtmlDetector().DetectBest(raw)
	if err != nil {
		return ""
	}
	return res.Charset
}
