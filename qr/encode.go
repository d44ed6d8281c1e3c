package qr

import (
	"encoding/base64"
	"fmt"
	"image"
	"regexp"
	"strings"

	"github.com/scoophq/scoop/common"
	"github.com/skip2/go-qrcode"
)

type Level = qrcode.RecoveryLevel

const (
	LevelL = qrcode.Low
	LevelM = qrcode.Medium
	LevelQ = qrcode.High
	LevelH = qrcode.Highest
)

const maxFilenameLength = 120

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ParseLevel maps the usual L/M/Q/H letters onto recovery levels. An empty string
// yields the fallback.
func ParseLevel(s string, fallback Level) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return fallback, nil
	case "L":
		return LevelL, nil
	case "M":
		return LevelM, nil
	case "Q":
		return LevelQ, nil
	case "H":
		return LevelH, nil
	default:
		return fallback, fmt.Errorf("unknown error correction level: %s", s)
	}
}

func LevelName(l Level) string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	default:
		return "?"
	}
}

func Encode(data string, level Level) (*qrcode.QRCode, error) {
	if data == "" {
		return nil, common.ErrMissingData
	}
	return qrcode.New(data, level)
}

// RenderImage returns a size x size image (or larger, if the code needs more
// room than size allows).
func RenderImage(data string, size int, level Level) (image.Image, error) {
	q, err := Encode(data, level)
	if err != nil {
		return nil, err
	}
	return q.Image(size), nil
}

func RenderPNG(data string, size int, level Level) ([]byte, error) {
	q, err := Encode(data, level)
	if err != nil {
		return nil, err
	}
	return q.PNG(size)
}

func DataUri(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

func ClampSize(size int, min int, max int) int {
	if min > 0 && size < min {
		return min
	}
	if max > 0 && size > max {
		return max
	}
	return size
}

// Filename derives the download name from the payload, ignoring any query string.
func Filename(data string) string {
	base := strings.SplitN(data, "?", 2)[0]
	base = unsafeFilenameChars.ReplaceAllString(base, "_")
	if len(base) > maxFilenameLength {
		base = base[:maxFilenameLength]
	}
	if base == "" {
		return "QR_Code.png"
	}
	return "QR_Code_" + base + ".png"
}
