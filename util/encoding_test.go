package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToUtf8PassesThroughValidText(t *testing.T) {
	assert.Equal(t, "Grüße", ToUtf8([]byte("Grüße"), "text/html; charset=utf-8"))
	assert.Equal(t, "plain", ToUtf8([]byte("plain"), ""))
}

func TestToUtf8UsesDeclaredCharset(t *testing.T) {
	latin1 := []byte{'G', 'r', 0xfc, 0xdf, 'e'}
	assert.Equal(t, "Grüße", ToUtf8(latin1, "text/html; charset=iso-8859-1"))
}

func TestToUtf8DeclaredCharsetBeatsContent(t *testing.T) {
	// 0x82 0xa0 is "あ" in Shift_JIS
	sjis := []byte{0x82, 0xa0}
	assert.Equal(t, "あ", ToUtf8(sjis, "text/html; charset=Shift_JIS"))
}
