package logging

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Setup("", false, false, "chatty"))
}

func TestSetupDefaultsToInfo(t *testing.T) {
	require.NoError(t, Setup("-", false, false, ""))
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestFormatterUsesUtc(t *testing.T) {
	f := newFormatter(false, true)
	loc := time.FixedZone("UTC+5", 5*60*60)
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Data:    logrus.Fields{"requestId": "REQ-1"},
		Time:    time.Date(2022, 1, 2, 10, 0, 0, 0, loc),
		Level:   logrus.InfoLevel,
		Message: "hello",
	}

	b, err := f.Format(entry)
	require.NoError(t, err)

	parsed := make(map[string]interface{})
	require.NoError(t, json.NewDecoder(bytes.NewReader(b)).Decode(&parsed))
	assert.Equal(t, "2022-01-02 05:00:00.000 Z", parsed["time"])
	assert.Equal(t, "REQ-1", parsed["requestId"])
	assert.Equal(t, "hello", parsed["msg"])
}
