package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureJSON(t *testing.T) {
	var buf bytes.Buffer
	l := log.New()
	require.NoError(t, Configure(l, &buf, "debug", "json"))

	l.WithField("region", "Region_7").Debug("selected")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "selected", entry["msg"])
	assert.Equal(t, "Region_7", entry["region"])
	assert.Equal(t, "debug", entry["level"])
}

func TestConfigureLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := log.New()
	require.NoError(t, Configure(l, &buf, "WARN", "text"))

	l.Info("hidden")
	assert.Zero(t, buf.Len())
	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestConfigureRejectsBadInput(t *testing.T) {
	l := log.New()
	assert.Error(t, Configure(l, &bytes.Buffer{}, "loud", "text"))
	assert.Error(t, Configure(l, &bytes.Buffer{}, "info", "xml"))
}
