package ui

import (
	"bytes"
	"errors"
	"testing"

	"ip-geo-lookup/models"

	"github.com/stretchr/testify/assert"
)

func TestPrintStartupErrorConfigError(t *testing.T) {
	var buf bytes.Buffer
	PrintStartupError(&buf, &models.ConfigError{Field: "api_base_url", Message: "must be an http(s) URL"})

	out := buf.String()
	assert.Contains(t, out, "Startup failed")
	assert.Contains(t, out, "api_base_url")
	assert.Contains(t, out, "must be an http(s) URL")
}

func TestPrintStartupErrorPlain(t *testing.T) {
	var buf bytes.Buffer
	PrintStartupError(&buf, errors.New("failed to open log file"))

	assert.Contains(t, buf.String(), "failed to open log file")
}

func TestPrintSessionEnd(t *testing.T) {
	var buf bytes.Buffer
	PrintSessionEnd(&buf, &models.Config{LogFile: "/tmp/lookup.log"})
	assert.Contains(t, buf.String(), "/tmp/lookup.log")
	assert.NotContains(t, buf.String(), "Metrics")

	buf.Reset()
	PrintSessionEnd(&buf, &models.Config{LogFile: "/tmp/lookup.log", MetricsAddr: "127.0.0.1:9090"})
	assert.Contains(t, buf.String(), "127.0.0.1:9090")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Contains(t, buf.String(), "IP Geo Lookup")
}
