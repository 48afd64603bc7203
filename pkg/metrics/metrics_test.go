package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveParseCounts(t *testing.T) {
	m := New()
	m.ObserveParse("nmap", 5)
	m.ObserveParse("nmap", 2)
	m.ObserveParse("burp", 1)

	assert.Equal(t, 7.0, testutil.ToFloat64(m.findingsParsed.WithLabelValues("nmap")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.findingsParsed.WithLabelValues("burp")))
}

func TestObserveExportResultLabel(t *testing.T) {
	m := New()
	m.ObserveExport("json", 10*time.Millisecond, nil)
	m.ObserveExport("json", 10*time.Millisecond, errors.New("disk full"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.exportsTotal.WithLabelValues("json", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.exportsTotal.WithLabelValues("json", "error")))
}

func TestEnrichmentOutcomes(t *testing.T) {
	m := New()
	m.ObserveEnrichment(OutcomeModel)
	m.ObserveEnrichment(OutcomeFallback)
	m.ObserveEnrichment(OutcomeFallback)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.enrichments.WithLabelValues(OutcomeFallback)))
}

func TestHandlerServesExposition(t *testing.T) {
	m := New()
	m.ObserveParse("nuclei", 3)
	m.ObservePipeline(3, 2*time.Second)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(body)
	assert.True(t, strings.Contains(text, "autoreport_findings_parsed_total"))
	assert.True(t, strings.Contains(text, `source="nuclei"`))
	assert.True(t, strings.Contains(text, "autoreport_findings_processed 3"))
}

func TestSeparateRegistries(t *testing.T) {
	a := New()
	b := New()
	a.ObserveParse("nmap", 1)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.findingsParsed.WithLabelValues("nmap")))
}
