package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-eeg/recording"
	"github.com/cwbudde/algo-eeg/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errb bytes.Buffer
	code = run(context.Background(), args, &out, &errb)
	return code, out.String(), errb.String()
}

func synthFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	code, out, errOut := runCLI(t, "synth", "-fs", "500", "-duration", "20", "-channels", "3", "-out", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "3 channels, 10000 samples")
	return path
}

func TestUsage(t *testing.T) {
	code, _, errOut := runCLI(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "Commands:")

	code, _, errOut = runCLI(t, "bogus")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, `unknown command "bogus"`)
}

func TestSynthFormats(t *testing.T) {
	for _, name := range []string{"s.asc", "s.asc.gz", "s.edf"} {
		path := synthFile(t, name)
		rec, err := recording.Open(path, recording.WithSampleRate(500))
		require.NoError(t, err, name)
		assert.Equal(t, 3, rec.Channels())
		assert.Equal(t, 10000, rec.Samples())
	}

	code, _, errOut := runCLI(t, "synth")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "-out is required")
}

func TestAnalyzeText(t *testing.T) {
	path := synthFile(t, "rec.asc")
	code, out, errOut := runCLI(t, "analyze", "-fs", "500", "-log-level", "error", "-mode", "bands", path)
	require.Equal(t, 0, code, errOut)

	for _, band := range []string{"DELTA", "THETA", "ALPHA", "BETA", "GAMMA"} {
		assert.Contains(t, out, band)
	}
	// Lead k carries (1 + 0.25k) times the base delta amplitude.
	assert.Regexp(t, `max:\s+\S+ uV\^2\s+\(P4\)`, out)
	assert.Regexp(t, `min:\s+\S+ uV\^2\s+\(P3\)`, out)
}

func TestAnalyzeJSONFile(t *testing.T) {
	path := synthFile(t, "rec.edf")
	outPath := filepath.Join(t.TempDir(), "report.json")
	code, _, errOut := runCLI(t, "analyze", "-log-level", "error", "-mode", "full", "-out", outPath, path)
	require.Equal(t, 0, code, errOut)

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var decoded struct {
		SampleRate float64 `json:"sample_rate"`
		Bands      []struct {
			Name string `json:"name"`
		} `json:"bands"`
		Channels []struct {
			Valid bool `json:"valid"`
		} `json:"channels"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, 500.0, decoded.SampleRate, "edf carries its own rate")
	require.Len(t, decoded.Bands, 6)
	assert.Equal(t, "total", decoded.Bands[0].Name)
	assert.Len(t, decoded.Channels, 3)
}

func TestAnalyzeCustomBandCSV(t *testing.T) {
	path := synthFile(t, "rec.asc.gz")
	code, out, errOut := runCLI(t, "analyze", "-fs", "500", "-log-level", "error",
		"-mode", "band", "-low", "8", "-high", "12", "-format", "csv", path)
	require.Equal(t, 0, code, errOut)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "index,label,valid,reason,band", lines[0])

	code, _, errOut = runCLI(t, "analyze", "-fs", "500", "-mode", "band", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "-low and -high")
}

func TestAnalyzeErrors(t *testing.T) {
	code, _, errOut := runCLI(t, "analyze")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "expected exactly one recording path")

	path := synthFile(t, "rec.asc")
	code, _, errOut = runCLI(t, "analyze", "-fs", "500", "-mode", "weird", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown mode")

	// Every lead has 10000 samples.
	cfgPath := filepath.Join(t.TempDir(), "eeg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("analysis:\n  min_samples: 20000\n"), 0o644))
	code, _, errOut = runCLI(t, "analyze", "-config", cfgPath, "-log-level", "error", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "no valid channels")
}

func TestSinusoid(t *testing.T) {
	path := synthFile(t, "rec.asc")
	tones := filepath.Join(t.TempDir(), "tones.asc")
	code, out, errOut := runCLI(t, "sinusoid", "-fs", "500", "-log-level", "error",
		"-render", tones, "-seconds", "2", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Peak [Hz]")
	assert.Regexp(t, `P3\s+2\.00\s+`, out)

	rec, err := recording.Open(tones, recording.WithSampleRate(500))
	require.NoError(t, err)
	assert.Equal(t, 1000, rec.Samples())
	assert.Equal(t, 3, rec.Channels())
}

func TestView(t *testing.T) {
	path := synthFile(t, "rec.asc")
	code, out, errOut := runCLI(t, "view", "-fs", "500", "-log-level", "error",
		"-cmd", "left,right,right,left,ch=2", "-json", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, errOut, "left: no change")

	var s view.State
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, view.State{Channel: 2, WindowSize: 10, Start: 5}, s)

	code, out, errOut = runCLI(t, "view", "-fs", "500", "-log-level", "error", "-cmd", "in", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "P3 (1 of 3)")
	assert.Contains(t, out, "Samples:  0 - 2500")
	assert.Contains(t, out, "std [uV]")

	code, _, errOut = runCLI(t, "view", "-fs", "500", "-cmd", "ch=3", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "channel out of range")
}

func TestWindows(t *testing.T) {
	code, out, errOut := runCLI(t, "windows", "-size", "1024", "hann", "rect")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "hann")
	assert.Contains(t, out, "rectangular")
	assert.NotContains(t, out, "blackman")

	code, _, _ = runCLI(t, "windows", "kaiser")
	assert.Equal(t, 1, code)
}
