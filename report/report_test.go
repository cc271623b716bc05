package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cwbudde/algo-eeg/measure/bandpower"
	"github.com/cwbudde/algo-eeg/measure/eeg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() *eeg.Report {
	return &eeg.Report{
		RunID:      "2f6a3c1e-0000-4000-8000-000000000001",
		CreatedAt:  time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		SampleRate: 5000,
		Samples:    50000,
		Window:     "hann",
		Bands:      []bandpower.Band{bandpower.DeltaRhythm},
		Channels: []eeg.ChannelResult{
			{
				Index: 0, Label: "P3", Valid: true, Samples: 50000, Resolution: 0.1,
				BandPowers:  map[string]float64{"delta": 12.5},
				Peaks:       map[string]bandpower.Peak{"delta": {Frequency: 2, Power: 9}},
				Frequencies: []float64{0, 0.1},
				Power:       []float64{1, 2},
			},
			{
				Index: 1, Label: "Pz", Valid: false, Reason: "flat signal: std 0 < 1e-10",
				BandPowers: map[string]float64{"delta": 0},
			},
			{
				Index: 2, Label: "P4", Valid: true, Samples: 50000, Resolution: 0.1,
				BandPowers: map[string]float64{"delta": 7.5},
			},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "DELTA (0.5-4 HZ)")
	assert.Contains(t, out, "no data")
	assert.Regexp(t, `max:\s+12\.500000 uV\^2\s+\(P3\)`, out)
	assert.Regexp(t, `min:\s+7\.500000 uV\^2\s+\(P4\)`, out)
	assert.Regexp(t, `mean:\s+10\.000000 uV\^2`, out)
}

func TestWriteTextNoValidChannels(t *testing.T) {
	r := sampleReport()
	for i := range r.Channels {
		r.Channels[i].Valid = false
	}
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	assert.Contains(t, buf.String(), "no valid channels")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "2f6a3c1e-0000-4000-8000-000000000001", decoded["run_id"])
	channels := decoded["channels"].([]any)
	require.Len(t, channels, 3)
	first := channels[0].(map[string]any)
	assert.Equal(t, []any{0.0, 0.1}, first["frequencies"])
	assert.Equal(t, 12.5, first["band_powers"].(map[string]any)["delta"])
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sampleReport()))
	assert.NotContains(t, buf.String(), "frequencies")

	var decoded struct {
		RunID    string `yaml:"run_id"`
		Channels []struct {
			Label  string `yaml:"label"`
			Valid  bool   `yaml:"valid"`
			Reason string `yaml:"reason"`
		} `yaml:"channels"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "2f6a3c1e-0000-4000-8000-000000000001", decoded.RunID)
	require.Len(t, decoded.Channels, 3)
	assert.False(t, decoded.Channels[1].Valid)
	assert.Contains(t, decoded.Channels[1].Reason, "flat")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"index", "label", "valid", "reason", "delta"}, rows[0])
	assert.Equal(t, []string{"0", "P3", "true", "", "12.5"}, rows[1])
	assert.Equal(t, "false", rows[2][2])
	assert.Equal(t, "7.5", rows[3][4])

	r := sampleReport()
	r.Channels[1].BandPowers = map[string]float64{"delta": 3}
	buf.Reset()
	require.NoError(t, WriteCSV(&buf, r))
	rows, err = csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "0", rows[2][4], "invalid channels report zero power")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"TXT": FormatText, "json": FormatJSON, "yml": FormatYAML, "csv": FormatCSV} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)

	assert.Equal(t, FormatJSON, FormatFromPath("out/report.JSON"))
	assert.Equal(t, FormatText, FormatFromPath("report.log"))
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"r.txt", "r.json", "r.csv", "r.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, sampleReport(), ""))
		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(raw), "P3"), name)
	}

	assert.Error(t, Save(filepath.Join(dir, "r.bin"), sampleReport(), Format("bin")))
}
