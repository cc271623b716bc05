package recording

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-eeg/dsp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = `; EEG export
; subject: test
; montage: P3 Pz P4 O1 Oz O2

1.5 2 3 4 5 6
-1	-2	-3	-4	-5	-6
# trailing comment
0 0 0 0 0 1e-3
`

func TestReadText(t *testing.T) {
	rec, err := ReadText(strings.NewReader(sampleTable))
	require.NoError(t, err)

	assert.Equal(t, 3, rec.Samples())
	assert.Equal(t, 6, rec.Channels())
	assert.Equal(t, core.DefaultSampleRate, rec.SampleRate())
	assert.Equal(t, []float64{1.5, -1, 0}, rec.Channel(0))
	assert.Equal(t, []float64{6, -6, 1e-3}, rec.Channel(5))
	assert.Equal(t, "O2", rec.Label(5))
}

func TestReadTextOptions(t *testing.T) {
	in := "header one\nheader two\n1 2\n3 4\n"
	rec, err := ReadText(strings.NewReader(in),
		WithSkipLines(2), WithSampleRate(250), WithLabels([]string{"Fz", "Cz"}))
	require.NoError(t, err)
	assert.Equal(t, 250.0, rec.SampleRate())
	assert.Equal(t, []string{"Fz", "Cz"}, rec.Labels())
	assert.Equal(t, []float64{1, 3}, rec.Channel(0))
}

func TestReadTextRaggedRow(t *testing.T) {
	_, err := ReadText(strings.NewReader("; c\n1 2 3\n4 5\n"))
	require.True(t, errors.Is(err, ErrMalformed))
	assert.Contains(t, err.Error(), "line 3")
}

func TestReadTextNonNumeric(t *testing.T) {
	_, err := ReadText(strings.NewReader("1 2\n3 x\n"))
	require.True(t, errors.Is(err, ErrMalformed))
	assert.Contains(t, err.Error(), `line 2 column 2: "x"`)
}

func TestReadTextNonFinite(t *testing.T) {
	for _, tok := range []string{"NaN", "nan", "Inf", "-Inf", "+infinity", "1e400"} {
		_, err := ReadText(strings.NewReader("1 2\n3 " + tok + "\n"))
		require.True(t, errors.Is(err, ErrMalformed), tok)
		assert.Contains(t, err.Error(), "line 2 column 2", tok)
	}
}

func TestReadTextEmpty(t *testing.T) {
	_, err := ReadText(strings.NewReader("; only comments\n\n"))
	assert.True(t, errors.Is(err, ErrEmpty))
}

func TestWriteTextRoundTrip(t *testing.T) {
	rec, err := FromChannels([][]float64{{0.1, -2.25, 3e-7}, {4, 5, 6}}, 5000, []string{"O1", "O2"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, rec))
	assert.True(t, strings.HasPrefix(buf.String(), "; sample rate: 5000 Hz\n; channels: O1 O2\n"))

	back, err := ReadText(&buf, WithLabels(rec.Labels()))
	require.NoError(t, err)
	assert.Equal(t, rec.Channel(0), back.Channel(0))
	assert.Equal(t, rec.Channel(1), back.Channel(1))
}
