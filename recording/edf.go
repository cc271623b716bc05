package recording

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/OpenPSG/edf"
	"go.uber.org/zap"
)

const (
	edfFixedHeaderBytes = 256
	// Per-signal header bytes that precede the samples-per-record field:
	// label, transducer, dimension, physical min/max, digital min/max and
	// prefiltering.
	edfSignalBytesBeforeSamples = 16 + 80 + 8 + 8 + 8 + 8 + 8 + 80
	edfMaxRecordBytes           = 61440
	edfDigitalMin               = -32768
	edfDigitalMax               = 32767

	// edfAnnotationsLabel marks the EDF+ annotation channel, which holds
	// TAL bytes instead of samples.
	edfAnnotationsLabel = "EDF Annotations"
)

// edfLayout is the part of an EDF header needed to size and label channels.
// edf.Reader keeps its parsed header private, so it is read separately.
type edfLayout struct {
	dataRecords      int
	recordSeconds    float64
	labels           []string
	samplesPerRecord []int
}

func readEDFLayout(rs io.ReadSeeker) (edfLayout, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return edfLayout{}, err
	}
	fixed := make([]byte, edfFixedHeaderBytes)
	if _, err := io.ReadFull(rs, fixed); err != nil {
		return edfLayout{}, fmt.Errorf("%w: edf header: %w", ErrMalformed, err)
	}
	field := func(b []byte) string { return strings.TrimSpace(string(b)) }

	records, err := strconv.Atoi(field(fixed[236:244]))
	if err != nil {
		return edfLayout{}, fmt.Errorf("%w: edf data record count: %w", ErrMalformed, err)
	}
	seconds, err := strconv.ParseFloat(field(fixed[244:252]), 64)
	if err != nil || !(seconds > 0) {
		return edfLayout{}, fmt.Errorf("%w: edf record duration %q", ErrMalformed, field(fixed[244:252]))
	}
	ns, err := strconv.Atoi(field(fixed[252:256]))
	if err != nil || ns < 1 {
		return edfLayout{}, fmt.Errorf("%w: edf signal count %q", ErrMalformed, field(fixed[252:256]))
	}

	perSignal := make([]byte, ns*edfFixedHeaderBytes)
	if _, err := io.ReadFull(rs, perSignal); err != nil {
		return edfLayout{}, fmt.Errorf("%w: edf signal headers: %w", ErrMalformed, err)
	}
	layout := edfLayout{
		dataRecords:      records,
		recordSeconds:    seconds,
		labels:           make([]string, ns),
		samplesPerRecord: make([]int, ns),
	}
	sprOffset := ns * edfSignalBytesBeforeSamples
	for i := 0; i < ns; i++ {
		layout.labels[i] = field(perSignal[i*16 : (i+1)*16])
		spr, err := strconv.Atoi(field(perSignal[sprOffset+i*8 : sprOffset+(i+1)*8]))
		if err != nil || spr < 1 {
			return edfLayout{}, fmt.Errorf("%w: edf signal %d samples per record", ErrMalformed, i)
		}
		layout.samplesPerRecord[i] = spr
	}
	return layout, nil
}

// dataSignals returns the indices of the signals that carry samples.
func (l edfLayout) dataSignals() []int {
	var out []int
	for i, label := range l.labels {
		if label != edfAnnotationsLabel {
			out = append(out, i)
		}
	}
	return out
}

// ReadEDF reads every data signal of an EDF/EDF+ file as one channel. EDF+
// annotation signals are skipped. All data signals must share one sample
// rate. Labels come from the file unless WithLabels is given.
func ReadEDF(rs io.ReadSeeker, opts ...Option) (*Recording, error) {
	cfg := applyOptions(opts)

	layout, err := readEDFLayout(rs)
	if err != nil {
		return nil, err
	}
	signals := layout.dataSignals()
	if len(signals) == 0 {
		return nil, fmt.Errorf("%w: edf file has only annotation signals", ErrEmpty)
	}
	first := signals[0]
	spr := layout.samplesPerRecord[first]
	for _, i := range signals[1:] {
		if n := layout.samplesPerRecord[i]; n != spr {
			return nil, fmt.Errorf("%w: signal %d has %d samples per record, signal %d has %d",
				ErrUnsupported, i, n, first, spr)
		}
	}
	if layout.dataRecords < 1 {
		return nil, fmt.Errorf("%w: edf file has no data records", ErrEmpty)
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	reader, err := edf.Open(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	total := layout.dataRecords * spr
	channels := make([][]float64, len(signals))
	labels := make([]string, len(signals))
	for c, i := range signals {
		labels[c] = layout.labels[i]
		sr, err := reader.Signal(i)
		if err != nil {
			return nil, fmt.Errorf("edf signal %d: %w", i, err)
		}
		data := make([]float64, total)
		n, err := sr.Read(data)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("edf signal %d: %w", i, err)
		}
		channels[c] = data[:n]
	}

	fs := float64(spr) / layout.recordSeconds
	if cfg.labels != nil {
		labels = cfg.labels
	}
	cfg.logger.Debug("parsed edf file",
		zap.Int("signals", len(layout.labels)),
		zap.Int("channels", len(channels)),
		zap.Int("data_records", layout.dataRecords),
		zap.Float64("sample_rate", fs))

	return FromChannels(channels, fs, labels)
}

// WriteEDF writes rec as an EDF file with one-second data records. The
// sample rate must be a whole number of Hz and the length a whole number
// of seconds. Each channel is scaled to the full 16-bit digital range of
// its own min/max.
func WriteEDF(ws io.WriteSeeker, rec *Recording, start time.Time) error {
	fs := rec.SampleRate()
	spr := int(fs)
	if float64(spr) != fs {
		return fmt.Errorf("%w: edf needs an integer sample rate, got %g", ErrUnsupported, fs)
	}
	if rec.Samples()%spr != 0 {
		return fmt.Errorf("%w: %d samples is not a whole number of seconds at %d Hz",
			ErrUnsupported, rec.Samples(), spr)
	}
	if rec.Channels()*spr*2 > edfMaxRecordBytes {
		return fmt.Errorf("%w: %d channels at %d Hz exceed the edf record size",
			ErrUnsupported, rec.Channels(), spr)
	}

	signals := make([]edf.Signal, rec.Channels())
	for c := range signals {
		lo, hi := physicalRange(rec.channels[c])
		signals[c] = edf.Signal{
			Label:             rec.labels[c],
			TransducerType:    "AgAgCl electrode",
			PhysicalDimension: "uV",
			PhysicalMin:       lo,
			PhysicalMax:       hi,
			DigitalMin:        edfDigitalMin,
			DigitalMax:        edfDigitalMax,
			SamplesPerRecord:  spr,
		}
	}

	w, err := edf.Create(ws, edf.Header{
		Version:            edf.Version0,
		StartTime:          start,
		DataRecordDuration: time.Second,
		SignalCount:        len(signals),
		Signals:            signals,
	})
	if err != nil {
		return err
	}

	record := make([][]float64, rec.Channels())
	for off := 0; off < rec.Samples(); off += spr {
		for c := range record {
			record[c] = rec.channels[c][off : off+spr]
		}
		if err := w.WriteRecord(record); err != nil {
			return err
		}
	}
	return w.Close()
}

// physicalRange returns the min and max of x widened to whole microvolts,
// so the header fields (8 ASCII characters) hold them exactly.
func physicalRange(x []float64) (float64, float64) {
	lo, hi := x[0], x[0]
	for _, v := range x[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	lo, hi = math.Floor(lo)-1, math.Ceil(hi)+1
	return lo, hi
}
