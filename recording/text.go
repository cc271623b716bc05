package recording

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const maxLineBytes = 1 << 20

// ReadText parses a whitespace-delimited sample table. Blank lines and
// lines starting with ';' or '#' are skipped. Every data line must have
// the same number of numeric columns.
func ReadText(r io.Reader, opts ...Option) (*Recording, error) {
	cfg := applyOptions(opts)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	var (
		rows    [][]float64
		width   int
		lineNo  int
		skipped int
	)
	for sc.Scan() {
		lineNo++
		if lineNo <= cfg.skipLines {
			skipped++
			continue
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			skipped++
			continue
		}
		fields := strings.Fields(line)
		if width == 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrMalformed, lineNo, len(fields), width)
		}
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %q is not a number", ErrMalformed, lineNo, i+1, f)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: line %d column %d: %q is not finite", ErrMalformed, lineNo, i+1, f)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading sample table: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no data lines", ErrEmpty)
	}

	cfg.logger.Debug("parsed sample table",
		zap.Int("rows", len(rows)),
		zap.Int("channels", width),
		zap.Int("skipped_lines", skipped),
		zap.Float64("sample_rate", cfg.sampleRate))

	return New(rows, cfg.sampleRate, cfg.labels)
}

// WriteText writes rec as a sample table preceded by ';' comment lines
// naming the sample rate and the channel labels. ReadText reads it back.
func WriteText(w io.Writer, rec *Recording) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "; sample rate: %g Hz\n", rec.SampleRate())
	fmt.Fprintf(bw, "; channels: %s\n", strings.Join(rec.labels, " "))

	buf := make([]byte, 0, 32)
	for i := 0; i < rec.Samples(); i++ {
		for c := range rec.channels {
			if c > 0 {
				if err := bw.WriteByte('\t'); err != nil {
					return err
				}
			}
			buf = strconv.AppendFloat(buf[:0], rec.channels[c][i], 'g', -1, 64)
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
