// Package report writes analysis reports as text, JSON, CSV or YAML.
package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-eeg/measure/eeg"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

var errUnknownFormat = errors.New("unknown report format")

// ParseFormat resolves a format name, accepting "txt" and "yml" aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", errUnknownFormat, name)
	}
}

// FormatFromPath picks the format from a file extension, defaulting to text.
func FormatFromPath(path string) Format {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return FormatText
	}
	return f
}

// Write encodes r in format f.
func Write(w io.Writer, r *eeg.Report, f Format) error {
	switch f {
	case FormatText:
		return WriteText(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatCSV:
		return WriteCSV(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, string(f))
	}
}

// Save writes r to path. An empty format is derived from the extension.
func Save(path string, r *eeg.Report, f Format) (err error) {
	if f == "" {
		f = FormatFromPath(path)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()
	return Write(file, r, f)
}

// WriteText writes a human-readable report: one table per band with every
// channel's power, followed by the max, min and mean over valid channels.
func WriteText(w io.Writer, r *eeg.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "EEG spectral analysis %s\n", r.RunID)
	fmt.Fprintf(tw, "Sample rate:\t%g Hz\n", r.SampleRate)
	fmt.Fprintf(tw, "Samples:\t%d (%.2f s)\n", r.Samples, float64(r.Samples)/r.SampleRate)
	fmt.Fprintf(tw, "Window:\t%s\n", r.Window)
	if r.DropZeros {
		fmt.Fprintf(tw, "Zero samples:\tdropped\n")
	}

	for _, b := range r.Bands {
		fmt.Fprintf(tw, "\n%s\n", strings.ToUpper(b.String()))
		for _, c := range r.Channels {
			if !c.Valid {
				fmt.Fprintf(tw, "  %s:\tno data\t(%s)\n", c.Label, c.Reason)
				continue
			}
			fmt.Fprintf(tw, "  %s:\t%.6f uV^2\t\n", c.Label, c.BandPowers[b.Name])
		}

		hi, err := r.Max(b.Name)
		if errors.Is(err, eeg.ErrNoValidChannels) {
			fmt.Fprintf(tw, "  no valid channels\n")
			continue
		}
		if err != nil {
			return err
		}
		lo, err := r.Min(b.Name)
		if err != nil {
			return err
		}
		mean, err := r.Mean(b.Name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "  max:\t%.6f uV^2\t(%s)\n", hi.Power, hi.Label)
		fmt.Fprintf(tw, "  min:\t%.6f uV^2\t(%s)\n", lo.Power, lo.Label)
		fmt.Fprintf(tw, "  mean:\t%.6f uV^2\t\n", mean)
	}
	return tw.Flush()
}

// WriteJSON writes r as indented JSON including the spectra.
func WriteJSON(w io.Writer, r *eeg.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML writes r as YAML. Spectra are omitted.
func WriteYAML(w io.Writer, r *eeg.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// WriteCSV writes one row per channel: index, label, validity, reason and
// one column per band.
func WriteCSV(w io.Writer, r *eeg.Report) error {
	cw := csv.NewWriter(w)
	header := []string{"index", "label", "valid", "reason"}
	for _, b := range r.Bands {
		header = append(header, b.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	columns := make([][]float64, len(r.Bands))
	for j, b := range r.Bands {
		powers, err := r.Powers(b.Name)
		if err != nil {
			return err
		}
		columns[j] = powers
	}
	for i, c := range r.Channels {
		row := []string{strconv.Itoa(c.Index), c.Label, strconv.FormatBool(c.Valid), c.Reason}
		for _, powers := range columns {
			row = append(row, strconv.FormatFloat(powers[i], 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
