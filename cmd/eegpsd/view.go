package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	timestats "github.com/cwbudde/algo-eeg/stats/time"
	"github.com/cwbudde/algo-eeg/view"
)

func runView(_ context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("view", stderr)
	var common commonFlags
	common.register(fs)
	cmds := fs.String("cmd", "", "comma-separated navigation commands: left, right, in, out, ch=N, win=S")
	asJSON := fs.Bool("json", false, "print the final state as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := common.load(fs)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	rec, err := openRecording(fs, cfg, logger)
	if err != nil {
		return err
	}
	bounds, err := view.NewBounds(rec.Channels(), rec.Duration())
	if err != nil {
		return err
	}

	state := view.NewState(bounds)
	for _, c := range splitList(*cmds) {
		next, changed, err := view.Apply(state, bounds, c)
		if err != nil {
			return err
		}
		if !changed {
			fmt.Fprintf(stderr, "%s: no change\n", c)
		}
		state = next
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(state)
	}

	lo, hi := state.SampleRange(rec.SampleRate(), rec.Samples())
	visible := timestats.Calculate(rec.Slice(state.Channel, lo, hi))
	whole := timestats.Calculate(rec.View(state.Channel))

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Channel:\t%s (%d of %d)\n", rec.Label(state.Channel), state.Channel+1, rec.Channels())
	fmt.Fprintf(tw, "Window:\t%.2f s - %.2f s (%.2f s of %.2f s)\n", state.Start, state.End(), state.WindowSize, rec.Duration())
	fmt.Fprintf(tw, "Samples:\t%d - %d\n", lo, hi)
	fmt.Fprintf(tw, "\nStatistic\tWindow\tChannel\n")
	fmt.Fprintf(tw, "---------\t------\t-------\n")
	rows := []struct {
		name string
		w, c float64
	}{
		{"min [uV]", visible.Min, whole.Min},
		{"max [uV]", visible.Max, whole.Max},
		{"mean [uV]", visible.Mean, whole.Mean},
		{"std [uV]", visible.StdDev, whole.StdDev},
		{"range [uV]", visible.Range, whole.Range},
		{"rms [uV]", visible.RMS, whole.RMS},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.3f\t%.3f\n", r.name, r.w, r.c)
	}
	return tw.Flush()
}
