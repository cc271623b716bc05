package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-eeg/dsp/window"
)

var windowTypes = []window.Type{
	window.TypeRectangular,
	window.TypeHann,
	window.TypeHamming,
	window.TypeBlackman,
	window.TypeFlatTop,
}

func runWindows(_ context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("windows", stderr)
	size := fs.Int("size", 50000, "window length in samples")
	periodic := fs.Bool("periodic", false, "use the periodic (FFT) form instead of symmetric")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *size < 2 {
		return fmt.Errorf("windows: -size must be >= 2: %d", *size)
	}

	types := windowTypes
	if fs.NArg() > 0 {
		types = nil
		for _, name := range fs.Args() {
			t, err := window.ParseType(name)
			if err != nil {
				return err
			}
			types = append(types, t)
		}
	}

	var opts []window.Option
	if *periodic {
		opts = append(opts, window.WithPeriodic())
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tEnergy/N\tSidelobe [dB]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\t--------\t-------------\n")
	for _, t := range types {
		coeffs := window.Generate(t, *size, opts...)
		enbw, err := window.EquivalentNoiseBandwidth(coeffs)
		if err != nil {
			return err
		}
		sum := 0.0
		for _, c := range coeffs {
			sum += c
		}
		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.6f\t%.1f\n",
			t, *size,
			sum/float64(*size),
			enbw,
			window.Energy(coeffs)/float64(*size),
			window.Info(t).HighestSidelobe)
	}
	return tw.Flush()
}
