package eeg_test

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-eeg/internal/testutil"
	"github.com/cwbudde/algo-eeg/measure/bandpower"
	"github.com/cwbudde/algo-eeg/measure/eeg"
	"github.com/cwbudde/algo-eeg/recording"
)

func ExampleAnalyzer_AnalyzeBands() {
	const fs = 500.0
	rec, _ := recording.FromChannels([][]float64{
		testutil.EEGLike(1, fs, 2, 60, 5000),
		testutil.EEGLike(2, fs, 2, 10, 5000),
		testutil.DC(0, 5000),
	}, fs, nil)

	a, _ := eeg.NewAnalyzer(eeg.DefaultConfig())
	r, err := a.AnalyzeBands(context.Background(), rec, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	hi, _ := r.Max(bandpower.NameDelta)
	lo, _ := r.Min(bandpower.NameDelta)
	fmt.Println("strongest delta:", hi.Label)
	fmt.Println("weakest delta:", lo.Label)
	fmt.Println("P4 valid:", r.Channels[2].Valid)
	// Output:
	// strongest delta: P3
	// weakest delta: Pz
	// P4 valid: false
}
