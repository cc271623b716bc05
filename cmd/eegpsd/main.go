// Command eegpsd analyzes EEG recordings in the frequency domain.
//
// Usage:
//
//	eegpsd <command> [flags] <recording>
//
// Commands:
//
//	analyze    band power per channel with max/min/mean
//	sinusoid   in-band peak frequency and amplitude per channel
//	view       apply navigation commands and print the visible window
//	synth      write a synthetic recording
//	windows    print window function properties
//
// Examples:
//
//	eegpsd analyze -mode delta recording.asc
//	eegpsd analyze -mode full -format json -out report.json recording.edf
//	eegpsd analyze -mode band -low 8 -high 12 -drop-zeros recording.asc.gz
//	eegpsd sinusoid -band delta recording.asc
//	eegpsd view -cmd right,right,in,ch=3 recording.asc
//	eegpsd synth -duration 60 -out demo.edf
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, args []string, stdout, stderr io.Writer) error
}

var commands = []command{
	{"analyze", "band power per channel with max/min/mean", runAnalyze},
	{"sinusoid", "in-band peak frequency and amplitude per channel", runSinusoid},
	{"view", "apply navigation commands and print the visible window", runView},
	{"synth", "write a synthetic recording", runSynth},
	{"windows", "print window function properties", runWindows},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "help" {
		usage(stderr)
		return 2
	}
	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		err := c.run(ctx, args[1:], stdout, stderr)
		switch {
		case err == nil:
			return 0
		case errors.Is(err, flag.ErrHelp):
			return 2
		default:
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	fmt.Fprintf(stderr, "error: unknown command %q\n\n", args[0])
	usage(stderr)
	return 2
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: eegpsd <command> [flags] [recording]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(w, "\nRun 'eegpsd <command> -h' for command flags.\n")
}
