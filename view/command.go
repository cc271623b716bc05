package view

import (
	"fmt"
	"strconv"
	"strings"
)

// Apply runs one textual navigation command against s:
//
//	left, right        scroll by half a window
//	in, out            zoom
//	channel=N, ch=N    select channel N
//	window=S, win=S    set the window size in seconds
//
// changed reports whether the state differs from s.
func Apply(s State, b Bounds, cmd string) (next State, changed bool, err error) {
	name, arg, hasArg := strings.Cut(strings.ToLower(strings.TrimSpace(cmd)), "=")
	switch name {
	case "left", "l":
		next, changed = s.ScrollLeft(b)
	case "right", "r":
		next, changed = s.ScrollRight(b)
	case "in", "zoom-in", "+":
		next, changed = s.ZoomIn(b)
	case "out", "zoom-out", "-":
		next, changed = s.ZoomOut(b)
	case "channel", "ch":
		if !hasArg {
			return s, false, fmt.Errorf("%w: %q needs a channel index", ErrUnknownCommand, cmd)
		}
		idx, perr := strconv.Atoi(arg)
		if perr != nil {
			return s, false, fmt.Errorf("%w: %q: %w", ErrUnknownCommand, cmd, perr)
		}
		next, err = s.SelectChannel(b, idx)
		if err != nil {
			return s, false, err
		}
		changed = next != s
	case "window", "win":
		if !hasArg {
			return s, false, fmt.Errorf("%w: %q needs a size in seconds", ErrUnknownCommand, cmd)
		}
		sec, perr := strconv.ParseFloat(arg, 64)
		if perr != nil {
			return s, false, fmt.Errorf("%w: %q: %w", ErrUnknownCommand, cmd, perr)
		}
		next, changed = s.SetWindow(b, sec)
	default:
		return s, false, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
	return next, changed, nil
}
