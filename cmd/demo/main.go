// Command demo is a small end-to-end exercise of tuinix: it acquires
// the terminal, draws a three-line status screen, and reports every
// keyboard, mouse, and resize event it decodes until the user quits.
//
// It is an example program, not part of the tuinix core: the core
// itself reads no flags and writes no logs.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sile/tuinix/frame"
	"github.com/sile/tuinix/geometry"
	"github.com/sile/tuinix/input"
	"github.com/sile/tuinix/style"
	"github.com/sile/tuinix/terminal"

	"github.com/spf13/cobra"
)

const (
	enableMouseReporting  = "\x1b[?1000h\x1b[?1006h"
	disableMouseReporting = "\x1b[?1006l\x1b[?1000l"
)

var (
	mouseFlag     bool
	altScreenFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "demo",
	Short: "tuinix demo: a status screen reporting every decoded event",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().BoolVar(&mouseFlag, "mouse", false, "enable SGR mouse reporting")
	rootCmd.Flags().BoolVar(&altScreenFlag, "alt-screen", true, "acknowledge that tuinix always uses the alternate screen")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// tuinix.Terminal always enters the alternate screen; there is no
	// inline-rendering mode to opt out of. The flag exists for symmetry
	// with the CLI surface and is only used to decide whether the
	// startup line below is printed.
	if !altScreenFlag {
		fmt.Fprintln(os.Stderr, "note: --alt-screen=false has no effect; tuinix always uses the alternate screen")
	}

	term, err := terminal.New()
	if err != nil {
		return fmt.Errorf("acquire terminal: %w", err)
	}
	defer term.RecoverAndRestore()
	defer term.Close()

	if mouseFlag {
		fmt.Fprint(os.Stdout, enableMouseReporting)
		defer fmt.Fprint(os.Stdout, disableMouseReporting)
	}

	var lastEvent string
	size := term.Size()

	draw := func() error {
		f := frame.NewFrame(size, frame.DefaultWidthEstimator{})
		boxStyle := style.New().Bold().FgColor(style.Cyan)
		helpStyle := style.New().FgColor(style.BrightBlack)

		fmt.Fprint(f, style.Serialize(boxStyle))
		fmt.Fprintf(f, "tuinix demo  (%dx%d)\n", size.Cols, size.Rows)
		fmt.Fprint(f, style.Serialize(style.Reset))
		fmt.Fprintf(f, "last event: %s\n", lastEvent)
		fmt.Fprint(f, style.Serialize(helpStyle))
		fmt.Fprint(f, "q or ctrl+c to quit")
		fmt.Fprint(f, style.Serialize(style.Reset))

		return term.Draw(f, geometry.ZeroPosition, false)
	}

	if err := draw(); err != nil {
		return fmt.Errorf("draw: %w", err)
	}

	for {
		ev, err := term.PollEvent(5 * time.Second)
		if err != nil {
			return fmt.Errorf("poll event: %w", err)
		}
		if ev == nil {
			continue
		}

		switch ev.Kind {
		case terminal.EventKindKey:
			if ev.Key.Ctrl && ev.Key.Char == 'c' {
				return nil
			}
			if ev.Key.Code == input.CodeChar && ev.Key.Char == 'q' {
				return nil
			}
			lastEvent = fmt.Sprintf("key %s", describeKey(ev.Key))
		case terminal.EventKindMouse:
			lastEvent = fmt.Sprintf("mouse %s at (%d,%d)", ev.Mouse.Kind, ev.Mouse.Position.Row, ev.Mouse.Position.Col)
		case terminal.EventKindResize:
			size = ev.Size
			lastEvent = fmt.Sprintf("resize to %dx%d", size.Cols, size.Rows)
		}

		if err := draw(); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
	}
}

func describeKey(k input.KeyEvent) string {
	prefix := ""
	if k.Ctrl {
		prefix += "ctrl+"
	}
	if k.Alt {
		prefix += "alt+"
	}
	if k.Code == input.CodeChar {
		return fmt.Sprintf("%s%c", prefix, k.Char)
	}
	return prefix + k.Code.String()
}
