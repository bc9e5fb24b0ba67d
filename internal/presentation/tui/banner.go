package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the trackline ASCII banner with a teal-to-blue gradient.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{" _                  _    _ _", "#2dd4bf"},
		{"| |_ _ __ __ _  ___| | _| (_)_ __   ___", "#22d3ee"},
		{"| __| '__/ _` |/ __| |/ / | | '_ \\ / _ \\", "#38bdf8"},
		{"| |_| | | (_| | (__|   <| | | | | |  __/", "#60a5fa"},
		{" \\__|_|  \\__,_|\\___|_|\\_\\_|_|_| |_|\\___|", "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  lost package assistant "+version).Faint())
	fmt.Fprintln(w)
}
