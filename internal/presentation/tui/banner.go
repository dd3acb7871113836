package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the labscout ASCII banner with the running version.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`  _       _                         _   `, "#818cf8"},
		{` | | __ _| |__  ___  ___ ___  _   _| |_ `, "#a78bfa"},
		{` | |/ _` + "`" + ` | '_ \/ __|/ __/ _ \| | | | __|`, "#c084fc"},
		{` | | (_| | |_) \__ \ (_| (_) | |_| | |_ `, "#e879f9"},
		{` |_|\__,_|_.__/|___/\___\___/ \__,_|\__|`, "#f472b6"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Println(termenv.String(fmt.Sprintf("  lab automation consultant v%s", version)).Foreground(p.Color("#fb7185")).Italic())
	fmt.Println()
}
