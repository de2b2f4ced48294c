package main

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// colorLevel mirrors the teacher's detectColorLevel (internal/evaluator's
// terminal builtins): NO_COLOR wins outright, then terminal-ness, then
// TERM/COLORTERM. Used only to decide whether diagnostic output gets
// ANSI severity markers.
type colorLevel int

const (
	colorNone colorLevel = iota
	colorBasic
	color256
	colorTrueColor
)

func detectColorLevel() colorLevel {
	if os.Getenv("NO_COLOR") != "" {
		return colorNone
	}
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return colorNone
	}
	term := os.Getenv("TERM")
	if term == "dumb" {
		return colorNone
	}
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return colorTrueColor
	}
	if strings.Contains(term, "256color") {
		return color256
	}
	return colorBasic
}

const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

func colorize(level colorLevel, code string, text string) string {
	if level == colorNone {
		return text
	}
	switch {
	case strings.HasPrefix(code, "E"):
		return ansiRed + text + ansiReset
	default:
		return ansiYellow + text + ansiReset
	}
}
