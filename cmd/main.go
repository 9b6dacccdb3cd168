package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/luca-patrignani/pokerhand/domain/deck"
	"github.com/luca-patrignani/pokerhand/domain/hand"
)

const prompt = `Enter a JSON array of 5 cards (e.g. - ["10S", "10H", "QH", "QS", "QD"]) or press enter to quit`

type config struct {
	deal    int
	verbose bool
	plain   bool
	args    []string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("pokerhand", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: pokerhand [flags] ['<json array of 5 cards>']\n")
		fs.PrintDefaults()
	}
	fs.IntVar(&cfg.deal, "deal", 0, "shuffle a deck and classify this many dealt hands (at most 10)")
	fs.BoolVar(&cfg.verbose, "verbose", false, "show evaluator strength and debug logs")
	fs.BoolVar(&cfg.plain, "plain", false, "disable colours and styling")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.deal < 0 || cfg.deal*hand.Size > deck.Size {
		return config{}, fmt.Errorf("-deal must be between 0 and %d", deck.Size/hand.Size)
	}
	cfg.args = fs.Args()
	return cfg, nil
}

type app struct {
	cfg    config
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

func newApp(cfg config, stdout, stderr io.Writer) *app {
	if cfg.plain {
		pterm.DisableStyling()
	}
	ptermLogger := pterm.DefaultLogger.WithWriter(stderr)
	if cfg.verbose {
		ptermLogger = ptermLogger.WithLevel(pterm.LogLevelDebug)
	}
	// Create a new slog logger with the PTerm handler
	logger := slog.New(pterm.NewSlogHandler(ptermLogger))
	return &app{cfg: cfg, out: stdout, errOut: stderr, logger: logger}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	a := newApp(cfg, stdout, stderr)

	switch {
	case cfg.deal > 0:
		if err := a.deal(cfg.deal); err != nil {
			a.logger.Error("deal failed", "error", err)
			return 1
		}
		return 0
	case len(cfg.args) > 0:
		// the shell may split an unquoted array into several arguments
		line := strings.Join(cfg.args, " ")
		if err := a.analyze(line, stdout); err != nil {
			pterm.Error.WithWriter(stderr).Println(err.Error())
			return 1
		}
		return 0
	default:
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			printBanner(stdout)
			a.loop(interactiveInput)
		} else {
			a.loop(scannerInput(stdin, stdout))
		}
		return 0
	}
}

// loop keeps asking for hands until a blank line or end of input.
func (a *app) loop(next func() (string, bool)) {
	for {
		line, ok := next()
		if !ok || strings.TrimSpace(line) == "" {
			return
		}
		if err := a.analyze(line, a.out); err != nil {
			pterm.Error.WithWriter(a.out).Println(err.Error())
		}
		pterm.Fprintln(a.out)
	}
}

// analyze classifies one JSON array of cards and prints the result.
func (a *app) analyze(line string, w io.Writer) error {
	value, err := loadJSONArray(line)
	if err != nil {
		a.logger.Debug("rejected input", "input", line, "error", err)
		return err
	}
	h := hand.New()
	if err := h.AddValues(value); err != nil {
		a.logger.Debug("rejected hand", "input", line, "error", err)
		return err
	}
	result := h.Classify()
	a.logger.Debug("classified hand", "hand", h.String(), "category", h.Category().String())

	pterm.Fprintln(w, result)
	if a.cfg.verbose {
		details, err := handDetails(h)
		if err != nil {
			return err
		}
		pterm.Fprintln(w, details)
	}
	return nil
}

func (a *app) deal(n int) error {
	d := deck.New()
	d.Shuffle()
	a.logger.Info("dealing hands", "count", n)

	hands := make([]*hand.Hand, 0, n)
	for range n {
		h, err := d.DealHand()
		if err != nil {
			return err
		}
		hands = append(hands, h)
	}
	table, err := dealTable(hands, a.cfg.verbose)
	if err != nil {
		return err
	}
	pterm.Fprintln(a.out, table)
	return nil
}

func interactiveInput() (string, bool) {
	line, err := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
	if err != nil {
		return "", false
	}
	pterm.Println()
	return line, true
}

func scannerInput(r io.Reader, w io.Writer) func() (string, bool) {
	scanner := bufio.NewScanner(r)
	return func() (string, bool) {
		pterm.Fprintln(w, prompt)
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}
}
