package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/tuannm99/novarow/internal"
	"github.com/tuannm99/novarow/internal/heap"
	"github.com/tuannm99/novarow/internal/repl"
)

func newLogger(cfg *internal.NovaRowConfig) *slog.Logger {
	lvl, _ := cfg.LogLevel() // validated by LoadConfig
	opts := &slog.HandlerOptions{Level: lvl}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func main() {
	var (
		cfgPath = flag.String("config", "", "yaml config file (defaults when empty)")
		oneShot = flag.String("c", "", "execute one line and exit")
	)
	flag.Parse()

	cfg, err := internal.LoadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg))

	layout, _ := cfg.Layout()
	tbl, err := heap.NewTable("users", layout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open table: %v\n", err)
		os.Exit(1)
	}

	styles := repl.PlainStyles()
	if readline.IsTerminal(int(os.Stdout.Fd())) {
		styles = repl.DefaultStyles()
	}

	sess := repl.NewSession(tbl, os.Stdout, styles)
	defer func() { _ = sess.Close() }()

	slog.Debug("novarow: session start",
		"app", cfg.AppName,
		"page_size", layout.PageSize,
		"max_pages", layout.MaxPages,
		"max_rows", layout.MaxRows(),
	)

	// one-shot mode
	if strings.TrimSpace(*oneShot) != "" {
		sess.Handle(*oneShot)
		return
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Repl.Prompt,
		HistoryFile:     cfg.Repl.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline: %v\n", err)
		return
	}
	defer func() { _ = rl.Close() }()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			// EOF
			return
		}

		if sess.Handle(line) {
			return
		}
	}
}
