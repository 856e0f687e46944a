package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/convertify/iconkit/internal/ledger"
)

func historyCmd(args []string, opts options, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if cfg.NoLedger {
		fmt.Fprintln(stdout, "Ledger is disabled.")
		return 0
	}
	path := cfg.LedgerPath
	if path == "" {
		path = ledger.DefaultPath()
	}

	if len(args) > 0 && args[0] == "clean" {
		return historyClean(args[1:], path, stdout, stderr)
	}

	count := 10
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fmt.Fprintf(stderr, "Error: count must be a positive integer\n")
			return 1
		}
		count = n
	}

	store, err := ledger.NewSQLiteStore(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer store.Close()

	runs, err := store.Runs(count)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if len(runs) == 0 {
		fmt.Fprintln(stdout, "No runs recorded yet.")
		return 0
	}
	for i, r := range runs {
		printRun(stdout, r)
		if i < len(runs)-1 {
			fmt.Fprintln(stdout)
		}
	}
	return 0
}

func printRun(w io.Writer, r ledger.Run) {
	fmt.Fprintf(w, "#%d  %s  %s  (%d files)\n", r.ID, r.Timestamp.Local().Format("2006-01-02 15:04:05"), r.Pipeline, len(r.Files))
	fmt.Fprintf(w, "  output: %s\n", r.OutputDir)
	switch {
	case r.IcnsError != "":
		fmt.Fprintf(w, "  icns:   failed: %s\n", r.IcnsError)
	case r.Icns != "":
		fmt.Fprintf(w, "  icns:   %s\n", r.Icns)
	}
}

func historyClean(args []string, path string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintf(stderr, "Error: history clean requires a number of days\n")
		return 1
	}
	days, err := strconv.Atoi(args[0])
	if err != nil || days <= 0 {
		fmt.Fprintf(stderr, "Error: days must be a positive integer\n")
		return 1
	}
	store, err := ledger.NewSQLiteStore(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer store.Close()

	n, err := store.Clean(days)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Removed %d run(s) older than %d day(s).\n", n, days)
	return 0
}
