package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/term"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// options are the global flags shared by every command.
type options struct {
	configPath string
	root       string
	logo       string
	out        string
	icns       string
	packer     string
	noIcns     bool
	noLedger   bool
	strict     bool
}

func main() {
	color := term.IsTerminal(int(os.Stdout.Fd()))
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, color))
}

// run dispatches args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, color bool) int {
	opts, rest, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if len(rest) < 1 {
		printUsage(stderr)
		return 1
	}

	switch rest[0] {
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	case "version", "-V", "--version":
		printVersion(stdout)
		return 0
	case "catalog":
		return catalogCmd(stdout)
	case "fallback", "full":
		return generateCmd(rest[0], opts, stdout, stderr, color)
	case "manifest":
		return manifestCmd(opts, stdout, stderr)
	case "history":
		return historyCmd(rest[1:], opts, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n", rest[0])
		fmt.Fprintf(stderr, "Run 'iconkit help' for usage.\n")
		return 1
	}
}

// parseArgs pulls the global flags out of args and returns the
// remaining positional arguments.
func parseArgs(args []string) (options, []string, error) {
	var opts options
	var rest []string
	for i := 0; i < len(args); i++ {
		var target *string
		switch args[i] {
		case "--config", "-c":
			target = &opts.configPath
		case "--root", "-r":
			target = &opts.root
		case "--logo":
			target = &opts.logo
		case "--out", "-o":
			target = &opts.out
		case "--icns":
			target = &opts.icns
		case "--packer":
			target = &opts.packer
		case "--no-icns":
			opts.noIcns = true
		case "--no-ledger":
			opts.noLedger = true
		case "--strict":
			opts.strict = true
		default:
			rest = append(rest, args[i])
		}
		if target != nil {
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("%s requires a value", args[i])
			}
			*target = args[i+1]
			i++
		}
	}
	return opts, rest, nil
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "iconkit %s (built %s, %s/%s)\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "iconkit %s - Generate macOS app icon sets\n", version)
	fmt.Fprintln(w, `
Usage:
  iconkit [options] <command>

Commands:
  fallback               Gradient background + centered logo, PNGs and Contents.json
  full                   Layered icon with glow and drop shadow, plus AppIcon.icns
  manifest               Rewrite Contents.json only
  catalog                List the icon sizes that are generated
  history [count]        Show recent runs from the ledger (default: 10)
  history clean <days>   Remove runs older than N days
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Options:
  --config, -c <path>    Path to iconkit.json / iconkit.yaml
  --root, -r <dir>       Project root that relative paths resolve against
  --logo <path>          Override the logo asset
  --out, -o <dir>        Override the appiconset directory
  --icns <path>          Override the .icns destination (full only)
  --no-icns              Skip .icns packing
  --packer <name>        auto, iconutil or native (default: auto)
  --no-ledger            Do not record this run in the ledger
  --strict               Exit with status 1 when .icns packing fails

Config resolution:
  1. --config <path>                  (explicit)
  2. iconkit.json|yaml|yml in root    (project)
  3. ~/.config/iconkit/iconkit.json   (user default)

Environment:
  ICONKIT_ROOT, ICONKIT_PACKER, ICONKIT_LOG_LEVEL, ICONKIT_LEDGER, ICONKIT_STRICT

Examples:
  iconkit fallback                       Regenerate the fallback appiconset
  iconkit full --packer native           Build AppIcon.icns without iconutil
  iconkit -r ~/src/convertify full       Run against another checkout
  iconkit history 5                      Show the last five runs`)
}
