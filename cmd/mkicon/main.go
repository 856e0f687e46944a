// mkicon renders a single preview icon from a logo.
// Usage: go run ./cmd/mkicon <logo.png> <output.png> [size] [fallback|full]
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/convertify/iconkit/internal/pipeline"
	"github.com/convertify/iconkit/internal/render"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: mkicon <logo.png> <output.png> [size] [fallback|full]")
		os.Exit(1)
	}
	size := 256
	if len(os.Args) > 3 {
		n, err := strconv.Atoi(os.Args[3])
		if err != nil || n <= 0 {
			fmt.Fprintln(os.Stderr, "size must be a positive integer")
			os.Exit(1)
		}
		size = n
	}
	var style pipeline.Style = pipeline.Full()
	if len(os.Args) > 4 && os.Args[4] == "fallback" {
		style = pipeline.Fallback()
	}

	logo, err := render.LoadImage(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	f, err := os.Create(os.Args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()
	if err := render.EncodePNG(f, style.Render(logo, size)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
