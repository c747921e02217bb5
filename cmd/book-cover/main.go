package main

import (
	"fmt"
	"log"
	"os"

	"github.com/frrad/book-cover/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("book-cover %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("book-cover - convert a scanned book cover into press-ready PDFs")
			fmt.Println()
			fmt.Println("Usage: book-cover <cover-image>")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  BOOK_COVER_OUT_DIR    Directory for the output PDFs (default: current directory)")
			fmt.Println()
			fmt.Println("Writes back.pdf, spine.pdf and front.pdf, each a single page with")
			fmt.Println("a BleedBox matching the panel's trimmed area.")
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: book-cover <cover-image>")
		os.Exit(2)
	}

	opts := pipeline.DefaultOptions()
	opts.OutDir = os.Getenv("BOOK_COVER_OUT_DIR")

	if err := pipeline.Run(os.Args[1], pipeline.HalfLetter, opts); err != nil {
		log.Fatalf("Conversion error: %v", err)
	}
}
