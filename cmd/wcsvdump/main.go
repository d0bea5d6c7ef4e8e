// Command wcsvdump prints the records of one or more CSV files as read by wcsv.
//
// Usage:
//
//	wcsvdump [-utf16] [-comments] [-bom] [-max-size N] [-v] file...
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/nnnkkk7/go-wcsv"
)

var (
	flagUTF16    = flag.Bool("utf16", false, "files are UTF-16LE instead of UTF-8")
	flagComments = flag.Bool("comments", false, "skip lines starting with '#'")
	flagBOM      = flag.Bool("bom", false, "strip a leading byte order mark")
	flagMaxSize  = flag.Int64("max-size", 0, "reject files larger than this many bytes (0 = default limit)")
	flagVerbose  = flag.Bool("v", false, "log debug information to stderr")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("wcsvdump: ")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("no input files")
	}

	if *flagVerbose {
		wcsv.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := wcsv.ReaderOptions{
		IgnoreComments: *flagComments,
		SkipBOM:        *flagBOM,
		MaxInputSize:   *flagMaxSize,
	}
	if *flagUTF16 {
		opts.Encoding = wcsv.UTF16
	}

	out := bufio.NewWriter(os.Stdout)
	for _, path := range flag.Args() {
		if err := dump(out, path, opts); err != nil {
			out.Flush()
			log.Fatal(err)
		}
	}
	if err := out.Flush(); err != nil {
		log.Fatal(err)
	}
}

func dump(w io.Writer, path string, opts wcsv.ReaderOptions) error {
	r, err := wcsv.OpenWithOptions(path, opts)
	if err != nil {
		return err
	}

	for i, record := range r.Records() {
		if _, err := fmt.Fprintf(w, "%s:%d: %q\n", path, i, record); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}
