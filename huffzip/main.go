package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/op/go-logging"

	"github.com/fumin/huffzip"
)

var log = logging.MustGetLogger("huffzip")

var blockSize = flag.Int("block", huffzip.DefaultBlockSize, "block size in bytes")
var lax = flag.Bool("lax", false, "tolerate truncated compressed input when decompressing")
var verbose = flag.Bool("verbose", false, "verbosity")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] c|d input output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  c compresses input into output, d decompresses\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	setupLogging(*verbose)
	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}
	mode, input, output := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	switch mode {
	case "c":
		if err := huffzip.CompressFile(output, input, *blockSize); err != nil {
			log.Fatalf("%v", err)
		}
	case "d":
		if err := huffzip.DecompressFile(output, input, !*lax); err != nil {
			log.Fatalf("%v", err)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q (use c to compress, d to decompress)\n", mode)
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	backend := logging.NewLogBackend(os.Stderr, "huffzip: ", 0)
	formatter := logging.MustStringFormatter("%{level:.4s} %{message}")
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	if debug {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}
	logging.SetBackend(leveled)
}
