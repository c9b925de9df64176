// 1brc-mmap maps the measurements file into memory, aggregates it in parallel
// and prints {key=min/mean/max, ...} sorted by key.
//
// data:
//
// Tamale;27.5
// Bergen;9.6
// Lodwar;37.1
// Whitehorse;-3.8
// Ouarzazate;19.1
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/pechorka/stdlib/pkg/errs"
	"github.com/pkg/profile"

	"github.com/miku/1brc-engine/internal/calc"
	"github.com/miku/1brc-engine/internal/region"
	"github.com/miku/1brc-engine/internal/report"
	"github.com/miku/1brc-engine/internal/table"
)

var (
	workers    = flag.Int("workers", 0, "number of workers, 0 means one per CPU")
	chunkSize  = flag.Int("chunk-size", calc.DefaultChunkSize, "target chunk size in bytes")
	tableSize  = flag.Int("table-size", table.DefaultSize, "slots per worker table, rounded up to a power of two")
	timeout    = flag.Duration("timeout", calc.DefaultTimeout, "abort if the run takes longer")
	profileDir = flag.String("profile", "", "write a cpu profile to this directory")
)

func main() {
	flag.Parse()
	if *profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir), profile.NoShutdownHook).Stop()
	}
	fn := "measurements.txt"
	if flag.NArg() > 0 {
		fn = flag.Arg(0)
	}
	if err := run(fn); err != nil {
		log.Fatal(err)
	}
}

func run(fn string) error {
	r, err := region.Open(fn)
	if err != nil {
		return err
	}
	defer r.Close()
	engine := calc.New(calc.Options{
		Workers:   *workers,
		ChunkSize: *chunkSize,
		TableSize: *tableSize,
		Timeout:   *timeout,
	})
	result, err := engine.Run(context.Background(), r.Bytes())
	if err != nil {
		return errs.Wrap(err, "failed to aggregate "+fn)
	}
	return report.Write(os.Stdout, result)
}
