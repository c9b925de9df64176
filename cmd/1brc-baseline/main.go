// 1brc-baseline reads measurements from stdin and aggregates them line by
// line. Use it to check the output of 1brc-mmap.
//
//	$ 1brc-baseline < measurements.txt
package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/pkg/profile"

	"github.com/miku/1brc-engine/internal/baseline"
	"github.com/miku/1brc-engine/internal/report"
)

var profileDir = flag.String("profile", "", "write a cpu profile to this directory")

func main() {
	flag.Parse()
	if *profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir), profile.NoShutdownHook).Stop()
	}
	data, err := baseline.Aggregate(bufio.NewReaderSize(os.Stdin, 1<<20))
	if err != nil {
		log.Fatal(err)
	}
	if err := report.Write(os.Stdout, data); err != nil {
		log.Fatal(err)
	}
}
