// ycsbseries - YCSB status log to time series
//
// ycsbseries reads the periodic status lines of a YCSB client run and prints
// an evenly spaced latency or throughput series, one "<time>\t<value>" pair
// per line.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ccollicutt/ycsbseries/internal/cli"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	os.Exit(cli.Execute())
}
