package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/thesilentpatch/harvester"
)

const (
	exitUsage   = 1
	exitNetwork = 2
	exitParse   = 3
	exitIO      = 4
)

func main() {
	os.Exit(run())
}

func run() int {
	typeFlag := flag.String("type", "https", "proxy protocol to keep: http, https or all")
	outputFlag := flag.String("output", "proxies.txt", "output file or directory path")
	sourceFlag := flag.String("source", harvester.Sources()[0].Name, "proxy source name ("+sourceNames()+")")
	timeoutFlag := flag.Duration("timeout", 30*time.Second, "page fetch timeout")
	verboseFlag := flag.Bool("verbose", false, "enable debug logging")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println("proxy-harvester " + harvester.Version)
		return 0
	}

	mode, err := harvester.ParseMode(*typeFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		return exitUsage
	}

	src, ok := harvester.LookupSource(*sourceFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown source %q (known: %s)\n", *sourceFlag, sourceNames())
		return exitUsage
	}

	level := zerolog.InfoLevel
	if *verboseFlag {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Logger()

	fmt.Printf("proxy-harvester %s\n\n", harvester.Version)

	config := harvester.DefaultConfig()
	config.Source = src
	config.Mode = mode
	config.OutputPath = *outputFlag
	config.Timeout = *timeoutFlag
	config.Verbose = *verboseFlag
	config.Logger = logger

	result, err := harvester.New(config).Run(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("Harvest failed")
		return exitCode(err)
	}

	fmt.Printf("Scraped rows:  %d\n", result.Scraped)
	fmt.Printf("Dropped rows:  %d\n", result.Dropped)
	fmt.Printf("Written (%s): %d\n", mode, result.Written)
	fmt.Printf("Output:        %s\n", result.Path)
	return 0
}

func exitCode(err error) int {
	var netErr *harvester.NetworkError
	var parseErr *harvester.ParseError
	var ioErr *harvester.IOError
	switch {
	case errors.As(err, &netErr):
		return exitNetwork
	case errors.As(err, &parseErr):
		return exitParse
	case errors.As(err, &ioErr):
		return exitIO
	}
	return exitUsage
}

func sourceNames() string {
	var names []string
	for _, s := range harvester.Sources() {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}
