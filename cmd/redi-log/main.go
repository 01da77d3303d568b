package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/rediwo/redi-logger/logger"
)

const (
	version = "0.1.0"
	usage   = `RediLog CLI - emit log records through the redi logger

Usage:
  redi-log <command> [flags] [args]

The command must come first; flags and arguments follow it.

Commands:
  emit <level> <message>  Emit one record at the given level
  demo                    Emit one record at every level
  version                 Show version information

Flags:
  --level     Minimum level: trace|debug|info|warn|error|off
              (default: $LOG_LEVEL, then info; a truthy $DEBUG
              forces debug when the flag is not given)

  --output    Destination: stdout|stderr
              (default: $LOG_OUTPUT, then stdout)

  --color     Color mode: auto|true|false
              (default: $LOG_COLOR, then auto)

  --std-log   Route the standard log package through the logger

  --help      Show help message

Examples:
  redi-log emit warn "disk almost full"
  redi-log demo --level=trace --output=stderr --color=true
  LOG_LEVEL=debug redi-log demo
`
)

func main() {
	var (
		level  string
		output string
		color  string
		stdLog bool
	)

	flag.StringVar(&level, "level", "", "Minimum level")
	flag.StringVar(&output, "output", os.Getenv(logger.EnvLogOutput), "Destination")
	flag.StringVar(&color, "color", os.Getenv(logger.EnvLogColor), "Color mode")
	flag.BoolVar(&stdLog, "std-log", false, "Route the standard log package")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}

	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(0)
	}

	command := os.Args[1]

	if command == "version" {
		fmt.Printf("RediLog CLI v%s\n", version)
		os.Exit(0)
	}

	if command == "help" || command == "--help" || command == "-h" {
		flag.Usage()
		os.Exit(0)
	}

	flag.CommandLine.Parse(os.Args[2:])

	l := configure(level, output, color)
	if err := l.Init(); err != nil {
		log.Fatalf("Failed to install logger: %v", err)
	}
	defer logger.Flush()

	if stdLog {
		log.SetFlags(0)
		log.SetOutput(logger.NewLineWriter("std"))
	}

	switch command {
	case "emit":
		if len(flag.Args()) < 2 {
			log.Fatal("Error: level and message required\nUsage: redi-log emit <level> <message>")
		}
		runEmit(flag.Args()[0], strings.Join(flag.Args()[1:], " "))
	case "demo":
		runDemo(l, stdLog)
	default:
		log.Fatalf("Unknown command: %s\n\nRun 'redi-log --help' for usage", command)
	}
}

// configure starts from the environment and applies explicit flags on top.
// An empty level keeps whatever FromEnv resolved.
func configure(level, output, color string) logger.Logger {
	l := logger.FromEnv()
	if level != "" {
		l = l.WithLevel(logger.ParseLogLevel(level))
	}
	return l.WithWriter(logger.ParseWriter(output, color))
}

func runEmit(level, message string) {
	logger.Logf(logger.ParseLogLevel(level), "%s", message)
}

func runDemo(l logger.Logger, stdLog bool) {
	logger.Error("demo error")
	logger.Warn("demo warning")
	logger.Info("demo info")
	logger.Debug("demo debug")
	logger.Trace("demo trace")

	slog.New(l.Handler()).Warn("demo via slog")

	if stdLog {
		log.Printf("demo started through the standard log package")
	}
}
