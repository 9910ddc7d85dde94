package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"billdict/internal"
	"billdict/internal/config"
	"billdict/internal/pipeline"
	"billdict/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cmd := "build"
	args := os.Args[1:]
	if len(args) > 0 && isCommand(args[0]) {
		cmd = args[0]
		args = args[1:]
	}

	switch cmd {
	case "build":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		inType := fs.String("type", cfg.InputType, "csv|xlsx|html")
		_ = fs.Parse(args)
		input, outDir := positional(fs, cfg.InputPath, cfg.OutputDir)

		records := buildRecords(cfg, log, *inType, input)

		csvPath, err := pipeline.WriteCSV(records, outDir)
		must(err)
		jsonPath, err := pipeline.WriteJSON(records, outDir)
		must(err)
		log.Info().Str("csv", csvPath).Str("json", jsonPath).Msg("dictionary written")

		pipeline.PrintSummary(os.Stdout, pipeline.Summarize(records, cfg.SampleLimit))
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		inType := fs.String("type", cfg.InputType, "csv|xlsx|html")
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(args)
		if strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--out is required"))
		}
		input, _ := positional(fs, cfg.InputPath, cfg.OutputDir)

		records := buildRecords(cfg, log, *inType, input)
		must(pipeline.ExportRecordsToXLSX(records, *out))
		log.Info().Int("records", len(records)).Str("out", *out).Msg("xlsx export done")
	case "export:sqlite":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		inType := fs.String("type", cfg.InputType, "csv|xlsx|html")
		out := fs.String("out", cfg.DBPath, "output sqlite path")
		_ = fs.Parse(args)
		input, _ := positional(fs, cfg.InputPath, cfg.OutputDir)

		records := buildRecords(cfg, log, *inType, input)
		db, err := storage.Open(*out)
		must(err)
		defer db.Close()
		must(db.WriteDictionary(records, input))
		log.Info().Int("records", len(records)).Str("out", *out).Msg("sqlite export done")
	case "help":
		usage()
	}
}

func buildRecords(cfg config.Config, log zerolog.Logger, inType, input string) []internal.BillRecord {
	rows, err := pipeline.LoadRows(internal.InputType(inType), input)
	must(err)
	fmt.Printf("Loaded %d bills from %s\n", len(rows), input)

	return pipeline.NewBuilder(cfg, log).BuildRecords(rows)
}

func positional(fs *flag.FlagSet, defaultInput, defaultOut string) (input, outDir string) {
	input = defaultInput
	outDir = defaultOut
	if fs.Arg(0) != "" {
		input = fs.Arg(0)
	}
	if fs.Arg(1) != "" {
		outDir = fs.Arg(1)
	}
	return input, outDir
}

func isCommand(arg string) bool {
	switch arg {
	case "build", "export:xlsx", "export:sqlite", "help":
		return true
	}
	return false
}

func usage() {
	fmt.Println("usage: billdict [command] [flags] [input] [outdir]")
	fmt.Println("commands:")
	fmt.Println("  build          [--type=csv|xlsx|html] [input] [outdir]   (default)")
	fmt.Println("  export:xlsx    --out=./out/dict.xlsx [--type=...] [input]")
	fmt.Println("  export:sqlite  [--out=./out/dict.db] [--type=...] [input]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
