package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/webdiary/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, so -c/-config handled by parseJson do not trip it.
// It panics on malformed values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-d", "-l", "-q", "-m", "-z"},
		[]string{"-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the diary database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.Int64Var(&cfg.QuotaBytes, "q", cfg.QuotaBytes, "storage quota in bytes")
	fs.Int64Var(&cfg.MaxAttachmentBytes, "m", cfg.MaxAttachmentBytes, "attachment size limit in bytes")
	fs.StringVar(&cfg.TimeZone, "z", cfg.TimeZone, "time zone for timestamps")
	fs.BoolVar(&cfg.ReadOnly, "r", cfg.ReadOnly, "open the store read-only")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
