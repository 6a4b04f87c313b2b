package commands

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/inabooth/inabooth-app-sheets/config"
)

const APP = "inabooth-app-sheets"

const SHEETS = "https://www.googleapis.com/auth/spreadsheets"

// Options are the global command line options.
type Options struct {
	Config string
	Debug  bool
}

// command holds the options shared by the commands that access a spreadsheet.
type command struct {
	url         string
	sheet       string
	credentials string
	tokens      string
	xlsx        string
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.url, "url", c.url, "Spreadsheet URL or ID. Defaults to the configured spreadsheet")
	flagset.StringVar(&c.sheet, "sheet", c.sheet, "Worksheet name. Defaults to the configured worksheet")
	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the Google credentials file (service account key or OAuth client)")
	flagset.StringVar(&c.tokens, "tokens", c.tokens, "Path for the cached OAuth token file (OAuth authentication only)")
	flagset.StringVar(&c.xlsx, "xlsx", c.xlsx, "Uses a local .xlsx workbook instead of Google Sheets")

	return flagset
}

// configure loads the configuration file, applies the environment and then any command line
// overrides.
func (c *command) configure(options *Options) (config.Config, error) {
	conf, err := config.Load(options.Config)
	if err != nil {
		return conf, err
	}

	conf.Env(os.Getenv)

	if strings.TrimSpace(c.url) != "" {
		id, err := spreadsheetID(c.url)
		if err != nil {
			return conf, err
		}

		conf.Spreadsheet = id
	}

	override(&conf.Sheet, c.sheet)
	override(&conf.Auth.Credentials, c.credentials)
	override(&conf.Auth.Tokens, c.tokens)
	override(&conf.XLSX, c.xlsx)
	defaults(&conf)

	c.debug = options.Debug

	if c.debug {
		debugf("Spreadsheet - ID:%s  sheet:%s  shape:%s  pages:%s", conf.Spreadsheet, conf.Sheet, conf.Shape, conf.Pages)
	}

	return conf, nil
}

// spreadsheetID extracts the spreadsheet ID from a Google Sheets URL. Anything that is not a
// URL is assumed to already be an ID.
func spreadsheetID(url string) (string, error) {
	url = strings.TrimSpace(url)

	if !strings.HasPrefix(url, "https://") {
		return url, nil
	}

	match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(url)
	if len(match) < 2 || match[1] == "" {
		return "", fmt.Errorf("Invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

// unpack unpacks the (context, options) arguments passed to Execute by main.
func unpack(list ...any) (context.Context, *Options) {
	ctx := context.Background()
	options := &Options{}

	for _, v := range list {
		switch a := v.(type) {
		case context.Context:
			ctx = a
		case *Options:
			options = a
		}
	}

	return ctx, options
}

// defaults fills in the installation defaults for anything not set by the configuration file,
// environment or command line.
func defaults(conf *config.Config) {
	if strings.TrimSpace(conf.Auth.Credentials) == "" {
		conf.Auth.Credentials = DEFAULT_CREDENTIALS
	}
}

func override(v *string, s string) {
	if strings.TrimSpace(s) != "" {
		*v = strings.TrimSpace(s)
	}
}

func helpOptions(flagset *flag.FlagSet) {
	count := 0
	flag.VisitAll(func(f *flag.Flag) {
		count++
	})

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	if count > 0 {
		fmt.Println()
		fmt.Println("  Options:")
		flag.VisitAll(func(f *flag.Flag) {
			fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
		})
	}
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
