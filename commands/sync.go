package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/inabooth/inabooth-app-sheets/config"
	"github.com/inabooth/inabooth-app-sheets/history"
	"github.com/inabooth/inabooth-app-sheets/menu"
)

var SyncCmd = Sync{
	command: command{
		url:         "",
		sheet:       "",
		credentials: "",
		tokens:      "",
		xlsx:        "",
		debug:       false,
	},

	pages:   "",
	shape:   "",
	history: "",
	dryrun:  false,
}

// Sync is the default command: it summarizes the page files and replaces the data rows of
// the menu structure worksheet.
type Sync struct {
	command
	pages   string
	shape   string
	history string
	dryrun  bool
}

func (cmd *Sync) Name() string {
	return "sync"
}

func (cmd *Sync) Description() string {
	return "Updates the menu structure worksheet from a directory of HTML pages"
}

func (cmd *Sync) Usage() string {
	return "[--url <url>] [--sheet <sheet>] [--pages <dir>]"
}

func (cmd *Sync) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] sync [options]\n", APP)
	fmt.Println()
	fmt.Println("  Summarizes the HTML pages in a directory and replaces the data rows of the menu structure")
	fmt.Println("  worksheet (the header row is preserved). sync is the default command and with no options")
	fmt.Println("  uses the configuration file and SPREADSHEET_ID, SHEET_NAME, PAGES_DIR, ROW_SHAPE, SECTOR")
	fmt.Println("  and GOOGLE_APPLICATION_CREDENTIALS environment variables.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    inabooth-app-sheets`)
	fmt.Println()
	fmt.Println(`    inabooth-app-sheets --debug sync --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                                     --sheet "메뉴구조도 1.0" \`)
	fmt.Println(`                                     --pages ./pages \`)
	fmt.Println(`                                     --shape extended`)
	fmt.Println()
	fmt.Println(`    inabooth-app-sheets sync --pages ./pages --xlsx menu.xlsx`)
	fmt.Println()
}

func (cmd *Sync) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("sync")

	flagset.StringVar(&cmd.pages, "pages", cmd.pages, "Directory containing the HTML pages. Defaults to the configured directory")
	flagset.StringVar(&cmd.shape, "shape", cmd.shape, "Row layout: 'compact' (9 columns) or 'extended' (11 columns)")
	flagset.StringVar(&cmd.history, "history", cmd.history, "SQLite database file for recording sync runs")
	flagset.BoolVar(&cmd.dryrun, "dry-run", cmd.dryrun, "Writes the rows to stdout as TSV without updating the worksheet")

	return flagset
}

func (cmd *Sync) Execute(args ...any) error {
	ctx, options := unpack(args...)

	conf, err := cmd.configure(options)
	if err != nil {
		return err
	}

	override(&conf.Pages, cmd.pages)
	override(&conf.Shape, cmd.shape)
	override(&conf.History, cmd.history)

	mc, err := conf.Menu()
	if err != nil {
		return err
	}

	if cmd.dryrun {
		return cmd.preview(mc, conf.Pages)
	}

	store, closer, err := newStore(ctx, conf, mc.Shape)
	if err != nil {
		return err
	}

	defer closer()

	infof("Parsing HTML files from %v", conf.Pages)

	report, err := menu.Sync(ctx, mc, os.DirFS(conf.Pages), store)

	if failed := report.Failed(); len(failed) > 0 {
		warnf("%v of %v pages could not be parsed", len(failed), len(report.Results))
	}

	if conf.History != "" {
		cmd.record(ctx, conf, report, err)
	}

	if err != nil {
		return fmt.Errorf("Failed to update worksheet (%w)", err)
	}

	if report.Written {
		infof("Synchronized %v pages to '%v'", len(report.Rows), mc.Sheet)
	}

	return nil
}

func (cmd *Sync) preview(mc menu.Config, pages string) error {
	report := menu.Collect(mc, os.DirFS(pages))
	if len(report.Rows) == 0 {
		infof("No pages found to sync")
		return nil
	}

	rows := [][]string{mc.Shape.Header()}
	for _, row := range report.Rows {
		rows = append(rows, row)
	}

	return rowsToTSV(os.Stdout, rows)
}

func (cmd *Sync) record(ctx context.Context, conf config.Config, report *menu.Report, failure error) {
	db, err := history.Open(conf.History)
	if err != nil {
		warnf("Unable to open sync history %v (%v)", conf.History, err)
		return
	}

	defer db.Close()

	if id, err := db.Record(ctx, report, failure); err != nil {
		warnf("Unable to record sync run (%v)", err)
	} else if cmd.debug {
		debugf("Recorded sync run %v in %v", id, db.Path())
	}
}
