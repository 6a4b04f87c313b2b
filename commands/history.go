package commands

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/inabooth/inabooth-app-sheets/config"
	"github.com/inabooth/inabooth-app-sheets/history"
)

var HistoryCmd = History{
	history: "",
	limit:   10,
	run:     0,
}

// History lists the sync runs recorded in the history database.
type History struct {
	history string
	limit   int
	run     int64
}

func (cmd *History) Name() string {
	return "history"
}

func (cmd *History) Description() string {
	return "Lists the most recent sync runs"
}

func (cmd *History) Usage() string {
	return "[--history <file>] [--limit <N>] [--run <ID>]"
}

func (cmd *History) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--config <file>] history [options]\n", APP)
	fmt.Println()
	fmt.Println("  Lists the most recent sync runs recorded in the history database or, with --run, the")
	fmt.Println("  per-page results of a single run")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    inabooth-app-sheets history --history .sync/history.db --limit 5`)
	fmt.Println(`    inabooth-app-sheets history --history .sync/history.db --run 17`)
	fmt.Println()
}

func (cmd *History) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("history", flag.ExitOnError)

	flagset.StringVar(&cmd.history, "history", cmd.history, "SQLite database file with the recorded sync runs")
	flagset.IntVar(&cmd.limit, "limit", cmd.limit, "Maximum number of runs to list")
	flagset.Int64Var(&cmd.run, "run", cmd.run, "Lists the page results for a single run")

	return flagset
}

func (cmd *History) Execute(args ...any) error {
	ctx, options := unpack(args...)

	conf, err := config.Load(options.Config)
	if err != nil {
		return err
	}

	conf.Env(os.Getenv)
	override(&conf.History, cmd.history)

	if strings.TrimSpace(conf.History) == "" {
		return fmt.Errorf("--history is a required option")
	}

	if _, err := os.Stat(conf.History); err != nil {
		return fmt.Errorf("Unable to open sync history (%v)", err)
	}

	db, err := history.Open(conf.History)
	if err != nil {
		return err
	}

	defer db.Close()

	if cmd.run > 0 {
		pages, err := db.Pages(ctx, cmd.run)
		if err != nil {
			return err
		}

		for _, p := range pages {
			if p.OK() {
				fmt.Printf("  %-40v  %-16v  %v\n", p.File, "["+p.ID+"]", p.Title)
			} else {
				fmt.Printf("  %-40v  %-16v  ERROR %v\n", p.File, "["+p.ID+"]", p.Err)
			}
		}

		return nil
	}

	runs, err := db.Runs(ctx, cmd.limit)
	if err != nil {
		return err
	}

	for _, r := range runs {
		status := "not written"
		if r.Written {
			status = "written"
		}

		if r.Error != "" {
			status = "ERROR " + r.Error
		}

		fmt.Printf("  %-4v  %v  %-16v  %-9v  pages:%-4v  failed:%-4v  %v\n",
			r.ID, r.Timestamp.Local().Format("2006-01-02 15:04:05"), r.Sheet, r.Shape, r.Pages, r.Failed, status)
	}

	return nil
}
