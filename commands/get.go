package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inabooth/inabooth-app-sheets/menu"
)

var GetCmd = Get{
	command: command{
		url:         "",
		sheet:       "",
		credentials: "",
		tokens:      "",
		xlsx:        "",
		debug:       false,
	},

	area: "A1:Z100",
	file: "",
}

// Get retrieves a worksheet range, e.g. to review the menu structure or to back it up
// before a sync.
type Get struct {
	command
	area string
	file string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves the menu structure worksheet and stores it as a TSV file"
}

func (cmd *Get) Usage() string {
	return "[--url <url>] [--sheet <sheet>] [--range <range>] [--file <file>]"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] get [options]\n", APP)
	fmt.Println()
	fmt.Println("  Lists the worksheets in the spreadsheet and downloads a worksheet range as TSV")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    inabooth-app-sheets get --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                            --sheet "메뉴구조도 0.9" \`)
	fmt.Println(`                            --range "A1:K" \`)
	fmt.Println(`                            --file "menu.tsv"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.area, "range", cmd.area, "Worksheet range e.g. 'A1:K'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file. Defaults to stdout")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	ctx, options := unpack(args...)

	conf, err := cmd.configure(options)
	if err != nil {
		return err
	}

	if strings.TrimSpace(cmd.area) == "" {
		return fmt.Errorf("--range is a required option")
	}

	shape, err := menu.ParseShape(conf.Shape)
	if err != nil {
		return err
	}

	store, closer, err := newStore(ctx, conf, shape)
	if err != nil {
		return err
	}

	defer closer()

	metadata, err := store.Metadata(ctx, conf.Spreadsheet)
	if err != nil {
		return err
	}

	titles := []string{}
	for _, s := range metadata.Sheets {
		titles = append(titles, s.Title)
	}

	infof("Spreadsheet '%v'", metadata.Title)
	infof("Worksheets  %v", strings.Join(titles, ", "))

	sheet, ok := metadata.Sheet(conf.Sheet)
	if !ok {
		return fmt.Errorf("%w: '%v' in '%v'", menu.ErrRemoteTargetNotFound, conf.Sheet, metadata.Title)
	}

	rows, err := store.Read(ctx, conf.Spreadsheet, sheet.Title, cmd.area)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		infof("No data found in '%v'!%v", sheet.Title, cmd.area)
		return nil
	}

	if cmd.file == "" {
		return rowsToTSV(os.Stdout, rows)
	}

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".menu-*.tsv")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := rowsToTSV(tmp, rows); err != nil {
		return fmt.Errorf("error creating TSV file (%v)", err)
	}

	tmp.Close()

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	infof("Retrieved %v rows from '%v' to file %s", len(rows), sheet.Title, cmd.file)

	return nil
}
