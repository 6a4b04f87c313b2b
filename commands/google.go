package commands

import (
	"context"
	"fmt"

	"github.com/inabooth/inabooth-app-sheets/config"
	"github.com/inabooth/inabooth-app-sheets/menu"
	"github.com/inabooth/inabooth-app-sheets/store"
)

// newStore returns the configured remote document store: a local workbook if an xlsx file
// is configured, otherwise the Google Sheets spreadsheet (after authenticating).
func newStore(ctx context.Context, conf config.Config, shape menu.Shape) (menu.Store, func(), error) {
	if conf.XLSX != "" {
		w, err := store.OpenWorkbook(conf.XLSX, conf.Sheet, shape.Header())
		if err != nil {
			return nil, nil, err
		}

		return w, func() { w.Close() }, nil
	}

	if conf.Spreadsheet == "" {
		return nil, nil, fmt.Errorf("Missing spreadsheet ID")
	}

	auth, err := newAuthenticator(conf.Auth)
	if err != nil {
		return nil, nil, err
	}

	client, err := auth.Client(ctx)
	if err != nil {
		return nil, nil, err
	}

	google, err := store.NewGoogle(ctx, client)
	if err != nil {
		return nil, nil, err
	}

	return google, func() {}, nil
}
