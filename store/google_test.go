package store

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"google.golang.org/api/option"

	"github.com/inabooth/inabooth-app-sheets/menu"
)

type request struct {
	method string
	path   string
	query  string
	body   map[string]any
}

func mock(t *testing.T, status int) (*Google, *[]request) {
	t.Helper()

	requests := []request{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		rec := request{
			method: rq.Method,
			path:   rq.URL.Path,
			query:  rq.URL.RawQuery,
		}

		if b, err := io.ReadAll(rq.Body); err == nil && len(b) > 0 {
			json.Unmarshal(b, &rec.body)
		}

		requests = append(requests, rec)

		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":{"code":400,"message":"invalid request"}}`))
			return
		}

		switch {
		case rq.Method == http.MethodGet && strings.HasSuffix(rq.URL.Path, "/spreadsheets/menu"):
			w.Write([]byte(`{
			  "spreadsheetId": "menu",
			  "properties": { "title": "INABOOTH IA" },
			  "sheets": [
			    { "properties": { "sheetId": 0, "title": "메뉴구조도 0.9" } },
			    { "properties": { "sheetId": 1234, "title": "메뉴구조도 1.0" } }
			  ]
			}`))

		case rq.Method == http.MethodGet:
			w.Write([]byte(`{"range":"'메뉴구조도 1.0'!A1:I1","majorDimension":"ROWS","values":[["No","Sector","1 depth"]]}`))

		case strings.HasSuffix(rq.URL.Path, ":batchClear"):
			w.Write([]byte(`{"spreadsheetId":"menu"}`))

		default:
			w.Write([]byte(`{"spreadsheetId":"menu","updatedRows":2}`))
		}
	}))

	t.Cleanup(srv.Close)

	google, err := NewGoogle(context.Background(), srv.Client(), option.WithEndpoint(srv.URL+"/"))
	if err != nil {
		t.Fatalf("Unexpected error creating Google Sheets store (%v)", err)
	}

	return google, &requests
}

func TestGoogleMetadata(t *testing.T) {
	google, _ := mock(t, http.StatusOK)

	expected := menu.Metadata{
		Title: "INABOOTH IA",
		Sheets: []menu.Sheet{
			{Title: "메뉴구조도 0.9", ID: 0},
			{Title: "메뉴구조도 1.0", ID: 1234},
		},
	}

	metadata, err := google.Metadata(context.Background(), "menu")
	if err != nil {
		t.Fatalf("Unexpected error retrieving metadata (%v)", err)
	}

	if !reflect.DeepEqual(*metadata, expected) {
		t.Errorf("Incorrect metadata\n   expected: %+v\n   got:      %+v", expected, *metadata)
	}
}

func TestGoogleRead(t *testing.T) {
	google, requests := mock(t, http.StatusOK)

	rows, err := google.Read(context.Background(), "menu", "메뉴구조도 1.0", "1:1")
	if err != nil {
		t.Fatalf("Unexpected error reading sheet (%v)", err)
	}

	if expected := [][]string{{"No", "Sector", "1 depth"}}; !reflect.DeepEqual(rows, expected) {
		t.Errorf("Incorrect rows\n   expected: %v\n   got:      %v", expected, rows)
	}

	if len(*requests) != 1 || !strings.HasSuffix((*requests)[0].path, "/values/'메뉴구조도 1.0'!1:1") {
		t.Errorf("Incorrect request - got:%+v", *requests)
	}
}

func TestGoogleClearAndWrite(t *testing.T) {
	google, requests := mock(t, http.StatusOK)

	rows := [][]string{
		{"", "User App", "1", "1", "", "[1-1]", "Home", "Welcome", ""},
	}

	if err := google.Clear(context.Background(), "menu", "메뉴구조도 1.0", "A2:I"); err != nil {
		t.Fatalf("Unexpected error clearing sheet (%v)", err)
	}

	if err := google.Write(context.Background(), "menu", "메뉴구조도 1.0", "A2", rows, menu.UserEntered); err != nil {
		t.Fatalf("Unexpected error writing sheet (%v)", err)
	}

	if len(*requests) != 2 {
		t.Fatalf("Incorrect number of requests - expected:%v, got:%v", 2, len(*requests))
	}

	clear := (*requests)[0]
	if clear.method != http.MethodPost || !strings.HasSuffix(clear.path, "/spreadsheets/menu/values:batchClear") {
		t.Errorf("Incorrect clear request - got:%v %v", clear.method, clear.path)
	}

	if ranges := clear.body["ranges"]; !reflect.DeepEqual(ranges, []any{"'메뉴구조도 1.0'!A2:I"}) {
		t.Errorf("Incorrect clear ranges - got:%v", ranges)
	}

	update := (*requests)[1]
	if update.method != http.MethodPut || !strings.HasSuffix(update.path, "/values/'메뉴구조도 1.0'!A2") {
		t.Errorf("Incorrect update request - got:%v %v", update.method, update.path)
	}

	if !strings.Contains(update.query, "valueInputOption=USER_ENTERED") {
		t.Errorf("Incorrect update input mode - got:%v", update.query)
	}

	values, _ := update.body["values"].([]any)
	if len(values) != 1 {
		t.Errorf("Incorrect update values - got:%v", update.body)
	}
}

func TestGoogleRemoteError(t *testing.T) {
	google, _ := mock(t, http.StatusBadRequest)

	if _, err := google.Metadata(context.Background(), "menu"); !errors.Is(err, menu.ErrRemoteCall) {
		t.Errorf("Incorrect metadata error - expected:%v, got:%v", menu.ErrRemoteCall, err)
	}

	if err := google.Clear(context.Background(), "menu", "Menu", "A2:I"); !errors.Is(err, menu.ErrRemoteCall) {
		t.Errorf("Incorrect clear error - expected:%v, got:%v", menu.ErrRemoteCall, err)
	}

	if err := google.Write(context.Background(), "menu", "Menu", "A2", [][]string{{"x"}}, menu.Raw); !errors.Is(err, menu.ErrRemoteCall) {
		t.Errorf("Incorrect write error - expected:%v, got:%v", menu.ErrRemoteCall, err)
	}
}

func TestA1(t *testing.T) {
	tests := map[string]string{
		"메뉴구조도 1.0": "'메뉴구조도 1.0'!A2:I",
		"Bob's":     "'Bob''s'!A2:I",
	}

	for sheet, expected := range tests {
		if s := a1(sheet, "A2:I"); s != expected {
			t.Errorf("Incorrect A1 range for %v - expected:%v, got:%v", sheet, expected, s)
		}
	}
}
