// Package config loads the sync configuration from an (optional) YAML file, with overrides
// from the environment applied at the process boundary.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/inabooth/inabooth-app-sheets/menu"
)

const (
	ServiceAccount = "service-account"
	OAuth          = "oauth"
)

type Config struct {
	Spreadsheet string   `yaml:"spreadsheet"`
	Sheet       string   `yaml:"sheet"`
	Pages       string   `yaml:"pages"`
	Shape       string   `yaml:"shape"`
	Sector      string   `yaml:"sector"`
	TitleSuffix string   `yaml:"title-suffix"`
	Selectors   []string `yaml:"selectors"`
	Auth        Auth     `yaml:"auth"`
	History     string   `yaml:"history"`
	XLSX        string   `yaml:"xlsx"`
}

type Auth struct {
	Method      string `yaml:"method"`
	Credentials string `yaml:"credentials"`
	Tokens      string `yaml:"tokens"`
}

// Default returns the configuration for the INABOOTH menu structure worksheet.
func Default() Config {
	return Config{
		Spreadsheet: "1eplHcJ9KGK318chpZIcCUe6RZN0hSIFtDYigKRCHcLA",
		Sheet:       "메뉴구조도 1.0",
		Pages:       "pages",
		Shape:       menu.Compact.String(),
		Sector:      "User App",
		TitleSuffix: menu.DefaultTitleSuffix,
		Selectors:   append([]string{}, menu.DefaultSelectors...),
		Auth: Auth{
			Method:      ServiceAccount,
			Credentials: "",
			Tokens:      "token.json",
		},
	}
}

// Load returns the default configuration updated from the YAML file. A missing file is not
// an error.
func Load(path string) (Config, error) {
	c := Default()

	if strings.TrimSpace(path) == "" {
		return c, nil
	}

	bytes, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	} else if err != nil {
		return c, err
	}

	if err := yaml.Unmarshal(bytes, &c); err != nil {
		return c, fmt.Errorf("Invalid configuration file %v (%w)", path, err)
	}

	return c, nil
}

// Env overrides the configuration with any values set in the environment.
func (c *Config) Env(getenv func(string) string) {
	set := func(v *string, key string) {
		if s := strings.TrimSpace(getenv(key)); s != "" {
			*v = s
		}
	}

	set(&c.Spreadsheet, "SPREADSHEET_ID")
	set(&c.Sheet, "SHEET_NAME")
	set(&c.Pages, "PAGES_DIR")
	set(&c.Shape, "ROW_SHAPE")
	set(&c.Sector, "SECTOR")
	set(&c.Auth.Credentials, "GOOGLE_APPLICATION_CREDENTIALS")
	set(&c.History, "MENU_SHEETS_HISTORY")
}

// Menu converts the configuration to the menu sync configuration.
func (c Config) Menu() (menu.Config, error) {
	shape, err := menu.ParseShape(c.Shape)
	if err != nil {
		return menu.Config{}, err
	}

	if strings.TrimSpace(c.Sheet) == "" {
		return menu.Config{}, fmt.Errorf("Missing worksheet name")
	}

	return menu.Config{
		Spreadsheet: c.Spreadsheet,
		Sheet:       c.Sheet,
		Shape:       shape,
		Sector:      c.Sector,
		Summarizer: menu.Summarizer{
			TitleSuffix: c.TitleSuffix,
			Selectors:   c.Selectors,
		},
	}, nil
}
