package planner

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"cutiplan/internal/dateutil"
)

// Malaysia2026 is the built-in public-holiday table. It is loaded once
// and never mutated; a different target year is a different table, not
// a code change.
var Malaysia2026 = []Holiday{
	{Date: "2026-01-01", Name: "New Year's Day", IsFederal: true},
	{Date: "2026-02-17", Name: "Chinese New Year", IsFederal: true},
	{Date: "2026-02-18", Name: "Chinese New Year (Day 2)", IsFederal: true},
	{Date: "2026-03-20", Name: "Hari Raya Puasa (Aidilfitri)", IsFederal: true},
	{Date: "2026-03-21", Name: "Hari Raya Puasa (Day 2)", IsFederal: true},
	{Date: "2026-04-03", Name: "Good Friday", IsFederal: true},
	{Date: "2026-05-01", Name: "Labour Day", IsFederal: true},
	{Date: "2026-05-27", Name: "Hari Raya Haji", IsFederal: true},
	{Date: "2026-05-31", Name: "Wesak Day", IsFederal: true},
	{Date: "2026-06-01", Name: "Agong's Birthday", IsFederal: true},
	{Date: "2026-06-17", Name: "Awal Muharram", IsFederal: true},
	{Date: "2026-08-31", Name: "National Day (Merdeka Day)", IsFederal: true},
	{Date: "2026-09-16", Name: "Malaysia Day", IsFederal: true},
	{Date: "2026-11-08", Name: "Deepavali", IsFederal: true},
	{Date: "2026-11-09", Name: "Deepavali (Replacement)", IsFederal: true},
	{Date: "2026-12-25", Name: "Christmas Day", IsFederal: true},
}

type tableFile struct {
	Year     int          `yaml:"year"`
	Country  string       `yaml:"country"`
	Holidays []tableEntry `yaml:"holidays"`
}

type tableEntry struct {
	Date    string   `yaml:"date"`
	Name    string   `yaml:"name"`
	Federal bool     `yaml:"federal"`
	States  []string `yaml:"states"`
}

// LoadTable reads a per-year public-holiday table from a YAML file.
// Entries keep file order.
func LoadTable(path string) ([]Holiday, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file tableFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse holiday table %s: %w", path, err)
	}
	if len(file.Holidays) == 0 {
		return nil, fmt.Errorf("holiday table %s has no entries", path)
	}

	table := make([]Holiday, 0, len(file.Holidays))
	for i, entry := range file.Holidays {
		if _, err := dateutil.ParseKey(entry.Date); err != nil {
			return nil, fmt.Errorf("holiday table %s entry %d: bad date %q", path, i, entry.Date)
		}
		if strings.TrimSpace(entry.Name) == "" {
			return nil, fmt.Errorf("holiday table %s entry %d: empty name", path, i)
		}
		table = append(table, Holiday{
			Date:      entry.Date,
			Name:      entry.Name,
			IsFederal: entry.Federal,
			States:    entry.States,
		})
	}
	return table, nil
}
