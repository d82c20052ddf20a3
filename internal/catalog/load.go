package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// LoadRecords reads a JSON array of pscomppars rows from a file.
func LoadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return records, nil
}

// Systems groups records by host star, sorted by host name. The star columns
// are taken from the first row of each host; planets keep catalog order
// within a host.
func Systems(records []Record) []System {
	byHost := make(map[string]*System)
	var order []string

	for _, rec := range records {
		host := rec.Star.HostName
		sys, ok := byHost[host]
		if !ok {
			sys = &System{Star: rec.Star}
			byHost[host] = sys
			order = append(order, host)
		}
		sys.Planets = append(sys.Planets, rec.Planet)
	}

	sort.Strings(order)
	systems := make([]System, 0, len(order))
	for _, host := range order {
		systems = append(systems, *byHost[host])
	}
	return systems
}

// FindSystem returns the system for a host name, or false if absent.
func FindSystem(systems []System, host string) (System, bool) {
	for _, sys := range systems {
		if sys.Star.HostName == host {
			return sys, true
		}
	}
	return System{}, false
}
