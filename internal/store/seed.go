package store

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Seed loads the travel datasets from CSV files under dataDir into any table
// that is still empty. Missing files are skipped, matching the original
// datasets being optional downloads.
func (db *DB) Seed(dataDir string) error {
	seeders := []struct {
		table string
		file  string
		load  func(header map[string]int, rows [][]string) error
	}{
		{"destinations", filepath.Join(dataDir, "worldwide_travel_cities.csv"), db.seedDestinations},
		{"foods", filepath.Join(dataDir, "food_dataset.csv"), db.seedFoods},
		{"bus_routes", filepath.Join(dataDir, "transport", "bus_routes.csv"), db.seedBusRoutes},
		{"traffic_flow", filepath.Join(dataDir, "transport", "traffic_flow_data.csv"), db.seedTraffic},
		{"commuter_patterns", filepath.Join(dataDir, "transport", "commuter_patterns.csv"), db.seedCommuters},
	}

	for _, s := range seeders {
		var count int
		if err := db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", s.table)).Scan(&count); err != nil {
			return fmt.Errorf("count %s: %w", s.table, err)
		}
		if count > 0 {
			continue
		}

		header, rows, err := readCSV(s.file)
		if err != nil {
			if os.IsNotExist(err) {
				slog.Info("Dataset file not found, skipping", "table", s.table, "file", s.file)
				continue
			}
			return fmt.Errorf("read %s: %w", s.file, err)
		}
		if err := s.load(header, rows); err != nil {
			return fmt.Errorf("seed %s: %w", s.table, err)
		}
		slog.Info("Dataset seeded", "table", s.table, "rows", len(rows))
	}
	return nil
}

func readCSV(path string) (map[string]int, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("empty csv: %s", path)
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return header, records[1:], nil
}

func field(header map[string]int, row []string, names ...string) string {
	for _, name := range names {
		if i, ok := header[name]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
	}
	return ""
}

func fieldFloat(header map[string]int, row []string, names ...string) float64 {
	v, _ := strconv.ParseFloat(field(header, row, names...), 64)
	return v
}

func (db *DB) seedDestinations(header map[string]int, rows [][]string) error {
	stmt, err := db.Prepare(`INSERT INTO destinations(
		city, country, region, budget_level, short_description, base_score,
		culture, adventure, nature, beaches, nightlife, cuisine, wellness, urban)
		VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		city := field(header, row, "city")
		if city == "" {
			continue
		}
		if _, err := stmt.Exec(
			city,
			field(header, row, "country"),
			field(header, row, "region"),
			strings.ToLower(field(header, row, "budget_level", "budget", "cost_level", "price_level")),
			field(header, row, "short_description"),
			fieldFloat(header, row, "base_score", "score"),
			fieldFloat(header, row, "culture"),
			fieldFloat(header, row, "adventure"),
			fieldFloat(header, row, "nature"),
			fieldFloat(header, row, "beaches"),
			fieldFloat(header, row, "nightlife"),
			fieldFloat(header, row, "cuisine"),
			fieldFloat(header, row, "wellness"),
			fieldFloat(header, row, "urban"),
		); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) seedFoods(header map[string]int, rows [][]string) error {
	stmt, err := db.Prepare(`INSERT INTO foods(dish, city, country, category, price_range) VALUES(?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		dish := field(header, row, "dish name", "dish")
		if dish == "" {
			continue
		}
		if _, err := stmt.Exec(
			dish,
			field(header, row, "region/city", "city"),
			field(header, row, "country"),
			field(header, row, "category"),
			fieldFloat(header, row, "price range", "price_range"),
		); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) seedBusRoutes(header map[string]int, rows [][]string) error {
	stmt, err := db.Prepare(`INSERT INTO bus_routes(route_id, city, origin, dest) VALUES(?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		city := field(header, row, "city")
		if city == "" {
			continue
		}
		if _, err := stmt.Exec(
			field(header, row, "route_id", "route"),
			city,
			field(header, row, "origin", "start"),
			field(header, row, "dest", "destination", "end"),
		); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) seedTraffic(header map[string]int, rows [][]string) error {
	stmt, err := db.Prepare(`INSERT INTO traffic_flow(city, congestion_level) VALUES(?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		city := field(header, row, "city")
		if city == "" {
			continue
		}
		if _, err := stmt.Exec(city, fieldFloat(header, row, "congestion_level", "congestion")); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) seedCommuters(header map[string]int, rows [][]string) error {
	stmt, err := db.Prepare(`INSERT INTO commuter_patterns(city, peak_hour) VALUES(?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		city := field(header, row, "city")
		if city == "" {
			continue
		}
		if _, err := stmt.Exec(city, field(header, row, "peak_hour")); err != nil {
			return err
		}
	}
	return nil
}
