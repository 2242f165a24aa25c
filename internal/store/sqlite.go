package store

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Create events table
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS events(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ts REAL,
		level TEXT,
		code TEXT,
		msg TEXT,
		meta TEXT
	)`); err != nil {
		return nil, err
	}

	// Create requests table with full message/reply content
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS requests(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ts REAL,
		req_id TEXT,
		source TEXT,
		message TEXT,
		reply TEXT,
		message_len INTEGER,
		provider TEXT,
		dur_ms REAL,
		status TEXT,
		error TEXT
	)`); err != nil {
		return nil, err
	}

	// Dataset tables, seeded from CSV files on startup when empty
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS destinations(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		city TEXT,
		country TEXT,
		region TEXT,
		budget_level TEXT,
		short_description TEXT,
		base_score REAL,
		culture REAL,
		adventure REAL,
		nature REAL,
		beaches REAL,
		nightlife REAL,
		cuisine REAL,
		wellness REAL,
		urban REAL
	)`); err != nil {
		return nil, err
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS foods(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		dish TEXT,
		city TEXT,
		country TEXT,
		category TEXT,
		price_range REAL
	)`); err != nil {
		return nil, err
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS bus_routes(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		route_id TEXT,
		city TEXT,
		origin TEXT,
		dest TEXT
	)`); err != nil {
		return nil, err
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS traffic_flow(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		city TEXT,
		congestion_level REAL
	)`); err != nil {
		return nil, err
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS commuter_patterns(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		city TEXT,
		peak_hour TEXT
	)`); err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

func (db *DB) Event(level, code, msg string, meta map[string]interface{}) {
	m := ""
	if meta != nil {
		b, _ := json.Marshal(meta)
		m = string(b)
	}
	_, _ = db.Exec(`INSERT INTO events(ts,level,code,msg,meta) VALUES(?,?,?,?,?)`,
		float64(time.Now().UnixNano())/1e9, level, code, msg, m)
}

func (db *DB) Req(start time.Time, reqID, source, message, reply, provider string, dur time.Duration, status, errStr string) {
	_, _ = db.Exec(`INSERT INTO requests(
		ts, req_id, source, message, reply, message_len, provider, dur_ms, status, error)
		VALUES(?,?,?,?,?,?,?,?,?,?)`,
		float64(start.UnixNano())/1e9, reqID, source, message, reply, len(message), provider, float64(dur.Milliseconds()), status, errStr)
}
