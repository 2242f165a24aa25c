package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/tejashreee29/travellai/internal/models"
	"github.com/tejashreee29/travellai/internal/store"
)

// SQLiteRepository implements Repository interface using SQLite
type SQLiteRepository struct {
	db              *store.DB
	destinationRepo DestinationRepositoryInterface
	foodRepo        FoodRepositoryInterface
	transportRepo   TransportRepositoryInterface
	requestRepo     RequestRepositoryInterface
	eventRepo       EventRepositoryInterface
}

func NewSQLiteRepository(db *store.DB) Repository {
	return &SQLiteRepository{
		db:              db,
		destinationRepo: &SQLiteDestinationRepository{db: db},
		foodRepo:        &SQLiteFoodRepository{db: db},
		transportRepo:   &SQLiteTransportRepository{db: db},
		requestRepo:     &SQLiteRequestRepository{db: db},
		eventRepo:       &SQLiteEventRepository{db: db},
	}
}

func (r *SQLiteRepository) Destination() DestinationRepositoryInterface {
	return r.destinationRepo
}

func (r *SQLiteRepository) Food() FoodRepositoryInterface {
	return r.foodRepo
}

func (r *SQLiteRepository) Transport() TransportRepositoryInterface {
	return r.transportRepo
}

func (r *SQLiteRepository) Request() RequestRepositoryInterface {
	return r.requestRepo
}

func (r *SQLiteRepository) Event() EventRepositoryInterface {
	return r.eventRepo
}

// SQLiteDestinationRepository reads the destinations dataset
type SQLiteDestinationRepository struct {
	db *store.DB
}

func (r *SQLiteDestinationRepository) ListDestinations(ctx context.Context) ([]*models.Destination, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT city,country,region,budget_level,short_description,base_score,
		culture,adventure,nature,beaches,nightlife,cuisine,wellness,urban FROM destinations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dests []*models.Destination
	for rows.Next() {
		var d models.Destination
		var culture, adventure, nature, beaches, nightlife, cuisine, wellness, urban float64
		if err := rows.Scan(
			&d.City, &d.Country, &d.Region, &d.BudgetLevel, &d.ShortDescription, &d.BaseScore,
			&culture, &adventure, &nature, &beaches, &nightlife, &cuisine, &wellness, &urban,
		); err != nil {
			return nil, err
		}
		d.Affinities = map[string]float64{
			"culture":   culture,
			"adventure": adventure,
			"nature":    nature,
			"beaches":   beaches,
			"nightlife": nightlife,
			"cuisine":   cuisine,
			"wellness":  wellness,
			"urban":     urban,
		}
		dests = append(dests, &d)
	}
	return dests, rows.Err()
}

// SQLiteFoodRepository reads the food dataset
type SQLiteFoodRepository struct {
	db *store.DB
}

func (r *SQLiteFoodRepository) FindFood(ctx context.Context, city, country, category string, maxPrice float64, limit int) ([]*models.FoodItem, error) {
	// Dedupe by dish name, random order so repeated calls vary like the
	// original's sampling.
	query := `SELECT dish, city, country, category, price_range FROM foods WHERE 1=1`
	args := []interface{}{}
	if city != "" {
		query += ` AND city LIKE '%' || ? || '%' COLLATE NOCASE`
		args = append(args, city)
	}
	if country != "" {
		query += ` AND country LIKE '%' || ? || '%' COLLATE NOCASE`
		args = append(args, country)
	}
	if category != "" {
		query += ` AND category LIKE '%' || ? || '%' COLLATE NOCASE`
		args = append(args, category)
	}
	if maxPrice > 0 {
		query += ` AND price_range <= ?`
		args = append(args, maxPrice)
	}
	query += ` GROUP BY dish ORDER BY RANDOM() LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.FoodItem
	for rows.Next() {
		var f models.FoodItem
		if err := rows.Scan(&f.Dish, &f.City, &f.Country, &f.Category, &f.PriceRange); err != nil {
			return nil, err
		}
		items = append(items, &f)
	}
	return items, rows.Err()
}

// SQLiteTransportRepository reads the transport datasets
type SQLiteTransportRepository struct {
	db *store.DB
}

func (r *SQLiteTransportRepository) BusRoutes(ctx context.Context, city string, limit int) ([]models.BusRoute, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT route_id, city, origin, dest FROM bus_routes
		 WHERE city LIKE '%' || ? || '%' COLLATE NOCASE ORDER BY RANDOM() LIMIT ?`, city, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []models.BusRoute
	for rows.Next() {
		var b models.BusRoute
		if err := rows.Scan(&b.RouteID, &b.City, &b.Origin, &b.Dest); err != nil {
			return nil, err
		}
		routes = append(routes, b)
	}
	return routes, rows.Err()
}

func (r *SQLiteTransportRepository) AvgCongestion(ctx context.Context, city string) (float64, bool, error) {
	var avg *float64
	err := r.db.QueryRowContext(ctx,
		`SELECT AVG(congestion_level) FROM traffic_flow WHERE city LIKE '%' || ? || '%' COLLATE NOCASE`, city).Scan(&avg)
	if err != nil {
		return 0, false, err
	}
	if avg == nil {
		return 0, false, nil
	}
	return *avg, true, nil
}

func (r *SQLiteTransportRepository) PeakHour(ctx context.Context, city string) (string, error) {
	// Mode of peak_hour for the city.
	var peak string
	err := r.db.QueryRowContext(ctx,
		`SELECT peak_hour FROM commuter_patterns WHERE city LIKE '%' || ? || '%' COLLATE NOCASE
		 GROUP BY peak_hour ORDER BY COUNT(*) DESC LIMIT 1`, city).Scan(&peak)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return peak, nil
}

// SQLiteRequestRepository handles request logging
type SQLiteRequestRepository struct {
	db *store.DB
}

func (r *SQLiteRequestRepository) LogRequest(ctx context.Context, req *models.RequestLog) error {
	r.db.Req(
		req.Timestamp,
		req.ReqID,
		req.Source,
		req.Message,
		req.Reply,
		req.Provider,
		time.Duration(req.DurationMs)*time.Millisecond,
		req.Status,
		req.Error,
	)
	return nil
}

func (r *SQLiteRequestRepository) GetRequestLogs(ctx context.Context, limit int) ([]*models.RequestLog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT ts,req_id,source,message,reply,message_len,provider,dur_ms,status,error
		 FROM requests ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.RequestLog
	for rows.Next() {
		var log models.RequestLog
		var tsFloat, durMs float64

		if err := rows.Scan(
			&tsFloat, &log.ReqID, &log.Source, &log.Message, &log.Reply,
			&log.MessageLen, &log.Provider, &durMs, &log.Status, &log.Error,
		); err == nil {
			log.Timestamp = time.Unix(0, int64(tsFloat*1e9))
			log.DurationMs = int64(durMs)
			logs = append(logs, &log)
		}
	}

	return logs, nil
}

// SQLiteEventRepository handles event logging
type SQLiteEventRepository struct {
	db *store.DB
}

func (r *SQLiteEventRepository) LogEvent(ctx context.Context, level, code, msg string, meta map[string]interface{}) error {
	r.db.Event(level, code, msg, meta)
	return nil
}
