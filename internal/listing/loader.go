package listing

import (
	"context"
	"database/sql"
	"strings"

	"github.com/cso-genova/casa-listing-explorer/internal"
	"github.com/cso-genova/casa-listing-explorer/internal/db"
	"github.com/cso-genova/casa-listing-explorer/internal/util/assert"
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/singleflight"
)

// Loader fetches the listings view and memoizes the derived table by
// (database, credential) for the life of the process. There is no TTL
// and no invalidation, a dashboard restart is the refresh mechanism.
type Loader struct {
	conn  *sql.DB
	group singleflight.Group
	cache *xsync.MapOf[string, Table]

	// seam for tests, defaults to the real query
	fetch func(ctx context.Context) ([]*RawListing, error)
}

func NewLoader(conn *sql.DB) *Loader {
	l := &Loader{
		conn:  conn,
		cache: xsync.NewMapOf[string, Table](),
	}
	l.fetch = l.queryListings

	return l
}

// Load returns the derived listing table for the given database and
// credential. Concurrent callers for the same key join one in-flight
// query instead of issuing duplicates.
func (l *Loader) Load(ctx context.Context, database string, token string) (Table, error) {
	key := database + "\x00" + token

	if table, ok := l.cache.Load(key); ok {
		return table, nil
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		// a racing caller may have stored the table before we got here
		if table, ok := l.cache.Load(key); ok {
			return table, nil
		}

		raw, err := l.fetch(ctx)
		if err != nil {
			return nil, err
		}

		table := Derive(raw)
		assert.Assert(len(table) == len(raw), "derivation must preserve row count",
			"RawCount", len(raw), "TableCount", len(table))

		l.cache.Store(key, table)
		return table, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(Table), nil
}

func (l *Loader) queryListings(ctx context.Context) ([]*RawListing, error) {
	view, err := db.QuoteIdentifier(View)
	if err != nil {
		return nil, err
	}

	query := "SELECT " + strings.Join(Columns, ", ") + " FROM " + view

	rows, err := l.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, internal.NewQueryError(View, err)
	}
	defer rows.Close()

	var raw []*RawListing
	for rows.Next() {
		var (
			name, url, description sql.NullString
			r                      RawListing
		)
		if err := rows.Scan(&name, &url, &description, &r.NumberOfRooms, &r.PriceValueEUR, &r.SizeMq); err != nil {
			return nil, internal.NewQueryError(View, err)
		}

		r.Name = name.String
		r.URL = url.String
		r.Description = description.String
		raw = append(raw, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, internal.NewQueryError(View, err)
	}

	return raw, nil
}
