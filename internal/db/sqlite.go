package db

import (
	"database/sql"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// SQLiteDriverName is the sqlite3 driver with the pisos helper functions installed.
const SQLiteDriverName = "sqlite3_pisos"

// UnicodeLowerFunc lowercases text with full Unicode folding. SQLite's own
// LOWER only folds ASCII, so "Ávila" would never match "ávila".
const UnicodeLowerFunc = "unicode_lower"

func init() {
	sql.Register(SQLiteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc(UnicodeLowerFunc, unicodeLower, true)
		},
	})
}

func unicodeLower(v interface{}) interface{} {
	switch s := v.(type) {
	case string:
		return strings.ToLower(s)
	case []byte:
		return strings.ToLower(string(s))
	default:
		return v
	}
}
