// Package sqlite moves variant values in and out of SQLite statements
// over the zombiezen.com/go/sqlite driver. Only the scalar variants
// Null, Int, Real and String cross this boundary; containers must be
// serialized first.
package sqlite

import (
	"errors"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/oarkflow/variant"
)

// Flag maps onto the open flags of the backend; combine with bitwise
// or. Passing no flags to Open selects the backend defaults.
type Flag uint

const (
	ReadOnly     = Flag(sqlite.OpenReadOnly)
	ReadWrite    = Flag(sqlite.OpenReadWrite)
	Create       = Flag(sqlite.OpenCreate)
	URI          = Flag(sqlite.OpenURI)
	Memory       = Flag(sqlite.OpenMemory)
	NoMutex      = Flag(sqlite.OpenNoMutex)
	FullMutex    = Flag(sqlite.OpenFullMutex)
	SharedCache  = Flag(sqlite.OpenSharedCache)
	PrivateCache = Flag(sqlite.OpenPrivateCache)
	WAL          = Flag(sqlite.OpenWAL)
)

// ResultCode re-exports the backend result codes so callers can
// inspect failures without importing the backend.
type ResultCode = sqlite.ResultCode

// ErrCode extracts the primary result code from an error returned by
// this package.
func ErrCode(err error) ResultCode {
	return sqlite.ErrCode(err)
}

// DB wraps a single connection. It is not safe for concurrent use
// without external exclusion.
type DB struct {
	conn *sqlite.Conn
}

// Open opens the database at path, creating it when the flags allow.
func Open(path string, flags ...Flag) (*DB, error) {
	var combined sqlite.OpenFlags
	for _, f := range flags {
		combined |= sqlite.OpenFlags(f)
	}
	var conn *sqlite.Conn
	var err error
	if combined == 0 {
		conn, err = sqlite.OpenConn(path)
	} else {
		conn, err = sqlite.OpenConn(path, combined)
	}
	if err != nil {
		return nil, err
	}
	return &DB{conn: conn}, nil
}

// Close releases the connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// RowFunc receives the zero-based row number and the row as a
// column-name to value map; returning false stops iteration.
type RowFunc func(i int, row map[string]*variant.Value) bool

var errStopIteration = errors.New("sqlite: row iteration stopped")

// Execute runs a single statement, materializing each result row for
// fn. A nil fn discards rows.
func (db *DB) Execute(query string, fn RowFunc) error {
	if fn == nil {
		return sqlitex.ExecuteTransient(db.conn, query, nil)
	}
	i := 0
	err := sqlitex.ExecuteTransient(db.conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			keep := fn(i, rowOf(stmt))
			i++
			if !keep {
				return errStopIteration
			}
			return nil
		},
	})
	if errors.Is(err, errStopIteration) {
		return nil
	}
	return err
}

// Script runs a multi-statement script inside a savepoint.
func (db *DB) Script(sql string) error {
	return sqlitex.ExecuteScript(db.conn, sql, nil)
}

// Changes reports the number of rows inserted, updated or deleted by
// the most recent statement.
func (db *DB) Changes() int {
	return db.conn.Changes()
}

// LastInsertRowID reports the rowid of the most recent insert.
func (db *DB) LastInsertRowID() int64 {
	return db.conn.LastInsertRowID()
}
