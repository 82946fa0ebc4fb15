package sqlite

import (
	"fmt"

	"zombiezen.com/go/sqlite"

	"github.com/oarkflow/variant"
)

// Stmt is a prepared statement. Parameters are 1-based and columns
// 0-based, matching the backend.
type Stmt struct {
	stmt *sqlite.Stmt
}

// Prepare returns a prepared statement, cached on the connection.
func (db *DB) Prepare(query string) (*Stmt, error) {
	stmt, err := db.conn.Prepare(query)
	if err != nil {
		return nil, err
	}
	return &Stmt{stmt: stmt}, nil
}

// Bind binds a scalar variant to the i-th parameter. A nil value
// binds NULL; Bool, Array and Object values do not bind and fail.
func (s *Stmt) Bind(i int, v *variant.Value) error {
	if v == nil {
		s.stmt.BindNull(i)
		return nil
	}
	switch v.Type() {
	case variant.Null:
		s.stmt.BindNull(i)
	case variant.Int:
		s.stmt.BindInt64(i, v.Int())
	case variant.Real:
		s.stmt.BindFloat(i, v.Real())
	case variant.String:
		s.stmt.BindText(i, v.Str())
	default:
		return fmt.Errorf("sqlite: unsupported type %s for binding", v.Type())
	}
	return nil
}

// BindName binds a scalar variant by parameter name, given with its
// ':', '@' or '$' prefix.
func (s *Stmt) BindName(name string, v *variant.Value) error {
	for i := 1; i <= s.stmt.BindParamCount(); i++ {
		if s.stmt.BindParamName(i) == name {
			return s.Bind(i, v)
		}
	}
	return fmt.Errorf("sqlite: no parameter named %q", name)
}

// BindBlob binds raw bytes to the i-th parameter.
func (s *Stmt) BindBlob(i int, data []byte) error {
	s.stmt.BindBytes(i, data)
	return nil
}

// Step advances the statement and reports whether a result row is
// available.
func (s *Stmt) Step() (bool, error) {
	return s.stmt.Step()
}

// Reset rewinds the statement so it can run again.
func (s *Stmt) Reset() error {
	return s.stmt.Reset()
}

// ClearBindings removes every bound parameter value.
func (s *Stmt) ClearBindings() error {
	return s.stmt.ClearBindings()
}

// Columns reports the number of result columns.
func (s *Stmt) Columns() int {
	return s.stmt.ColumnCount()
}

// ColumnName reports the name of the i-th result column.
func (s *Stmt) ColumnName(i int) string {
	return s.stmt.ColumnName(i)
}

// Value materializes the i-th column of the current row: Int, Real or
// String per column type, Null for NULL, and blobs as String over the
// raw bytes.
func (s *Stmt) Value(i int) *variant.Value {
	return columnValue(s.stmt, i)
}

// Row materializes the current row as a column-name to value map.
func (s *Stmt) Row() map[string]*variant.Value {
	return rowOf(s.stmt)
}

// Finalize releases the statement.
func (s *Stmt) Finalize() error {
	return s.stmt.Finalize()
}

func columnValue(stmt *sqlite.Stmt, i int) *variant.Value {
	switch stmt.ColumnType(i) {
	case sqlite.TypeInteger:
		return variant.ValueOf(stmt.ColumnInt64(i))
	case sqlite.TypeFloat:
		return variant.ValueOf(stmt.ColumnFloat(i))
	case sqlite.TypeText:
		return variant.ValueOf(stmt.ColumnText(i))
	case sqlite.TypeBlob:
		buf := make([]byte, stmt.ColumnLen(i))
		stmt.ColumnBytes(i, buf)
		return variant.ValueOf(buf)
	}
	return variant.ValueOf(nil)
}

func rowOf(stmt *sqlite.Stmt) map[string]*variant.Value {
	row := make(map[string]*variant.Value, stmt.ColumnCount())
	for i := 0; i < stmt.ColumnCount(); i++ {
		row[stmt.ColumnName(i)] = columnValue(stmt, i)
	}
	return row
}
