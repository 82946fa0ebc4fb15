package sqlite

import (
	"errors"

	"zombiezen.com/go/sqlite"
)

// Tx is a BEGIN/COMMIT/ROLLBACK transaction on the wrapped connection.
type Tx struct {
	db   *DB
	done bool
}

// Begin opens a deferred transaction.
func (db *DB) Begin() (*Tx, error) {
	if err := db.Execute("BEGIN;", nil); err != nil {
		return nil, err
	}
	return &Tx{db: db}, nil
}

// Commit makes the transaction's changes permanent.
func (tx *Tx) Commit() error {
	if tx.done {
		return errors.New("sqlite: transaction already finished")
	}
	if err := tx.db.Execute("COMMIT;", nil); err != nil {
		return err
	}
	tx.done = true
	return nil
}

// Rollback discards the transaction's changes. After a Commit, or a
// previous Rollback, it is a no-op, so it can be deferred.
func (tx *Tx) Rollback() error {
	if tx.done {
		return nil
	}
	if err := tx.db.Execute("ROLLBACK;", nil); err != nil {
		return err
	}
	tx.done = true
	return nil
}

// Backup is an in-progress online copy of one database into another.
type Backup struct {
	backup *sqlite.Backup
}

// Backup starts copying this database into dst, page by page.
func (db *DB) Backup(dst *DB) (*Backup, error) {
	b, err := sqlite.NewBackup(dst.conn, "main", db.conn, "main")
	if err != nil {
		return nil, err
	}
	return &Backup{backup: b}, nil
}

// Step copies up to pages pages and reports whether more remain; a
// negative count copies everything at once.
func (b *Backup) Step(pages int) (bool, error) {
	return b.backup.Step(pages)
}

// Remaining reports the number of pages still to copy.
func (b *Backup) Remaining() int {
	return b.backup.Remaining()
}

// PageCount reports the page count of the source database.
func (b *Backup) PageCount() int {
	return b.backup.PageCount()
}

// Close ends the backup and releases its resources.
func (b *Backup) Close() error {
	return b.backup.Close()
}
