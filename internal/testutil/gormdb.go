// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var errNoQueries = errors.New("testutil: fake pool does not run queries")

// TxRecorder counts transaction outcomes seen by a fake connection pool.
type TxRecorder struct {
	mu        sync.Mutex
	Begins    int
	Commits   int
	Rollbacks int
	Execs     []string
	CommitErr error
}

func (r *TxRecorder) Snapshot() (begins, commits, rollbacks int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Begins, r.Commits, r.Rollbacks
}

// NewFakeTxDB returns a gorm handle whose Begin/Commit/Rollback are recorded
// instead of reaching a database. Queries always fail; inside a transaction
// Exec is recorded and succeeds, which is enough for savepoints.
func NewFakeTxDB(t *testing.T) (*gorm.DB, *TxRecorder) {
	t.Helper()

	rec := &TxRecorder{}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: &fakePool{rec: rec}}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open fake db: %v", err)
	}
	return db, rec
}

type fakePool struct {
	rec *TxRecorder
}

func (p *fakePool) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, errNoQueries
}

func (p *fakePool) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, errNoQueries
}

func (p *fakePool) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, errNoQueries
}

func (p *fakePool) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (p *fakePool) BeginTx(ctx context.Context, opts *sql.TxOptions) (gorm.ConnPool, error) {
	p.rec.mu.Lock()
	p.rec.Begins++
	p.rec.mu.Unlock()
	return &fakeTx{fakePool: p}, nil
}

type fakeTx struct {
	*fakePool
	done bool
}

// ExecContext accepts savepoint statements so nested transactions work.
func (tx *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	tx.rec.mu.Lock()
	tx.rec.Execs = append(tx.rec.Execs, query)
	tx.rec.mu.Unlock()
	return driver.RowsAffected(0), nil
}

func (tx *fakeTx) Commit() error {
	tx.rec.mu.Lock()
	defer tx.rec.mu.Unlock()
	if tx.rec.CommitErr != nil {
		return tx.rec.CommitErr
	}
	tx.done = true
	tx.rec.Commits++
	return nil
}

func (tx *fakeTx) Rollback() error {
	tx.rec.mu.Lock()
	defer tx.rec.mu.Unlock()
	if tx.done {
		return sql.ErrTxDone
	}
	tx.done = true
	tx.rec.Rollbacks++
	return nil
}
