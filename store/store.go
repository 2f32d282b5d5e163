// Package store is the persistence capability handed to services. Services
// never hold a *gorm.DB; they receive a Store so tests can observe or replace it.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

// Query is a read against a single table.
type Query struct {
	Table string
	Where string
	Args  []any
	Order string
	// Lock turns the read into a locking read (SELECT ... FOR UPDATE) when
	// the backing database supports it.
	Lock bool
}

// And narrows q with one more condition.
func (q Query) And(cond string, args ...any) Query {
	if q.Where == "" {
		q.Where = cond
	} else {
		q.Where = q.Where + " AND " + cond
	}
	q.Args = append(append([]any{}, q.Args...), args...)
	return q
}

type Store interface {
	Count(ctx context.Context, q Query) (int64, error)
	// Find scans every matching row into dest, a pointer to a slice.
	Find(ctx context.Context, dest any, q Query) error
	// First scans one matching row into dest or returns ErrNotFound.
	First(ctx context.Context, dest any, q Query) error
	Create(ctx context.Context, row any) error
	// Exec runs a write and reports the number of affected rows.
	Exec(ctx context.Context, st Statement) (int64, error)
	// LockKey holds a lock on (scope, key) until the surrounding transaction
	// ends, so transactions touching the same key run one after another even
	// when no row exists yet to lock.
	LockKey(ctx context.Context, scope string, key int64) error
	// Transaction runs fn against a Store bound to one transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

func Exists(ctx context.Context, s Store, q Query) (bool, error) {
	n, err := s.Count(ctx, q)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Gorm implements Store on top of a *gorm.DB.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (g *Gorm) query(ctx context.Context, q Query) *gorm.DB {
	tx := g.db.WithContext(ctx).Table(q.Table)
	if q.Where != "" {
		tx = tx.Where(q.Where, q.Args...)
	}
	if q.Order != "" {
		tx = tx.Order(q.Order)
	}
	// SQLite has no row locks; its writers are serialized by the database lock.
	if q.Lock && g.db.Dialector.Name() != "sqlite" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func (g *Gorm) Count(ctx context.Context, q Query) (int64, error) {
	var n int64
	if err := g.query(ctx, q).Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}

func (g *Gorm) Find(ctx context.Context, dest any, q Query) error {
	return translate(g.query(ctx, q).Find(dest).Error)
}

func (g *Gorm) First(ctx context.Context, dest any, q Query) error {
	err := g.query(ctx, q).Take(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return translate(err)
}

func (g *Gorm) Create(ctx context.Context, row any) error {
	return translate(g.db.WithContext(ctx).Create(row).Error)
}

func (g *Gorm) Exec(ctx context.Context, st Statement) (int64, error) {
	res := g.db.WithContext(ctx).Exec(st.SQL, st.Args...)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (g *Gorm) LockKey(ctx context.Context, scope string, key int64) error {
	st, ok := advisoryLock(g.db.Dialector.Name(), scope, key)
	if !ok {
		return nil
	}
	return translate(g.db.WithContext(ctx).Exec(st.SQL, st.Args...).Error)
}

// advisoryLock returns the statement taking a transaction-scoped lock on
// (scope, key). MySQL needs none: the FOR UPDATE read of an indexed column
// takes next-key locks covering the gap new rows would go into. SQLite
// serializes writers.
func advisoryLock(dialect, scope string, key int64) (Statement, bool) {
	if dialect != "postgres" {
		return Statement{}, false
	}
	return Statement{
		SQL:  "SELECT pg_advisory_xact_lock(hashtext(?), ?)",
		Args: []any{scope, key},
	}, true
}

func (g *Gorm) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Gorm{db: tx})
	})
}

// translate maps driver-specific unique violations onto ErrDuplicate.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}

	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}

	return err
}
