package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"locker-booking/config"
	"locker-booking/logger"
	"locker-booking/models"
	"locker-booking/store"
)

func newTestStore(t *testing.T) *store.Gorm {
	t.Helper()

	db, err := config.ConnectDatabase(config.Database{
		Driver:   config.DriverSQLite,
		Name:     ":memory:",
		LogLevel: "silent",
	}, logger.Discard())
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return store.NewGorm(db)
}

// recorder counts the calls reaching a Store, including those made inside
// transactions.
type recorder struct {
	mu    sync.Mutex
	calls []string
	execs []store.Statement
	locks []string
}

func (r *recorder) add(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func (r *recorder) Locks() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.locks...)
}

func (r *recorder) Execs() []store.Statement {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]store.Statement(nil), r.execs...)
}

type recordingStore struct {
	store.Store
	rec *recorder
}

func newRecordingStore(s store.Store) *recordingStore {
	return &recordingStore{Store: s, rec: &recorder{}}
}

func (s *recordingStore) Count(ctx context.Context, q store.Query) (int64, error) {
	s.rec.add("Count")
	return s.Store.Count(ctx, q)
}

func (s *recordingStore) Find(ctx context.Context, dest any, q store.Query) error {
	s.rec.add("Find")
	return s.Store.Find(ctx, dest, q)
}

func (s *recordingStore) First(ctx context.Context, dest any, q store.Query) error {
	s.rec.add("First")
	return s.Store.First(ctx, dest, q)
}

func (s *recordingStore) Create(ctx context.Context, row any) error {
	s.rec.add("Create")
	return s.Store.Create(ctx, row)
}

func (s *recordingStore) Exec(ctx context.Context, st store.Statement) (int64, error) {
	s.rec.add("Exec")
	s.rec.mu.Lock()
	s.rec.execs = append(s.rec.execs, st)
	s.rec.mu.Unlock()
	return s.Store.Exec(ctx, st)
}

func (s *recordingStore) LockKey(ctx context.Context, scope string, key int64) error {
	s.rec.add("LockKey")
	s.rec.mu.Lock()
	s.rec.locks = append(s.rec.locks, fmt.Sprintf("%s:%d", scope, key))
	s.rec.mu.Unlock()
	return s.Store.LockKey(ctx, scope, key)
}

func (s *recordingStore) Transaction(ctx context.Context, fn func(tx store.Store) error) error {
	s.rec.add("Transaction")
	return s.Store.Transaction(ctx, func(tx store.Store) error {
		return fn(&recordingStore{Store: tx, rec: s.rec})
	})
}

func seedUser(t *testing.T, s store.Store, email string) models.User {
	t.Helper()

	user, err := NewUserService(s).Create(context.Background(), models.CreateUserRequest{
		Email:       email,
		Phone:       "0612345678",
		Firstname:   "Anna",
		Lastname:    "Visser",
		Housenumber: "12",
		Streetname:  "Main Street",
		Postalcode:  "1234 AB",
		Country:     "Netherlands",
	})
	require.NoError(t, err)
	return user
}

func seedCategory(t *testing.T, s store.Store, name string) models.Category {
	t.Helper()

	category, err := NewCategoryService(s).Create(context.Background(), models.CategoryRequest{Name: name})
	require.NoError(t, err)
	return category
}
