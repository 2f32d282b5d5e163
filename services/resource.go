package services

import (
	"context"
	"errors"

	"locker-booking/store"
)

// uniqueRule rejects writes whose value for Column is already held by
// another row.
type uniqueRule struct {
	Column string
	Msg    string
	// CreateMsg overrides Msg on POST.
	CreateMsg string
}

// refRule requires the value for Column to name an existing row of Target.
type refRule struct {
	Column string
	Target store.Table
	Msg    string
}

// resource carries the CRUD flow shared by every table: list, get, create,
// full replace, sparse patch and delete, each with its pre-checks.
type resource[T any] struct {
	store    store.Store
	table    store.Table
	notFound string
	// empty is returned as a 404 when a listing has no rows.
	empty  string
	unique []uniqueRule
	refs   []refRule
}

func (r *resource[T]) List(ctx context.Context) ([]T, error) {
	return r.find(ctx, r.table.All(), r.empty)
}

func (r *resource[T]) find(ctx context.Context, q store.Query, emptyMsg string) ([]T, error) {
	const op = "services.resource.find"

	var rows []T
	if err := r.store.Find(ctx, &rows, q); err != nil {
		return nil, storeErr(op, err)
	}
	if len(rows) == 0 && emptyMsg != "" {
		return nil, NotFound(emptyMsg)
	}
	return rows, nil
}

func (r *resource[T]) Get(ctx context.Context, id uint) (T, error) {
	const op = "services.resource.Get"

	var row T
	if err := r.store.First(ctx, &row, r.table.ByKey(id)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return row, NotFound(r.notFound)
		}
		return row, storeErr(op, err)
	}
	return row, nil
}

// create inserts row after the uniqueness and reference checks on values.
func (r *resource[T]) create(ctx context.Context, row *T, values map[string]any) error {
	const op = "services.resource.create"

	return r.store.Transaction(ctx, func(tx store.Store) error {
		if err := r.checkUnique(ctx, tx, values, nil, true); err != nil {
			return err
		}
		if err := r.checkRefs(ctx, tx, values); err != nil {
			return err
		}
		if err := tx.Create(ctx, row); err != nil {
			return r.writeErr(op, err, true)
		}
		return nil
	})
}

// replace overwrites every replaceable column. Existence is not checked
// up front: zero affected rows means the row does not exist.
func (r *resource[T]) replace(ctx context.Context, id uint, values map[string]any) error {
	const op = "services.resource.replace"

	st, err := store.BuildReplace(r.table, id, values)
	if err != nil {
		return err
	}

	return r.store.Transaction(ctx, func(tx store.Store) error {
		if err := r.checkUnique(ctx, tx, values, &id, false); err != nil {
			return err
		}
		if err := r.checkRefs(ctx, tx, values); err != nil {
			return err
		}

		n, err := tx.Exec(ctx, st)
		if err != nil {
			return r.writeErr(op, err, false)
		}
		if n == 0 {
			return NotFound(r.notFound)
		}
		return nil
	})
}

// patch applies the present candidates only. The statement is assembled
// before the store is touched, so an empty patch costs no queries.
func (r *resource[T]) patch(ctx context.Context, id uint, candidates map[string]any) error {
	const op = "services.resource.patch"

	st, err := store.BuildUpdate(r.table, id, candidates)
	if err != nil {
		return err
	}

	return r.store.Transaction(ctx, func(tx store.Store) error {
		found, err := store.Exists(ctx, tx, r.table.ByKey(id))
		if err != nil {
			return storeErr(op, err)
		}
		if !found {
			return NotFound(r.notFound)
		}

		if err := r.checkUnique(ctx, tx, candidates, &id, false); err != nil {
			return err
		}
		if err := r.checkRefs(ctx, tx, candidates); err != nil {
			return err
		}

		n, err := tx.Exec(ctx, st)
		if err != nil {
			return r.writeErr(op, err, false)
		}
		if n == 0 {
			return NoOp("no given values to update")
		}
		return nil
	})
}

func (r *resource[T]) Delete(ctx context.Context, id uint) error {
	const op = "services.resource.Delete"

	return r.store.Transaction(ctx, func(tx store.Store) error {
		found, err := store.Exists(ctx, tx, r.table.ByKey(id))
		if err != nil {
			return storeErr(op, err)
		}
		if !found {
			return NotFound(r.notFound)
		}

		if _, err := tx.Exec(ctx, store.BuildDelete(r.table, id)); err != nil {
			return storeErr(op, err)
		}
		return nil
	})
}

// checkUnique looks for another row already holding a unique value. exclude
// is the row being written, if it already exists.
func (r *resource[T]) checkUnique(ctx context.Context, s store.Store, values map[string]any, exclude *uint, creating bool) error {
	const op = "services.resource.checkUnique"

	for _, rule := range r.unique {
		v, ok := values[rule.Column]
		if !ok {
			continue
		}

		q := r.table.Where(rule.Column, v)
		if exclude != nil {
			q = q.And(r.table.Key+" <> ?", *exclude)
		}

		taken, err := store.Exists(ctx, s, q)
		if err != nil {
			return storeErr(op, err)
		}
		if taken {
			return Conflict(rule.message(creating))
		}
	}
	return nil
}

func (r *resource[T]) checkRefs(ctx context.Context, s store.Store, values map[string]any) error {
	const op = "services.resource.checkRefs"

	for _, ref := range r.refs {
		v, ok := values[ref.Column]
		if !ok {
			continue
		}

		found, err := store.Exists(ctx, s, ref.Target.ByKey(v))
		if err != nil {
			return storeErr(op, err)
		}
		if !found {
			return NotFound(ref.Msg)
		}
	}
	return nil
}

// writeErr reports a unique index violation that got past checkUnique
// (a concurrent writer) the same way checkUnique would have.
func (r *resource[T]) writeErr(op string, err error, creating bool) error {
	if errors.Is(err, store.ErrDuplicate) && len(r.unique) > 0 {
		return Conflict(r.unique[0].message(creating))
	}
	return storeErr(op, err)
}

func (u uniqueRule) message(creating bool) string {
	if creating && u.CreateMsg != "" {
		return u.CreateMsg
	}
	return u.Msg
}
