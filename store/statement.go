package store

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrNoFields is returned by BuildUpdate when none of the table's columns has a candidate value.
	ErrNoFields = errors.New("there are no fields to update")
	// ErrMissingField is returned by BuildReplace when a replaceable column has no value.
	ErrMissingField = errors.New("missing field")
)

// Table describes a resource table: its name, its key column and the columns
// that may be written, in the order they appear in generated statements.
type Table struct {
	Name    string
	Key     string
	Columns []string
}

// Replaceable returns the columns a full replace must supply. The key is
// addressed by the WHERE clause, so it is never part of the SET list.
func (t Table) Replaceable() []string {
	cols := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if c != t.Key {
			cols = append(cols, c)
		}
	}
	return cols
}

// ByKey selects the row identified by id.
func (t Table) ByKey(id any) Query {
	return Query{Table: t.Name, Where: t.Key + " = ?", Args: []any{id}}
}

// Where selects the rows whose column equals value.
func (t Table) Where(column string, value any) Query {
	return Query{Table: t.Name, Where: column + " = ?", Args: []any{value}}
}

// All selects every row ordered by key.
func (t Table) All() Query {
	return Query{Table: t.Name, Order: t.Key}
}

// Statement is a parameterized SQL write.
type Statement struct {
	SQL  string
	Args []any
}

// BuildUpdate assembles a sparse UPDATE touching only the columns present in
// candidates. Presence means the key exists in the map; zero values count.
// Columns are emitted in t.Columns order and the id is bound last.
func BuildUpdate(t Table, id any, candidates map[string]any) (Statement, error) {
	clauses := make([]string, 0, len(t.Columns))
	args := make([]any, 0, len(t.Columns)+1)

	for _, col := range t.Columns {
		v, ok := candidates[col]
		if !ok {
			continue
		}
		clauses = append(clauses, col+" = ?")
		args = append(args, v)
	}

	if len(clauses) == 0 {
		return Statement{}, ErrNoFields
	}

	args = append(args, id)
	return Statement{
		SQL:  fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", t.Name, strings.Join(clauses, ", "), t.Key),
		Args: args,
	}, nil
}

// BuildReplace assembles an UPDATE over every replaceable column.
func BuildReplace(t Table, id any, values map[string]any) (Statement, error) {
	cols := t.Replaceable()
	clauses := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)

	for _, col := range cols {
		v, ok := values[col]
		if !ok {
			return Statement{}, fmt.Errorf("%w: %s", ErrMissingField, col)
		}
		clauses = append(clauses, col+" = ?")
		args = append(args, v)
	}

	args = append(args, id)
	return Statement{
		SQL:  fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", t.Name, strings.Join(clauses, ", "), t.Key),
		Args: args,
	}, nil
}

func BuildDelete(t Table, id any) Statement {
	return Statement{
		SQL:  fmt.Sprintf("DELETE FROM %s WHERE %s = ?", t.Name, t.Key),
		Args: []any{id},
	}
}

// Candidates collects the `column`-tagged fields of a request struct.
// A nil pointer field is absent; any other field is present with its
// (dereferenced) value, zero values included.
func Candidates(v any) map[string]any {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return nil
	}

	rt := rv.Type()
	out := make(map[string]any, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		col := f.Tag.Get("column")
		if col == "" || col == "-" || !f.IsExported() {
			continue
		}

		fv := rv.Field(i)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		out[col] = fv.Interface()
	}
	return out
}
