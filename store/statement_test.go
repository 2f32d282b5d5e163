package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var widgets = Table{Name: "widgets", Key: "widget_id", Columns: []string{"a", "b", "c"}}

func TestBuildUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		candidates map[string]any
		wantSQL    string
		wantArgs   []any
		wantErr    error
	}{
		{
			name:       "only present columns in declared order",
			candidates: map[string]any{"c": "x", "a": 1},
			wantSQL:    "UPDATE widgets SET a = ?, c = ? WHERE widget_id = ?",
			wantArgs:   []any{1, "x", 9},
		},
		{
			name:       "zero values are present",
			candidates: map[string]any{"a": 0, "b": "", "c": false},
			wantSQL:    "UPDATE widgets SET a = ?, b = ?, c = ? WHERE widget_id = ?",
			wantArgs:   []any{0, "", false, 9},
		},
		{
			name:       "unknown columns are ignored",
			candidates: map[string]any{"b": 2, "password": "x"},
			wantSQL:    "UPDATE widgets SET b = ? WHERE widget_id = ?",
			wantArgs:   []any{2, 9},
		},
		{
			name:       "nothing present",
			candidates: map[string]any{},
			wantErr:    ErrNoFields,
		},
		{
			name:       "only unknown columns",
			candidates: map[string]any{"d": 1},
			wantErr:    ErrNoFields,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st, err := BuildUpdate(widgets, 9, tt.candidates)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, st.SQL)
			assert.Equal(t, tt.wantArgs, st.Args)
		})
	}
}

func TestBuildUpdate_FromCandidates(t *testing.T) {
	t.Parallel()

	one, x := 1, "x"
	req := struct {
		A *int    `column:"a"`
		B *int    `column:"b"`
		C *string `column:"c"`
	}{A: &one, C: &x}

	st, err := BuildUpdate(widgets, 9, Candidates(req))
	require.NoError(t, err)
	assert.Equal(t, "UPDATE widgets SET a = ?, c = ? WHERE widget_id = ?", st.SQL)
	assert.Equal(t, []any{1, "x", 9}, st.Args)
}

func TestBuildReplace(t *testing.T) {
	t.Parallel()

	lockers := Table{Name: "lockers", Key: "locker_id", Columns: []string{"locker_id", "booking_id", "moment_delivered"}}

	st, err := BuildReplace(lockers, 4, map[string]any{"booking_id": 2, "moment_delivered": "2025-03-13 10:00:00", "locker_id": 99})
	require.NoError(t, err)
	assert.Equal(t, "UPDATE lockers SET booking_id = ?, moment_delivered = ? WHERE locker_id = ?", st.SQL)
	assert.Equal(t, []any{2, "2025-03-13 10:00:00", 4}, st.Args)

	_, err = BuildReplace(lockers, 4, map[string]any{"booking_id": 2})
	require.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "moment_delivered")
}

func TestBuildDelete(t *testing.T) {
	t.Parallel()

	st := BuildDelete(widgets, 3)
	assert.Equal(t, "DELETE FROM widgets WHERE widget_id = ?", st.SQL)
	assert.Equal(t, []any{3}, st.Args)
}

func TestCandidates(t *testing.T) {
	t.Parallel()

	zero := 0
	req := struct {
		Name    string  `column:"name"`
		Price   *int    `column:"price"`
		Size    *string `column:"size"`
		Ignored string
		hidden  string `column:"hidden"`
	}{Name: "", Price: &zero, hidden: "x"}

	got := Candidates(&req)
	assert.Equal(t, map[string]any{"name": "", "price": 0}, got)
	assert.Nil(t, Candidates(42))
}

func TestQueryAnd(t *testing.T) {
	t.Parallel()

	base := widgets.Where("a", 1)
	q := base.And("widget_id <> ?", 5)

	assert.Equal(t, "a = ? AND widget_id <> ?", q.Where)
	assert.Equal(t, []any{1, 5}, q.Args)
	assert.Equal(t, []any{1}, base.Args, "And must not alias the original args")

	q = widgets.All().And("b LIKE ?", "%x%")
	assert.Equal(t, "b LIKE ?", q.Where)
	assert.Equal(t, "widget_id", q.Order)
}

func TestTableReplaceable(t *testing.T) {
	t.Parallel()

	lockers := Table{Name: "lockers", Key: "locker_id", Columns: []string{"locker_id", "booking_id"}}
	assert.Equal(t, []string{"booking_id"}, lockers.Replaceable())
	assert.Equal(t, []string{"a", "b", "c"}, widgets.Replaceable())
}

func TestAdvisoryLock(t *testing.T) {
	t.Parallel()

	st, ok := advisoryLock("postgres", "bookings.place_number", 5)
	require.True(t, ok)
	assert.Equal(t, "SELECT pg_advisory_xact_lock(hashtext(?), ?)", st.SQL)
	assert.Equal(t, []any{"bookings.place_number", int64(5)}, st.Args)

	for _, dialect := range []string{"mysql", "sqlite"} {
		_, ok := advisoryLock(dialect, "bookings.place_number", 5)
		assert.False(t, ok, dialect)
	}
}
