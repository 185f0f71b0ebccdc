package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	values []any
}

func (r *fakeRow) Scan(dest ...any) error {
	for i, d := range dest {
		switch target := d.(type) {
		case *string:
			*target = r.values[i].(string)
		case *int:
			*target = r.values[i].(int)
		case *bool:
			*target = r.values[i].(bool)
		}
	}
	return nil
}

func TestScanStructByDBTags(t *testing.T) {
	type record struct {
		Name     string `db:"name" json:"name"`
		Ignored  string `json:"ignored"`
		Count    int    `db:"count"`
		Skipped  string `db:"-"`
		Favorite bool   `db:"favorite"`
	}

	row := &fakeRow{values: []any{"hello", 42, true}}

	var dest record
	err := ScanStructByDBTags(row, &dest)
	require.NoError(t, err)

	assert.Equal(t, "hello", dest.Name)
	assert.Equal(t, 42, dest.Count)
	assert.True(t, dest.Favorite)
	assert.Empty(t, dest.Ignored)
	assert.Empty(t, dest.Skipped)
}

func TestScanStructByDBTagsRejectsNonStruct(t *testing.T) {
	row := &fakeRow{}

	assert.Error(t, ScanStructByDBTags(row, "not a struct"))

	var n int
	assert.Error(t, ScanStructByDBTags(row, &n))
}
