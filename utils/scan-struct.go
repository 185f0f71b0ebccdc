package utils

import (
	"fmt"
	"reflect"
)

// RowScanner is satisfied by both *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

// ScanStructByDBTags scans a row into dest by walking its `db` tagged fields
// in declaration order. Struct field order must match the column order of the
// query (SELECT * against a table created in the same order, or an explicit
// column list).
func ScanStructByDBTags(row RowScanner, dest any) error {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("scan destination must be a pointer to struct, got %T", dest)
	}

	elem := v.Elem()
	t := elem.Type()

	var fields []any
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		fields = append(fields, elem.Field(i).Addr().Interface())
	}

	if len(fields) == 0 {
		return fmt.Errorf("no db tagged fields on %s", t.Name())
	}

	return row.Scan(fields...)
}
