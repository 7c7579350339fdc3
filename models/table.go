package models

import (
	"errors"
	"fmt"
	"slices"

	ex "github.com/Johnmustcode/FinancialTools/extensions"
)

var (
	ErrColumnNotFound  = errors.New("column not found")
	ErrColumnLength    = errors.New("column length does not match table")
	ErrDuplicateColumn = errors.New("duplicate column")
)

type Column struct {
	Name   string
	Values []float64
}

// Table is an ordered set of named, equal length float columns. Row i maps
// every column name to the value at index i.
type Table struct {
	columns []Column
	index   map[string]int
	rows    int
}

// NewTable builds a table from the given columns, copying their values.
// All columns must have the same length and unique names.
func NewTable(columns ...Column) (*Table, error) {
	t := &Table{
		columns: make([]Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}

	for _, c := range columns {
		if t.Has(c.Name) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, c.Name)
		}
		if err := t.Set(c.Name, c.Values); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Len returns the number of rows
func (t *Table) Len() int {
	return t.rows
}

// Names returns the column names in insertion order
func (t *Table) Names() []string {
	return ex.Map(t.columns, func(c Column) string { return c.Name })
}

func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns a copy of the named column's values
func (t *Table) Column(name string) ([]float64, error) {
	idx, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
	}
	return slices.Clone(t.columns[idx].Values), nil
}

// Columns returns a deep copy of every column in order
func (t *Table) Columns() []Column {
	return ex.Map(t.columns, func(c Column) Column {
		return Column{Name: c.Name, Values: slices.Clone(c.Values)}
	})
}

// Row returns row i keyed by column name
func (t *Table) Row(i int) (map[string]float64, error) {
	if i < 0 || i >= t.rows {
		return nil, fmt.Errorf("row %d out of range for table with %d rows", i, t.rows)
	}

	row := make(map[string]float64, len(t.columns))
	for _, c := range t.columns {
		row[c.Name] = c.Values[i]
	}
	return row, nil
}

// Copy returns a deep copy of the table
func (t *Table) Copy() *Table {
	res := &Table{
		columns: t.Columns(),
		index:   make(map[string]int, len(t.index)),
		rows:    t.rows,
	}
	for name, idx := range t.index {
		res.index[name] = idx
	}
	return res
}

// Set overwrites the named column if it exists, otherwise appends it. The
// length of values must match the row count unless the table has no columns.
func (t *Table) Set(name string, values []float64) error {
	if len(t.columns) > 0 && len(values) != t.rows {
		return fmt.Errorf("%w: %s has %d values, table has %d rows", ErrColumnLength, name, len(values), t.rows)
	}

	if t.index == nil {
		t.index = make(map[string]int)
	}

	if idx, ok := t.index[name]; ok {
		t.columns[idx].Values = slices.Clone(values)
		return nil
	}

	t.index[name] = len(t.columns)
	t.columns = append(t.columns, Column{Name: name, Values: slices.Clone(values)})
	t.rows = len(values)
	return nil
}

// Broadcast writes value into every row of the named column
func (t *Table) Broadcast(name string, value float64) {
	// length always matches the row count, so Set cannot fail here
	_ = t.Set(name, ex.Fill(t.rows, value))
}
