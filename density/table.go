// Copyright (c) 2023, The MSNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import (
	"io"
	"sort"
	"strconv"

	"github.com/emer/emergent/v2/params"
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"

	"github.com/msnlab/msnmech/mech"
)

// TableCols are the required columns of a conductance table.
var TableCols = []string{"Cell", "Mechanism", "Compartment", "Value"}

// Table is the conductance table: one row per cell type, mechanism and
// compartment class, giving the peak density (the gbar or pbar fed to the
// distance profiles).  Rows with cell "all" are defaults that a row for a
// specific cell type overrides.
type Table struct {
	Tab *etable.Table `desc:"underlying table with columns Cell, Mechanism, Compartment, Value"`
}

// NewTable makes an empty conductance table with the standard schema.
func NewTable() *Table {
	dt := &etable.Table{}
	sch := etable.Schema{
		{Name: "Cell", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "Mechanism", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "Compartment", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "Value", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	dt.SetFromSchema(sch, 0)
	return &Table{Tab: dt}
}

// ReadTable reads a tab-separated conductance table with a header row.
func ReadTable(r io.Reader) (*Table, error) {
	dt := &etable.Table{}
	if err := dt.ReadCSV(r, etable.Tab); err != nil {
		return nil, err
	}
	for _, cn := range TableCols {
		if dt.ColIdx(cn) < 0 {
			return nil, &mech.ConfigError{Mech: "table", Param: cn, Msg: "missing column"}
		}
	}
	return &Table{Tab: dt}, nil
}

// WriteTable writes the table tab-separated with a header row.
func (t *Table) WriteTable(w io.Writer) error {
	return t.Tab.WriteCSV(w, etable.Tab, etable.Headers)
}

// Add appends one row.
func (t *Table) Add(cell, mechNm, comp string, val float32) {
	dt := t.Tab
	row := dt.Rows
	dt.SetNumRows(row + 1)
	dt.SetCellString("Cell", row, cell)
	dt.SetCellString("Mechanism", row, mechNm)
	dt.SetCellString("Compartment", row, comp)
	dt.SetCellFloat("Value", row, float64(val))
}

// Value returns the density for the given cell type, mechanism and
// compartment class.  A row for the exact cell type overrides an "all"
// row; no applicable row at all is a ConfigError, since every inserted
// mechanism must have a density.
func (t *Table) Value(cell, mechNm, comp string) (float32, error) {
	dt := t.Tab
	found := false
	var val float32
	for ri := 0; ri < dt.Rows; ri++ {
		if dt.CellString("Mechanism", ri) != mechNm || dt.CellString("Compartment", ri) != comp {
			continue
		}
		switch dt.CellString("Cell", ri) {
		case cell:
			return float32(dt.CellFloat("Value", ri)), nil
		case "all":
			val = float32(dt.CellFloat("Value", ri))
			found = true
		}
	}
	if !found {
		return 0, &mech.ConfigError{Mech: mechNm, Param: comp, Msg: "no density table row for cell " + cell}
	}
	return val, nil
}

// Sheet builds the parameter sheet for one cell type and compartment
// class: one #mechanism selector per applicable row (with the "all"
// overriding already resolved), setting Mech.Gbar.  Apply the sheet to
// each mechanism instance in the compartment.
func (t *Table) Sheet(cell, comp string) *params.Sheet {
	dt := t.Tab
	vals := map[string]float32{}
	exact := map[string]bool{}
	for ri := 0; ri < dt.Rows; ri++ {
		if dt.CellString("Compartment", ri) != comp {
			continue
		}
		c := dt.CellString("Cell", ri)
		if c != cell && c != "all" {
			continue
		}
		mnm := dt.CellString("Mechanism", ri)
		if c == "all" && exact[mnm] {
			continue
		}
		vals[mnm] = float32(dt.CellFloat("Value", ri))
		if c == cell {
			exact[mnm] = true
		}
	}
	nms := make([]string, 0, len(vals))
	for mnm := range vals {
		nms = append(nms, mnm)
	}
	sort.Strings(nms)
	sht := &params.Sheet{}
	for _, mnm := range nms {
		*sht = append(*sht, &params.Sel{
			Sel:  "#" + mnm,
			Desc: cell + " " + comp + " density",
			Params: params.Params{
				"Mech.Gbar": strconv.FormatFloat(float64(vals[mnm]), 'g', -1, 32),
			},
		})
	}
	return sht
}
