// Package array holds the labeled multi-dimensional arrays consumed by the
// figure functions. A DataArray is a named, row-major float64 block with
// named dimensions, per-dimension coordinates and free-form attributes; a
// Dataset is an ordered collection of DataArrays sharing attributes. The
// model is deliberately small: selection by index, squeezing and NaN-aware
// extrema are all the plotting layer needs.
package array

import (
	"fmt"
	"math"
	"time"
)

// Attrs are free-form metadata attached to arrays and datasets,
// e.g. "long_name", "units", "description", "history".
type Attrs map[string]string

// Obj is a labeled array object: either a *DataArray or a *Dataset.
type Obj interface {
	HasDim(name string) bool
	Attr(key string) (string, bool)
}

// DataArray is a named block of float64 values with labeled dimensions.
type DataArray struct {
	Name   string
	Dims   []string
	Shape  []int
	Values []float64 // row-major
	Coords map[string][]float64
	Labels map[string][]string // string-valued coordinates, e.g. "uncertainty"
	Times  []time.Time         // coordinate of the "time" dim, when present
	Attrs  Attrs
}

// New builds a DataArray and validates that the shape matches the values.
func New(name string, dims []string, shape []int, values []float64) (*DataArray, error) {
	if len(dims) != len(shape) {
		return nil, fmt.Errorf("array %q: %d dims for %d shape entries", name, len(dims), len(shape))
	}
	n := 1
	for _, s := range shape {
		if s <= 0 {
			return nil, fmt.Errorf("array %q: non-positive dim size %d", name, s)
		}
		n *= s
	}
	if n != len(values) {
		return nil, fmt.Errorf("array %q: shape wants %d values, got %d", name, n, len(values))
	}
	return &DataArray{
		Name:   name,
		Dims:   dims,
		Shape:  shape,
		Values: values,
		Coords: map[string][]float64{},
		Labels: map[string][]string{},
		Attrs:  Attrs{},
	}, nil
}

// MustNew is New for static test fixtures; it panics on malformed input.
func MustNew(name string, dims []string, shape []int, values []float64) *DataArray {
	da, err := New(name, dims, shape, values)
	if err != nil {
		panic(err)
	}
	return da
}

func (da *DataArray) Len() int  { return len(da.Values) }
func (da *DataArray) NDim() int { return len(da.Dims) }

func (da *DataArray) HasDim(name string) bool {
	return da.DimIndex(name) >= 0
}

// DimIndex returns the axis of the named dimension, or -1.
func (da *DataArray) DimIndex(name string) int {
	for i, d := range da.Dims {
		if d == name {
			return i
		}
	}
	return -1
}

// DimLen returns the size of the named dimension, or 0 if absent.
func (da *DataArray) DimLen(name string) int {
	if i := da.DimIndex(name); i >= 0 {
		return da.Shape[i]
	}
	return 0
}

// Attr looks up an attribute on the array.
func (da *DataArray) Attr(key string) (string, bool) {
	v, ok := da.Attrs[key]
	return v, ok
}

// Coord returns the numeric coordinate of a dimension, or nil.
func (da *DataArray) Coord(dim string) []float64 { return da.Coords[dim] }

// strides returns the row-major stride of each axis.
func (da *DataArray) strides() []int {
	st := make([]int, len(da.Shape))
	acc := 1
	for i := len(da.Shape) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= da.Shape[i]
	}
	return st
}

// At returns the value at the given index along each dimension.
func (da *DataArray) At(idx ...int) float64 {
	if len(idx) != len(da.Shape) {
		panic(fmt.Sprintf("array %q: At with %d indices, want %d", da.Name, len(idx), len(da.Shape)))
	}
	off := 0
	for i, st := range da.strides() {
		off += idx[i] * st
	}
	return da.Values[off]
}

// SelIndex fixes one dimension at index i, returning an array of rank n-1.
// Coordinates along other dimensions are carried over.
func (da *DataArray) SelIndex(dim string, i int) (*DataArray, error) {
	ax := da.DimIndex(dim)
	if ax < 0 {
		return nil, fmt.Errorf("array %q: no dimension %q", da.Name, dim)
	}
	if i < 0 || i >= da.Shape[ax] {
		return nil, fmt.Errorf("array %q: index %d out of range for %q (size %d)", da.Name, i, dim, da.Shape[ax])
	}

	outDims := make([]string, 0, len(da.Dims)-1)
	outShape := make([]int, 0, len(da.Shape)-1)
	for j, d := range da.Dims {
		if j == ax {
			continue
		}
		outDims = append(outDims, d)
		outShape = append(outShape, da.Shape[j])
	}

	n := 1
	for _, s := range outShape {
		n *= s
	}
	out := make([]float64, 0, n)
	st := da.strides()
	// walk the full array, keeping entries whose index along ax equals i
	var walk func(axis, off int)
	walk = func(axis, off int) {
		if axis == len(da.Shape) {
			out = append(out, da.Values[off])
			return
		}
		if axis == ax {
			walk(axis+1, off+i*st[axis])
			return
		}
		for k := 0; k < da.Shape[axis]; k++ {
			walk(axis+1, off+k*st[axis])
		}
	}
	walk(0, 0)

	sub := &DataArray{
		Name:   da.Name,
		Dims:   outDims,
		Shape:  outShape,
		Values: out,
		Coords: map[string][]float64{},
		Labels: map[string][]string{},
		Times:  da.Times,
		Attrs:  da.Attrs,
	}
	for d, c := range da.Coords {
		if d != dim {
			sub.Coords[d] = c
		}
	}
	for d, c := range da.Labels {
		if d != dim {
			sub.Labels[d] = c
		}
	}
	if dim == "time" {
		sub.Times = nil
	}
	return sub, nil
}

// Squeeze drops all size-1 dimensions.
func (da *DataArray) Squeeze() *DataArray {
	out := da
	for {
		ax := -1
		for j, s := range out.Shape {
			if s == 1 {
				ax = j
				break
			}
		}
		if ax < 0 {
			return out
		}
		sq, err := out.SelIndex(out.Dims[ax], 0)
		if err != nil {
			return out
		}
		out = sq
	}
}

// MinMax returns the NaN-aware extrema of the values.
func (da *DataArray) MinMax() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range da.Values {
		if math.IsNaN(v) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Years returns the time coordinate as calendar years.
func (da *DataArray) Years() []float64 {
	ys := make([]float64, len(da.Times))
	for i, t := range da.Times {
		ys[i] = float64(t.Year())
	}
	return ys
}

// RequireDims errors unless the squeezed array has exactly the given rank.
func (da *DataArray) RequireDims(n int) error {
	if da.NDim() != n {
		return fmt.Errorf("array %q: want %d dimension(s), got %d (%v)", da.Name, n, da.NDim(), da.Dims)
	}
	return nil
}

// Dataset is an ordered collection of variables plus shared attributes.
type Dataset struct {
	names []string
	vars  map[string]*DataArray
	Attrs Attrs
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{vars: map[string]*DataArray{}, Attrs: Attrs{}}
}

// AddVar appends a variable, keeping insertion order. An existing variable
// of the same name is replaced in place.
func (ds *Dataset) AddVar(da *DataArray) {
	if _, ok := ds.vars[da.Name]; !ok {
		ds.names = append(ds.names, da.Name)
	}
	ds.vars[da.Name] = da
}

// VarNames returns variable names in insertion order.
func (ds *Dataset) VarNames() []string { return ds.names }

// Var returns a variable by name, or nil.
func (ds *Dataset) Var(name string) *DataArray { return ds.vars[name] }

// First returns the first variable, or nil for an empty dataset.
func (ds *Dataset) First() *DataArray {
	if len(ds.names) == 0 {
		return nil
	}
	return ds.vars[ds.names[0]]
}

// NumVars returns the number of variables.
func (ds *Dataset) NumVars() int { return len(ds.names) }

// HasDim reports whether any variable carries the named dimension.
func (ds *Dataset) HasDim(name string) bool {
	for _, v := range ds.vars {
		if v.HasDim(name) {
			return true
		}
	}
	return false
}

// Attr looks up an attribute: the first variable's attributes win, then the
// dataset's own.
func (ds *Dataset) Attr(key string) (string, bool) {
	if first := ds.First(); first != nil {
		if v, ok := first.Attrs[key]; ok {
			return v, true
		}
	}
	v, ok := ds.Attrs[key]
	return v, ok
}
