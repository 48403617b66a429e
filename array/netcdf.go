package array

import (
	"fmt"
	"reflect"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
)

// LoadDataset reads every non-coordinate variable of a NetCDF file (classic
// or NetCDF-4) into a Dataset. One-dimensional variables whose name equals
// their dimension are treated as coordinates and attached to the data
// variables that use them; a "time" coordinate is CF-decoded to time.Time.
func LoadDataset(path string) (*Dataset, error) {
	group, err := netcdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer group.Close()

	names := group.ListVariables()

	// pass 1: coordinate variables
	coords := map[string]*ncVar{}
	for _, name := range names {
		v, err := group.GetVariable(name)
		if err != nil {
			return nil, fmt.Errorf("read %s/%s: %w", path, name, err)
		}
		nv, err := flattenVar(name, v)
		if err != nil {
			return nil, err
		}
		if len(nv.dims) == 1 && nv.dims[0] == name {
			coords[name] = nv
		}
	}

	ds := NewDataset()
	for k, v := range attrsToMap(group.Attributes()) {
		ds.Attrs[k] = v
	}

	// pass 2: data variables
	for _, name := range names {
		if _, isCoord := coords[name]; isCoord {
			continue
		}
		v, err := group.GetVariable(name)
		if err != nil {
			return nil, fmt.Errorf("read %s/%s: %w", path, name, err)
		}
		nv, err := flattenVar(name, v)
		if err != nil {
			return nil, err
		}

		da, err := New(name, nv.dims, nv.shape, nv.values)
		if err != nil {
			return nil, err
		}
		da.Attrs = nv.attrs

		for _, dim := range nv.dims {
			c, ok := coords[dim]
			if !ok {
				continue
			}
			if dim == "time" {
				times, err := DecodeCFTime(c.values, c.attrs["units"], c.attrs["calendar"])
				if err != nil {
					return nil, fmt.Errorf("decode time of %s: %w", name, err)
				}
				da.Times = times
				continue
			}
			da.Coords[dim] = c.values
		}
		ds.AddVar(da)
	}

	if ds.NumVars() == 0 {
		return nil, fmt.Errorf("%s: no data variables", path)
	}
	return ds, nil
}

type ncVar struct {
	dims   []string
	shape  []int
	values []float64
	attrs  Attrs
}

// flattenVar converts the nested slices returned by the NetCDF reader into
// a flat row-major float64 slice plus its shape.
func flattenVar(name string, v *api.Variable) (*ncVar, error) {
	nv := &ncVar{
		dims:  v.Dimensions,
		attrs: attrsToMap(v.Attributes),
	}

	rv := reflect.ValueOf(v.Values)
	// shape from the nesting depth
	for t := rv; t.Kind() == reflect.Slice; {
		nv.shape = append(nv.shape, t.Len())
		if t.Len() == 0 {
			return nil, fmt.Errorf("variable %q: empty dimension", name)
		}
		t = t.Index(0)
	}
	if len(nv.shape) != len(nv.dims) {
		return nil, fmt.Errorf("variable %q: %d dims but %d-deep values", name, len(nv.dims), len(nv.shape))
	}

	n := 1
	for _, s := range nv.shape {
		n *= s
	}
	nv.values = make([]float64, 0, n)
	if err := appendFloats(&nv.values, rv, name); err != nil {
		return nil, err
	}
	return nv, nil
}

func appendFloats(dst *[]float64, rv reflect.Value, name string) error {
	switch rv.Kind() {
	case reflect.Slice:
		for i := 0; i < rv.Len(); i++ {
			if err := appendFloats(dst, rv.Index(i), name); err != nil {
				return err
			}
		}
		return nil
	case reflect.Float32, reflect.Float64:
		*dst = append(*dst, rv.Float())
		return nil
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		*dst = append(*dst, float64(rv.Int()))
		return nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		*dst = append(*dst, float64(rv.Uint()))
		return nil
	default:
		return fmt.Errorf("variable %q: unsupported element type %s", name, rv.Kind())
	}
}

func attrsToMap(am api.AttributeMap) Attrs {
	out := Attrs{}
	if am == nil {
		return out
	}
	for _, key := range am.Keys() {
		if val, ok := am.Get(key); ok {
			out[key] = fmt.Sprint(val)
		}
	}
	return out
}
