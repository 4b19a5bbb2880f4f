package model

import "sort"

// Object is a schema-agnostic JSON object as exchanged with the backend
type Object map[string]interface{}

// Row is one editable line of a grid
type Row map[string]interface{}

// Clone returns a deep copy of the object. Nested maps and slices are copied,
// scalars are shared.
func (o Object) Clone() Object {
	if o == nil {
		return nil
	}
	return cloneMap(o)
}

// Object returns the nested object stored under key, or nil.
func (o Object) Object(key string) Object {
	if o == nil {
		return nil
	}
	obj, _ := AsObject(o[key])
	return obj
}

// Ensure returns the nested object stored under key, creating it when absent.
func (o Object) Ensure(key string) Object {
	if obj, ok := AsObject(o[key]); ok && obj != nil {
		o[key] = obj
		return obj
	}
	obj := Object{}
	o[key] = obj
	return obj
}

// Keys returns the object's keys in ascending order
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of the row
func (r Row) Clone() Row {
	if r == nil {
		return nil
	}
	return Row(cloneMap(r))
}

// String returns the value under key when it is a string
func (r Row) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// CloneRows deep copies a row sequence. A nil input stays nil.
func CloneRows(rows []Row) []Row {
	if rows == nil {
		return nil
	}
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}
	return out
}

// AsObject converts the JSON-decoded forms of an object into Object
func AsObject(v interface{}) (Object, bool) {
	switch val := v.(type) {
	case Object:
		return val, true
	case Row:
		return Object(val), true
	case map[string]interface{}:
		return Object(val), true
	default:
		return nil, false
	}
}

// AsRows converts the JSON-decoded forms of an object list into rows.
// Entries that are not objects are skipped.
func AsRows(v interface{}) []Row {
	switch val := v.(type) {
	case []Row:
		return val
	case []Object:
		rows := make([]Row, 0, len(val))
		for _, o := range val {
			rows = append(rows, Row(o))
		}
		return rows
	case []map[string]interface{}:
		rows := make([]Row, 0, len(val))
		for _, o := range val {
			rows = append(rows, Row(o))
		}
		return rows
	case []interface{}:
		rows := make([]Row, 0, len(val))
		for _, item := range val {
			if o, ok := AsObject(item); ok {
				rows = append(rows, Row(o))
			}
		}
		return rows
	default:
		return nil
	}
}

func cloneMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case Object:
		return Object(cloneMap(val))
	case Row:
		return Row(cloneMap(val))
	case map[string]interface{}:
		return cloneMap(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []Row:
		return CloneRows(val)
	case []string:
		return append([]string(nil), val...)
	default:
		return val
	}
}
