package argen

import (
	"fmt"
	"reflect"
	"strconv"
)

// Apply scans the bound values into the targets registered with Bind, so
// that after a successful parse the host works with plain typed variables,
// the way a hand-written parser would populate out-parameters. Targets of
// unset values are left untouched, keeping whatever the host preinitialized
// them to. The result is nil unless a value does not fit its target (for
// example an integer too large for an int8 target).
func (b *Bindings) Apply() error {
	for _, o := range b.schema.options {
		if o.target == nil {
			continue
		}
		v := b.options[o.name]
		if v.Origin() == Unset {
			continue
		}
		if err := Scan(v.String(), o.target); err != nil {
			return decorate(err, o.name)
		}
	}
	for _, p := range b.schema.positionals {
		if p.target == nil {
			continue
		}
		v := b.positionals[p.name]
		if v.Origin() == Unset {
			continue
		}
		if err := Scan(v.String(), p.target); err != nil {
			return decorate(err, p.name)
		}
	}
	if p := b.schema.variadic; p != nil && p.target != nil {
		t, ok := p.target.(*[]string)
		if !ok {
			return decorate(fmt.Errorf(`target of type %v cannot take the captured tokens`, reflect.TypeOf(p.target)), p.name)
		}
		*t = b.Variadic()
	}
	return nil
}

// Scan converts the value to the type pointed to by the target. The target
// must be a pointer to one of the basic types supported by the Parse*
// functions in the strconv package. Integers are parsed in base 0.
func Scan(value string, target interface{}) error {
	if reflect.ValueOf(target).Kind() != reflect.Ptr {
		return fmt.Errorf(`target for value "%s" is not a pointer`, value)
	}
	var (
		b   bool
		i   int64
		u   uint64
		f   float64
		err error
	)
	v := reflect.Indirect(reflect.ValueOf(target))
	switch v.Kind() {
	case reflect.String:
		v.SetString(value)
	case reflect.Bool:
		if b, err = strconv.ParseBool(value); err == nil {
			v.SetBool(b)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i, err = strconv.ParseInt(value, 0, v.Type().Bits()); err == nil {
			v.SetInt(i)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if u, err = strconv.ParseUint(value, 0, v.Type().Bits()); err == nil {
			v.SetUint(u)
		}
	case reflect.Float32, reflect.Float64:
		if f, err = strconv.ParseFloat(value, v.Type().Bits()); err == nil {
			v.SetFloat(f)
		}
	default:
		err = fmt.Errorf(`target for value "%s" has unsupported type %v`, value, v.Type())
	}
	return err
}

// decorate adds name information to error messages.
func decorate(err error, name string) error {
	return fmt.Errorf(`cannot apply value of "%s": %v`, name, err)
}
