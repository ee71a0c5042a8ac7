package platform

import (
	"errors"
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Load evaluates a starlark platform file and applies its globals as
// memory map overrides, then revalidates the result.
func (p *Platform) Load(path string) (err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return
	}

	return p.Parse(path, src)
}

// Parse evaluates starlark platform source. The current platform values
// are predeclared under their define names, so a file may derive one
// constant from another:
//
//	STACK_TOP = RAM_BASE + 0x200000
//	VECTOR_BASE = RAM_BASE + 0x1000
//
// Any global whose name matches a define overrides that field.
func (p *Platform) Parse(name string, src any) (err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}

	fields := p.fields()

	pred := starlark.StringDict{}
	for key, ptr := range fields {
		pred[key] = starlark.MakeUint64(*ptr)
	}

	globals, err := starlark.ExecFileOptions(&opts, &thread, name, src, pred)
	if err != nil {
		return
	}

	for key, ptr := range fields {
		st_value, ok := globals[key]
		if !ok {
			continue
		}
		st_int, ok := st_value.(starlark.Int)
		if !ok {
			err = errors.Join(ErrConstraint{key, *ptr, ErrScriptValue}, err)
			return
		}
		value, ok := st_int.Uint64()
		if !ok {
			err = errors.Join(ErrConstraint{key, *ptr, ErrScriptValue}, err)
			return
		}
		*ptr = value
	}

	return p.Validate()
}
