package we

import (
	"path"
	"reflect"

	"github.com/iancoleman/strcase"
)

type Named interface {
	TypeName() string
}

// NameOf returns "<package>:<type>" in kebab case unless the value names itself.
func NameOf(value any) string {
	if typed, ok := value.(Named); ok {
		return typed.TypeName()
	}

	t := reflect.TypeOf(value)
	if t == nil {
		return "unknown"
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Name() == "" {
		return strcase.ToKebab(t.String())
	}

	namespace := strcase.ToKebab(path.Base(t.PkgPath()))
	return namespace + ":" + strcase.ToKebab(t.Name())
}
