package magic

import (
	"fairy-generator/internal/common"
	"io"
	"log"
	"reflect"
)

// Bewitcher assigns random values to struct fields.
// It keeps no state between calls, but its sources usually are not safe for
// concurrent use, so use one Bewitcher per goroutine.
type Bewitcher struct {
	sources Sources
	logger  *log.Logger
}

type Option func(*Bewitcher)

// WithLogger reports the fields skipped in best effort mode to logger.
func WithLogger(logger *log.Logger) Option {
	if logger == nil {
		panic("magic: WithLogger(nil)")
	}

	return func(b *Bewitcher) {
		b.logger = logger
	}
}

func New(sources Sources, opts ...Option) *Bewitcher {
	if sources.Range == nil || sources.Temporal == nil || sources.Words == nil {
		panic("magic: all sources are required")
	}

	b := &Bewitcher{
		sources: sources,
		logger:  log.New(io.Discard, "", 0),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Bewitch assigns random values to the fields of target, which should be a
// pointer to a struct.
//
// Without fieldNames every field declared directly on the struct is tried and
// failures are skipped, leaving the field untouched; the call never fails.
// With fieldNames only those fields are bewitched. All of them are resolved
// before any is written, a missing one fails with ErrFieldNotFound, and the
// first field that cannot be bewitched aborts the call with a *BewitchError.
//
// A nil target is a no-op.
func (b *Bewitcher) Bewitch(target any, fieldNames ...string) error {
	owner, ok := indirect(target)
	if !ok {
		return nil
	}

	fields, err := declaredFields(owner.Type(), fieldNames)
	if err != nil {
		return err
	}

	strict := !common.IsEmpty(fieldNames)
	for _, f := range fields {
		err := b.bewitchField(fieldTarget{owner: owner, field: f})
		if err == nil {
			continue
		}

		if strict {
			return &BewitchError{Field: f.Name, Type: common.TypeName(owner.Type()), Err: err}
		}

		b.logger.Printf("skip field %s of %s: %v", f.Name, common.TypeName(owner.Type()), err)
	}

	return nil
}

func (b *Bewitcher) bewitchField(ft fieldTarget) error {
	token, err := ft.acquire()
	if err != nil {
		return err
	}
	defer token.release()

	_, rule, ok := Dispatch(ft.field.Type)
	if !ok {
		return &UnsupportedFieldTypeError{Field: ft.field.Name, Type: ft.field.Type}
	}

	v, err := rule(&b.sources)
	if err != nil {
		return err
	}

	return token.set(ft.field.Name, v)
}

// indirect unwraps a pointer target, false means there is nothing to bewitch.
func indirect(target any) (reflect.Value, bool) {
	if target == nil {
		return reflect.Value{}, false
	}

	v := reflect.ValueOf(target)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}

	return v, true
}

// declaredFields returns the fields declared directly on t, or the named ones
// in the given order. Promoted fields of embedded structs are not declared on t.
func declaredFields(t reflect.Type, names []string) ([]reflect.StructField, error) {
	var declared []reflect.StructField
	if t.Kind() == reflect.Struct {
		declared = make([]reflect.StructField, t.NumField())
		for i := range declared {
			declared[i] = t.Field(i)
		}
	}

	if common.IsEmpty(names) {
		return declared, nil
	}

	byName := make(map[string]reflect.StructField, len(declared))
	for _, f := range declared {
		byName[f.Name] = f
	}

	fields := make([]reflect.StructField, 0, len(names))
	for _, name := range names {
		f, ok := byName[name]
		if !ok {
			return nil, &FieldNotFoundError{Field: name, Type: common.TypeName(t)}
		}
		fields = append(fields, f)
	}

	return fields, nil
}
