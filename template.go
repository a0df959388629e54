package numeral

import "reflect"

// HelperConfig configures template helper exports
type HelperConfig struct {
	// OnError renders a failed helper call. Nil renders an empty string.
	OnError func(helper string, err error) string
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// TemplateHelpers exposes the formatter functions for text/template and
// html/template. A nil speller uses DefaultSpeller. Use
// FormatterProvider.FuncMap directly to let errors abort execution.
func TemplateHelpers(s *Speller, cfg HelperConfig) map[string]any {
	onError := cfg.OnError
	if onError == nil {
		onError = func(string, error) string { return "" }
	}

	funcs := NewFormatterProvider(s).FuncMap()
	for name, fn := range funcs {
		funcs[name] = recoverWith(name, fn, onError)
	}
	return funcs
}

// recoverWith turns func(...) (string, error) into func(...) string.
func recoverWith(name string, fn any, onError func(string, error) string) any {
	value := reflect.ValueOf(fn)
	typ := value.Type()
	if typ.Kind() != reflect.Func || typ.NumOut() != 2 || typ.Out(1) != errorType {
		return fn
	}

	in := make([]reflect.Type, typ.NumIn())
	for i := range in {
		in[i] = typ.In(i)
	}
	wrapped := reflect.FuncOf(in, []reflect.Type{typ.Out(0)}, typ.IsVariadic())

	return reflect.MakeFunc(wrapped, func(args []reflect.Value) []reflect.Value {
		var results []reflect.Value
		if typ.IsVariadic() {
			results = value.CallSlice(args)
		} else {
			results = value.Call(args)
		}
		if errValue := results[1]; !errValue.IsNil() {
			return []reflect.Value{reflect.ValueOf(onError(name, errValue.Interface().(error)))}
		}
		return results[:1]
	}).Interface()
}
