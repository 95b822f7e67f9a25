package pipeline

import (
	"fmt"
	"path/filepath"
	"reflect"
	"regexp"
	"runtime"
	"strings"
)

const displayLimit = 40

// closures are named func1, func2 and nested ones func1.1, func1.2.
var anonymousSymbol = regexp.MustCompile(`^(func)?\d+$`)

func symbolOf(fn any) *runtime.Func {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil
	}

	return runtime.FuncForPC(v.Pointer())
}

// trimPackage removes the import path of a symbol, keeping the package name.
func trimPackage(symbol string) string {
	if i := strings.LastIndex(symbol, "/"); i >= 0 {
		symbol = symbol[i+1:]
	}

	return strings.ReplaceAll(symbol, "[...]", "")
}

// funcName returns the declared name of fn, or "" for a function literal.
func funcName(fn any) string {
	f := symbolOf(fn)
	if f == nil {
		return ""
	}

	name := strings.TrimSuffix(trimPackage(f.Name()), "-fm")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}

	if anonymousSymbol.MatchString(name) {
		return ""
	}

	return name
}

// describe returns the name of fn. Function literals are described by their symbol and
// position, cut to a fixed length.
func describe(fn any) string {
	if name := funcName(fn); name != "" {
		return name
	}

	f := symbolOf(fn)
	if f == nil {
		return "<nil>"
	}

	file, line := f.FileLine(f.Entry())
	desc := fmt.Sprintf("%s (%s:%d)", trimPackage(f.Name()), filepath.Base(file), line)

	if runes := []rune(desc); len(runes) > displayLimit {
		desc = string(runes[:displayLimit])
	}

	return desc + " (...)"
}
