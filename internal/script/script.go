// Package script runs user-supplied JavaScript transforms over session
// output. A script exports a transform(chunk) function through
// module.exports; returning null drops the chunk, returning a string
// replaces it.
package script

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dop251/goja"
)

// Script is a loaded output transform.
type Script struct {
	Name     string
	FilePath string
	Source   string

	mu        sync.Mutex
	vm        *goja.Runtime
	transform goja.Callable
}

// Load compiles a transform script from disk and validates its exports.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: read %s: %w", path, err)
	}

	vm := goja.New()
	exports := vm.NewObject()
	vm.Set("module", vm.NewObject())
	vm.Set("exports", exports)

	if _, err := vm.RunString(string(data)); err != nil {
		return nil, fmt.Errorf("script: execute %s: %w", path, err)
	}

	moduleObj := vm.Get("module")
	if moduleObj == nil {
		moduleObj = vm.Get("exports")
	} else {
		moduleExports := moduleObj.ToObject(vm).Get("exports")
		if moduleExports != nil {
			exports = moduleExports.ToObject(vm)
		}
	}

	s := &Script{
		FilePath: path,
		Source:   string(data),
		vm:       vm,
	}

	if name := exports.Get("name"); name != nil {
		s.Name = name.String()
	} else {
		s.Name = filepath.Base(path)
	}

	transform := exports.Get("transform")
	if transform == nil {
		return nil, fmt.Errorf("script %s: missing transform function", path)
	}
	fn, ok := goja.AssertFunction(transform)
	if !ok {
		return nil, fmt.Errorf("script %s: transform must be function", path)
	}
	s.transform = fn

	return s, nil
}

// Transform runs the script over one output chunk. It returns the chunk to
// emit and whether to emit it at all: a null or undefined return drops the
// chunk, a string return replaces it. The script keeps its VM between calls,
// so transforms may accumulate state.
func (s *Script) Transform(chunk []byte) ([]byte, bool, error) {
	// goja runtimes are not safe for concurrent use.
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.transform(goja.Undefined(), s.vm.ToValue(string(chunk)))
	if err != nil {
		return nil, false, fmt.Errorf("script %s: transform: %w", s.Name, err)
	}
	if result == nil || goja.IsNull(result) || goja.IsUndefined(result) {
		return nil, false, nil
	}
	str, ok := result.Export().(string)
	if !ok {
		return nil, false, fmt.Errorf("script %s: transform must return a string or null, got %s", s.Name, result.ExportType())
	}
	return []byte(str), true, nil
}
