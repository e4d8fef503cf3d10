// Package script runs the interception hook as JavaScript.
//
// A hook script defines a global function
//
//	function onWillLog(severity, text) { return true; }
//
// where severity is "info", "warning" or "error". A falsy return drops the
// message. console.log/warn/error inside the script go to the module logger.
package script

import (
	"fmt"
	"os"
	"sync"
	"time"

	js "github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/console"
	"github.com/dop251/goja_nodejs/require"
	"github.com/rediwo/tweenlog/diag"
	"github.com/rediwo/tweenlog/logger"
)

// FunctionName is the global the script must define
const FunctionName = "onWillLog"

// DefaultTimeout bounds a single onWillLog call
const DefaultTimeout = 100 * time.Millisecond

// Hook evaluates onWillLog for each message. A goja runtime is not safe for
// concurrent use, so calls are serialized.
type Hook struct {
	mu      sync.Mutex
	vm      *js.Runtime
	fn      js.Callable
	logger  logger.Logger
	timeout time.Duration

	afterFunc func(time.Duration, func()) stopper
}

type stopper interface {
	Stop() bool
}

// callGuard keeps a timer that fires after its call returned from
// interrupting the next one.
type callGuard struct {
	mu       sync.Mutex
	finished bool
}

// Load reads and compiles a hook script from path
func Load(path string, log logger.Logger) (*Hook, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hook script: %w", err)
	}
	return New(path, string(content), log)
}

// New compiles source. name is used in stack traces.
func New(name, source string, log logger.Logger) (*Hook, error) {
	if log == nil {
		log = logger.NewNullLogger()
	}

	vm := js.New()
	registry := require.NewRegistry()
	registry.RegisterNativeModule(console.ModuleName, console.RequireWithPrinter(printer{log}))
	registry.Enable(vm)
	console.Enable(vm)

	program, err := js.Compile(name, source, true)
	if err != nil {
		return nil, fmt.Errorf("failed to compile hook script: %w", err)
	}
	if _, err := vm.RunProgram(program); err != nil {
		return nil, fmt.Errorf("failed to run hook script: %w", err)
	}

	fn, ok := js.AssertFunction(vm.Get(FunctionName))
	if !ok {
		return nil, fmt.Errorf("hook script must define function %s(severity, text)", FunctionName)
	}

	return &Hook{
		vm:        vm,
		fn:        fn,
		logger:    log,
		timeout:   DefaultTimeout,
		afterFunc: afterFunc,
	}, nil
}

func afterFunc(d time.Duration, f func()) stopper {
	return time.AfterFunc(d, f)
}

// SetTimeout changes the per-call limit. Zero disables it.
func (h *Hook) SetTimeout(d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.timeout = d
}

// OnWillLog has the diag.Hook signature. A script error or timeout keeps the
// message and is reported to the logger.
func (h *Hook) OnWillLog(severity diag.Severity, text string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if timeout := h.timeout; timeout > 0 {
		guard := &callGuard{}
		timer := h.afterFunc(timeout, func() {
			guard.mu.Lock()
			defer guard.mu.Unlock()
			if guard.finished {
				return
			}
			h.vm.Interrupt(fmt.Sprintf("%s exceeded %v", FunctionName, timeout))
		})
		defer func() {
			guard.mu.Lock()
			guard.finished = true
			guard.mu.Unlock()
			timer.Stop()
			h.vm.ClearInterrupt()
		}()
	}

	result, err := h.fn(js.Undefined(), h.vm.ToValue(severity.String()), h.vm.ToValue(text))
	if err != nil {
		h.logger.Error("hook script failed: %v", err)
		return true
	}
	return result.ToBoolean()
}

// Hook returns OnWillLog as a diag.Hook
func (h *Hook) Hook() diag.Hook {
	return h.OnWillLog
}

// printer routes script console output to the module logger
type printer struct {
	log logger.Logger
}

func (p printer) Log(s string)   { p.log.Info("%s", s) }
func (p printer) Warn(s string)  { p.log.Warn("%s", s) }
func (p printer) Error(s string) { p.log.Error("%s", s) }
