// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package workflow

import (
	"reflect"
	"sync"

	"github.com/flowbridge/flowbridge/common/failure"
)

type (
	// Handler is the normalized shape every workflow, signal and query
	// handler is reduced to after registration-time validation
	Handler func(ctx *Context, args []byte) ([]byte, error)

	signalRegistration struct {
		handler Handler
		// synchronous signals hold the signaling caller until the handler
		// completes and carry its result back
		synchronous bool
	}

	definition struct {
		handler Handler
		signals map[string]*signalRegistration
		queries map[string]Handler
	}

	// Registry validates and stores workflow definitions eagerly, before
	// any execution is attempted. All validation failures are typed
	// RegistrationErrors.
	Registry struct {
		mu        sync.RWMutex
		workflows map[string]*definition
	}
)

func NewRegistry() *Registry {
	return &Registry{workflows: map[string]*definition{}}
}

var (
	contextType = reflect.TypeOf((*Context)(nil))
	bytesType   = reflect.TypeOf([]byte(nil))
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// normalizeHandler validates fn as a schedulable handler and reduces it
// to the Handler shape. Accepted signatures:
//
//	func(*Context, []byte) error
//	func(*Context, []byte) ([]byte, error)
func normalizeHandler(kind, name string, fn interface{}) (Handler, error) {
	if fn == nil {
		return nil, failure.NewRegistrationError("%s %q: handler is nil", kind, name)
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil, failure.NewRegistrationError("%s %q: handler is %s, not a func", kind, name, v.Kind())
	}
	if v.IsNil() {
		return nil, failure.NewRegistrationError("%s %q: handler is nil", kind, name)
	}

	t := v.Type()
	if t.NumIn() != 2 || t.In(0) != contextType || t.In(1) != bytesType {
		return nil, failure.NewRegistrationError(
			"%s %q: handler must take (*workflow.Context, []byte), got %s", kind, name, t)
	}

	resultful := false
	switch t.NumOut() {
	case 1:
		if t.Out(0) != errorType {
			return nil, failure.NewRegistrationError(
				"%s %q: single return value must be error, got %s", kind, name, t)
		}
	case 2:
		if t.Out(0) != bytesType || t.Out(1) != errorType {
			return nil, failure.NewRegistrationError(
				"%s %q: handler must return ([]byte, error), got %s", kind, name, t)
		}
		resultful = true
	default:
		return nil, failure.NewRegistrationError(
			"%s %q: handler must return error or ([]byte, error), got %s", kind, name, t)
	}

	return func(ctx *Context, args []byte) ([]byte, error) {
		in := []reflect.Value{reflect.ValueOf(ctx), reflect.Zero(bytesType)}
		if args != nil {
			in[1] = reflect.ValueOf(args)
		}
		out := v.Call(in)
		if resultful {
			result, _ := out[0].Interface().([]byte)
			err, _ := out[1].Interface().(error)
			return result, err
		}
		err, _ := out[0].Interface().(error)
		return nil, err
	}, nil
}

func (r *Registry) RegisterWorkflow(name string, fn interface{}) error {
	if name == "" {
		return failure.NewRegistrationError("workflow name must not be empty")
	}
	handler, err := normalizeHandler("workflow", name, fn)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.workflows[name]; ok {
		return failure.NewRegistrationError("workflow %q is already registered", name)
	}
	r.workflows[name] = &definition{
		handler: handler,
		signals: map[string]*signalRegistration{},
		queries: map[string]Handler{},
	}
	return nil
}

func (r *Registry) RegisterSignal(workflowName, signalName string, fn interface{}, synchronous bool) error {
	if signalName == "" {
		return failure.NewRegistrationError("signal name must not be empty")
	}
	handler, err := normalizeHandler("signal", signalName, fn)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	def, ok := r.workflows[workflowName]
	if !ok {
		return failure.NewRegistrationError("signal %q: workflow %q is not registered", signalName, workflowName)
	}
	if _, ok := def.signals[signalName]; ok {
		return failure.NewRegistrationError("signal %q is already registered on workflow %q", signalName, workflowName)
	}
	if _, ok := def.queries[signalName]; ok {
		return failure.NewRegistrationError(
			"name %q is already registered as a query on workflow %q", signalName, workflowName)
	}
	def.signals[signalName] = &signalRegistration{handler: handler, synchronous: synchronous}
	return nil
}

func (r *Registry) RegisterQuery(workflowName, queryName string, fn interface{}) error {
	if queryName == "" {
		return failure.NewRegistrationError("query name must not be empty")
	}
	handler, err := normalizeHandler("query", queryName, fn)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	def, ok := r.workflows[workflowName]
	if !ok {
		return failure.NewRegistrationError("query %q: workflow %q is not registered", queryName, workflowName)
	}
	if _, ok := def.queries[queryName]; ok {
		return failure.NewRegistrationError("query %q is already registered on workflow %q", queryName, workflowName)
	}
	if _, ok := def.signals[queryName]; ok {
		return failure.NewRegistrationError(
			"name %q is already registered as a signal on workflow %q", queryName, workflowName)
	}
	def.queries[queryName] = handler
	return nil
}

func (r *Registry) workflow(name string) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.workflows[name]
	if !ok {
		return nil, failure.NewRegistrationError("workflow %q is not registered", name)
	}
	return def.handler, nil
}

func (r *Registry) signal(workflowName, signalName string) (*signalRegistration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.workflows[workflowName]
	if !ok {
		return nil, failure.NewRegistrationError("workflow %q is not registered", workflowName)
	}
	reg, ok := def.signals[signalName]
	if !ok {
		return nil, failure.NewRegistrationError("signal %q is not registered on workflow %q", signalName, workflowName)
	}
	return reg, nil
}

func (r *Registry) query(workflowName, queryName string) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.workflows[workflowName]
	if !ok {
		return nil, failure.NewRegistrationError("workflow %q is not registered", workflowName)
	}
	handler, ok := def.queries[queryName]
	if !ok {
		return nil, failure.NewRegistrationError("query %q is not registered on workflow %q", queryName, workflowName)
	}
	return handler, nil
}
