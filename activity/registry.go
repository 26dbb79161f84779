// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package activity

import (
	"reflect"
	"sync"

	"github.com/flowbridge/flowbridge/common/failure"
)

type (
	// Handler is the normalized shape of an activity implementation
	Handler func(ctx *Context, args []byte) ([]byte, error)

	// Registry stores activity implementations. Remote activities are
	// keyed by type name and announced to the proxy; local activities are
	// keyed by a numeric type id and never leave the process.
	Registry struct {
		mu     sync.RWMutex
		remote map[string]Handler
		local  map[int64]Handler
	}
)

func NewRegistry() *Registry {
	return &Registry{
		remote: map[string]Handler{},
		local:  map[int64]Handler{},
	}
}

var (
	contextType = reflect.TypeOf((*Context)(nil))
	bytesType   = reflect.TypeOf([]byte(nil))
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

func normalizeHandler(name string, fn interface{}) (Handler, error) {
	if fn == nil {
		return nil, failure.NewRegistrationError("activity %q: handler is nil", name)
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil, failure.NewRegistrationError("activity %q: handler is %s, not a func", name, v.Kind())
	}
	if v.IsNil() {
		return nil, failure.NewRegistrationError("activity %q: handler is nil", name)
	}

	t := v.Type()
	if t.NumIn() != 2 || t.In(0) != contextType || t.In(1) != bytesType {
		return nil, failure.NewRegistrationError(
			"activity %q: handler must take (*activity.Context, []byte), got %s", name, t)
	}

	resultful := false
	switch t.NumOut() {
	case 1:
		if t.Out(0) != errorType {
			return nil, failure.NewRegistrationError(
				"activity %q: single return value must be error, got %s", name, t)
		}
	case 2:
		if t.Out(0) != bytesType || t.Out(1) != errorType {
			return nil, failure.NewRegistrationError(
				"activity %q: handler must return ([]byte, error), got %s", name, t)
		}
		resultful = true
	default:
		return nil, failure.NewRegistrationError(
			"activity %q: handler must return error or ([]byte, error), got %s", name, t)
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

func (r *Registry) Register(name string, fn interface{}) error {
	if name == "" {
		return failure.NewRegistrationError("activity name must not be empty")
	}
	handler, err := normalizeHandler(name, fn)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.remote[name]; ok {
		return failure.NewRegistrationError("activity %q is already registered", name)
	}
	r.remote[name] = handler
	return nil
}

func (r *Registry) RegisterLocal(activityTypeId int64, fn interface{}) error {
	if activityTypeId == 0 {
		return failure.NewRegistrationError("local activity type id must be non-zero")
	}
	handler, err := normalizeHandler("local", fn)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.local[activityTypeId]; ok {
		return failure.NewRegistrationError("local activity %d is already registered", activityTypeId)
	}
	r.local[activityTypeId] = handler
	return nil
}

func (r *Registry) activity(name string) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handler, ok := r.remote[name]
	if !ok {
		return nil, failure.NewRegistrationError("activity %q is not registered", name)
	}
	return handler, nil
}

func (r *Registry) localActivity(activityTypeId int64) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handler, ok := r.local[activityTypeId]
	if !ok {
		return nil, failure.NewRegistrationError("local activity %d is not registered", activityTypeId)
	}
	return handler, nil
}
