// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package workflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowbridge/flowbridge/common/failure"
)

func requireRegistrationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var registrationErr *failure.RegistrationError
	assert.ErrorAs(t, err, &registrationErr)
}

func TestRegisterWorkflowAcceptedShapes(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.RegisterWorkflow("errs-only", func(ctx *Context, args []byte) error {
		return nil
	}))
	require.NoError(t, r.RegisterWorkflow("with-result", func(ctx *Context, args []byte) ([]byte, error) {
		return []byte("done"), nil
	}))

	handler, err := r.workflow("with-result")
	require.NoError(t, err)
	result, err := handler(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("done"), result)
}

func TestRegisterWorkflowRejectsBadHandlers(t *testing.T) {
	r := NewRegistry()

	requireRegistrationError(t, r.RegisterWorkflow("", func(ctx *Context, args []byte) error { return nil }))
	requireRegistrationError(t, r.RegisterWorkflow("nil-handler", nil))
	requireRegistrationError(t, r.RegisterWorkflow("not-a-func", "definitely not"))
	requireRegistrationError(t, r.RegisterWorkflow("wrong-args", func(args []byte) error { return nil }))
	requireRegistrationError(t, r.RegisterWorkflow("wrong-return", func(ctx *Context, args []byte) string { return "" }))
	requireRegistrationError(t, r.RegisterWorkflow("too-many-returns",
		func(ctx *Context, args []byte) ([]byte, []byte, error) { return nil, nil, nil }))
}

func TestRegisterWorkflowRejectsDuplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterWorkflow("order-processor", func(ctx *Context, args []byte) error { return nil }))
	requireRegistrationError(t, r.RegisterWorkflow("order-processor", func(ctx *Context, args []byte) error { return nil }))
}

func TestHandlerReceivesNilArgs(t *testing.T) {
	r := NewRegistry()
	var got []byte = []byte("sentinel")
	require.NoError(t, r.RegisterWorkflow("probe", func(ctx *Context, args []byte) error {
		got = args
		return nil
	}))

	handler, err := r.workflow("probe")
	require.NoError(t, err)
	_, err = handler(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestHandlerErrorPropagates(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	require.NoError(t, r.RegisterWorkflow("failing", func(ctx *Context, args []byte) error {
		return boom
	}))

	handler, err := r.workflow("failing")
	require.NoError(t, err)
	_, err = handler(nil, nil)
	assert.ErrorIs(t, err, boom)
}

func TestRegisterSignal(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterWorkflow("order-processor", func(ctx *Context, args []byte) error { return nil }))

	require.NoError(t, r.RegisterSignal("order-processor", "wake", func(ctx *Context, args []byte) error { return nil }, false))
	require.NoError(t, r.RegisterSignal("order-processor", "fetch", func(ctx *Context, args []byte) ([]byte, error) {
		return []byte("ok"), nil
	}, true))

	reg, err := r.signal("order-processor", "fetch")
	require.NoError(t, err)
	assert.True(t, reg.synchronous)

	reg, err = r.signal("order-processor", "wake")
	require.NoError(t, err)
	assert.False(t, reg.synchronous)

	// unknown workflow, unknown signal, duplicates
	requireRegistrationError(t, r.RegisterSignal("missing", "wake", func(ctx *Context, args []byte) error { return nil }, false))
	requireRegistrationError(t, r.RegisterSignal("order-processor", "wake", func(ctx *Context, args []byte) error { return nil }, false))
	_, err = r.signal("order-processor", "nope")
	requireRegistrationError(t, err)
}

func TestRegisterQuery(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterWorkflow("order-processor", func(ctx *Context, args []byte) error { return nil }))
	require.NoError(t, r.RegisterQuery("order-processor", "status", func(ctx *Context, args []byte) ([]byte, error) {
		return []byte("running"), nil
	}))

	handler, err := r.query("order-processor", "status")
	require.NoError(t, err)
	result, err := handler(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("running"), result)

	requireRegistrationError(t, r.RegisterQuery("missing", "status", func(ctx *Context, args []byte) error { return nil }))
	requireRegistrationError(t, r.RegisterQuery("order-processor", "status", func(ctx *Context, args []byte) error { return nil }))
}

func TestSignalAndQueryNamesAreDisjoint(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterWorkflow("order-processor", func(ctx *Context, args []byte) error { return nil }))
	require.NoError(t, r.RegisterSignal("order-processor", "refresh", func(ctx *Context, args []byte) error { return nil }, false))
	require.NoError(t, r.RegisterQuery("order-processor", "status", func(ctx *Context, args []byte) error { return nil }))

	requireRegistrationError(t, r.RegisterQuery("order-processor", "refresh", func(ctx *Context, args []byte) error { return nil }))
	requireRegistrationError(t, r.RegisterSignal("order-processor", "status", func(ctx *Context, args []byte) error { return nil }, false))
}
