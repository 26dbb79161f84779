// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package activity

import (
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

func TestRegisterActivityShapes(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register("errs-only", func(ctx *Context, args []byte) error { return nil }))
	require.NoError(t, r.Register("with-result", func(ctx *Context, args []byte) ([]byte, error) {
		return []byte("done"), nil
	}))

	handler, err := r.activity("with-result")
	require.NoError(t, err)
	result, err := handler(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("done"), result)

	_, err = r.activity("missing")
	requireRegistrationError(t, err)
}

func TestRegisterActivityRejectsBadHandlers(t *testing.T) {
	r := NewRegistry()

	requireRegistrationError(t, r.Register("", func(ctx *Context, args []byte) error { return nil }))
	requireRegistrationError(t, r.Register("nil-handler", nil))
	requireRegistrationError(t, r.Register("not-a-func", 42))
	requireRegistrationError(t, r.Register("wrong-args", func(ctx *Context) error { return nil }))
	requireRegistrationError(t, r.Register("wrong-return", func(ctx *Context, args []byte) int { return 0 }))

	require.NoError(t, r.Register("dup", func(ctx *Context, args []byte) error { return nil }))
	requireRegistrationError(t, r.Register("dup", func(ctx *Context, args []byte) error { return nil }))
}

func TestRegisterLocalActivity(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.RegisterLocal(7, func(ctx *Context, args []byte) ([]byte, error) {
		return args, nil
	}))

	handler, err := r.localActivity(7)
	require.NoError(t, err)
	result, err := handler(nil, []byte("echo"))
	require.NoError(t, err)
	assert.Equal(t, []byte("echo"), result)

	// the zero type id is reserved
	requireRegistrationError(t, r.RegisterLocal(0, func(ctx *Context, args []byte) error { return nil }))
	requireRegistrationError(t, r.RegisterLocal(7, func(ctx *Context, args []byte) error { return nil }))
	_, err = r.localActivity(99)
	requireRegistrationError(t, err)
}
