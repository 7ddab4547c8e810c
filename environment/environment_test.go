package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxscript/loxscript/environment"
	"github.com/loxscript/loxscript/value"
)

func TestDefineAndGet(t *testing.T) {
	env := environment.New(nil)
	env.Define("x", value.Number{Val: 10})

	v, err := env.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number{Val: 10}, v)
}

func TestGetUndefinedReturnsTypedError(t *testing.T) {
	env := environment.New(nil)

	_, err := env.Get("missing")
	require.Error(t, err)
	var undef *environment.UndefinedVariableError
	assert.ErrorAs(t, err, &undef)
	assert.Equal(t, "missing", undef.Name)
}

func TestGetLooksUpEnclosingScope(t *testing.T) {
	outer := environment.New(nil)
	outer.Define("x", value.String{Val: "outer"})
	inner := environment.New(outer)

	v, err := inner.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.String{Val: "outer"}, v)
}

func TestDefineShadowsEnclosingScope(t *testing.T) {
	outer := environment.New(nil)
	outer.Define("x", value.Number{Val: 1})
	inner := environment.New(outer)
	inner.Define("x", value.Number{Val: 2})

	v, err := inner.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number{Val: 2}, v)

	v, err = outer.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number{Val: 1}, v)
}

func TestAssignMutatesDefiningScope(t *testing.T) {
	outer := environment.New(nil)
	outer.Define("x", value.Number{Val: 1})
	inner := environment.New(outer)

	require.NoError(t, inner.Assign("x", value.Number{Val: 99}))

	v, err := outer.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number{Val: 99}, v)
}

func TestAssignUndefinedReturnsTypedError(t *testing.T) {
	env := environment.New(nil)

	err := env.Assign("missing", value.Nothing)
	require.Error(t, err)
	var undef *environment.UndefinedVariableError
	assert.ErrorAs(t, err, &undef)
}
