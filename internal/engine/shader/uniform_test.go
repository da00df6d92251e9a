package shader

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func linkedProgram(t *testing.T) (*Program, *fakeContext) {
	t.Helper()
	ctx := newFakeContext()
	p, err := New(ctx, "testdata/triangle.vert", "testdata/triangle.frag")
	require.NoError(t, err)
	p.Use()
	return p, ctx
}

func TestSetters(t *testing.T) {
	p, ctx := linkedProgram(t)

	p.SetBool("u_enabled", true)
	p.SetBool("u_enabled", false)
	p.SetInt("u_enabled", 7)
	p.SetFloat("u_time", 0.25)
	p.SetVec4("u_color", mgl32.Vec4{0, 0.5, 0, 0})

	assert.Equal(t, []uniformWrite{
		{2, []float32{1}},
		{2, []float32{0}},
		{2, []float32{7}},
		{1, []float32{0.25}},
		{0, []float32{0, 0.5, 0, 0}},
	}, ctx.writes)
}

func TestSettersLookUpEveryCall(t *testing.T) {
	p, ctx := linkedProgram(t)

	for i := 0; i < 3; i++ {
		p.SetFloat("u_time", float32(i))
	}
	assert.Equal(t, 3, ctx.lookups["u_time"])
}

func TestSetMissingUniformIsSilent(t *testing.T) {
	logs := captureLogs(t)
	p, ctx := linkedProgram(t)

	assert.NotPanics(t, func() {
		p.SetFloat("u_missing", 1.5)
		p.SetInt("u_missing", 1)
		p.SetBool("u_missing", true)
		p.SetVec4("u_missing", mgl32.Vec4{})
	})
	assert.Empty(t, ctx.writes)
	assert.Equal(t, 0, logs.FilterLevelExact(zap.ErrorLevel).Len())
	assert.Equal(t, 0, logs.FilterLevelExact(zap.WarnLevel).Len())
}

func TestUniformHandleCachesLocation(t *testing.T) {
	p, ctx := linkedProgram(t)

	color := p.Uniform("u_color")
	require.True(t, color.Valid())
	assert.Equal(t, "u_color", color.Name())
	assert.Equal(t, int32(0), color.Location())

	for i := 0; i < 5; i++ {
		color.SetVec4(mgl32.Vec4{0, float32(i), 0, 1})
	}
	assert.Equal(t, 1, ctx.lookups["u_color"])
	assert.Len(t, ctx.writes, 5)

	missing := p.Uniform("u_nope")
	assert.False(t, missing.Valid())
	missing.SetFloat(1)
	assert.Len(t, ctx.writes, 5)
}
