package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/valgebra/subsel"
	"github.com/hupe1980/valgebra/value"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		domain   Domain
		name     string
		property bool
		sel      string
		str      string
	}{
		{"Density", Elements, "Density", false, "", "Density"},
		{"$position.x", Elements, "Position", true, "X", "$Position.X"},
		{" $Transform . Rotation . Forward ", Elements, "Transform", true, "Rotation.Forward", "$Transform.Rotation.Forward"},
		{"@Data.Offset.Z", Data, "Offset", false, "Z", "@Data.Offset.Z"},
		{"@elements.Weight", Elements, "Weight", false, "", "Weight"},
		{"Dir.Up.Length", Elements, "Dir", false, "Up.Length", "Dir.Up.Length"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.domain, p.Domain)
			assert.Equal(t, tt.name, p.Name)
			assert.Equal(t, tt.property, p.Property)
			assert.Equal(t, tt.sel, p.Selection.String())
			assert.Equal(t, tt.str, p.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "   ", "@Data", "@Data.", "$"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrEmptyPath, "input %q", in)
	}

	_, err := Parse("$Velocity")
	assert.ErrorIs(t, err, ErrUnknownProperty)

	_, err = Parse("@Edges.Weight")
	assert.ErrorIs(t, err, ErrUnknownDomain)

	_, err = Parse("Offset.X.Bogus")
	require.ErrorIs(t, err, subsel.ErrUnknownToken)
	var te *subsel.TokenError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "Bogus", te.Token)
	assert.Equal(t, 1, te.Index)

	assert.Panics(t, func() { MustParse("") })
}

func TestKinds(t *testing.T) {
	p := MustParse("$Position.X")
	assert.Equal(t, value.KindVector, p.Kind(value.KindBool))
	assert.Equal(t, value.KindDouble, p.SubKind(value.KindBool))

	p = MustParse("Tr.Scale")
	assert.Equal(t, value.KindTransform, p.Kind(value.KindTransform))
	assert.Equal(t, value.KindVector, p.SubKind(value.KindTransform))

	p = MustParse("Plain")
	assert.Equal(t, value.KindInt64, p.SubKind(value.KindInt64))
}

func TestLookupProperty(t *testing.T) {
	prop, ok := LookupProperty("$COLOR")
	require.True(t, ok)
	assert.Equal(t, Property{"Color", value.KindVector4}, prop)

	_, ok = LookupProperty("Colour")
	assert.False(t, ok)
	assert.NotEmpty(t, Properties())
}

func TestResolver(t *testing.T) {
	r := NewResolver(map[string]value.Kind{"Offset": value.KindVector})
	r.Declare(Data, "Budget", value.KindInt32)

	b, err := r.Resolve("Offset.Length")
	require.NoError(t, err)
	assert.Equal(t, value.KindVector, b.Kind)
	assert.Equal(t, value.KindDouble, b.SubKind)
	f, ok := b.Selection().Field()
	require.True(t, ok)
	assert.Equal(t, subsel.Length, f)

	b, err = r.Resolve("$Rotation.Forward")
	require.NoError(t, err)
	assert.Equal(t, value.KindQuaternion, b.Kind)
	assert.Equal(t, value.KindVector, b.SubKind)

	b, err = r.Resolve("@Data.Budget")
	require.NoError(t, err)
	assert.Equal(t, value.KindInt32, b.SubKind)

	_, err = r.Resolve("Budget")
	assert.ErrorIs(t, err, ErrUnknownAttribute)

	_, err = r.Resolve("offset")
	assert.ErrorIs(t, err, ErrUnknownAttribute)
}
