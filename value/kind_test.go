package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "Vector", KindVector.String())
	assert.Equal(t, "SoftObjectPath", KindSoftObjectPath.String())
	assert.Equal(t, "Unknown", Kind(200).String())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"Double", KindDouble, true},
		{"  quaternion ", KindQuaternion, true},
		{"vec3", KindVector, true},
		{"QUAT", KindQuaternion, true},
		{"classpath", KindSoftObjectPath, true},
		{"matrix", KindBool, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseKind(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	assert.Len(t, kinds, NumKinds)
	for i, k := range kinds {
		assert.Equal(t, Kind(i), k)
		assert.True(t, k.Valid())
	}
	assert.False(t, Kind(NumKinds).Valid())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindBool, KindOf[bool]())
	assert.Equal(t, KindFloat, KindOf[float32]())
	assert.Equal(t, KindVector4, KindOf[Vec4]())
	assert.Equal(t, KindRotator, KindOf[Rotator]())
	assert.Equal(t, KindTransform, KindOf[Transform]())
	assert.Equal(t, KindName, KindOf[Name]())
	assert.Equal(t, KindSoftObjectPath, KindOf[SoftObjectPath]())
}

func TestDefaultAndInit(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			p := New(k)
			assert.Equal(t, Default(k), Load(k, p))

			box, bp, ok := Box(Default(k))
			assert.True(t, ok)
			assert.Equal(t, k, box)
			InitDefault(k, bp)
			assert.Equal(t, Default(k), Load(k, bp))
		})
	}
}

func TestCopy(t *testing.T) {
	src := Transform{Rotation: Rotator{Yaw: 45}.Quaternion(), Translation: Vec3{1, 2, 3}, Scale: Vec3{2, 2, 2}}
	dst := IdentityTransform
	Copy(KindTransform, Ptr(&dst), Ptr(&src))
	assert.Equal(t, src, dst)

	s, d := "hello", ""
	Copy(KindString, Ptr(&d), Ptr(&s))
	assert.Equal(t, "hello", d)
}

func TestBoxRejectsUnknown(t *testing.T) {
	_, p, ok := Box(42)
	assert.False(t, ok)
	assert.Nil(t, p)
}
