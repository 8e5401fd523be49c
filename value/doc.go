// Package value defines the closed set of value kinds handled by the engine,
// the Go types backing them and their static traits.
//
// # Kinds
//
// Fourteen kinds are supported:
//
//	KindBool            bool
//	KindInt32           int32
//	KindInt64           int64
//	KindFloat           float32
//	KindDouble          float64
//	KindVector2         Vec2
//	KindVector          Vec3
//	KindVector4         Vec4
//	KindQuaternion      Quat
//	KindRotator         Rotator (degrees)
//	KindTransform       Transform
//	KindString          string
//	KindName            Name
//	KindSoftObjectPath  SoftObjectPath
//
// Values live in caller-owned, kind-homogeneous buffers. Engine entry points
// receive a Kind and an unsafe.Pointer to a value of the backing Go type:
//
//	v := value.Vec3{X: 1}
//	k, p := value.KindVector, value.Ptr(&v)
//
// # Traits
//
// TraitsOf returns size, alignment and capability flags of a kind. The
// table is built during package initialisation and is read-only afterwards,
// so it is safe to consult from any goroutine.
//
// # Math
//
// Rotations follow a Z-up, X-forward convention: Pitch rotates about Y,
// Yaw about Z and Roll about X. Rotator.Quaternion and Quat.Rotator convert
// between the two representations.
package value
