package valgebra_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/valgebra"
	"github.com/hupe1980/valgebra/batch"
	"github.com/hupe1980/valgebra/blend"
	"github.com/hupe1980/valgebra/subsel"
	"github.com/hupe1980/valgebra/value"
)

func ExampleApply() {
	e := valgebra.New()

	v := valgebra.Apply(e, blend.Lerp, value.Vec3{X: 0, Y: 2}, value.Vec3{X: 10, Y: 4}, 0.25)
	fmt.Println(v.X, v.Y)

	s := valgebra.Apply(e, blend.Lerp, "foo", "bar", 0.5)
	fmt.Println(s)
	// Output:
	// 2.5 2.5
	// bar
}

func ExampleGet() {
	xf := value.IdentityTransform
	xf.Translation = value.Vec3{X: 1, Y: 2, Z: 3}

	y := valgebra.Get[float64](subsel.MustParse("Position", "Y"), xf)
	fmt.Println(y)

	xf = valgebra.Set(subsel.MustParse("Scale", "Z"), xf, int32(4))
	fmt.Println(xf.Scale)
	// Output:
	// 2
	// {1 1 4}
}

func ExampleEngine_Blend() {
	e := valgebra.New()

	a := []float64{1, 2, 3}
	b := []float64{3, 4, 5}
	out := make([]float64, 3)
	if err := e.Blend(context.Background(), blend.Average, batch.Of(out), batch.Of(a), batch.Of(b), nil); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output:
	// [2 3 4]
}

func ExampleEngine_Resolve() {
	e := valgebra.New(valgebra.WithAttributes(map[string]value.Kind{
		"Offset": value.KindVector,
	}))

	_, err := e.Resolve("offset.X")
	fmt.Println(err)

	b, err := e.Resolve("$Rotation.Up")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(b.Kind, b.SubKind)
	// Output:
	// selector: unknown attribute "offset" in Elements
	// Quaternion Vector
}
