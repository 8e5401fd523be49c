package kernel

var (
	addImpl       = addGeneric
	subImpl       = subGeneric
	mulImpl       = mulGeneric
	addScaledImpl = addScaledGeneric
	lerpImpl      = lerpGeneric
	minImpl       = minGeneric
	maxImpl       = maxGeneric
)

// Add computes dst[i] = a[i] + b[i].
func Add(dst, a, b []float64) { addImpl(dst, a, b) }

// Sub computes dst[i] = a[i] - b[i].
func Sub(dst, a, b []float64) { subImpl(dst, a, b) }

// Mul computes dst[i] = a[i] * b[i].
func Mul(dst, a, b []float64) { mulImpl(dst, a, b) }

// AddScaled computes dst[i] = a[i] + b[i]*w.
func AddScaled(dst, a, b []float64, w float64) { addScaledImpl(dst, a, b, w) }

// Lerp computes dst[i] = a[i] + (b[i]-a[i])*w.
func Lerp(dst, a, b []float64, w float64) { lerpImpl(dst, a, b, w) }

// Min computes the element-wise minimum, keeping a[i] on ties.
func Min(dst, a, b []float64) { minImpl(dst, a, b) }

// Max computes the element-wise maximum, keeping a[i] on ties.
func Max(dst, a, b []float64) { maxImpl(dst, a, b) }

func addGeneric(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subGeneric(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulGeneric(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func addScaledGeneric(dst, a, b []float64, w float64) {
	for i := range dst {
		dst[i] = a[i] + b[i]*w
	}
}

func lerpGeneric(dst, a, b []float64, w float64) {
	for i := range dst {
		dst[i] = a[i] + (b[i]-a[i])*w
	}
}

func minGeneric(dst, a, b []float64) {
	for i := range dst {
		x, y := a[i], b[i]
		if y < x {
			x = y
		}
		dst[i] = x
	}
}

func maxGeneric(dst, a, b []float64) {
	for i := range dst {
		x, y := a[i], b[i]
		if y > x {
			x = y
		}
		dst[i] = x
	}
}
