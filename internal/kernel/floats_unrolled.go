package kernel

func addUnrolled(dst, a, b []float64) {
	n := len(dst)
	a, b = a[:n], b[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] + b[i]
		dst[i+1] = a[i+1] + b[i+1]
		dst[i+2] = a[i+2] + b[i+2]
		dst[i+3] = a[i+3] + b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

func subUnrolled(dst, a, b []float64) {
	n := len(dst)
	a, b = a[:n], b[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] - b[i]
		dst[i+1] = a[i+1] - b[i+1]
		dst[i+2] = a[i+2] - b[i+2]
		dst[i+3] = a[i+3] - b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

func mulUnrolled(dst, a, b []float64) {
	n := len(dst)
	a, b = a[:n], b[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] * b[i]
		dst[i+1] = a[i+1] * b[i+1]
		dst[i+2] = a[i+2] * b[i+2]
		dst[i+3] = a[i+3] * b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

func addScaledUnrolled(dst, a, b []float64, w float64) {
	n := len(dst)
	a, b = a[:n], b[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] + b[i]*w
		dst[i+1] = a[i+1] + b[i+1]*w
		dst[i+2] = a[i+2] + b[i+2]*w
		dst[i+3] = a[i+3] + b[i+3]*w
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]*w
	}
}

func lerpUnrolled(dst, a, b []float64, w float64) {
	n := len(dst)
	a, b = a[:n], b[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] + (b[i]-a[i])*w
		dst[i+1] = a[i+1] + (b[i+1]-a[i+1])*w
		dst[i+2] = a[i+2] + (b[i+2]-a[i+2])*w
		dst[i+3] = a[i+3] + (b[i+3]-a[i+3])*w
	}
	for ; i < n; i++ {
		dst[i] = a[i] + (b[i]-a[i])*w
	}
}

func pickMin(x, y float64) float64 {
	if y < x {
		return y
	}
	return x
}

func pickMax(x, y float64) float64 {
	if y > x {
		return y
	}
	return x
}

func minUnrolled(dst, a, b []float64) {
	n := len(dst)
	a, b = a[:n], b[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = pickMin(a[i], b[i])
		dst[i+1] = pickMin(a[i+1], b[i+1])
		dst[i+2] = pickMin(a[i+2], b[i+2])
		dst[i+3] = pickMin(a[i+3], b[i+3])
	}
	for ; i < n; i++ {
		dst[i] = pickMin(a[i], b[i])
	}
}

func maxUnrolled(dst, a, b []float64) {
	n := len(dst)
	a, b = a[:n], b[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = pickMax(a[i], b[i])
		dst[i+1] = pickMax(a[i+1], b[i+1])
		dst[i+2] = pickMax(a[i+2], b[i+2])
		dst[i+3] = pickMax(a[i+3], b[i+3])
	}
	for ; i < n; i++ {
		dst[i] = pickMax(a[i], b[i])
	}
}
