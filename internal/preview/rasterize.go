package preview

import "math"

// lightConfig holds precomputed flat-shading parameters.
type lightConfig struct {
	lightDir [3]float64
	rimDir   [3]float64
	halfMain [3]float64 // precomputed half-vector for Blinn-Phong
	ambient  float64
	hemi     float64
	direct   float64
	rim      float64
	specInt  float64
	specPow  float64
	exposure float64
	invGamma float64
}

func defaultLightConfig() lightConfig {
	lightDir := normalize([3]float64{180, 260, 140})
	rimDir := normalize([3]float64{-160, 130, -210})
	viewDir := normalize([3]float64{0, -110, -400})
	halfMain := normalize([3]float64{
		lightDir[0] - viewDir[0],
		lightDir[1] - viewDir[1],
		lightDir[2] - viewDir[2],
	})
	return lightConfig{
		lightDir: lightDir,
		rimDir:   rimDir,
		halfMain: halfMain,
		ambient:  0.55,
		hemi:     0.50,
		direct:   1.50,
		rim:      0.60,
		specInt:  0.45,
		specPow:  12.0,
		exposure: 1.05,
		invGamma: 1.0 / 2.2,
	}
}

func normalize(v [3]float64) [3]float64 {
	l := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l < 1e-12 {
		return [3]float64{}
	}
	return [3]float64{v[0] / l, v[1] / l, v[2] / l}
}

// shade returns the combined lighting scalar for a unit face normal.
// Lambertian terms use abs so faces are double-sided.
func (lc *lightConfig) shade(nx, ny, nz float64) float64 {
	ndlMain := math.Abs(nx*lc.lightDir[0] + ny*lc.lightDir[1] + nz*lc.lightDir[2])
	ndlRim := math.Abs(nx*lc.rimDir[0] + ny*lc.rimDir[1] + nz*lc.rimDir[2])
	hemi := ((1.0-math.Abs(ny))*0.5 + 0.5) * lc.hemi
	ndh := nx*lc.halfMain[0] + ny*lc.halfMain[1] + nz*lc.halfMain[2]
	if ndh < 0 {
		ndh = 0
	}
	spec := math.Pow(ndh, lc.specPow) * lc.specInt
	return lc.ambient + hemi + ndlMain*lc.direct + ndlRim*lc.rim + spec
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// acesTonemap applies ACES filmic tone mapping to a linear value.
func acesTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// rasterizeTriangle draws one flat-shaded triangle with a z-buffer. This is
// the hot path: zero allocation in the pixel loop.
func rasterizeTriangle(fb *frameBuffer, px, py, pz []float64, vi [3]int, base [3]uint8, lc *lightConfig) {
	nv := len(px)
	for _, i := range vi {
		if i < 0 || i >= nv {
			return
		}
	}

	x0, y0, z0 := px[vi[0]], py[vi[0]], pz[vi[0]]
	x1, y1, z1 := px[vi[1]], py[vi[1]], pz[vi[1]]
	x2, y2, z2 := px[vi[2]], py[vi[2]], pz[vi[2]]

	// Face normal for flat shading
	e1x, e1y, e1z := x1-x0, y1-y0, z1-z0
	e2x, e2y, e2z := x2-x0, y2-y0, z2-z0
	nx := e1y*e2z - e1z*e2y
	ny := e1z*e2x - e1x*e2z
	nz := e1x*e2y - e1y*e2x
	nl := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if nl < 1e-8 {
		return
	}
	shade := lc.shade(nx/nl, ny/nl, nz/nl)

	// Shaded color is constant across the face: sRGB decode, light, tone
	// map, re-encode once instead of per pixel.
	var out [3]uint8
	for c := 0; c < 3; c++ {
		lin := srgbToLinear[base[c]] * shade * lc.exposure
		out[c] = clamp255(math.Pow(acesTonemap(lin), lc.invGamma) * 255)
	}

	// Bounding box clipped to the framebuffer
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1
	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.width {
		maxX = fb.width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.height {
		maxY = fb.height - 1
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * fb.width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.zbuf[zIdx] {
				continue
			}
			fb.zbuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.color[pxIdx] = out[0]
			fb.color[pxIdx+1] = out[1]
			fb.color[pxIdx+2] = out[2]
			fb.color[pxIdx+3] = 255
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
