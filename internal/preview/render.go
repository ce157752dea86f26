package preview

import (
	"fmt"
	"image"
	"math"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"mesh2gltf/internal/mesh"
)

// Options control preview rendering.
type Options struct {
	Size        int // output edge length in pixels
	Supersample int // render at Size*Supersample, then downscale
}

// meshColors is cycled per mesh so stacked samples stay distinguishable.
var meshColors = [][3]uint8{
	{160, 160, 170},
	{170, 150, 130},
	{140, 165, 150},
	{150, 145, 175},
}

// Render draws all meshes flat-shaded into one square image, framed to
// their joint bounding box with an orthographic projection (x right,
// y up, z toward the viewer).
func Render(meshes []*mesh.Mesh, opts Options) *image.NRGBA {
	size := opts.Size
	if size <= 0 {
		size = 256
	}
	ss := opts.Supersample
	if ss <= 0 {
		ss = 1
	}
	renderSize := size * ss

	allMin := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	allMax := [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, m := range meshes {
		mn, mx := m.Bounds()
		for k := 0; k < 3; k++ {
			if mn[k] < allMin[k] {
				allMin[k] = mn[k]
			}
			if mx[k] > allMax[k] {
				allMax[k] = mx[k]
			}
		}
	}
	if allMin[0] > allMax[0] {
		// Nothing to draw
		return image.NewNRGBA(image.Rect(0, 0, size, size))
	}

	center := [3]float64{
		(allMin[0] + allMax[0]) / 2,
		(allMin[1] + allMax[1]) / 2,
		(allMin[2] + allMax[2]) / 2,
	}
	span := allMax[0] - allMin[0]
	if s := allMax[1] - allMin[1]; s > span {
		span = s
	}
	if span < 0.001 {
		span = 0.001
	}
	margin := 16 * ss
	scale := float64(renderSize-2*margin) / span

	fb := newFrameBuffer(renderSize, renderSize)
	lc := defaultLightConfig()
	half := float64(renderSize) / 2

	for mi, m := range meshes {
		if m.VertexCount() == 0 {
			continue
		}
		px := make([]float64, m.VertexCount())
		py := make([]float64, m.VertexCount())
		pz := make([]float64, m.VertexCount())
		for i, v := range m.Vertices {
			px[i] = (float64(v[0])-center[0])*scale + half
			py[i] = half - (float64(v[1])-center[1])*scale // image y grows down
			pz[i] = (float64(v[2]) - center[2]) * scale
		}

		base := meshColors[mi%len(meshColors)]
		off := 0
		for _, fsize := range m.FaceSizes {
			n := int(fsize)
			for t := 2; t < n; t++ {
				vi := [3]int{
					int(m.Indices[off]),
					int(m.Indices[off+t-1]),
					int(m.Indices[off+t]),
				}
				rasterizeTriangle(fb, px, py, pz, vi, base, &lc)
			}
			off += n
		}
	}

	img := fb.image()
	if ss > 1 {
		img = downsample(img, size)
	}
	return img
}

// SaveWebP renders the meshes and writes the preview as a WebP file.
func SaveWebP(path string, meshes []*mesh.Mesh, opts Options) error {
	img := Render(meshes, opts)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: create %s: %w", path, err)
	}
	defer f.Close()
	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("preview: encode %s: %w", path, err)
	}
	return nil
}

// downsample reduces the supersampled render with premultiplied-alpha-aware
// CatmullRom filtering, avoiding dark halos at transparent edges.
func downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	premul := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			di := premul.PixOffset(x, y)
			a := float64(img.Pix[si+3]) / 255.0
			premul.Pix[di] = uint8(float64(img.Pix[si])*a + 0.5)
			premul.Pix[di+1] = uint8(float64(img.Pix[si+1])*a + 0.5)
			premul.Pix[di+2] = uint8(float64(img.Pix[si+2])*a + 0.5)
			premul.Pix[di+3] = img.Pix[si+3]
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	result := image.NewNRGBA(dst.Bounds())
	for y := 0; y < targetSize; y++ {
		for x := 0; x < targetSize; x++ {
			si := dst.PixOffset(x, y)
			di := result.PixOffset(x, y)
			a := float64(dst.Pix[si+3])
			if a > 1 {
				inv := 255.0 / a
				result.Pix[di] = clamp255(float64(dst.Pix[si]) * inv)
				result.Pix[di+1] = clamp255(float64(dst.Pix[si+1]) * inv)
				result.Pix[di+2] = clamp255(float64(dst.Pix[si+2]) * inv)
			}
			result.Pix[di+3] = dst.Pix[si+3]
		}
	}
	return result
}
