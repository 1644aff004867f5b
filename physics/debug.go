package physics

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp/v2"
)

// DrawDebug draws all shapes of the space onto the target image, with the
// world position camera at the left edge of the image. World coordinates
// have y pointing up, the image is flipped accordingly.
func (s *Space) DrawDebug(target *ebiten.Image, camera cp.Vector, colors map[string]cp.FColor) {
	cp.DrawSpace(s.space, debugImage{
		Image:  target,
		Camera: camera,
		Height: float64(target.Bounds().Dy()),
		Colors: colors,
	})
}

type debugImage struct {
	Image  *ebiten.Image
	Camera cp.Vector
	Height float64
	Colors map[string]cp.FColor
}

func (d debugImage) transform(pos cp.Vector) (float32, float32) {
	return float32(pos.X - d.Camera.X), float32(d.Height - (pos.Y - d.Camera.Y))
}

func (d debugImage) draw(p vector.Path, outline cp.FColor, fill cp.FColor) {
	dpo := &vector.DrawPathOptions{}
	dpo.ColorScale.Scale(fill.R*fill.A, fill.G*fill.A, fill.B*fill.A, fill.A)
	vector.FillPath(d.Image, &p, &vector.FillOptions{}, dpo)

	*dpo = vector.DrawPathOptions{}
	dpo.ColorScale.Scale(outline.R*outline.A, outline.G*outline.A, outline.B*outline.A, outline.A)
	vector.StrokePath(d.Image, &p, &vector.StrokeOptions{Width: 1}, dpo)
}

func (d debugImage) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	x, y := d.transform(pos)

	var p vector.Path
	p.Arc(x, y, float32(radius), 0, math.Pi*2, vector.Clockwise)
	p.MoveTo(x, y)
	p.LineTo(x+float32(math.Cos(angle)*radius), y-float32(math.Sin(angle)*radius))

	d.draw(p, outline, fill)
}

func (d debugImage) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	ax, ay := d.transform(a)
	bx, by := d.transform(b)

	var p vector.Path
	p.MoveTo(ax, ay)
	p.LineTo(bx, by)
	d.draw(p, fill, cp.FColor{})
}

func (d debugImage) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	ax, ay := d.transform(a)
	bx, by := d.transform(b)

	var p vector.Path
	p.MoveTo(ax, ay)
	p.LineTo(bx, by)

	// fat segments are stroked with their full width
	dpo := &vector.DrawPathOptions{}
	dpo.ColorScale.Scale(outline.R*outline.A, outline.G*outline.A, outline.B*outline.A, outline.A)
	vector.StrokePath(d.Image, &p, &vector.StrokeOptions{Width: float32(max(1, 2*radius))}, dpo)
}

func (d debugImage) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count == 0 {
		return
	}

	var p vector.Path
	p.MoveTo(d.transform(verts[0]))
	for _, vert := range verts[1:count] {
		p.LineTo(d.transform(vert))
	}

	p.Close()
	d.draw(p, outline, fill)
}

func (d debugImage) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	d.DrawCircle(pos, 0, size/2, fill, fill, data)
}

func (d debugImage) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d debugImage) OutlineColor() cp.FColor {
	return cp.FColor{R: 1, G: 1, B: 1, A: 1}
}

func (d debugImage) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if color, ok := d.Colors[labelOf(shape)]; ok {
		return color
	}

	if shape.Sensor() {
		return cp.FColor{B: 1, A: 0.25}
	}

	return cp.FColor{G: 1, A: 1}
}

func (d debugImage) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.75, A: 1}
}

func (d debugImage) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, A: 1}
}

func (d debugImage) Data() interface{} {
	return nil
}
