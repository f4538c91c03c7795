package scene

import (
	"github.com/jsheldrick/go-scatter/pkg/bsdf"
	"github.com/jsheldrick/go-scatter/pkg/core"
	"github.com/jsheldrick/go-scatter/pkg/geometry"
)

// Scene holds the surfaces, camera and background for a render
type Scene struct {
	Surfaces geometry.SurfaceList
	Camera   *Camera

	// Sky gradient colors, blended by the ray's vertical direction
	TopColor    core.Color
	BottomColor core.Color
}

// Background returns the sky color for a ray that escaped the scene
func (s *Scene) Background(ray core.Ray) core.Color {
	unit := ray.Direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)

	return s.BottomColor.Scale(1.0 - t).Add(s.TopColor.Scale(t))
}

// Default builds the demo scene: a diffuse, a mirror and a glass sphere
// over a diffuse ground plane, exercising every material variant
func Default(aspectRatio float64) *Scene {
	ground := bsdf.New(bsdf.TypeDiffuse, core.NewColor(0.5, 0.5, 0.5))
	matte := bsdf.New(bsdf.TypeDiffuse, core.NewColor(0.7, 0.3, 0.3))
	mirror := bsdf.New(bsdf.TypeMirror, core.NewColor(0.9, 0.9, 0.9))
	glass := bsdf.New(bsdf.TypeGlass, core.White)

	camera := NewCamera(
		core.NewVec3(0, 1, 3),
		core.NewVec3(0, 0.5, 0),
		core.NewVec3(0, 1, 0),
		40, aspectRatio,
	)

	return &Scene{
		Surfaces: geometry.SurfaceList{
			geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground),
			geometry.NewSphere(core.NewVec3(-1.1, 0.5, 0), 0.5, matte),
			geometry.NewSphere(core.NewVec3(0, 0.5, 0), 0.5, glass),
			geometry.NewSphere(core.NewVec3(1.1, 0.5, 0), 0.5, mirror),
		},
		Camera:      camera,
		TopColor:    core.NewColor(0.5, 0.7, 1.0),
		BottomColor: core.White,
	}
}

// WithGroundTexture rebuilds the default scene with an image-textured ground
func WithGroundTexture(aspectRatio float64, texPath string) (*Scene, error) {
	ground, err := bsdf.NewTextured(bsdf.TypeDiffuse, texPath)
	if err != nil {
		return nil, err
	}

	s := Default(aspectRatio)
	s.Surfaces[0] = geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground)
	return s, nil
}
