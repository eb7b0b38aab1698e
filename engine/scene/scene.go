// Package scene reads the TOML description of a camera and a set of objects
// and turns it into matrices and world-space bounds.
package scene

import (
	"bytes"
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"github.com/korkuveren/MARS/engine/core"
	"github.com/korkuveren/MARS/engine/culling"
	"github.com/korkuveren/MARS/engine/math"
	"github.com/pelletier/go-toml/v2"
)

// Camera describes a perspective camera looking from Position at Target
// with +z up.
type Camera struct {
	Position [3]float32 `toml:"position"`
	Target   [3]float32 `toml:"target"`
	// Full vertical field of view in degrees.
	FOV    float32 `toml:"fov"`
	Aspect float32 `toml:"aspect"`
	Near   float32 `toml:"near"`
	Far    float32 `toml:"far"`
}

// Object is a named point cloud placed in the world by a TRS transform.
type Object struct {
	Name        string     `toml:"name"`
	Translation [3]float32 `toml:"translation"`
	// RotationAxis need not be unit length. RotationAngle is in degrees.
	RotationAxis  [3]float32   `toml:"rotation_axis"`
	RotationAngle float32      `toml:"rotation_angle"`
	Scale         [3]float32   `toml:"scale"`
	Points        [][3]float32 `toml:"points"`
}

type Scene struct {
	Camera  Camera   `toml:"camera"`
	Objects []Object `toml:"objects"`

	// Path is the file the scene was loaded from, empty for Parse.
	Path string `toml:"-"`
}

func spatial(v [3]float32) math.Spatial3D {
	return math.NewSpatial3D(v[0], v[1], v[2])
}

// Load reads and validates the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

// Parse decodes and validates a scene. Unknown keys are rejected.
func Parse(data []byte) (*Scene, error) {
	s := &Scene{}
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("scene: decode: %w: %w", core.ErrInvalidScene, err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) applyDefaults() {
	if s.Camera.FOV == 0 {
		s.Camera.FOV = 60
	}
	if s.Camera.Aspect == 0 {
		s.Camera.Aspect = 1
	}
	for i := range s.Objects {
		if s.Objects[i].Scale == [3]float32{} {
			s.Objects[i].Scale = [3]float32{1, 1, 1}
		}
	}
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("scene: %s: %w", fmt.Sprintf(format, args...), core.ErrInvalidScene)
}

// Validate checks the camera and every object. The first problem found is
// returned, wrapping core.ErrInvalidScene.
func (s *Scene) Validate() error {
	c := s.Camera
	switch {
	case c.Near <= 0:
		return invalid("camera near %g must be positive", c.Near)
	case c.Far <= c.Near:
		return invalid("camera far %g must exceed near %g", c.Far, c.Near)
	case c.FOV <= 0 || c.FOV >= 180:
		return invalid("camera fov %g must lie in (0, 180)", c.FOV)
	case c.Aspect <= 0:
		return invalid("camera aspect %g must be positive", c.Aspect)
	case c.Position == c.Target:
		return invalid("camera position and target coincide")
	}

	seen := make(map[string]struct{}, len(s.Objects))
	for i, o := range s.Objects {
		if o.Name == "" {
			return invalid("object %d has no name", i)
		}
		if _, dup := seen[o.Name]; dup {
			return invalid("object %q declared twice", o.Name)
		}
		seen[o.Name] = struct{}{}

		if len(o.Points) == 0 {
			return invalid("object %q has no points", o.Name)
		}
		if o.RotationAngle != 0 && spatial(o.RotationAxis).LengthSquared() < math.K_NORMALIZE_EPSILON {
			return invalid("object %q rotates about a zero axis", o.Name)
		}
	}
	return nil
}

/**
 * @brief Returns the camera placement as a transform.
 *
 * The rotation maps view x, y and z onto the camera's side, up and forward
 * axes. The basis stays right handed, so view x points to the left of the
 * image. Culling is symmetric in x and does not care.
 */
func (c Camera) Transform() math.Transform {
	position := spatial(c.Position)
	forward := spatial(c.Target).Sub(position).Normalize()

	up := math.Spatial3DUp
	if math32.Abs(forward.Dot(up)) > 1-math.K_COMPARE_EPSILON {
		up = math.Spatial3DFront
	}
	side := up.Cross(forward).Normalize()
	up = forward.Cross(side)

	basis := math.NewMatrixFromRows(
		side.Vector4(0),
		up.Vector4(0),
		forward.Vector4(0),
		math.Spatial3DZero.Vector4(1),
	).Transpose()
	return math.TransformFromPositionRotation(position, basis.Rotation())
}

// View returns the world to view matrix.
func (c Camera) View() math.Matrix {
	return c.Transform().Inverse()
}

// Projection returns the perspective matrix. FOV is vertical while the
// matrix takes the horizontal half-angle, so it is widened by the aspect.
func (c Camera) Projection() math.Matrix {
	halfFov := math32.Atan(c.Aspect * math32.Tan(math.DegToRad(c.FOV)*0.5))
	return math.NewMatrixPerspective(halfFov, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection · view.
func (s *Scene) ViewProjection() math.Matrix {
	return s.Camera.Projection().Mul(s.Camera.View())
}

// Transform returns the object's placement.
func (o Object) Transform() math.Transform {
	rotation := math.QuaternionIdentity
	if o.RotationAngle != 0 {
		rotation = math.NewQuatFromAxisAngle(spatial(o.RotationAxis).Normalize(), math.DegToRad(o.RotationAngle))
	}
	return math.NewTransform(spatial(o.Translation), rotation, spatial(o.Scale))
}

// LocalBounds fits the bounds around the points as written in the file.
func (o Object) LocalBounds() culling.Bounds {
	data := make([]float32, 0, len(o.Points)*3)
	for _, p := range o.Points {
		data = append(data, p[0], p[1], p[2])
	}
	return culling.Bounds{
		Sphere: math.NewSphereFromFloats(data),
		Box:    math.NewAABBFromFloats(data, 0),
	}
}

// WorldBounds returns the local bounds moved by the object transform.
func (o Object) WorldBounds() culling.Bounds {
	return o.LocalBounds().Transform(o.Transform().ToMatrix())
}
