package render

import "math"

// vec3 is a minimal 3D vector for the software projection.
type vec3 struct {
	X, Y, Z float64
}

func (v vec3) sub(o vec3) vec3    { return vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v vec3) dot(o vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v vec3) cross(o vec3) vec3 {
	return vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}
func (v vec3) length() float64 { return math.Sqrt(v.dot(v)) }
func (v vec3) normalize() vec3 {
	l := v.length()
	if l < 1e-12 {
		return vec3{}
	}
	return vec3{v.X / l, v.Y / l, v.Z / l}
}

// Camera is a fly-style perspective camera: a position plus yaw and pitch
// angles in degrees, with a vertical field of view.
type Camera struct {
	Position vec3
	yaw      float64
	pitch    float64
	fovDeg   float64

	front, right, up vec3
}

// NewCamera creates a camera at the given position with the given yaw and
// pitch in degrees.
func NewCamera(x, y, z, yaw, pitch float64) *Camera {
	c := &Camera{
		Position: vec3{x, y, z},
		yaw:      yaw,
		pitch:    pitch,
		fovDeg:   45,
	}
	c.updateVectors()
	return c
}

// defaultCityCamera positions the camera south of the city looking down
// at its center, high enough that the tallest buildings stay in frame.
func defaultCityCamera(width, height int) *Camera {
	cx := float64(width) / 2
	cy := float64(height) / 2
	return NewCamera(cx, cy+float64(height)*0.9, 420, -90, -32)
}

// updateVectors recomputes the basis from yaw and pitch. The city plane is
// XY with Z up; yaw rotates in the plane, pitch tilts toward it.
func (c *Camera) updateVectors() {
	yaw := c.yaw * math.Pi / 180
	pitch := c.pitch * math.Pi / 180

	c.front = vec3{
		math.Cos(yaw) * math.Cos(pitch),
		math.Sin(yaw) * math.Cos(pitch),
		math.Sin(pitch),
	}.normalize()

	worldUp := vec3{0, 0, 1}
	c.right = c.front.cross(worldUp).normalize()
	c.up = c.right.cross(c.front).normalize()
}

// project maps a world point to screen coordinates and a view-space
// depth. The second return value is false when the point is behind the
// camera.
func (c *Camera) project(p vec3, screenW, screenH int) (x, y, depth float64, ok bool) {
	rel := p.sub(c.Position)

	// View-space coordinates: vz is distance along the view axis.
	vx := rel.dot(c.right)
	vy := rel.dot(c.up)
	vz := rel.dot(c.front)
	if vz < 0.1 {
		return 0, 0, 0, false
	}

	f := float64(screenH) / (2 * math.Tan(c.fovDeg*math.Pi/360))
	x = float64(screenW)/2 + vx*f/vz
	y = float64(screenH)/2 - vy*f/vz
	return x, y, vz, true
}
