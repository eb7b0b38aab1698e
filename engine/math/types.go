package math

import "github.com/korkuveren/MARS/engine/math/vector"

/** @brief A 2D coordinate. Not vectorized. */
type Cartesian2D struct {
	X, Y float32
}

/**
 * @brief The shared 3D layout: x, y and z in the first three lanes of a
 * vector, w kept at zero. Spatial3D and Euler3D have the same layout and
 * convert to and from it for free.
 */
type Cartesian3D vector.Vector

/** @brief A point or a direction in 3D space. */
type Spatial3D Cartesian3D

/** @brief Roll, pitch and yaw angles stored in the x, y and z lanes. */
type Euler3D Cartesian3D

/**
 * @brief A rotation quaternion stored as (x, y, z, w). Rotation queries
 * expect unit length, which is not enforced.
 */
type Quaternion vector.Vector

/**
 * @brief a 4x4 matrix stored as four row vectors. Translation lives in the
 * fourth column, so Rows[i][3] is the i-th translation component.
 */
type Matrix struct {
	/** @brief The matrix rows */
	Rows [4]vector.Vector
}

/** @brief A plane stored as (normal.x, normal.y, normal.z, distance). */
type Plane vector.Vector

/** @brief A sphere stored as (center.x, center.y, center.z, radius). */
type Sphere vector.Vector

/**
 * @brief An axis-aligned bounding box. Min <= Max is expected but not
 * enforced. Fitting an empty point set yields the all-zero box.
 */
type AABB struct {
	/** @brief The minimum extents of the box. */
	Min Spatial3D
	/** @brief The maximum extents of the box. */
	Max Spatial3D
}

/**
 * @brief Represents the transform of an object in the world as separate
 * translation, rotation and scale.
 */
type Transform struct {
	/** @brief The position in the world. */
	Translation Spatial3D
	/** @brief The rotation in the world. */
	Rotation Quaternion
	/** @brief The per-axis scale. */
	Scale Spatial3D
}

/** @brief An RGBA colour with float channels. */
type Color vector.Vector
