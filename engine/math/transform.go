package math

/**
 * @brief Creates a transform from its three parts.
 *
 * @param translation The position in the world.
 * @param rotation The rotation, expected to be unit length.
 * @param scale The per-axis scale.
 * @return A new transform.
 */
func NewTransform(translation Spatial3D, rotation Quaternion, scale Spatial3D) Transform {
	return Transform{Translation: translation, Rotation: rotation, Scale: scale}
}

// NewTransformIdentity returns the transform that changes nothing.
func NewTransformIdentity() Transform {
	return NewTransform(Spatial3DZero, QuaternionIdentity, Spatial3DOne)
}

func TransformFromPosition(position Spatial3D) Transform {
	return NewTransform(position, QuaternionIdentity, Spatial3DOne)
}

func TransformFromRotation(rotation Quaternion) Transform {
	return NewTransform(Spatial3DZero, rotation, Spatial3DOne)
}

func TransformFromPositionRotation(position Spatial3D, rotation Quaternion) Transform {
	return NewTransform(position, rotation, Spatial3DOne)
}

func (t Transform) WithTranslation(translation Spatial3D) Transform {
	t.Translation = translation
	return t
}

func (t Transform) WithRotation(rotation Quaternion) Transform {
	t.Rotation = rotation
	return t
}

func (t Transform) WithScale(scale Spatial3D) Transform {
	t.Scale = scale
	return t
}

// Translate moves the transform by d in world space.
func (t Transform) Translate(d Spatial3D) Transform {
	t.Translation = t.Translation.Add(d)
	return t
}

// Rotate applies r after the current rotation.
func (t Transform) Rotate(r Quaternion) Transform {
	t.Rotation = r.Mul(t.Rotation)
	return t
}

// ToMatrix returns the scale, then rotate, then translate matrix.
func (t Transform) ToMatrix() Matrix {
	return NewMatrixTransform(t.Translation, t.Rotation, t.Scale)
}

// Inverse returns the matrix undoing ToMatrix.
func (t Transform) Inverse() Matrix {
	return t.ToMatrix().Inverse()
}

/**
 * @brief Applies the transform to v.
 *
 * @param v The vector to transform.
 * @param w 1 to include the translation (points), 0 to skip it (directions).
 * @return rotation(scale·v) + translation·w.
 */
func (t Transform) TransformVector(v Spatial3D, w float32) Spatial3D {
	return t.Rotation.Rotate(t.Scale.Mul(v)).Add(t.Translation.Scale(w))
}

// TransformPoint is TransformVector with w = 1.
func (t Transform) TransformPoint(p Spatial3D) Spatial3D {
	return t.TransformVector(p, 1)
}

// InverseTransformVector undoes TransformVector for the same w.
func (t Transform) InverseTransformVector(v Spatial3D, w float32) Spatial3D {
	local := t.Rotation.Inverse().Rotate(v.Sub(t.Translation.Scale(w)))
	return local.Mul(t.Scale.Reciprocal())
}

// NormalizedRotation returns t with a unit-length rotation.
func (t Transform) NormalizedRotation() Transform {
	t.Rotation = t.Rotation.NormalizedDefault()
	return t
}

func (t Transform) IsRotationNormalized() bool {
	return t.Rotation.IsNormalized(K_COMPARE_EPSILON)
}

// Add sums every part. Used to accumulate weighted transforms for blending.
func (t Transform) Add(o Transform) Transform {
	return NewTransform(
		t.Translation.Add(o.Translation),
		t.Rotation.Add(o.Rotation),
		t.Scale.Add(o.Scale),
	)
}

// Mul multiplies every part componentwise, with the rotations composed.
func (t Transform) Mul(o Transform) Transform {
	return NewTransform(
		t.Translation.Mul(o.Translation),
		t.Rotation.Mul(o.Rotation),
		t.Scale.Mul(o.Scale),
	)
}

func (t Transform) MulScalar(f float32) Transform {
	return NewTransform(
		t.Translation.Scale(f),
		t.Rotation.MulScalar(f),
		t.Scale.Scale(f),
	)
}

// Lerp blends translation and scale linearly and the rotation with Slerp.
func (t Transform) Lerp(o Transform, f float32) Transform {
	return NewTransform(
		t.Translation.Lerp(o.Translation, f),
		t.Rotation.Slerp(o.Rotation, f, K_COMPARE_EPSILON),
		t.Scale.Lerp(o.Scale, f),
	)
}

func (t Transform) Equals(o Transform, eps float32) bool {
	return t.Translation.Equals(o.Translation, eps) &&
		t.Rotation.Equals(o.Rotation, eps) &&
		t.Scale.Equals(o.Scale, eps)
}
