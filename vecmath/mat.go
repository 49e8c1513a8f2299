package vecmath

// Mat3 is a 3x3 matrix stored column-major: element [col*3+row]. This is
// the convention the transform unit's ModelToWorld/WorldToView extraction
// of the translation column (elements 9,10,11 of a 3x4 register block)
// depends on; see mat_test.go and gpu/transform.go.
type Mat3 [9]float32

// Mul applies the matrix to a vector: ret = M * v.
func (m Mat3) Mul(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Det computes the determinant via the rule of Sarrus.
func (m Mat3) Det() float32 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Inverse computes the matrix inverse via the adjugate/determinant method.
// The second return value is false when the matrix is singular (det == 0),
// in which case the returned matrix is the zero matrix.
func (m Mat3) Inverse() (Mat3, bool) {
	det := m.Det()
	if det == 0 {
		return Mat3{}, false
	}
	invDet := 1 / det

	// Column-major adjugate: cofactor[row*3+col] placed at [col*3+row]
	// of the inverse (transpose of the cofactor matrix, scaled).
	var out Mat3
	out[0] = (m[4]*m[8] - m[7]*m[5]) * invDet
	out[3] = -(m[3]*m[8] - m[6]*m[5]) * invDet
	out[6] = (m[3]*m[7] - m[6]*m[4]) * invDet
	out[1] = -(m[1]*m[8] - m[7]*m[2]) * invDet
	out[4] = (m[0]*m[8] - m[6]*m[2]) * invDet
	out[7] = -(m[0]*m[7] - m[6]*m[1]) * invDet
	out[2] = (m[1]*m[5] - m[4]*m[2]) * invDet
	out[5] = -(m[0]*m[5] - m[3]*m[2]) * invDet
	out[8] = (m[0]*m[4] - m[3]*m[1]) * invDet
	return out, true
}

// Translation returns the 3-vector stored in elements 9,10,11 of a 3x4
// column-major register block (world/view matrices carry their
// translation there, appended after the 3x3 linear part).
func Translation(block [12]float32) Vec3 {
	return Vec3{block[9], block[10], block[11]}
}

// Linear3 extracts the leading 3x3 linear part of a 3x4 column-major
// register block.
func Linear3(block [12]float32) Mat3 {
	var m Mat3
	copy(m[:], block[:9])
	return m
}

// Mat4 is a 4x4 matrix stored column-major: element [col*4+row].
type Mat4 [16]float32

// Mul applies the matrix to a vector: ret = M * v.
func (m Mat4) Mul(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}
