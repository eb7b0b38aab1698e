package vector

var (
	quatMaskYW = Mask{false, true, false, true}
	quatMaskYZ = Mask{false, true, true, false}
)

// QuatMul returns the Hamilton product a*b of two (x, y, z, w) quaternions
// using nine multiplies instead of sixteen.
//
//	t0 = (az-ay)(by-bz)   t4 = (az-ax)(bx-by)
//	t1 = (aw+ax)(bw+bx)   t5 = (az+ax)(bx+by)
//	t2 = (aw-ax)(by+bz)   t6 = (aw+ay)(bw-bz)
//	t3 = (az+ay)(bw-bx)   t7 = (aw-ay)(bw+bz)
//	t8 = t5+t6+t7,  t9 = (t4+t8)/2
//	a*b = (t1+t9-t8, t2+t9-t7, t3+t9-t6, t0+t9-t5)
func QuatMul(a, b Vector) Vector {
	k := active

	// (az-ay, aw+ax, aw-ax, az+ay) * (by-bz, bw+bx, by+bz, bw-bx)
	pa, qa := a.Swizzle(2, 3, 3, 2), a.Swizzle(1, 0, 0, 1)
	pb, qb := b.Swizzle(1, 3, 1, 3), b.Swizzle(2, 0, 2, 0)
	l0 := k.Select(quatMaskYW, k.Add(pa, qa), k.Sub(pa, qa))
	r0 := k.Select(quatMaskYZ, k.Add(pb, qb), k.Sub(pb, qb))
	t0123 := k.Mul(l0, r0)

	// (az-ax, az+ax, aw+ay, aw-ay) * (bx-by, bx+by, bw-bz, bw+bz)
	pa, qa = a.Swizzle(2, 2, 3, 3), a.Swizzle(0, 0, 1, 1)
	pb, qb = b.Swizzle(0, 0, 3, 3), b.Swizzle(1, 1, 2, 2)
	l1 := k.Select(quatMaskYZ, k.Add(pa, qa), k.Sub(pa, qa))
	r1 := k.Select(quatMaskYW, k.Add(pb, qb), k.Sub(pb, qb))
	t4567 := k.Mul(l1, r1)

	t8 := t4567[1] + t4567[2] + t4567[3]
	t9 := float32(0.5 * (t4567[0] + t8))

	sum := k.Add(t0123.Swizzle(1, 2, 3, 0), Load1(t9))
	return k.Sub(sum, Vector{t8, t4567[3], t4567[2], t4567[1]})
}

// QuatRotate rotates the xyz lanes of v by the unit quaternion q:
// t = 2(q×v), v' = v + w·t + q×t.
func QuatRotate(q, v Vector) Vector {
	k := active
	t := k.Mul(q.Cross3(v), Two)
	return k.Add(k.Add(v, k.Mul(t, q.Replicate(3))), q.Cross3(t))
}
