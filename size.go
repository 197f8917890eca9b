package pixel

// Vector1 is a one-dimensional size or offset.
type Vector1 [1]int

// Vector2 is a two-dimensional size or offset, (x, y).
type Vector2 [2]int

// Vector3 is a three-dimensional size or offset, (x, y, z).
type Vector3 [3]int

// Size is the set of dimension vectors images are parameterized with.
type Size interface {
	Vector1 | Vector2 | Vector3
}

// Pad extends s to three dimensions, filling the missing components with 1.
func Pad[S Size](s S) Vector3 {
	switch v := any(s).(type) {
	case Vector1:
		return Vector3{v[0], 1, 1}
	case Vector2:
		return Vector3{v[0], v[1], 1}
	case Vector3:
		return v
	}
	return Vector3{}
}

// Dimensions returns the number of components of S.
func Dimensions[S Size]() int {
	var s S
	switch any(s).(type) {
	case Vector1:
		return 1
	case Vector2:
		return 2
	default:
		return 3
	}
}

// truncate drops the components of v past the dimension count of S.
func truncate[S Size](v Vector3) S {
	var s S
	switch p := any(&s).(type) {
	case *Vector1:
		*p = Vector1{v[0]}
	case *Vector2:
		*p = Vector2{v[0], v[1]}
	case *Vector3:
		*p = v
	}
	return s
}

// sum adds all components of s.
func sum[S Size](s S) int {
	v := Pad(s)
	total := v[0]
	for i := 1; i < Dimensions[S](); i++ {
		total += v[i]
	}
	return total
}

// isEmpty reports whether s has no pixels, that is any component is zero or
// negative.
func isEmpty[S Size](s S) bool {
	v := Pad(s)
	return v[0] <= 0 || v[1] <= 0 || v[2] <= 0
}
