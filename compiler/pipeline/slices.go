package pipeline

// sliceSet sets s[i] = x growing s with zero values as needed.
func sliceSet[S ~[]E, E any, I interface{ ~int | ~uint32 }](s S, i I, x E) S {
	var z E

	for int(i) >= len(s) {
		s = append(s, z)
	}

	s[i] = x

	return s
}
