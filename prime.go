package oamap

// minCapacity is the smallest capacity a table can have.
// NextPrime never returns 2, so every capacity is an odd prime.
const minCapacity = 3

// IsPrime reports whether n is prime, using trial division by odd factors.
func IsPrime(n int) bool {
	if n == 2 || n == 3 {
		return true
	}

	if n < 2 || n%2 == 0 {
		return false
	}

	for factor := 3; factor*factor <= n; factor += 2 {
		if n%factor == 0 {
			return false
		}
	}

	return true
}

// NextPrime returns the smallest odd prime >= n.
// Even values are bumped to the next odd value before searching.
func NextPrime(n int) int {
	if n <= minCapacity {
		return minCapacity
	}

	if n%2 == 0 {
		n++
	}

	for !IsPrime(n) {
		n += 2
	}

	return n
}
