package utils

import (
	"crypto/rand"
	"math/big"
)

const alphanumerics = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomString returns a random lowercase alphanumeric string of length n.
// Used for username fallback handles and throwaway passwords on
// federated-only accounts.
func RandomString(n int) string {
	out := make([]byte, n)
	max := big.NewInt(int64(len(alphanumerics)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is
			// broken; fall back to the first symbol rather than panic.
			out[i] = alphanumerics[0]
			continue
		}
		out[i] = alphanumerics[idx.Int64()]
	}
	return string(out)
}

// RandomInt returns a uniform random integer in [0, n).
func RandomInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}
