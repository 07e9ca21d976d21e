package password

// Params are the scrypt cost parameters.
type Params struct {
	N       int // CPU/memory cost
	R       int // block size
	P       int // parallelism
	KeyLen  int // digest length in bytes
	SaltLen int // random salt length in bytes
}

// DefaultParams returns the production cost parameters.
func DefaultParams() Params {
	return Params{
		N:       16384,
		R:       16,
		P:       1,
		KeyLen:  64,
		SaltLen: 16,
	}
}
