//go:build !tinygo

package core

// loadRegister reads a register word (regular Go, single-threaded tests)
func loadRegister(reg *uint32) uint32 {
	return *reg
}

// storeRegister writes a register word (regular Go, single-threaded tests)
func storeRegister(reg *uint32, v uint32) {
	*reg = v
}
