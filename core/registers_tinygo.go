//go:build tinygo

package core

import "sync/atomic"

// loadRegister reads a register word; safe against a tick interrupt mid-store
func loadRegister(reg *uint32) uint32 {
	return atomic.LoadUint32(reg)
}

// storeRegister writes a register word as a single store
func storeRegister(reg *uint32, v uint32) {
	atomic.StoreUint32(reg, v)
}
