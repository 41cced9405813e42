//go:build wasm

package internal

// wasm is single-threaded; every subscriber shares one goroutine.
func getGID() int64 {
	return 0
}
