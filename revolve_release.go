//go:build !revolve_debug

package revolve

const debugging = false

func assert(bool, string) {}
