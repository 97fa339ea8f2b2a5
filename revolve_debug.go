//go:build revolve_debug

package revolve

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
