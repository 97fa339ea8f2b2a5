package revolve

import "fmt"

type constError string

// ErrInvalidCapacity may be returned from [NewOnlineR2], [NewLRU] and [Replay].
const ErrInvalidCapacity = constError("invalid capacity")

func (errStr constError) Error() string { return string(errStr) }

func capacityError(capacity, minimum int) error {
	return fmt.Errorf(
		"%w: must be >=%d but %d was requested",
		ErrInvalidCapacity, minimum, capacity)
}
