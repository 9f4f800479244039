package queue

// SetMaxCapacity lowers the growth limit of r so tests can force the
// grow-failure path without allocating a gigabyte.
func SetMaxCapacity[T any](r *Ring[T], n int) { r.maxCap = n }

// SetByteMaxCapacity is SetMaxCapacity for ByteRing.
func SetByteMaxCapacity(b *ByteRing, n int) { b.maxCap = n }
