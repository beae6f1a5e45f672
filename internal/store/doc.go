// Package store implements a single-slot observable store.
//
// Store holds one value and an ordered registry of zero-argument callbacks.
// Set replaces the value and calls every callback synchronously, in
// registration order, before it returns. Get returns exactly what the last
// Set supplied, so pointer values keep their identity between updates and
// consumers can detect changes by comparing references.
package store
