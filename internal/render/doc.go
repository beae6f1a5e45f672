// Package render displays pace results held in a store.
//
// A Renderer subscribes to the store when attached and writes the current
// result in text, YAML or JSON whenever the held reference changes. Zone
// ranges are only shown when the detailed plan is enabled.
package render
