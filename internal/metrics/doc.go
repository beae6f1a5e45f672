// Package metrics registers the planner's Prometheus counters and renders
// the default registry in the Prometheus text format for the interactive "stats" command.
package metrics
