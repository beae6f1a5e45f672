// Package pace contains the domain model of the planner: distance units,
// training zones and the immutable Result derived from a goal marathon time.
//
// Compute turns total seconds into a Result; Format renders a pace in
// seconds as "m:ss".
package pace
