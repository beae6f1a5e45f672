// Package interactive runs the planner behind a line-editing prompt.
//
// Each line is either a goal time, which republishes the paces, or a
// command that changes the unit, the detail level or the output format.
// The renderer is subscribed for the whole session and prints whenever the
// published result changes.
package interactive
