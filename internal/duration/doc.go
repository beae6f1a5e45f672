// Package duration parses goal finish times written as "MM:SS" or
// "HH:MM:SS" into whole elapsed seconds.
//
// The parser is arithmetic only: segments are not range checked, so
// "99:99" is 99 minutes plus 99 seconds. Every failure wraps ErrInvalid,
// which callers treat as "no duration".
package duration
