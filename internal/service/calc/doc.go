// Package calc computes paces for a single goal time and prints them once.
package calc
