// Package protein computes daily protein requirements from body weight,
// activity level, goal and age.
//
// The lookup tables are package-level values that are never mutated, so every
// function here is safe to call concurrently. A calculation either returns a
// complete Result or an error; there are no partial results.
package protein
