// Package character implements the character controller: the motion state
// machine, the animation it selects and movement integration constrained by
// the navigation mesh.
//
// All functions operate on entity.Character records and keep no state of
// their own.
package character
