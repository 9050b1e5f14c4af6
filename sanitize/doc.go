// Package sanitize implements five ordered cleanup passes over a bond
// graph: remove-atom-on-a-bond, remove-triangles, fix-valence,
// sanity-check, and remove-homoatomic. Each pass is a pure
// transformation returning a new *core.Graph; Run composes them in a
// fixed order, since removing spurious triangle edges changes valence
// counts and must happen before valence fixing, which in turn must
// precede the length-based sanity check.
package sanitize
