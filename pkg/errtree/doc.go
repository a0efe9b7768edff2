// Package errtree defines the shaped validation error model: a recursive
// tree that mirrors the validated value's own structure so every failure can
// be traced back to the field or element that produced it.
//
// A tree node is one of three shapes. Object nodes hold object-level
// failures plus per-field children, Array nodes hold collection-level
// failures plus per-index children, and NewType nodes hold a bare list of
// failures for a single wrapped value. Success is the absence of a tree —
// a nil *Errors — never an empty one.
//
// Trees are built fresh per validation run, consumed once (flattened,
// localized, or serialized) and discarded. They carry no synchronization and
// no identity beyond a single run.
//
// # Consuming a tree
//
//	if err := profileValidator.Validate(&p); err != nil {
//		var tree *errtree.Errors
//		if errors.As(err, &tree) {
//			for _, f := range tree.Flatten() {
//				log.Printf("%s: %s", f.Path, f.Message)
//			}
//		}
//	}
//
// Flatten produces slash-delimited pointers ("/items/0", "/profile/email")
// in a deterministic order: a node's own failures first, then properties in
// declaration order, then items by ascending index.
//
// Localize rewrites every leaf through a message catalog while preserving
// the tree shape exactly, producing a Localized tree with string leaves.
package errtree
