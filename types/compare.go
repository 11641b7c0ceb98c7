package types

// Equals returns if two types are structurally identical.  This operation is
// commutative.  Because unions are canonicalized at construction, two unions
// declared with the same members in different orders compare equal.
func Equals(lhs, rhs Type) bool {
	return lhs.equals(rhs)
}
