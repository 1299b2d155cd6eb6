package entities

// Pair is one stored association between a left-side and a right-side ID
// Example: the user_roles row (alice, admin) means user "alice" holds role "admin"
type Pair[L, R ID] struct {
	Left  L
	Right R
}
