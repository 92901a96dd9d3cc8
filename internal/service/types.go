package service

// Task represents a single to-do entry. It has no ID; its position in the
// list is its identity.
type Task struct {
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// InRange reports whether index addresses an element of a list of length n.
func InRange(index, n int) bool {
	return index >= 0 && index < n
}
