package common

// Routed is implemented by async result messages that belong to one page.
// The root model delivers them to their owner even when it is not on screen.
type Routed interface {
	RouteOwner() string
}
