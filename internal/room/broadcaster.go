package room

// Broadcaster delivers an outbound event to a set of connections. Implementations
// must not block: the manager calls it while holding the room lock so events of
// one room are queued in the order they happened.
type Broadcaster interface {
	Broadcast(connIDs []string, action string, data interface{})
}
