package interfaces

// IConnectivity reports whether the remote data store is reachable and
// notifies subscribers when that changes.
type IConnectivity interface {
	IsOnline() bool
	// Subscribe registers fn for online/offline transitions and returns a
	// function that removes it.
	Subscribe(fn func(online bool)) (unsubscribe func())
}
