// Package events provides a synchronous publish/subscribe manager for
// component lifecycle notifications.
//
// Event types follow the "component:event" convention. A handler attached
// to a full type (e.g. "collectionManager:afterInitialize") receives only
// that event; a handler attached to the component name alone
// ("collectionManager") receives every event the component fires.
//
// Dispatch is synchronous and in registration order — Fire returns after
// all matching handlers have run. The manager is safe for concurrent use.
//
//	em := events.NewManager()
//	em.Listen("collectionManager", func(ctx context.Context, e events.Event) {
//		log.Printf("event %s from %T", e.Type, e.Source)
//	})
//	em.Fire(ctx, "collectionManager:afterInitialize", mgr, model)
package events
