// Package collection manages document-model bookkeeping for a single
// request: one-time model initialization, per-model connection services,
// implicit object-id flags, and lifecycle event dispatch.
//
// A Manager is request-scoped — construct one per unit of work and discard
// it when the request ends. Methods are guarded for concurrent use, but the
// intended ownership model is a single logical flow of control per manager.
//
// # Model lifecycle
//
// Each model class moves from uninitialized to initialized exactly once per
// manager lifetime. A model that wants a hook implements Initializer; the
// hook and the "collectionManager:afterInitialize" event fire only on the
// first Initialize call for that class.
//
//	mgr := collection.NewManager()
//	mgr.SetContainer(container)
//	mgr.SetEventsManager(em)
//
//	if err := mgr.Initialize(ctx, &User{}); err != nil {
//		return err
//	}
//	db, err := mgr.Connection(&User{}) // resolves the model's connection service
package collection
