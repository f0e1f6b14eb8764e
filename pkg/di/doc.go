// Package di provides a name-keyed service container.
//
// Services register under a string name either eagerly (Set) or lazily
// through a factory (Register). Lazy services are shared: the factory runs
// once on first resolution and the instance is cached for subsequent calls.
//
//	c := di.NewContainer()
//	c.Register("mongo", func(c *di.Container) (any, error) {
//		return connectDatabase()
//	})
//
//	db, err := di.Resolve[*mongo.Database](c, "mongo")
//
// The container performs no reflection-based wiring; factories receive the
// container and resolve their own dependencies explicitly.
package di
