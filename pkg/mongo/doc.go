// Package mongo provides MongoDB connection management for the collection
// manager's connection services.
//
// Configuration is environment-driven. Connect retries transient failures
// so deployments behind managed clusters (e.g. Atlas) come up cleanly:
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.Database(ctx, cfg, "app")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Databases register in the dependency injection container as named
// connection services, which is how models reach their connection through
// collection.Manager:
//
//	mongo.RegisterService(container, "mongo", db)
package mongo
