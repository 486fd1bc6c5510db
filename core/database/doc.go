// Package database handles the optional database connection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// based on the application's configuration, with bounded timeouts and a
// connection pool.
//
// # Connect
//
// Connect opens the connection and verifies it with a ping. Ping and Close
// operate on the pool behind a *gorm.DB and are used by the readiness probe
// and the application shutdown hook.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//	defer database.Close(db)
package database
