// Package userstore provides auth.Store implementations.
//
// Memory keeps everything in process and suits tests and single-instance
// development. Postgres stores users, password hashes and sessions in the
// tables created by the goose migrations embedded in Migrations:
//
//	if err := pg.Migrate(ctx, pool, userstore.Migrations, userstore.MigrationsDir, cfg, log); err != nil {
//		return err
//	}
//	store := userstore.NewPostgres(pool)
//
// RedisSessionCache decorates any store with a Redis cache for session
// lookups by token; entries expire together with the session.
package userstore
