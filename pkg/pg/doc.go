// Package pg opens pgx connection pools, applies goose migrations from an
// fs.FS and classifies Postgres errors.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, userstore.Migrations, userstore.MigrationsDir, cfg, log); err != nil {
//		return err
//	}
//
// IsDuplicateKeyError and IsForeignKeyViolationError inspect *pgconn.PgError
// codes so stores can map constraint violations to domain errors.
package pg
