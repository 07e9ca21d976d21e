// Package environment names the deployment stage (development, staging,
// production) and carries it through context.Context and request handlers.
//
// Parse turns an APP_ENV value into an Environment. The application uses
// IsProduction to decide whether session cookies get the __Secure- prefix.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	r.Use(environment.Middleware(env))
//
// LoggerExtractor plugs into logger.WithContextExtractors so every record
// logged with a request context carries an "env" attribute.
package environment
