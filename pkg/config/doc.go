// Package config loads typed configuration structs from environment
// variables using caarlos0/env tags, after reading an optional .env file with
// godotenv.
//
//	var sess session.Config
//	if err := config.Load(&sess); err != nil {
//		return err
//	}
//
// Every struct type is parsed once per process and cached; a failed parse is
// not cached so the caller may retry.
package config
