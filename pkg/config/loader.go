package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache keeps one parsed value per config type.
type cache struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
	onces  map[reflect.Type]*sync.Once
}

var (
	global = &cache{
		values: make(map[reflect.Type]any),
		onces:  make(map[reflect.Type]*sync.Once),
	}

	dotenvOnce sync.Once
)

// Load fills v from the process environment. The first call also reads a
// .env file from the working directory when one exists. Each config type is
// parsed once; later calls receive a copy of the cached value.
func Load[T any](v *T) error {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := reflect.TypeFor[T]()

	if cached, ok := global.get(key); ok {
		*v = cached.(T)
		return nil
	}

	global.mu.Lock()
	once, ok := global.onces[key]
	if !ok {
		once = new(sync.Once)
		global.onces[key] = once
	}
	global.mu.Unlock()

	var err error
	once.Do(func() {
		var parsed T
		if perr := env.Parse(&parsed); perr != nil {
			err = errors.Join(ErrParsingConfig, perr)
			// allow a retry once the environment is fixed
			global.mu.Lock()
			delete(global.onces, key)
			global.mu.Unlock()
			return
		}
		global.mu.Lock()
		global.values[key] = parsed
		global.mu.Unlock()
	})
	if err != nil {
		return err
	}

	if cached, ok := global.get(key); ok {
		*v = cached.(T)
		return nil
	}
	return ErrConfigNotLoaded
}

func (c *cache) get(key reflect.Type) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}
