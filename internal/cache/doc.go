// Package cache provides a generic, size-bounded LRU cache.
//
//	c := cache.New[glyphKey, *geom.Path](512)
//	p := c.GetOrCreate(key, func() *geom.Path { return load(key) })
//
// A Cache is safe for concurrent use and must not be copied after creation.
package cache
