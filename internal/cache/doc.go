// Package cache provides a generic keyed cache for values built once and
// read many times, such as tessellated glyph meshes.
//
//	c := cache.New[string, int]()
//	v, err := c.GetOrCreate("key", func() (int, error) { return 42, nil })
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
