// cache.go

/**
 * Copyright 2025 (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

package main

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Find results stay valid until the key is written, so expiry only bounds memory.
	findCacheExpiration = 10 * time.Minute
	findCacheCleanup    = 5 * time.Minute
)

// NewFindCache creates a cache for find results keyed by tree key
func NewFindCache(cfg CacheConfig) *cache.Cache {
	return cache.New(cfg.Expiration, cfg.Cleanup)
}

func CacheFindResult(c *cache.Cache, key string, values []string) {
	c.Set(key, values, cache.DefaultExpiration)
}

func GetFindResult(c *cache.Cache, key string) ([]string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	values, ok := val.([]string)
	return values, ok
}

// InvalidateFindResult drops the cached result for key after it was written.
func InvalidateFindResult(c *cache.Cache, key string) {
	c.Delete(key)
}
