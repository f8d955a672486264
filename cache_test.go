// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/patrickmn/go-cache"
)

func TestCacheFindResultAndGetFindResult(t *testing.T) {
	c := NewFindCache(DefaultConfig().Cache)
	key := "apple"
	values := []string{"red", "green"}

	// Initially nothing is cached for the key.
	if got, ok := GetFindResult(c, key); ok {
		t.Errorf("GetFindResult(%q) = %v; want miss", key, got)
	}

	CacheFindResult(c, key, values)

	got, ok := GetFindResult(c, key)
	if !ok {
		t.Fatalf("GetFindResult(%q) missed after caching", key)
	}
	if diff := cmp.Diff(values, got); diff != "" {
		t.Errorf("GetFindResult(%q) mismatch (-want +got):\n%s", key, diff)
	}

	InvalidateFindResult(c, key)
	if _, ok := GetFindResult(c, key); ok {
		t.Errorf("GetFindResult(%q) hit after invalidation", key)
	}
}

func TestCacheEmptyResultIsAHit(t *testing.T) {
	c := NewFindCache(DefaultConfig().Cache)
	CacheFindResult(c, "ghost", nil)

	got, ok := GetFindResult(c, "ghost")
	if !ok {
		t.Fatal("cached empty result should be a hit")
	}
	if len(got) != 0 {
		t.Errorf("got %v; want no values", got)
	}
}

func TestCacheForeignValueIsAMiss(t *testing.T) {
	c := NewFindCache(DefaultConfig().Cache)
	c.Set("apple", 42, cache.DefaultExpiration)

	if _, ok := GetFindResult(c, "apple"); ok {
		t.Error("a value that is not []string should not be returned")
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := NewFindCache(CacheConfig{
		Enabled:    true,
		Expiration: 100 * time.Millisecond,
		Cleanup:    50 * time.Millisecond,
	})
	key := "expiring"

	CacheFindResult(c, key, []string{"soon"})

	if _, ok := GetFindResult(c, key); !ok {
		t.Errorf("GetFindResult(%q) missed right after caching", key)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if got, ok := GetFindResult(c, key); ok {
		t.Errorf("After expiration, GetFindResult(%q) = %v; want miss", key, got)
	}
}
