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
	"github.com/willf/bloom"
)

// KeyFilter remembers every key ever inserted so that lookups of keys that
// were never stored can skip the tree. Deleted keys stay in the filter; a
// stale positive only costs a regular tree search.
type KeyFilter struct {
	bloomFilter *bloom.BloomFilter
}

func NewKeyFilter(cfg BloomConfig) *KeyFilter {
	return &KeyFilter{
		bloomFilter: bloom.NewWithEstimates(cfg.ExpectedKeys, cfg.FalsePositiveRate),
	}
}

func (kf *KeyFilter) Add(key string) {
	kf.bloomFilter.AddString(key)
}

// MayContain returns false only when key was definitely never added.
func (kf *KeyFilter) MayContain(key string) bool {
	return kf.bloomFilter.TestString(key)
}

func (kf *KeyFilter) Reset() {
	kf.bloomFilter.ClearAll()
}
