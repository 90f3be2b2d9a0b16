// Package cache persists exchange-rate tables on disk with a TTL.
//
// The cache is opt-in. When enabled, each base currency maps to one JSON file
// under the cache directory (default ~/.quickconvert/cache). Entries older
// than their TTL are reported as expired and removed on read.
package cache
