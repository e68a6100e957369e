// Package store provides a SQLite catalog of compiled launches.
//
// Each launch is one row in launches plus one row per level in
// level_dims. Level rows keep the three axis values together with a
// static mask, so a launch read back has exactly the per-axis
// classification it was saved with.
//
// # Identity
//
//   - id: time sortable UUIDv7 assigned on first save
//   - content_hash: ir.LaunchHash, UNIQUE; saving identical content again
//     returns the existing id
//
// # Ordering
//
// Every list query orders by id COLLATE BINARY, which for UUIDv7 is
// creation order.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait on lock contention
//   - foreign_keys=ON: level rows are deleted with their launch
package store
