// Package gomap models the bucket layout of Go's built-in map and records
// its operations as steps over core.Graph snapshots.
//
// The table has 2^B buckets (B starts at 2). Each bucket holds BucketSize
// slots of tophash, key and value plus a pointer to an overflow bucket.
// A key's hash is xxhash64; the low B bits pick the bucket and the top byte
// is the tophash checked before the key itself. When an insert pushes the
// load factor count/2^B past LoadFactor the table doubles: the current
// buckets become old buckets, every entry is evacuated into bucket i or
// i+2^(B-1), and the old buckets are dropped. Each of those phases is a
// separate step.
//
// Snapshot labels are "MAP:<index>:MAIN|OVF|OLD" followed by one field per
// slot, "<tophash>:<key>:<value>" or "EMPTY". Keys and values are
// percent-escaped so any string survives the round trip. Bucket ids are
// "bucket-<i>", overflow buckets "ovf-<n>", old buckets "old-<i>" and
// "oldovf-<n>". Decoding a snapshot taken in the middle of a grow finishes
// the evacuation silently.
//
// Code labels: ready, init_buckets, calc_hash, search_bucket,
// check_tophash, check_key, update_value, find_empty, insert_slot,
// new_overflow, check_load, grow, evacuate, grow_done, search_found,
// search_not_found, delete_clear, delete_not_found.
package gomap
