// Package astock provides the core types and operations for a personal
// A-share securities tracker. It is designed to be local-first and auditable:
// every document lives as a plain JSONL file the user can read and version.
//
// The core functionalities include:
//   - Watchlist and Positions: two tagged collections of securities, one for
//     tracked-but-unowned codes and one for holdings with their cost basis.
//   - Trade Ledger: an immutable, append-only record of buy and sell trades.
//   - Tag Classification: a curated catalog plus ordered keyword heuristics
//     turning (code, name) into a deterministic tag list.
//   - Quote Decoding: a tolerant parser for the provider's tilde-delimited
//     batch wire format.
//   - Session Gate: a pure calendar predicate deciding whether a timestamp
//     falls inside an A-share trading session.
//   - Data Persistence: whole-document JSONL snapshots written atomically,
//     serialized behind a bounded-wait file lock.
//
// This package serves as the foundational logic for the `asw` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package astock
