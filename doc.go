// Package noty is the composition root of the noty note-taking tool.
//
// It wires the note domain (pkg/core) to the single-file store adapter
// (pkg/adapters/fs) using functional options.
//
// The store is one JSON document (or YAML, picked by file extension) holding
// the whole ordered collection. Every operation loads it, mutates it and writes
// it back atomically. IDs grow as max+1 and are only compacted by FixIDs.
//
// Usage:
//
//	svc, err := noty.New("",
//		noty.WithLogger(logger),
//	)
//
//	note, err := svc.Add(ctx, "buy milk")
package noty
