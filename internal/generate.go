// Package internal hosts the ent schema and its generated client.
package internal

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target ./repo --feature sql/execquery ./schema
