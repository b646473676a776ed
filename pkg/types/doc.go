/*
Package types defines the core domain entities shared across the
application: users, tickets, their status and priority enumerations,
and the aggregate stats structure.

All entities are plain structs with JSON tags matching the on-disk
representation used by pkg/storage. Status and priority are string
enums; IsValidStatus and IsValidPriority are the single source of
truth for enum membership and are used by both pkg/validation and the
ticket manager.
*/
package types
