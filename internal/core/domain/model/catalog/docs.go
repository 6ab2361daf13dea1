// Package catalog models the read-only reference data the marketplace core
// consumes: restaurants and their menu items with variations and modifiers.
// The core queries this data by id and never mutates it; pricing snapshots
// everything it needs into cart lines so later catalog edits cannot change
// an order already priced.
package catalog
