// Package game implements game session persistence and the item-leveling
// merge logic.
//
// A game is a full snapshot of a play session (score, coins, lives, ended
// flag, enemy spawn timeout) plus the set of catalog items the session
// holds, each at a level. Create and update requests carry a raw item list
// that is reconciled against the catalog with get-or-create semantics at
// two granularities: unknown items are inserted into the catalog, and
// (game, item) rows are created or have their level overwritten in place.
//
// Every create or update runs as one transaction: the game row, any catalog
// inserts and all item_level writes commit together or not at all. The
// first invalid entry aborts the whole batch, so clients resubmit the full
// list after a failure.
//
// All operations are scoped to the authenticated owner; a foreign game id
// behaves exactly like a missing one.
//
// # HTTP Endpoints
//
//   - GET    /games       : List own games (?latest=true for the newest one).
//   - GET    /games/:id   : Get one game with its items.
//   - POST   /games       : Create from a full snapshot plus item list.
//   - PUT    /games/:id   : Partial patch; non-empty item list replaces the set.
//   - DELETE /games/:id   : Idempotent delete, cascades to item levels.
package game
