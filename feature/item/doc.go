// Package item implements the catalog store.
//
// Catalog items are shared, mostly immutable definitions (name, description,
// price) with client-supplied ids. Games reference them through item_level
// rows, so an item cannot be deleted while any game still holds it.
//
// Item creation is exposed in two forms: the HTTP POST handler for direct
// catalog management, and CreateTx for the game reconciler, which composes
// item creation into its own open transaction.
//
// # HTTP Endpoints
//
//   - GET    /items      : List all items.
//   - GET    /items/:id  : Get one item.
//   - POST   /items      : Create an item (validates id, name, description, price).
//   - PUT    /items/:id  : Partial patch.
//   - DELETE /items/:id  : Delete; rejected while referenced by a game.
package item
