// Package model defines the persistent entities of the game backend.
//
// The schema has four tables: user, game, item and item_level. A user owns
// games, a game owns item_level rows, and each item_level row references a
// shared catalog item. Ownership edges cascade on delete; the reference
// from item_level to item is restrictive, so a catalog item cannot be
// removed while any game still holds it.
//
// Serialization is plain struct composition: Game embeds its ItemLevels and
// each ItemLevel embeds its Item, so encoding a loaded game produces the
// full nested document in one pass.
package model
