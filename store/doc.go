// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists JSON document collections over database/sql.

# Collections

Each named collection is one row holding a JSON array plus a version
counter. Init seeds the two collections the server uses:

	st, err := store.Open("sqlite", "saloon.db")
	if err := st.Init(); err != nil { ... }

Safe to call multiple times. Both modernc.org/sqlite and lib/pq are
supported; the SQL sticks to placeholders and ON CONFLICT clauses that
mean the same thing on either driver.

# Reading

Load unmarshals a whole collection:

	games, err := store.Load[models.Game](st, store.CollectionGames)

# Writing

Update runs a read-modify-write atomically:

	err := store.Update(st, store.CollectionGames, func(games []models.Game) ([]models.Game, error) {
		// mutate and return the new slice
		return games, nil
	})

Concurrency control is two-layered: a per-collection mutex serializes
writers inside the process, and the version column guards against a
second process. A version mismatch retries the whole function, up to
maxUpdateRetries, before surfacing ErrConflict. An error returned by
the function aborts the update and propagates unchanged, so domain
errors pass through intact.
*/
package store
