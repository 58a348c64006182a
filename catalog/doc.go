// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog holds the fixed game content: the 80-card deck template,
the 16 playable characters, and the role sequence per player count.

Accessors return fresh copies, so callers may shuffle and deal without
corrupting the templates. RolesFor reports false for player counts
outside the supported 4-7 range.
*/
package catalog
