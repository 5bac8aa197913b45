// Package repository provides data access interfaces and implementations
// for the Pokémon catalog and rating service.
//
// # Overview
//
// This package defines one repository interface per aggregate (Category,
// Country, Owner, Pokemon, Review, Reviewer) and their PostgreSQL
// implementations, following the repository pattern to abstract data
// persistence from the transport layer.
//
// # Thread Safety
//
// All repository implementations are safe for concurrent use by multiple
// goroutines. The underlying pgxpool handles connection pooling and
// synchronization; the repositories themselves hold no mutable state.
//
// # Error Handling
//
// All methods return domain errors from the domain package, wrapped with
// fmt.Errorf and the %w verb where database errors are involved:
//
//   - domain.ErrNotFound: a lookup matched no row; never returned by the
//     GetAll/listing queries, which yield an empty slice instead
//   - domain.ErrCommitFailed: a mutation committed but the store reported
//     zero affected rows (e.g. update or delete of a row that is gone)
//   - domain.ErrInvalidInput: nil entity or empty required argument
//
// Any other error is an infrastructure fault (store unreachable,
// constraint violation) and should be treated as unrecoverable by callers.
//
// # Uniqueness
//
// Name uniqueness is advisory: Create never checks it. Callers perform a
// GetByName lookup beforehand and reject duplicates themselves. The
// comparison is case-insensitive with surrounding whitespace trimmed on
// both sides.
//
// # Transactions
//
// Repositories accept the DBTX interface so they work against a pool, a
// transaction, or a mock. The Pokémon creation path opens its own
// transaction internally so the entity row and its two association rows
// share a single commit boundary.
//
// # Usage Pattern
//
// Repositories are created at application startup and handed to the
// transport layer:
//
//	db, _ := database.New(ctx, cfg, logger)
//	categoryRepo := repository.NewPgCategoryRepository(db)
//	pokemonRepo := repository.NewPgPokemonRepository(db)
package repository

import (
	"github.com/pokehub/pokemon-review-service/internal/database"
)

// DBTX is the database interface supporting pool, transaction and mock
// contexts. See database.DBTX.
type DBTX = database.DBTX
