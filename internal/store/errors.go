package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a new account collides with an
	// existing username or email. The wrapping error names the field.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when no account matches the lookup key.
	ErrUserNotFound = errors.New("user not found")

	// ErrCategoryAlreadyExists is returned on a duplicate category name.
	ErrCategoryAlreadyExists = errors.New("category already exists")

	// ErrCategoryNotFound is returned when a category id does not exist,
	// including when a campaign references a missing category.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryInUse is returned when deleting a category that campaigns
	// still reference.
	ErrCategoryInUse = errors.New("category is used by campaigns")

	// ErrCampaignNotFound is returned when no campaign matches the lookup key.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrSlugAlreadyExists is returned when a campaign slug collides.
	ErrSlugAlreadyExists = errors.New("campaign slug already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning during multi-row iteration
	// fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrNilDB is returned by Migrate when no connection is open.
	ErrNilDB = errors.New("db is nil")
)
