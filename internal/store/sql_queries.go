package store

import (
	sq "github.com/Masterminds/squirrel"
)

const userColumns = `id, full_name, username, email, password_hash, role, is_active, activation_code, profile_picture, created_at`

const (
	createUser = `INSERT INTO users (id, full_name, username, email, password_hash, role, is_active, activation_code, profile_picture)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING ` + userColumns + `;`

	// a username match sorts before an email match
	findUserByIdentifier = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1 OR email = $1
    ORDER BY (username = $1) DESC
    LIMIT 1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	activateUser = `UPDATE users
    SET is_active = TRUE
    WHERE activation_code = $1
    RETURNING ` + userColumns + `;`
)

const categoryColumns = `id, name, description, icon, created_at, updated_at`

const (
	createCategory = `INSERT INTO categories (id, name, description, icon)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + categoryColumns + `;`

	findCategoryByID = `SELECT ` + categoryColumns + `
    FROM categories
    WHERE id = $1;`

	listCategories = `SELECT ` + categoryColumns + `
    FROM categories
    ORDER BY name
    LIMIT $1 OFFSET $2;`

	countCategories = `SELECT COUNT(*) FROM categories;`

	updateCategory = `UPDATE categories
    SET name = $2, description = $3, icon = $4, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + categoryColumns + `;`

	deleteCategory = `DELETE FROM categories WHERE id = $1;`
)

const campaignsTable = "campaigns"

var campaignColumns = []string{
	"id", "title", "slug", "description", "goal_amount", "collected_amount",
	"banner", "category_id", "owner_id", "status", "created_at", "updated_at",
}

// psql builds Postgres statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
