package store

const (
	userColumns = `id, username, email, password_hash, phone, google_id, facebook_id, name, avatar, email_verify, verify_key, created_at, updated_at`

	createUser = `INSERT INTO users (username, email, password_hash, phone, google_id, facebook_id, name, avatar, email_verify, verify_key)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING ` + userColumns + `;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	saveUser = `UPDATE users
    SET username = $2, email = $3, password_hash = $4, phone = $5, google_id = $6, facebook_id = $7, name = $8, avatar = $9, email_verify = $10, verify_key = $11, updated_at = $12
    WHERE id = $1
    RETURNING ` + userColumns + `;`
)

// allowedUserFields is the set of columns addressable through the dynamic
// FindOne predicate and UpdateFields partial update. Anything outside this
// set is rejected with [ErrUnknownField] before touching the database.
var allowedUserFields = map[string]struct{}{
	"username":      {},
	"email":         {},
	"password_hash": {},
	"phone":         {},
	"google_id":     {},
	"facebook_id":   {},
	"name":          {},
	"avatar":        {},
	"email_verify":  {},
	"verify_key":    {},
}
