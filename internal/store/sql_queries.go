package store

const (
	createUser = `INSERT INTO users (name, email, password_hash, account_kind)
    VALUES ($1, $2, $3, $4)
    RETURNING id, name, email, COALESCE(password_hash, ''), account_kind, created_at;`

	findUserByEmail = `SELECT id, name, email, COALESCE(password_hash, ''), account_kind, created_at
    FROM users
    WHERE email = $1;`

	createBook = `INSERT INTO books (title, author)
    VALUES ($1, $2)
    RETURNING id, title, author, created_at;`

	findBookByID = `SELECT id, title, author, created_at
    FROM books
    WHERE id = $1;`

	deleteBook = `DELETE FROM books
    WHERE id = $1;`
)
