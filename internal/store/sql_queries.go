package store

const (
	createUser = `INSERT INTO users (id, username, password)
    VALUES ($1, $2, $3)
    RETURNING id, username, password, created_at;`

	findUserByUsername = `SELECT id, username, password, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT id, username, password, created_at
    FROM users
    WHERE id = $1;`

	listUsers = `SELECT id, username, password, created_at
    FROM users
    ORDER BY created_at;`

	createItem = `INSERT INTO items (id, name, description, category)
    VALUES ($1, $2, $3, $4)
    RETURNING id, name, description, category, created_at;`

	getItem = `SELECT id, name, description, category, created_at
    FROM items
    WHERE id = $1;`

	createReview = `INSERT INTO reviews (id, user_id, item_id, rating, review_text)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, user_id, item_id, rating, review_text, created_at;`

	getReview = `SELECT id, user_id, item_id, rating, review_text, created_at
    FROM reviews
    WHERE id = $1;`

	updateReview = `UPDATE reviews
    SET rating = $1, review_text = $2
    WHERE id = $3 AND user_id = $4
    RETURNING id, user_id, item_id, rating, review_text, created_at;`

	deleteReview = `DELETE FROM reviews
    WHERE id = $1 AND user_id = $2;`

	createComment = `INSERT INTO comments (id, review_id, user_id, comment_text)
    VALUES ($1, $2, $3, $4)
    RETURNING id, review_id, user_id, comment_text, created_at;`

	updateComment = `UPDATE comments
    SET comment_text = $1
    WHERE id = $2 AND user_id = $3
    RETURNING id, review_id, user_id, comment_text, created_at;`

	deleteComment = `DELETE FROM comments
    WHERE id = $1 AND user_id = $2;`

	createFavorite = `INSERT INTO favorites (id, user_id, item_id)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, item_id, created_at;`

	deleteFavorite = `DELETE FROM favorites
    WHERE id = $1 AND user_id = $2;`
)
