package mysql

// Note: `timestamp` is a type name; keep it quoted everywhere.
const insertReviewsPrefix = "INSERT INTO reviews\n  (seq, review_id, location, review_body, `timestamp`, sentiment)\nVALUES "

// Re-seeding the same dataset keeps the original row and its position.
const insertReviewsOnDup = " ON DUPLICATE KEY UPDATE review_id = review_id"

// seq is the dataset row position, so loads come back in dataset order.
const loadReviewsSQL = "SELECT review_id, location, review_body, `timestamp`, sentiment\nFROM reviews\nORDER BY seq"

const countReviewsSQL = `SELECT COUNT(*) FROM reviews`
