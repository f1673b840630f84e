package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"review_analyzer/internal/domain"
)

func valJSON(s domain.Sentiment) (any, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// InsertReviews writes rs in one statement at positions firstSeq, firstSeq+1, ...
// Rows whose seq or review id already exist are left untouched.
func (r *Repo) InsertReviews(ctx context.Context, firstSeq int64, rs []domain.Review) error {
	if len(rs) == 0 {
		return nil
	}
	values := make([]string, 0, len(rs))
	args := make([]any, 0, len(rs)*6)
	for i, rv := range rs {
		sent, err := valJSON(rv.Sentiment)
		if err != nil {
			return fmt.Errorf("encode sentiment for %s: %w", rv.ReviewID, err)
		}
		values = append(values, "(?,?,?,?,?,?)")
		args = append(args, firstSeq+int64(i), rv.ReviewID, rv.Location, rv.ReviewBody, rv.Timestamp, sent)
	}
	sqlStr := insertReviewsPrefix + strings.Join(values, ",") + insertReviewsOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

// LoadRecords implements domain.DatasetSource over the reviews table.
func (r *Repo) LoadRecords(ctx context.Context) ([]domain.RawRecord, error) {
	rows, err := r.db.QueryContext(ctx, loadReviewsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RawRecord
	for rows.Next() {
		var id, loc, body, ts string
		var sent sql.NullString
		if err := rows.Scan(&id, &loc, &body, &ts, &sent); err != nil {
			return nil, err
		}
		rec := domain.RawRecord{
			"ReviewId":   id,
			"Location":   loc,
			"ReviewBody": body,
			"Timestamp":  ts,
		}
		if sent.Valid {
			rec["sentiment"] = sent.String
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, countReviewsSQL).Scan(&n)
	return n, err
}
