package remote

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/driverhelper/internal/dbx"
)

// ListPosts returns every community post, newest first.
func (c *PostgresClient) ListPosts(ctx context.Context) ([]PostRow, error) {
	query :=
		`SELECT id, author_id, author_name, content, category, created_at, likes, liked_by, image_url, audio_url
		 FROM community_posts
		 ORDER BY created_at DESC`

	rows, err := dbx.QueryAll(ctx, c.db, func(r *sql.Rows) (PostRow, error) {
		var (
			p       PostRow
			likedBy []byte
		)
		err := r.Scan(&p.ID, &p.AuthorID, &p.AuthorName, &p.Content, &p.Category,
			&p.CreatedAt, &p.Likes, &likedBy, &p.ImageURL, &p.AudioURL)
		if err != nil {
			return p, err
		}
		if len(likedBy) > 0 {
			if err := json.Unmarshal(likedBy, &p.LikedBy); err != nil {
				return p, fmt.Errorf("liked_by: %w", err)
			}
		}
		return p, nil
	}, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rows, nil
}

func (c *PostgresClient) InsertPost(ctx context.Context, p PostRow) error {
	likedBy := p.LikedBy
	if likedBy == nil {
		likedBy = []string{}
	}
	raw, err := json.Marshal(likedBy)
	if err != nil {
		return err
	}

	query :=
		`INSERT INTO community_posts (id, author_id, author_name, content, category, created_at, likes, liked_by, image_url, audio_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = c.db.ExecContext(ctx, query,
		p.ID, p.AuthorID, p.AuthorName, p.Content, p.Category, p.CreatedAt, p.Likes, string(raw), p.ImageURL, p.AudioURL)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
