package services

import (
	"database/sql"
	"time"

	"github.com/dmitrijs2005/driverhelper/internal/client/models"
	"github.com/dmitrijs2005/driverhelper/internal/remote"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// profileFromRow maps a profiles row; email comes from the session identity
// since the table does not carry it.
func profileFromRow(row remote.ProfileRow, email string) models.UserProfile {
	p := models.UserProfile{
		ID:       row.ID,
		Name:     row.Name.String,
		Email:    email,
		Avatar:   row.AvatarURL.String,
		Language: row.Language.String,
		Premium:  row.Premium.Bool,
		IsAdmin:  row.IsAdmin.Bool,
		Theme:    models.Theme(row.Theme.String),
	}
	if p.Language == "" {
		p.Language = models.DefaultLanguage
	}
	if p.Theme == "" {
		p.Theme = models.DefaultTheme
	}
	return p
}

func rowFromProfile(p models.UserProfile) remote.ProfileRow {
	return remote.ProfileRow{
		ID:        p.ID,
		Name:      sql.NullString{String: p.Name, Valid: true},
		Language:  nullString(p.Language),
		Premium:   sql.NullBool{Bool: p.Premium, Valid: true},
		IsAdmin:   sql.NullBool{Bool: p.IsAdmin, Valid: true},
		AvatarURL: nullString(p.Avatar),
		Theme:     nullString(string(p.Theme)),
	}
}

func incomeFromRow(row remote.IncomeRow) models.IncomeRecord {
	return models.IncomeRecord{
		ID:       row.ID,
		Date:     row.Date,
		Source:   row.Source,
		Amount:   row.Amount,
		Type:     models.RecordType(row.Type),
		Category: row.Category,
	}
}

func rowFromIncome(r models.IncomeRecord, userID string) remote.IncomeRow {
	return remote.IncomeRow{
		ID:       r.ID,
		UserID:   userID,
		Date:     r.Date,
		Source:   r.Source,
		Amount:   r.Amount,
		Type:     string(r.Type),
		Category: r.Category,
	}
}

func postFromRow(row remote.PostRow) models.CommunityPost {
	likedBy := row.LikedBy
	if likedBy == nil {
		likedBy = []string{}
	}
	return models.CommunityPost{
		ID:        row.ID,
		Author:    row.AuthorName,
		Content:   row.Content,
		Category:  row.Category,
		Timestamp: row.CreatedAt.UnixMilli(),
		Likes:     int(row.Likes.Int64),
		LikedBy:   likedBy,
		ImageURL:  row.ImageURL.String,
		AudioURL:  row.AudioURL.String,
	}
}

func rowFromPost(p models.CommunityPost, authorID string) remote.PostRow {
	return remote.PostRow{
		ID:         p.ID,
		AuthorID:   authorID,
		AuthorName: p.Author,
		Content:    p.Content,
		Category:   p.Category,
		CreatedAt:  time.UnixMilli(p.Timestamp).UTC(),
		Likes:      sql.NullInt64{Int64: int64(p.Likes), Valid: true},
		LikedBy:    p.LikedBy,
		ImageURL:   nullString(p.ImageURL),
		AudioURL:   nullString(p.AudioURL),
	}
}
