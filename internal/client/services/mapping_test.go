package services

import (
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/driverhelper/internal/client/models"
	"github.com/dmitrijs2005/driverhelper/internal/remote"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProfileMapping_RoundTrip(t *testing.T) {
	p := models.UserProfile{
		ID: "u-1", Name: "Ann", Email: "ann@example.com", Avatar: "https://a",
		Language: "Spanish", Premium: true, IsAdmin: true, Theme: models.ThemeDark,
	}
	row := rowFromProfile(p)

	assert.Equal(t, sql.NullString{String: "https://a", Valid: true}, row.AvatarURL)
	assert.Equal(t, sql.NullBool{Bool: true, Valid: true}, row.IsAdmin)
	assert.Equal(t, p, profileFromRow(row, "ann@example.com"))
}

func TestProfileMapping_Defaults(t *testing.T) {
	p := profileFromRow(remote.ProfileRow{ID: "u"}, "")
	assert.Equal(t, models.DefaultLanguage, p.Language)
	assert.Equal(t, models.DefaultTheme, p.Theme)
	assert.False(t, p.Premium)
	assert.False(t, p.IsAdmin)
}

func TestIncomeMapping_RoundTrip(t *testing.T) {
	r := models.IncomeRecord{ID: "i", Date: "2025-01-01", Source: "Uber", Amount: decimal.RequireFromString("-3.25"), Type: models.RecordExpense, Category: "fuel"}
	row := rowFromIncome(r, "u-1")
	assert.Equal(t, "u-1", row.UserID)
	assert.Equal(t, r, incomeFromRow(row))
}

func TestPostMapping_RoundTrip(t *testing.T) {
	p := models.CommunityPost{
		ID: "p", Author: "Ann", Content: "c", Category: "tips", Timestamp: time.Date(2025, 1, 2, 3, 4, 5, 6_000_000, time.UTC).UnixMilli(),
		Likes: 2, LikedBy: []string{"x", "y"}, ImageURL: "https://img",
	}
	row := rowFromPost(p, "u-1")
	assert.Equal(t, "u-1", row.AuthorID)
	assert.Equal(t, "Ann", row.AuthorName)
	assert.False(t, row.AudioURL.Valid)
	assert.Equal(t, p, postFromRow(row))
}
