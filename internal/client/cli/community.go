package cli

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/driverhelper/internal/client/models"
	"github.com/dmitrijs2005/driverhelper/internal/client/services"
	"github.com/dmitrijs2005/driverhelper/internal/media"
)

const (
	defaultPostCategory = "Update"
	anonymousAuthor     = "Driver"
)

func (a *App) posts(ctx context.Context, _ []string) error {
	list := a.data.Community.List(ctx)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No posts yet")
		return nil
	}

	for _, p := range list {
		ts := time.UnixMilli(p.Timestamp).Format("2006-01-02 15:04")
		fmt.Fprintf(a.out, "[%s] %s · %s · %d likes\n", p.Category, p.Author, ts, p.Likes)
		fmt.Fprintln(a.out, "  "+strings.ReplaceAll(p.Content, "\n", "\n  "))
		if p.ImageURL != "" {
			fmt.Fprintln(a.out, "  image:", p.ImageURL)
		}
		if p.AudioURL != "" {
			fmt.Fprintln(a.out, "  audio:", p.AudioURL)
		}
	}
	return nil
}

func (a *App) post(ctx context.Context, _ []string) error {
	category, err := a.prompt("Category (empty for " + defaultPostCategory + ")")
	if err != nil {
		return err
	}
	if category == "" {
		category = defaultPostCategory
	}
	content, err := GetMultiline(a.reader, "Write your post", a.out)
	if err != nil {
		return err
	}
	path, err := a.prompt("Attachment file (image or audio, empty for none)")
	if err != nil {
		return err
	}

	var att *services.Attachment
	if path != "" {
		if att, err = readAttachment(path); err != nil {
			return err
		}
	}

	author := anonymousAuthor
	if u := a.data.User.Current(ctx); u != nil && u.Name != "" {
		author = u.Name
	}

	p, err := a.data.Community.Create(ctx, models.CommunityPost{
		ID:       models.NewID(),
		Author:   author,
		Content:  content,
		Category: category,
	}, att)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Posted", p.ID)
	return nil
}

// readAttachment loads a file and classifies it as audio or image by its
// content type.
func readAttachment(path string) (*services.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attachment: %w", err)
	}

	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		ct = http.DetectContentType(data)
	}

	kind := media.KindImage
	if strings.HasPrefix(ct, "audio/") {
		kind = media.KindAudio
	}
	return &services.Attachment{Kind: kind, ContentType: ct, Data: data}, nil
}
