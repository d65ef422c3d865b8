package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/driverhelper/internal/client/localstore"
	"github.com/dmitrijs2005/driverhelper/internal/client/models"
	"github.com/dmitrijs2005/driverhelper/internal/common"
	"github.com/dmitrijs2005/driverhelper/internal/media"
	"github.com/dmitrijs2005/driverhelper/internal/remote"
)

// Attachment is an optional image or voice clip for a post.
type Attachment struct {
	Kind        media.Kind
	ContentType string
	Data        []byte
}

// CommunityService is the shared driver feed.
type CommunityService struct {
	h   *hybrid
	now func() time.Time
}

// List returns every post newest first from remote, or the local feed.
func (s *CommunityService) List(ctx context.Context) []models.CommunityPost {
	posts, out := attempt(ctx, s.h, domainCommunity, "list", false, func(ctx context.Context, _ *remote.Identity) ([]models.CommunityPost, error) {
		rows, err := s.h.remote.ListPosts(ctx)
		if err != nil {
			return nil, err
		}
		posts := make([]models.CommunityPost, 0, len(rows))
		for _, r := range rows {
			posts = append(posts, postFromRow(r))
		}
		return posts, nil
	})
	if out == outcomeRemote {
		return posts
	}

	posts, err := localstore.LoadList[models.CommunityPost](ctx, s.h.local, keyCommunity)
	s.h.localFailed(ctx, domainCommunity, "list", err)
	s.h.servedLocal(domainCommunity, "list")
	return posts
}

// Create uploads att (if any), prepends the post to the local feed and
// inserts it remotely under the signed-in author. A failed upload leaves
// the post without that URL. The stored post is returned.
func (s *CommunityService) Create(ctx context.Context, p models.CommunityPost, att *Attachment) (models.CommunityPost, error) {
	if p.ID == "" {
		return p, common.ErrEmptyID
	}
	if p.Timestamp == 0 {
		p.Timestamp = s.now().UnixMilli()
	}
	if p.LikedBy == nil {
		p.LikedBy = []string{}
	}

	if att != nil {
		s.attach(ctx, &p, att)
	}

	err := localstore.UpdateList(ctx, s.h.local, keyCommunity, func(cur []models.CommunityPost) []models.CommunityPost {
		return append([]models.CommunityPost{p}, cur...)
	})
	s.h.localFailed(ctx, domainCommunity, "create", err)
	s.h.servedLocal(domainCommunity, "create")

	mirror(ctx, s.h, domainCommunity, "create", true, func(ctx context.Context, id *remote.Identity) error {
		return s.h.remote.InsertPost(ctx, rowFromPost(p, id.ID))
	})
	return p, nil
}

func (s *CommunityService) attach(ctx context.Context, p *models.CommunityPost, att *Attachment) {
	_, url, err := s.h.media.Put(ctx, att.Kind, att.Data, att.ContentType)
	if err != nil {
		s.h.log.Warn(ctx, "attachment upload failed", "domain", domainCommunity, "kind", att.Kind, "error", err)
		return
	}
	switch att.Kind {
	case media.KindAudio:
		p.AudioURL = url
	default:
		p.ImageURL = url
	}
}
