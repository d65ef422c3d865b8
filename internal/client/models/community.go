package models

type CommunityComment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// CommunityPost is a feed entry. Timestamp is epoch milliseconds.
type CommunityPost struct {
	ID        string             `json:"id"`
	Author    string             `json:"author"`
	Content   string             `json:"content"`
	Category  string             `json:"category"`
	Timestamp int64              `json:"timestamp"`
	Likes     int                `json:"likes"`
	LikedBy   []string           `json:"likedBy"`
	ImageURL  string             `json:"imageUrl,omitempty"`
	AudioURL  string             `json:"audioUrl,omitempty"`
	Comments  []CommunityComment `json:"comments,omitempty"`
}

func (p CommunityPost) EntityID() string { return p.ID }
