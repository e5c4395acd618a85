// README: Travel-vlog metadata model.
package video

// Content is the distilled metadata of one travel vlog.
type Content struct {
	VideoID     string   `json:"video_id"`
	Title       string   `json:"title"`
	Channel     string   `json:"channel"`
	Thumbnail   string   `json:"thumbnail"`
	PublishedAt string   `json:"published_at"`
	Locations   []string `json:"locations"`
	ViewCount   uint64   `json:"view_count"`
	LikeCount   uint64   `json:"like_count"`
}
