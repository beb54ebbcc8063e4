package domain

// ChannelStats 頻道統計, point-in-time
type ChannelStats struct {
	TotalVideos       int64 `json:"totalVideos"`
	TotalViews        int64 `json:"totalViews"`
	TotalSubscribers  int64 `json:"totalSubscribers"`
	TotalVideoLikes   int64 `json:"totalVideoLikes"`
	TotalTweetLikes   int64 `json:"totalTweetLikes"`
	TotalCommentLikes int64 `json:"totalCommentLikes"`
	TotalTweets       int64 `json:"totalTweets"`
	TotalComments     int64 `json:"totalComments"`
}
