package meta

// Conjuntos de métricas pedidos à Graph API
var (
	ReelMetrics = []string{
		"reach",
		"impressions",
		"saved",
		"shares",
		"total_interactions",
		"plays",
		"video_views",
		"clips_replays_count",
		"ig_reels_aggregated_all_plays_count",
		"ig_reels_avg_watch_time",
		"ig_reels_video_view_total_time",
	}

	PostMetrics = []string{"reach", "impressions", "saved", "shares", "total_interactions", "views", "plays", "video_views"}

	StoryMetrics = []string{"impressions", "reach", "replies", "exits", "taps_forward", "taps_back", "navigation"}

	// UserDayMetrics são as métricas diárias da conta no intervalo since/until
	UserDayMetrics = []string{
		"accounts_engaged",
		"reach",
		"total_interactions",
		"likes",
		"comments",
		"saved",
		"shares",
		"replies",
		"profile_links_taps",
		"views",
	}

	PageMetrics = []string{
		"page_post_engagements",
		"page_impressions",
		"page_impressions_unique",
		"page_views_total",
		"page_fans",
		"page_total_actions",
		"page_daily_follows",
		"page_daily_unfollows_unique",
	}
)

const (
	MetricEngagedAudienceDemographics = "engaged_audience_demographics"
	MetricFollowerDemographics        = "follower_demographics"
	MetricFollowsAndUnfollows         = "follows_and_unfollows"
)

// Campos de perfil
var (
	DashboardProfileFields = []string{
		"id", "username", "name", "biography", "followers_count",
		"follows_count", "media_count", "profile_picture_url", "website",
	}
	ConnectProfileFields = []string{
		"id", "username", "name", "profile_picture_url",
		"followers_count", "follows_count", "media_count",
	}
)
