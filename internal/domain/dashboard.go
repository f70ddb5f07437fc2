package domain

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ig-dashboard-api/pkg/utils"
)

const (
	DefaultMaxMedia = 25
	MinMaxMedia     = 1
	MaxMaxMedia     = 50
	StoriesLimit    = 25

	DashboardProvider = "instagram_graph_api"
)

// DashboardRequest já normalizado: defaults aplicados e maxMedia limitado
type DashboardRequest struct {
	BusinessID  string
	Timeframe   Timeframe
	MaxMedia    int
	IncludePage bool
}

// ParseDashboardRequest nunca falha: JSON malformado vira requisição vazia com os defaults
func ParseDashboardRequest(body []byte) DashboardRequest {
	raw := map[string]any{}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &raw); err != nil || raw == nil {
		raw = map[string]any{}
	}

	req := DashboardRequest{
		Timeframe:   DefaultTimeframe,
		MaxMedia:    utils.ClampInt(raw["maxMedia"], DefaultMaxMedia, MinMaxMedia, MaxMaxMedia),
		IncludePage: utils.Truthy(raw["includePage"]),
	}

	if businessID, ok := raw["businessId"].(string); ok {
		req.BusinessID = businessID
	}
	if tf, ok := raw["timeframe"].(string); ok && tf != "" {
		req.Timeframe = Timeframe(tf)
	}

	return req
}

type Profile struct {
	ID                string `json:"id"`
	Username          string `json:"username,omitempty"`
	Name              string `json:"name,omitempty"`
	Biography         string `json:"biography,omitempty"`
	FollowersCount    *int64 `json:"followers_count,omitempty"`
	FollowsCount      *int64 `json:"follows_count,omitempty"`
	MediaCount        *int64 `json:"media_count,omitempty"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
	Website           string `json:"website,omitempty"`
}

type MediaItem struct {
	ID            string             `json:"id"`
	Caption       string             `json:"caption,omitempty"`
	MediaType     string             `json:"media_type"`
	MediaURL      string             `json:"media_url,omitempty"`
	Permalink     string             `json:"permalink,omitempty"`
	ThumbnailURL  string             `json:"thumbnail_url,omitempty"`
	Timestamp     string             `json:"timestamp,omitempty"`
	LikeCount     *int64             `json:"like_count,omitempty"`
	CommentsCount *int64             `json:"comments_count,omitempty"`
	Insights      map[string]float64 `json:"insights"`
}

// IsVideo indica se o item usa o conjunto estendido de métricas de reels
func (m MediaItem) IsVideo() bool {
	return m.MediaType == "REELS" || m.MediaType == "VIDEO"
}

type StoryItem struct {
	ID        string             `json:"id"`
	MediaType string             `json:"media_type"`
	MediaURL  string             `json:"media_url,omitempty"`
	Permalink string             `json:"permalink,omitempty"`
	Timestamp string             `json:"timestamp,omitempty"`
	Insights  map[string]float64 `json:"insights"`
}

type DashboardResponse struct {
	Success                     bool          `json:"success"`
	RequestID                   string        `json:"request_id"`
	DurationMS                  int64         `json:"duration_ms"`
	SnapshotDate                string        `json:"snapshot_date"`
	Provider                    string        `json:"provider"`
	Profile                     *Profile      `json:"profile"`
	UserInsights                []MetricValue `json:"user_insights"`
	EngagedAudienceDemographics *MetricValue  `json:"engaged_audience_demographics"`
	FollowerDemographics        *MetricValue  `json:"follower_demographics"`
	FollowsAndUnfollows         *MetricValue  `json:"follows_and_unfollows"`
	Media                       []MediaItem   `json:"media"`
	Stories                     []StoryItem   `json:"stories"`
	PageInsights                []MetricValue `json:"page_insights"`
	Messages                    []string      `json:"messages"`
}

func count(v *int64) float64 {
	if v == nil {
		return 0
	}
	return float64(*v)
}

// Engagement = curtidas + comentários + salvos + compartilhamentos
func Engagement(item MediaItem, insights map[string]float64) float64 {
	return count(item.LikeCount) + count(item.CommentsCount) + insights["saved"] + insights["shares"]
}

// CompletionRate = round((1 - exits/impressions) * 100); 0 sem impressões ou sem exits
func CompletionRate(insights map[string]float64) float64 {
	impressions := insights["impressions"]
	exits, hasExits := insights["exits"]
	if impressions <= 0 || !hasExits {
		return 0
	}
	return float64(utils.Round((1 - exits/impressions) * 100))
}
