package metadomain

import jsoniter "github.com/json-iterator/go"

// Paging acompanha as listas da Graph API
type Paging struct {
	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	} `json:"cursors"`
	Next string `json:"next,omitempty"`
}

type ListResponse[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}

type Profile struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	Name              string `json:"name"`
	Biography         string `json:"biography"`
	FollowersCount    *int64 `json:"followers_count"`
	FollowsCount      *int64 `json:"follows_count"`
	MediaCount        *int64 `json:"media_count"`
	ProfilePictureURL string `json:"profile_picture_url"`
	Website           string `json:"website"`
}

type Media struct {
	ID            string `json:"id"`
	Caption       string `json:"caption"`
	MediaType     string `json:"media_type"`
	MediaURL      string `json:"media_url"`
	Permalink     string `json:"permalink"`
	ThumbnailURL  string `json:"thumbnail_url"`
	Timestamp     string `json:"timestamp"`
	LikeCount     *int64 `json:"like_count"`
	CommentsCount *int64 `json:"comments_count"`
}

type Story struct {
	ID        string `json:"id"`
	MediaType string `json:"media_type"`
	MediaURL  string `json:"media_url"`
	Permalink string `json:"permalink"`
	Timestamp string `json:"timestamp"`
}

// RawMetric mantém value e values[].value crus: podem ser número, string ou objeto
type RawMetric struct {
	Name        string              `json:"name"`
	Period      string              `json:"period"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Values      []RawMetricPoint    `json:"values"`
	Value       jsoniter.RawMessage `json:"value"`
}

type RawMetricPoint struct {
	Value   jsoniter.RawMessage `json:"value"`
	EndTime string              `json:"end_time"`
}

type InsightsResponse struct {
	Data []RawMetric `json:"data"`
}

type AccountRef struct {
	ID string `json:"id"`
}

type Page struct {
	ID                       string      `json:"id"`
	Name                     string      `json:"name"`
	AccessToken              string      `json:"access_token"`
	InstagramBusinessAccount *AccountRef `json:"instagram_business_account"`
}

// TokenResponse representa a resposta da API do Meta ao trocar um token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
