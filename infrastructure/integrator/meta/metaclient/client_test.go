package metaclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/meta/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *MetaClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL+"/", &http.Client{Timeout: 5 * time.Second})
}

func TestMetaClient_GetProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1784", r.URL.Path)
		assert.Equal(t, "TOKEN", r.URL.Query().Get("access_token"))
		assert.Equal(t, "id,username,followers_count", r.URL.Query().Get("fields"))
		_, _ = w.Write([]byte(`{"id":"1784","username":"loja","followers_count":1200}`))
	})

	profile, err := client.GetProfile(context.Background(), "TOKEN", "1784", []string{"id", "username", "followers_count"})
	require.NoError(t, err)
	assert.Equal(t, "loja", profile.Username)
	require.NotNil(t, profile.FollowersCount)
	assert.Equal(t, int64(1200), *profile.FollowersCount)
	assert.Nil(t, profile.MediaCount)
}

func TestMetaClient_ListMedia(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1784/media", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"data":[{"id":"m1","media_type":"REELS","like_count":3},{"id":"m2","media_type":"IMAGE"}],"paging":{"cursors":{"after":"x"}}}`))
	})

	media, err := client.ListMedia(context.Background(), "TOKEN", "1784", 10)
	require.NoError(t, err)
	require.Len(t, media, 2)
	assert.Equal(t, "m1", media[0].ID)
	assert.Equal(t, int64(3), *media[0].LikeCount)
	assert.Nil(t, media[1].LikeCount)
}

func TestMetaClient_ListStories_SemData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1784/stories", r.URL.Path)
		_, _ = w.Write([]byte(`{}`))
	})

	stories, err := client.ListStories(context.Background(), "TOKEN", "1784", 25)
	require.NoError(t, err)
	assert.NotNil(t, stories)
	assert.Empty(t, stories)
}

func TestMetaClient_GetInsights(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/m1/insights", r.URL.Path)
		assert.Equal(t, "reach,saved", r.URL.Query().Get("metric"))
		_, _ = w.Write([]byte(`{"data":[{"name":"reach","period":"lifetime","values":[{"value":100}]},{"name":"saved","value":4}]}`))
	})

	resp, err := client.GetInsights(context.Background(), "TOKEN", "m1", url.Values{"metric": {"reach,saved"}})
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "reach", resp.Data[0].Name)
	assert.Equal(t, "100", string(resp.Data[0].Values[0].Value))
	assert.Equal(t, "4", string(resp.Data[1].Value))
}

func TestMetaClient_Erros(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantMsg    string
		wantReason string
		expired    bool
	}{
		{
			name:       "Erro da Graph API com status 400",
			status:     http.StatusBadRequest,
			body:       `{"error":{"message":"Invalid OAuth access token.","type":"OAuthException","code":190}}`,
			wantMsg:    `Graph API 400: {"message":"Invalid OAuth access token.","type":"OAuthException","code":190}`,
			wantReason: "Invalid OAuth access token.",
			expired:    true,
		},
		{
			name:       "Objeto error com status 200 também é erro",
			status:     http.StatusOK,
			body:       `{"error":{"type":"GraphMethodException","code":100}}`,
			wantMsg:    `Graph API 200: {"type":"GraphMethodException","code":100}`,
			wantReason: "GraphMethodException",
		},
		{
			name:       "Corpo que não é JSON",
			status:     http.StatusBadGateway,
			body:       `upstream down`,
			wantMsg:    `Graph API 502: upstream down`,
			wantReason: "upstream down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetProfile(context.Background(), "TOKEN", "1784", []string{"id"})
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())

			var graphErr *metadomain.GraphError
			require.ErrorAs(t, err, &graphErr)
			assert.Equal(t, tt.status, graphErr.StatusCode)
			assert.Equal(t, tt.wantReason, graphErr.Reason())
			assert.Equal(t, tt.expired, graphErr.IsTokenExpired())
		})
	}
}

func TestMetaClient_ExchangeCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/oauth/access_token", r.URL.Path)
		assert.Equal(t, "app", q.Get("client_id"))
		assert.Equal(t, "secret", q.Get("client_secret"))
		assert.Equal(t, "https://example.com/cb", q.Get("redirect_uri"))
		assert.Equal(t, "CODE123456", q.Get("code"))
		assert.Empty(t, q.Get("access_token"))
		_, _ = w.Write([]byte(`{"access_token":"short","token_type":"bearer"}`))
	})

	token, err := client.ExchangeCode(context.Background(), "app", "secret", "https://example.com/cb", "CODE123456")
	require.NoError(t, err)
	assert.Equal(t, "short", token.AccessToken)
	assert.Zero(t, token.ExpiresIn)
}

func TestMetaClient_GetLongLivedToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "fb_exchange_token", q.Get("grant_type"))
		assert.Equal(t, "short", q.Get("fb_exchange_token"))
		_, _ = w.Write([]byte(`{"access_token":"long","expires_in":5183944}`))
	})

	token, err := client.GetLongLivedToken(context.Background(), "app", "secret", "short")
	require.NoError(t, err)
	assert.Equal(t, "long", token.AccessToken)
	assert.Equal(t, int64(5183944), token.ExpiresIn)

	_, err = client.GetLongLivedToken(context.Background(), "app", "secret", "")
	assert.Error(t, err)
}

func TestMetaClient_Pages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/me/accounts":
			assert.Equal(t, "id,name,access_token,instagram_business_account", r.URL.Query().Get("fields"))
			_, _ = w.Write([]byte(`{"data":[{"id":"p1","name":"Loja","access_token":"PAGE","instagram_business_account":{"id":"1784"}},{"id":"p2","name":"Blog"}]}`))
		case "/p2":
			assert.Equal(t, "instagram_business_account", r.URL.Query().Get("fields"))
			_, _ = w.Write([]byte(`{"id":"p2"}`))
		default:
			t.Errorf("caminho inesperado %s", r.URL.Path)
		}
	})

	pages, err := client.ListPages(context.Background(), "USER")
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "1784", pages[0].InstagramBusinessAccount.ID)
	assert.Nil(t, pages[1].InstagramBusinessAccount)

	page, err := client.GetPage(context.Background(), "USER", "p2")
	require.NoError(t, err)
	assert.Nil(t, page.InstagramBusinessAccount)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "60 dias, 0 horas e 0 minutos", FormatDuration(5184000))
	assert.Equal(t, "1 dias, 1 horas e 1 minutos", FormatDuration(90060))
}
