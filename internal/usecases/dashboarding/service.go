package dashboarding

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ig-dashboard-api/internal/config"
	"github.com/vfg2006/ig-dashboard-api/internal/domain"
	"github.com/vfg2006/ig-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ig-dashboard-api/pkg/log"
	"github.com/vfg2006/ig-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/dashboarder.go -package=mocks

// Dashboarder monta o snapshot do /ig-dashboard
type Dashboarder interface {
	Build(ctx context.Context, req domain.DashboardRequest) (*domain.DashboardResponse, error)
}

type Service struct {
	cfg            *config.Config
	metaService    meta.Integrator
	maxConcurrency int
	now            func() time.Time
}

func NewService(cfg *config.Config, metaService meta.Integrator) *Service {
	maxConcurrency := cfg.Meta.MaxConcurrency
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}

	return &Service{
		cfg:            cfg,
		metaService:    metaService,
		maxConcurrency: maxConcurrency,
		now:            time.Now,
	}
}

// WithClock troca o relógio usado para a janela de datas e o snapshot_date
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// result guarda o desfecho de uma busca parcial
type result[T any] struct {
	value T
	err   error
}

func fetch[T any](fn func() (T, error)) result[T] {
	value, err := fn()
	return result[T]{value: value, err: err}
}

// Build só falha quando faltam credenciais ou o perfil não pode ser lido; o resto vira messages
func (s *Service) Build(ctx context.Context, req domain.DashboardRequest) (*domain.DashboardResponse, error) {
	startedAt := s.now()
	logger := log.ForContext(ctx)

	businessID := req.BusinessID
	if businessID == "" {
		businessID = s.cfg.Dashboard.BusinessID
	}
	accessToken := s.cfg.Dashboard.AccessToken
	if businessID == "" || accessToken == "" {
		return nil, NewDashboardError(ErrMissingCredentials, apiErrors.ErrMissingConfig, "")
	}

	logger = logger.WithFields(log.Fields{
		"business_id": businessID,
		"timeframe":   req.Timeframe,
		"max_media":   req.MaxMedia,
	})

	profile, err := s.metaService.GetProfile(ctx, accessToken, businessID, meta.DashboardProfileFields)
	if err != nil {
		logger.WithError(err).Error("dashboard: profile fetch failed")
		return nil, NewDashboardError(err, apiErrors.ErrExternalService, "")
	}

	messages := []string{}

	mediaItems, err := s.metaService.GetMedia(ctx, accessToken, businessID, req.MaxMedia)
	if err != nil {
		logger.WithError(err).Warn("dashboard: media list failed")
		messages = append(messages, "media failed: "+err.Error())
		mediaItems = nil
	}

	storyItems, err := s.metaService.GetStories(ctx, accessToken, businessID, domain.StoriesLimit)
	if err != nil {
		logger.WithError(err).Warn("dashboard: stories list failed")
		messages = append(messages, "stories failed: "+err.Error())
		storyItems = nil
	}

	media := s.enrichMedia(ctx, accessToken, mediaItems)
	stories := s.enrichStories(ctx, accessToken, storyItems)

	resp := &domain.DashboardResponse{
		Success:      true,
		RequestID:    requestID(ctx),
		Provider:     domain.DashboardProvider,
		Profile:      profile,
		UserInsights: []domain.MetricValue{},
		Media:        media,
		Stories:      stories,
	}

	since, until := domain.TimeframeRange(req.Timeframe, startedAt)

	userInsights := fetch(func() ([]domain.MetricValue, error) {
		return s.metaService.GetInsights(ctx, accessToken, businessID, domain.InsightsQuery{
			Metrics: meta.UserDayMetrics,
			Period:  "day",
			Since:   since,
			Until:   until,
		})
	})
	if userInsights.err != nil {
		messages = append(messages, failure("user_insights", userInsights.err))
	} else if userInsights.value != nil {
		resp.UserInsights = userInsights.value
	}

	engaged := fetch(func() ([]domain.MetricValue, error) {
		return s.metaService.GetInsights(ctx, accessToken, businessID, domain.InsightsQuery{
			Metrics: []string{meta.MetricEngagedAudienceDemographics},
			Period:  req.Timeframe.DemographicsPeriod(),
		})
	})
	if engaged.err != nil {
		messages = append(messages, failure(meta.MetricEngagedAudienceDemographics, engaged.err))
	} else {
		resp.EngagedAudienceDemographics = first(engaged.value)
	}

	followers := fetch(func() ([]domain.MetricValue, error) {
		return s.metaService.GetInsights(ctx, accessToken, businessID, domain.InsightsQuery{
			Metrics: []string{meta.MetricFollowerDemographics},
			Period:  "lifetime",
		})
	})
	if followers.err != nil {
		messages = append(messages, failure(meta.MetricFollowerDemographics, followers.err))
	} else {
		resp.FollowerDemographics = first(followers.value)
	}

	follows := fetch(func() ([]domain.MetricValue, error) {
		return s.metaService.GetInsights(ctx, accessToken, businessID, domain.InsightsQuery{
			Metrics: []string{meta.MetricFollowsAndUnfollows},
			Period:  "day",
			Since:   since,
			Until:   until,
		})
	})
	if follows.err != nil {
		messages = append(messages, failure(meta.MetricFollowsAndUnfollows, follows.err))
	} else {
		resp.FollowsAndUnfollows = first(follows.value)
	}

	if req.IncludePage {
		pageID := s.cfg.Dashboard.PageID
		if pageID == "" {
			messages = append(messages, "FB_PAGE_ID not set; skipping page insights")
		} else {
			page := fetch(func() ([]domain.MetricValue, error) {
				return s.metaService.GetInsights(ctx, accessToken, pageID, domain.InsightsQuery{
					Metrics: meta.PageMetrics,
					Period:  "day",
					Since:   since,
					Until:   until,
				})
			})
			resp.PageInsights = []domain.MetricValue{}
			if page.err != nil {
				messages = append(messages, failure("page_insights", page.err))
			} else if page.value != nil {
				resp.PageInsights = page.value
			}
		}
	}

	if len(messages) > 0 {
		logger.WithField("messages", messages).Warn("dashboard: partial failures")
	}

	finishedAt := s.now()
	resp.Messages = messages
	resp.SnapshotDate = utils.FormatDate(finishedAt)
	resp.DurationMS = finishedAt.Sub(startedAt).Milliseconds()

	logger.WithFields(log.Fields{
		"media_count": len(media),
		"story_count": len(stories),
		"duration_ms": resp.DurationMS,
	}).Info("dashboard: snapshot built")

	return resp, nil
}

// enrichMedia busca os insights de cada item em paralelo; a ordem da lista é preservada
func (s *Service) enrichMedia(ctx context.Context, accessToken string, items []domain.MediaItem) []domain.MediaItem {
	out := make([]domain.MediaItem, len(items))
	sem := make(chan struct{}, s.maxConcurrency)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(i int, item domain.MediaItem) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			insights, err := s.metaService.GetMediaInsights(ctx, accessToken, item)
			if err != nil {
				log.ForContext(ctx).WithError(err).WithField("media_id", item.ID).Debug("dashboard: media insights failed")
				item.Insights = map[string]float64{"engagement": domain.Engagement(item, nil)}
				out[i] = item
				return
			}

			merged := make(map[string]float64, len(insights)+1)
			for k, v := range insights {
				merged[k] = v
			}
			merged["engagement"] = domain.Engagement(item, insights)
			item.Insights = merged
			out[i] = item
		}(i, item)
	}

	wg.Wait()
	return out
}

func (s *Service) enrichStories(ctx context.Context, accessToken string, items []domain.StoryItem) []domain.StoryItem {
	out := make([]domain.StoryItem, len(items))
	sem := make(chan struct{}, s.maxConcurrency)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(i int, item domain.StoryItem) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			insights, err := s.metaService.GetStoryInsights(ctx, accessToken, item.ID)
			if err != nil {
				log.ForContext(ctx).WithError(err).WithField("story_id", item.ID).Debug("dashboard: story insights failed")
				item.Insights = map[string]float64{}
				out[i] = item
				return
			}

			merged := make(map[string]float64, len(insights)+1)
			for k, v := range insights {
				merged[k] = v
			}
			merged["completion_rate"] = domain.CompletionRate(insights)
			item.Insights = merged
			out[i] = item
		}(i, item)
	}

	wg.Wait()
	return out
}

func first(values []domain.MetricValue) *domain.MetricValue {
	if len(values) == 0 {
		return nil
	}
	m := values[0]
	return &m
}

func failure(field string, err error) string {
	return field + " failed: " + err.Error()
}

func requestID(ctx context.Context) string {
	if id := log.GetCorrelationID(ctx); id != "" {
		return id
	}
	return uuid.New().String()
}
