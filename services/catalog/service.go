// File: services/catalog/service.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"streamify/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	homeFeedCacheKey = "homeFeed"
	homeFeedCacheTTL = 10 * time.Minute
)

// Service serves the browse surface: the aggregated home feed, single-title
// detail and free-text search.
type Service interface {
	HomeFeed(ctx context.Context) *models.HomeFeed
	MovieDetail(ctx context.Context, id int64) (*models.MovieDetail, error)
	Search(ctx context.Context, query string) ([]models.Movie, error)
	WarmCache(ctx context.Context) error
}

// category is one titled row of the home screen and the collaborator call
// that fills it.
type category struct {
	title  string
	path   string
	params url.Values
}

func homeCategories() []category {
	paged := func() url.Values {
		v := url.Values{}
		v.Set("language", "en-US")
		v.Set("page", "1")
		return v
	}
	genre := func(id string) url.Values {
		v := url.Values{}
		v.Set("with_genres", id)
		return v
	}
	companies := func(id string) url.Values {
		v := url.Values{}
		v.Set("with_companies", id)
		return v
	}
	return []category{
		{title: "Most Rewatched by Members", path: "/trending/movie/week", params: url.Values{}},
		{title: "US TV Horror", path: "/discover/movie", params: genre("27")},
		{title: "Exciting US Sci-Fi TV", path: "/discover/movie", params: genre("878")},
		{title: "Popular on Streamify", path: "/movie/popular", params: paged()},
		{title: "Award-Winning TV Shows", path: "/movie/top_rated", params: paged()},
		{title: "Critically Acclaimed TV Comedies", path: "/discover/movie", params: genre("35")},
		{title: "Streamify Originals", path: "/discover/movie", params: companies("213")},
		{title: "Continue Watching", path: "/movie/now_playing", params: paged()},
	}
}

// DefaultService is the production implementation. Cache may be nil, in
// which case every HomeFeed call goes to the collaborator.
type DefaultService struct {
	Client *Client
	Cache  *redis.Client
	Logger *zap.Logger
}

func NewDefaultService(client *Client, cache *redis.Client, logger *zap.Logger) *DefaultService {
	return &DefaultService{Client: client, Cache: cache, Logger: logger}
}

// HomeFeed returns the assembled home screen. The live path fans out one
// request per category and succeeds only if every one of them succeeds; any
// failure substitutes the entire fixed fallback catalog, never a partial
// mix. HomeFeed itself never errors: degraded service is still a rendered
// page.
func (s *DefaultService) HomeFeed(ctx context.Context) *models.HomeFeed {
	if feed := s.cachedFeed(ctx); feed != nil {
		return feed
	}

	feed, err := s.fetchLiveFeed(ctx)
	if err != nil {
		s.Logger.Warn("home feed degraded to fallback catalog", zap.Error(err))
		return FallbackFeed()
	}

	s.storeFeed(ctx, feed)
	return feed
}

func (s *DefaultService) fetchLiveFeed(ctx context.Context) (*models.HomeFeed, error) {
	categories := homeCategories()
	lists := make([]models.MovieList, len(categories))

	g, gctx := errgroup.WithContext(ctx)
	for i, cat := range categories {
		i, cat := i, cat
		g.Go(func() error {
			movies, err := s.Client.MovieList(gctx, cat.path, cat.params)
			if err != nil {
				return fmt.Errorf("%s: %w", cat.title, err)
			}
			lists[i] = models.MovieList{Title: cat.title, Movies: presentable(movies)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &models.HomeFeed{Lists: lists}, nil
}

// presentable drops entries missing artwork, as the browse grid cannot
// render them.
func presentable(movies []models.Movie) []models.Movie {
	out := movies[:0]
	for _, m := range movies {
		if m.PosterPath != "" && m.BackdropPath != "" {
			out = append(out, m)
		}
	}
	return out
}

func (s *DefaultService) cachedFeed(ctx context.Context) *models.HomeFeed {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, homeFeedCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			s.Logger.Warn("home feed cache read failed", zap.Error(err))
		}
		return nil
	}
	var feed models.HomeFeed
	if err := json.Unmarshal([]byte(data), &feed); err != nil {
		s.Logger.Warn("home feed cache entry unreadable", zap.Error(err))
		return nil
	}
	return &feed
}

func (s *DefaultService) storeFeed(ctx context.Context, feed *models.HomeFeed) {
	if s.Cache == nil || feed.Degraded {
		return
	}
	data, err := json.Marshal(feed)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, homeFeedCacheKey, data, homeFeedCacheTTL).Err(); err != nil {
		s.Logger.Warn("home feed cache write failed", zap.Error(err))
	}
}

// MovieDetail fetches one title with credits and its similar-titles row. A
// collaborator failure degrades to the fixed fallback record.
func (s *DefaultService) MovieDetail(ctx context.Context, id int64) (*models.MovieDetail, error) {
	detail, err := s.Client.MovieDetail(ctx, id)
	if err != nil {
		s.Logger.Warn("movie detail degraded to fallback", zap.Int64("movie", id), zap.Error(err))
		return FallbackDetail(), nil
	}
	similar, err := s.Client.Similar(ctx, id)
	if err != nil {
		s.Logger.Warn("similar titles unavailable", zap.Int64("movie", id), zap.Error(err))
	} else {
		detail.Similar = presentable(similar)
	}
	return detail, nil
}

// Search runs a free-text search against the collaborator.
func (s *DefaultService) Search(ctx context.Context, query string) ([]models.Movie, error) {
	movies, err := s.Client.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return presentable(movies), nil
}

// WarmCache refreshes the cached home feed off the request path. A degraded
// fetch is reported as an error so the scheduler retries later.
func (s *DefaultService) WarmCache(ctx context.Context) error {
	feed, err := s.fetchLiveFeed(ctx)
	if err != nil {
		return err
	}
	s.storeFeed(ctx, feed)
	return nil
}
