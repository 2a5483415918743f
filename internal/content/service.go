package content

import (
	"context"
	"fmt"
	"time"

	"github.com/mohamedtouja/multipoles/internal/models"
)

// Service combines the API client with the snapshot cache. Page handlers and
// the simulator go through it instead of the raw client.
type Service struct {
	client *Client
	cache  *SnapshotCache
}

// NewService wraps client with a snapshot cache of the given TTL.
func NewService(client *Client, ttl time.Duration) *Service {
	return &Service{
		client: client,
		cache:  NewSnapshotCache(ttl),
	}
}

func (s *Service) BlogPosts(ctx context.Context, params models.BlogListParams) (*models.BlogPage, error) {
	key := fmt.Sprintf("blog:%d:%d:%s:%s:%s:%s",
		params.Page, params.Limit, params.Category, params.Tag, params.Search, params.Locale)
	v, err := s.cache.Fetch(key, func() (interface{}, error) {
		return s.client.GetBlogPosts(ctx, params)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.BlogPage), nil
}

func (s *Service) BlogPostBySlug(ctx context.Context, slug, locale string) (*models.BlogPost, error) {
	v, err := s.cache.Fetch("blogpost:"+slug+":"+locale, func() (interface{}, error) {
		return s.client.GetBlogPostBySlug(ctx, slug, locale)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.BlogPost), nil
}

func (s *Service) Realisations(ctx context.Context, locale string) ([]models.Realisation, error) {
	v, err := s.cache.Fetch("realisations:"+locale, func() (interface{}, error) {
		return s.client.GetRealisations(ctx, locale)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Realisation), nil
}

func (s *Service) CarouselSlides(ctx context.Context, locale string) ([]models.CarouselSlide, error) {
	v, err := s.cache.Fetch("carousel:"+locale, func() (interface{}, error) {
		return s.client.GetCarouselSlides(ctx, locale)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.CarouselSlide), nil
}

func (s *Service) Solutions(ctx context.Context, locale string) ([]models.Solution, error) {
	v, err := s.cache.Fetch("solutions:"+locale, func() (interface{}, error) {
		return s.client.GetSolutions(ctx, locale)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Solution), nil
}

func (s *Service) TeamMembers(ctx context.Context, locale string) ([]models.TeamMember, error) {
	v, err := s.cache.Fetch("team:"+locale, func() (interface{}, error) {
		return s.client.GetTeamMembers(ctx, locale)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.TeamMember), nil
}

func (s *Service) Models3D(ctx context.Context, params models.Model3DParams) ([]models.Model3D, error) {
	v, err := s.cache.Fetch("models3d:"+params.Category+":"+params.Locale, func() (interface{}, error) {
		return s.client.GetModels3D(ctx, params)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Model3D), nil
}

func (s *Service) Model3DByID(ctx context.Context, id string) (*models.Model3D, error) {
	v, err := s.cache.Fetch("model3d:"+id, func() (interface{}, error) {
		return s.client.GetModel3DByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Model3D), nil
}
