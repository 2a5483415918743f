package api

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/mohamedtouja/multipoles/internal/forms"
	"github.com/mohamedtouja/multipoles/internal/models"
)

// fakeContent implements ContentProvider with canned data
type fakeContent struct {
	posts        []models.BlogPost
	realisations []models.Realisation
	slides       []models.CarouselSlide
	solutions    []models.Solution
	team         []models.TeamMember
	models3d     []models.Model3D
	err          error
}

func (f *fakeContent) BlogPosts(_ context.Context, params models.BlogListParams) (*models.BlogPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.BlogPage{
		Data: f.posts,
		Meta: models.PaginationMeta{CurrentPage: params.Page, TotalPages: 3, TotalItems: len(f.posts)},
	}, nil
}

func (f *fakeContent) BlogPostBySlug(_ context.Context, slug, _ string) (*models.BlogPost, error) {
	for i := range f.posts {
		if f.posts[i].Slug == slug {
			return &f.posts[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeContent) Realisations(_ context.Context, _ string) ([]models.Realisation, error) {
	return f.realisations, f.err
}

func (f *fakeContent) CarouselSlides(_ context.Context, _ string) ([]models.CarouselSlide, error) {
	return f.slides, f.err
}

func (f *fakeContent) Solutions(_ context.Context, _ string) ([]models.Solution, error) {
	return f.solutions, f.err
}

func (f *fakeContent) TeamMembers(_ context.Context, _ string) ([]models.TeamMember, error) {
	return f.team, f.err
}

func (f *fakeContent) Models3D(_ context.Context, _ models.Model3DParams) ([]models.Model3D, error) {
	return f.models3d, f.err
}

func (f *fakeContent) Model3DByID(_ context.Context, id string) (*models.Model3D, error) {
	for i := range f.models3d {
		if f.models3d[i].ID == id {
			return &f.models3d[i], nil
		}
	}
	return nil, errors.New("not found")
}

// fakeForms implements ContactSubmitter and the quote manager's Submitter
type fakeForms struct {
	contactCalls int32
	devisCalls   int32
	result       *forms.Result
	err          error
}

func (f *fakeForms) SubmitContact(_ context.Context, _ models.ContactRequest) (*forms.Result, error) {
	atomic.AddInt32(&f.contactCalls, 1)
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &forms.Result{Success: true, Message: "Message envoyé"}, nil
}

func (f *fakeForms) SubmitDevis(_ context.Context, _ models.DevisRequest) (*forms.Result, error) {
	atomic.AddInt32(&f.devisCalls, 1)
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &forms.Result{Success: true, Message: "Demande envoyée"}, nil
}
