package service

import (
	"context"

	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/Astemirdum/library-catalog/library/internal/policy"
)

// RegisterProfile creates the actor's profile. A second call fails with
// errs.ErrAlreadyExists.
func (s *Service) RegisterProfile(ctx context.Context, actor policy.Actor, req model.ProfileRequest) (model.Profile, error) {
	if err := policy.Require(actor, policy.Authenticated, "create profile"); err != nil {
		return model.Profile{}, err
	}
	p, err := call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) (model.Profile, error) {
		return s.repo.CreateProfile(ctx, profileFromRequest(actor.UserName, req))
	})
	if err != nil {
		return model.Profile{}, err
	}
	s.publish(ctx, model.EventProfileCreated, actor.UserName, p)
	return p, nil
}

func (s *Service) GetProfile(ctx context.Context, actor policy.Actor) (model.Profile, error) {
	if err := policy.Require(actor, policy.Authenticated, "view profile"); err != nil {
		return model.Profile{}, err
	}
	return call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) (model.Profile, error) {
		return s.repo.GetProfile(ctx, actor.UserName)
	})
}

func (s *Service) UpdateProfile(ctx context.Context, actor policy.Actor, req model.ProfileRequest) (model.Profile, error) {
	if err := policy.Require(actor, policy.Authenticated, "edit profile"); err != nil {
		return model.Profile{}, err
	}
	return call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) (model.Profile, error) {
		return s.repo.UpdateProfile(ctx, profileFromRequest(actor.UserName, req))
	})
}

func profileFromRequest(userName string, req model.ProfileRequest) model.Profile {
	p := model.Profile{
		UserName:    userName,
		Bio:         req.Bio,
		DateOfBirth: req.DateOfBirth,
		PhotoURL:    req.PhotoURL,
	}
	if p.DateOfBirth != nil && p.DateOfBirth.IsZero() {
		p.DateOfBirth = nil
	}
	return p
}

// ToggleLike flips whether bookID is among the actor's liked books.
func (s *Service) ToggleLike(ctx context.Context, actor policy.Actor, bookID int64) (model.LikeResult, error) {
	if err := policy.Require(actor, policy.Authenticated, "like book"); err != nil {
		return "", err
	}
	res, err := call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) (model.LikeResult, error) {
		return s.repo.ToggleLike(ctx, actor.UserName, bookID)
	})
	if err != nil {
		return "", err
	}
	typ := model.EventBookLiked
	if res == model.Unliked {
		typ = model.EventBookUnliked
	}
	s.publish(ctx, typ, actor.UserName, model.LikeResponse{BookID: bookID, Result: res})
	return res, nil
}

func (s *Service) ListLikedBooks(ctx context.Context, actor policy.Actor) ([]model.Book, error) {
	if err := policy.Require(actor, policy.Authenticated, "list liked books"); err != nil {
		return nil, err
	}
	return call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) ([]model.Book, error) {
		return s.repo.ListLikedBooks(ctx, actor.UserName)
	})
}
