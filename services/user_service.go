package services

import (
	"context"

	"locker-booking/models"
	"locker-booking/store"
)

type UserService struct {
	*resource[models.User]
}

func NewUserService(s store.Store) *UserService {
	return &UserService{&resource[models.User]{
		store:    s,
		table:    models.UserTable,
		notFound: "No user found with given ID",
		unique:   []uniqueRule{{Column: "email", Msg: "Email already exists"}},
	}}
}

// Search lists users whose filter column contains value. An empty filter
// lists everyone.
func (s *UserService) Search(ctx context.Context, filter, value string) ([]models.User, error) {
	if filter == "" {
		return s.List(ctx)
	}

	col, ok := models.UserFilters[filter]
	if !ok {
		return nil, Invalid("Invalid filter")
	}

	q := s.table.All().And(col+" LIKE ?", "%"+value+"%")
	return s.find(ctx, q, "")
}

func (s *UserService) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	var user models.User
	if err := models.FromRequest(&user, &req); err != nil {
		return user, err
	}
	if err := s.create(ctx, &user, store.Candidates(req)); err != nil {
		return user, err
	}
	return user, nil
}

func (s *UserService) Replace(ctx context.Context, id uint, req models.ReplaceUserRequest) error {
	return s.replace(ctx, id, store.Candidates(req))
}

func (s *UserService) Patch(ctx context.Context, id uint, req models.PatchUserRequest) error {
	return s.patch(ctx, id, store.Candidates(req))
}
