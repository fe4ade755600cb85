package usecase

import (
	"context"
	"strings"

	"shareheart/internal/domain/entity"
	"shareheart/internal/domain/repository"
	"shareheart/pkg/errors"
	"shareheart/pkg/logger"
)

type UserUseCase struct {
	userRepo    repository.UserRepository
	signupBonus int
}

func NewUserUseCase(userRepo repository.UserRepository, signupBonus int) *UserUseCase {
	return &UserUseCase{
		userRepo:    userRepo,
		signupBonus: signupBonus,
	}
}

// Identity is what the identity provider knows about a caller.
type Identity struct {
	UID     string
	Email   string
	Name    string
	Picture string
}

// EnsureUser returns the caller's profile, creating it with the signup bonus
// on first sight.
func (uc *UserUseCase) EnsureUser(ctx context.Context, id Identity) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id.UID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, errors.CodeNotFound) {
		return nil, err
	}

	firstName, lastName := splitName(id.Name)
	user = &entity.User{
		ID:              id.UID,
		Email:           id.Email,
		FirstName:       firstName,
		LastName:        lastName,
		ProfileImageURL: id.Picture,
	}

	var bonus *entity.Transaction
	if uc.signupBonus > 0 {
		bonus = &entity.Transaction{
			Type:        entity.TransactionCredit,
			Amount:      uc.signupBonus,
			Description: "Signup bonus",
		}
	}

	created, err := uc.userRepo.CreateWithBonus(ctx, user, bonus)
	if err != nil {
		logger.Error("EnsureUser Error: %v", err)
		return nil, err
	}
	return created, nil
}

func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

func (uc *UserUseCase) GetPublicProfile(ctx context.Context, id string) (*entity.PublicUser, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Location  *string
	Pincode   *string
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Location != nil {
		user.Location = strings.TrimSpace(*input.Location)
	}
	if input.Pincode != nil {
		user.Pincode = strings.TrimSpace(*input.Pincode)
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
