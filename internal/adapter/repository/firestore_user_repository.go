package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"shareheart/internal/domain/entity"
	"shareheart/internal/domain/repository"
	"shareheart/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := getDoc(ctx, r.client.Collection(usersCollection).Doc(id), "User", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *firestoreUserRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	users := make(map[string]*entity.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		refs = append(refs, r.client.Collection(usersCollection).Doc(id))
	}

	docs, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, errors.Internal("Failed to get users", err)
	}
	for _, doc := range docs {
		if !doc.Exists() {
			continue
		}
		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, errors.Internal("Failed to parse user data", err)
		}
		users[user.ID] = &user
	}
	return users, nil
}

func (r *firestoreUserRepository) CreateWithBonus(ctx context.Context, user *entity.User, bonus *entity.Transaction) (*entity.User, error) {
	userRef := r.client.Collection(usersCollection).Doc(user.ID)

	var result entity.User
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(userRef)
		if err == nil {
			return doc.DataTo(&result)
		}
		if !isNotFound(err) {
			return err
		}

		now := time.Now().UTC()
		user.CreatedAt = now
		user.UpdatedAt = now
		user.Points = 0

		if bonus != nil {
			if bonus.ID == "" {
				bonus.ID = uuid.New().String()
			}
			bonus.UserID = user.ID
			bonus.CreatedAt = now
			user.Points = bonus.Delta()
			if err := tx.Create(r.client.Collection(transactionsCollection).Doc(bonus.ID), bonus); err != nil {
				return err
			}
		}

		result = *user
		return tx.Create(userRef, user)
	})
	if err != nil {
		return nil, txError("Failed to create user", err)
	}

	return &result, nil
}

func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now().UTC()

	_, err := r.client.Collection(usersCollection).Doc(user.ID).Update(ctx, []firestore.Update{
		{Path: "firstName", Value: user.FirstName},
		{Path: "lastName", Value: user.LastName},
		{Path: "profileImageUrl", Value: user.ProfileImageURL},
		{Path: "phone", Value: user.Phone},
		{Path: "location", Value: user.Location},
		{Path: "pincode", Value: user.Pincode},
		{Path: "updatedAt", Value: user.UpdatedAt},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("User", err)
		}
		return errors.Internal("Failed to update user", err)
	}
	return nil
}
