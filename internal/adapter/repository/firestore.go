package repository

import (
	"context"
	stderrors "errors"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"shareheart/pkg/errors"
)

const (
	usersCollection         = "users"
	itemsCollection         = "items"
	postingsCollection      = "requests"
	itemRequestsCollection  = "item_requests"
	conversationsCollection = "conversations"
	messagesCollection      = "messages"
	notificationsCollection = "notifications"
	transactionsCollection  = "transactions"
	favoritesCollection     = "favorites"
	reviewsCollection       = "reviews"
	bannersCollection       = "banners"
)

// Firestore caps the number of values in an "in" filter.
const maxInValues = 30

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// getDoc loads one document into dst, mapping a missing document to NotFound.
func getDoc(ctx context.Context, ref *firestore.DocumentRef, resource string, dst interface{}) error {
	doc, err := ref.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound(resource, err)
		}
		return errors.Internal("Failed to get "+resource, err)
	}
	if err := doc.DataTo(dst); err != nil {
		return errors.Internal("Failed to parse "+resource+" data", err)
	}
	return nil
}

// txGetDoc is getDoc inside a transaction.
func txGetDoc(tx *firestore.Transaction, ref *firestore.DocumentRef, resource string, dst interface{}) error {
	doc, err := tx.Get(ref)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound(resource, err)
		}
		return errors.Internal("Failed to get "+resource, err)
	}
	if err := doc.DataTo(dst); err != nil {
		return errors.Internal("Failed to parse "+resource+" data", err)
	}
	return nil
}

// collect drains iter into a slice of T. An empty result is an empty slice,
// never nil.
func collect[T any](iter *firestore.DocumentIterator, resource string) ([]*T, error) {
	defer iter.Stop()

	out := []*T{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate "+resource, err)
		}

		var v T
		if err := doc.DataTo(&v); err != nil {
			return nil, errors.Internal("Failed to parse "+resource+" data", err)
		}
		out = append(out, &v)
	}
	return out, nil
}

// txError passes AppErrors through and wraps anything else.
func txError(message string, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return errors.Internal(message, err)
}

func chunk(ids []string, size int) [][]string {
	var out [][]string
	for len(ids) > size {
		out = append(out, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		out = append(out, ids)
	}
	return out
}

// count runs a server-side count aggregation over query.
func count(ctx context.Context, query firestore.Query, resource string) (int64, error) {
	result, err := query.NewAggregationQuery().WithCount("all").Get(ctx)
	if err != nil {
		return 0, errors.Internal("Failed to count "+resource, err)
	}

	v, ok := result["all"].(*firestorepb.Value)
	if !ok {
		return 0, errors.Internal("Failed to count "+resource, nil)
	}
	return v.GetIntegerValue(), nil
}
