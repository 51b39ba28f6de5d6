package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/GoodHurtLifting/the-lift-league/internal/models"
)

// Firestore caps "in" membership queries at this many values, so
// larger candidate sets are split and the results merged.
const profileBatchSize = 30

type UserRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) *UserRepository {
	return &UserRepository{client: client}
}

// ProfilesByIDs fetches the profiles for the given user ids in a
// single batched query per chunk of profileBatchSize. Result order
// follows the store, not the input. Ids with no matching document
// are silently absent from the result.
func (r *UserRepository) ProfilesByIDs(ctx context.Context, ids []string) ([]*models.UserProfile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var profiles []*models.UserProfile
	for _, chunk := range chunkIDs(ids, profileBatchSize) {
		iter := r.client.Collection("users").
			Where(firestore.DocumentID, "in", chunk).
			Documents(ctx)

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return nil, err
			}

			var profile models.UserProfile
			if err := doc.DataTo(&profile); err != nil {
				// Malformed profile, skip rather than fail the batch.
				continue
			}
			if profile.UserID == "" {
				profile.UserID = doc.Ref.ID
			}
			profiles = append(profiles, &profile)
		}
	}

	return profiles, nil
}

// chunkIDs splits ids into runs of at most size, in order, so a
// candidate set larger than the store's "in" cap still resolves.
func chunkIDs(ids []string, size int) [][]string {
	var chunks [][]string
	for start := 0; start < len(ids); start += size {
		chunks = append(chunks, ids[start:min(start+size, len(ids))])
	}
	return chunks
}

// CircleMemberIDs enumerates the document ids of a user's
// training_circle subcollection. The documents carry no fields the
// engine needs; the id is the member's user id.
func (r *UserRepository) CircleMemberIDs(ctx context.Context, ownerID string) ([]string, error) {
	iter := r.client.Collection("users").Doc(ownerID).
		Collection("training_circle").
		Documents(ctx)

	var ids []string
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		ids = append(ids, doc.Ref.ID)
	}

	return ids, nil
}
