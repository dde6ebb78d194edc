package response

import "github.com/google/uuid"

type InsertedResponse struct {
	InsertedID uuid.UUID `json:"insertedId"`
}

type DeletedResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
