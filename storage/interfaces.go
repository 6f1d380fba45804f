package storage

import "github.com/noelk8888/realestate/models"

// ListingWriter is the interface any storage backend must satisfy.
type ListingWriter interface {
	Write(listings []models.Listing) error
	Close() error
}
