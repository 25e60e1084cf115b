package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/catalog"
	"github.com/partserp/backend/internal/domain/shared"
)

// AllowedImageContentTypes is the whitelist of content types accepted for
// item photos. SVG is excluded since it can carry scripts.
var AllowedImageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/bmp":  true,
}

// ObjectStorageService defines the interface for object storage operations.
// This interface is implemented by the infrastructure layer (S3 or a local
// stub).
type ObjectStorageService interface {
	// GenerateUploadURL generates a presigned URL for uploading a file.
	// Returns the upload URL and expiration time.
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)

	// GenerateDownloadURL generates a presigned URL for downloading a file.
	// Returns the download URL and expiration time.
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)

	// DeleteObject deletes an object from storage
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists checks if an object exists in storage
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}

// ItemImageServiceConfig holds configuration for the item image service
type ItemImageServiceConfig struct {
	// UploadURLExpiry is the duration for which upload URLs are valid
	UploadURLExpiry time.Duration
	// DownloadURLExpiry is the duration for which download URLs are valid
	DownloadURLExpiry time.Duration
}

// DefaultItemImageServiceConfig returns the default configuration
func DefaultItemImageServiceConfig() ItemImageServiceConfig {
	return ItemImageServiceConfig{
		UploadURLExpiry:   15 * time.Minute,
		DownloadURLExpiry: 1 * time.Hour,
	}
}

// ItemImageService manages item photos in object storage. Uploads are
// presigned: the service hands out a URL, the client uploads directly,
// then confirms so the storage key lands on the item.
type ItemImageService struct {
	itemRepo       catalog.ItemRepository
	storageService ObjectStorageService
	config         ItemImageServiceConfig
}

// NewItemImageService creates a new ItemImageService
func NewItemImageService(itemRepo catalog.ItemRepository, storageService ObjectStorageService) *ItemImageService {
	return &ItemImageService{
		itemRepo:       itemRepo,
		storageService: storageService,
		config:         DefaultItemImageServiceConfig(),
	}
}

// SetConfig sets the service configuration
func (s *ItemImageService) SetConfig(config ItemImageServiceConfig) {
	s.config = config
}

// InitiateUpload validates the request and returns a presigned upload URL
// for the item's photo. The item is untouched until the upload is confirmed.
func (s *ItemImageService) InitiateUpload(ctx context.Context, itemID uuid.UUID, req InitiateImageUploadRequest) (*InitiateImageUploadResponse, error) {
	if !AllowedImageContentTypes[req.ContentType] {
		return nil, shared.NewDomainError("UNSUPPORTED_CONTENT_TYPE", "Content type is not an allowed image type")
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	storageKey := buildImageStorageKey(item.ID, req.FileName)
	uploadURL, expiresAt, err := s.storageService.GenerateUploadURL(ctx, storageKey, req.ContentType, s.config.UploadURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("generate upload url: %w", err)
	}

	return &InitiateImageUploadResponse{
		StorageKey: storageKey,
		UploadURL:  uploadURL,
		ExpiresAt:  expiresAt,
	}, nil
}

// ConfirmUpload verifies the object landed in storage and records the key
// on the item. A previous image is deleted best-effort.
func (s *ItemImageService) ConfirmUpload(ctx context.Context, itemID uuid.UUID, storageKey string) (*ItemResponse, error) {
	if storageKey == "" {
		return nil, shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key cannot be empty")
	}
	if !strings.HasPrefix(storageKey, imageKeyPrefix(itemID)) {
		return nil, shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key does not belong to this item")
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	exists, err := s.storageService.ObjectExists(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("check object: %w", err)
	}
	if !exists {
		return nil, shared.NewDomainError("UPLOAD_NOT_FOUND", "Uploaded object was not found in storage")
	}

	previousKey := item.ImageKey
	item.SetImageKey(storageKey)
	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	if previousKey != "" && previousKey != storageKey {
		_ = s.storageService.DeleteObject(ctx, previousKey)
	}

	response := ToItemResponse(item)
	return &response, nil
}

// GetImageURL returns a presigned download URL for the item's photo
func (s *ItemImageService) GetImageURL(ctx context.Context, itemID uuid.UUID) (*ImageURLResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.ImageKey == "" {
		return nil, shared.NewDomainError("NOT_FOUND", "Item has no image")
	}

	url, expiresAt, err := s.storageService.GenerateDownloadURL(ctx, item.ImageKey, s.config.DownloadURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("generate download url: %w", err)
	}

	return &ImageURLResponse{
		StorageKey: item.ImageKey,
		URL:        url,
		ExpiresAt:  expiresAt,
	}, nil
}

// imageKeyPrefix returns the storage key prefix for an item's images
func imageKeyPrefix(itemID uuid.UUID) string {
	return "items/" + itemID.String() + "/images/"
}

// buildImageStorageKey builds a collision-free storage key keeping the
// original extension
func buildImageStorageKey(itemID uuid.UUID, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return imageKeyPrefix(itemID) + uuid.New().String() + ext
}
