// Package media owns the synchronized asset lifecycle: every mutation that
// touches both the object store and a database row goes through the Manager
// here, nothing else in the codebase is allowed to mutate both sides.
package media

import (
	"bytes"
	"context"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"

	"gorm.io/gorm"

	"gymclub_backend/internals/helpers/apperr"
	"gymclub_backend/internals/helpers/storage"
)

// AssetRecord is any row owning at most one stored object. The locator
// column name differs per kind (sponsor_img_url, product_img_url, ...); the
// interface hides that from the lifecycle.
type AssetRecord interface {
	AssetLocator() *string
	SetAssetLocator(*string)
}

type changeMode int

const (
	modeNone changeMode = iota
	modeReplace
	modeClear
)

// AssetChange is the tagged variant for the asset field of a mutation:
// leave it alone, replace it with an uploaded file, or drop it.
type AssetChange struct {
	mode changeMode
	file *multipart.FileHeader
}

func NoChange() AssetChange { return AssetChange{mode: modeNone} }

func Replace(fh *multipart.FileHeader) AssetChange {
	if fh == nil {
		return AssetChange{mode: modeNone}
	}
	return AssetChange{mode: modeReplace, file: fh}
}

func Clear() AssetChange { return AssetChange{mode: modeClear} }

func (c AssetChange) IsReplace() bool { return c.mode == modeReplace }
func (c AssetChange) IsClear() bool   { return c.mode == modeClear }

// Manager coordinates object-store writes/deletes with row writes/deletes.
//
// Ordering discipline, applied uniformly: the row mutation sits between new
// object creation and old object deletion, and object deletions always run
// last. Whatever step fails, no row ever references a missing object; the
// only residue a failure can leave is an orphaned object, and the orphan
// window is the duration of the in-request call itself.
//
// There is no cross-request locking: two concurrent updates on the same id
// can race, and the loser's upload becomes an orphan. Accepted limitation.
type Manager struct {
	DB       *gorm.DB
	Store    storage.ObjectStore
	Resolver *storage.Resolver

	// ConvertImages re-encodes image uploads to bounded WebP before they
	// are stored. Non-image files always pass through untouched.
	ConvertImages bool
	WebP          storage.WebPOptions
}

func NewManager(db *gorm.DB, store storage.ObjectStore, resolver *storage.Resolver) *Manager {
	return &Manager{
		DB:            db,
		Store:         store,
		Resolver:      resolver,
		ConvertImages: true,
		WebP:          storage.DefaultWebPOptions(),
	}
}

func contentTypeOf(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	if ct := mime.TypeByExtension(filepath.Ext(fh.Filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// upload reads the multipart file, optionally re-encodes images to WebP,
// and stores the blob under a fresh collision-proof key.
func (m *Manager) upload(ctx context.Context, keyPrefix string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", apperr.Validation("cannot open uploaded file: %v", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", apperr.Validation("cannot read uploaded file: %v", err)
	}
	if len(data) == 0 {
		return "", apperr.Validation("uploaded file is empty")
	}

	filename := fh.Filename
	contentType := contentTypeOf(fh)

	if m.ConvertImages && storage.IsImageContentType(contentType) {
		if encoded, err := storage.EncodeWebP(data, m.WebP); err == nil {
			data = encoded
			filename = storage.WebPFilename(filename)
			contentType = "image/webp"
		}
		// Undecodable "images" are stored as received.
	}

	key := m.Resolver.BuildKey(keyPrefix, filename)
	return m.Store.Put(ctx, key, bytes.NewReader(data), contentType)
}

// Create uploads first (when a file is present), then inserts the row.
// A failed upload means no row is written; a failed insert after a
// successful upload surfaces as PersistenceError and leaves a bounded
// orphaned object.
func (m *Manager) Create(ctx context.Context, rec AssetRecord, keyPrefix string, ch AssetChange) error {
	if ch.IsReplace() {
		locator, err := m.upload(ctx, keyPrefix, ch.file)
		if err != nil {
			return err
		}
		rec.SetAssetLocator(&locator)
	}

	if err := m.DB.WithContext(ctx).Create(rec).Error; err != nil {
		if apperr.IsUniqueViolation(err) {
			return apperr.Validation("duplicate record")
		}
		return apperr.Persistence("insert row", err)
	}
	return nil
}

// Update persists a loaded row whose domain fields the caller has already
// applied. On replace the new object is uploaded before the row is saved,
// and the superseded object is deleted only after the save; an observer
// never sees a broken reference, at the cost of transient double storage.
func (m *Manager) Update(ctx context.Context, rec AssetRecord, keyPrefix string, ch AssetChange) error {
	var stale *string

	switch {
	case ch.IsReplace():
		locator, err := m.upload(ctx, keyPrefix, ch.file)
		if err != nil {
			return err
		}
		stale = rec.AssetLocator()
		rec.SetAssetLocator(&locator)
	case ch.IsClear():
		stale = rec.AssetLocator()
		rec.SetAssetLocator(nil)
	}

	if err := m.DB.WithContext(ctx).Save(rec).Error; err != nil {
		if apperr.IsUniqueViolation(err) {
			return apperr.Validation("duplicate record")
		}
		return apperr.Persistence("update row", err)
	}

	if stale != nil && *stale != "" {
		if err := m.Store.Delete(ctx, *stale); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the row first, then the object. A row-delete failure
// aborts before any object deletion is attempted; an object-delete failure
// is surfaced to the caller even though the row is already gone.
func (m *Manager) Delete(ctx context.Context, rec AssetRecord) error {
	locator := rec.AssetLocator()

	res := m.DB.WithContext(ctx).Delete(rec)
	if res.Error != nil {
		return apperr.Persistence("delete row", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("record")
	}

	if locator != nil && *locator != "" {
		if err := m.Store.Delete(ctx, *locator); err != nil {
			return err
		}
	}
	return nil
}
