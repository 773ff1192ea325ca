package media

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gymclub_backend/internals/helpers/apperr"
	"gymclub_backend/internals/helpers/storage"

	spModel "gymclub_backend/internals/features/sponsors/model"
)

/* =========================================================
   In-memory object store
========================================================= */

type fakeStore struct {
	resolver *storage.Resolver
	objects  map[string][]byte
	ops      []string

	failPut    bool
	failDelete bool
	onDelete   func(key string)
}

func newFakeStore(r *storage.Resolver) *fakeStore {
	return &fakeStore{resolver: r, objects: map[string][]byte{}}
}

func (f *fakeStore) Put(_ context.Context, key string, body io.Reader, _ string) (string, error) {
	if f.failPut {
		return "", apperr.StoreUnavailable("put", errors.New("injected"))
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", apperr.StoreUnavailable("put", err)
	}
	f.objects[key] = data
	f.ops = append(f.ops, "put:"+key)
	return f.resolver.PublicURL(key), nil
}

func (f *fakeStore) Delete(_ context.Context, locator string) error {
	key, err := f.resolver.KeyFromURL(locator)
	if err != nil {
		return apperr.StoreUnavailable("delete", err)
	}
	if f.failDelete {
		return apperr.StoreUnavailable("delete", errors.New("injected"))
	}
	if f.onDelete != nil {
		f.onDelete(key)
	}
	delete(f.objects, key)
	f.ops = append(f.ops, "delete:"+key)
	return nil
}

func (f *fakeStore) List(_ context.Context, prefix string) ([]storage.ObjectInfo, error) {
	var out []storage.ObjectInfo
	for key := range f.objects {
		if strings.HasPrefix(key, prefix) {
			out = append(out, storage.ObjectInfo{Key: key, URL: f.resolver.PublicURL(key)})
		}
	}
	return out, nil
}

func (f *fakeStore) PresignPut(_ context.Context, key, _ string, ttl time.Duration) (*storage.PresignedUpload, error) {
	return &storage.PresignedUpload{
		UploadURL: f.resolver.PublicURL(key) + "?signed",
		Key:       key,
		MediaURL:  f.resolver.PublicURL(key),
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}

/* =========================================================
   Fixtures
========================================================= */

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&spModel.Sponsor{}))
	return db
}

func newTestManager(t *testing.T) (*Manager, *fakeStore, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	resolver := storage.NewResolver("test-bucket", "us-west-2", "")
	fs := newFakeStore(resolver)
	mgr := NewManager(db, fs, resolver)
	mgr.ConvertImages = false
	return mgr, fs, db
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("media", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["media"][0]
}

func sponsorFixture() *spModel.Sponsor {
	return &spModel.Sponsor{SponsorOrganization: "Acme Gym Supply", SponsorTier: "gold"}
}

/* =========================================================
   Create
========================================================= */

func TestCreateWithFileUploadsThenInserts(t *testing.T) {
	mgr, fs, db := newTestManager(t)
	rec := sponsorFixture()

	fh := fileHeader(t, "logo.pdf", []byte("pdf-bytes"))
	err := mgr.Create(context.Background(), rec, "sponsors", Replace(fh))
	require.NoError(t, err)

	require.NotNil(t, rec.SponsorImgURL)
	key, err := fs.resolver.KeyFromURL(*rec.SponsorImgURL)
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf-bytes"), fs.objects[key])

	var got spModel.Sponsor
	require.NoError(t, db.First(&got, "sponsor_id = ?", rec.SponsorID).Error)
	require.NotNil(t, got.SponsorImgURL)
	assert.Equal(t, *rec.SponsorImgURL, *got.SponsorImgURL)
}

func TestCreateWithoutFile(t *testing.T) {
	mgr, fs, db := newTestManager(t)
	rec := sponsorFixture()

	require.NoError(t, mgr.Create(context.Background(), rec, "sponsors", NoChange()))

	var got spModel.Sponsor
	require.NoError(t, db.First(&got, "sponsor_id = ?", rec.SponsorID).Error)
	assert.Nil(t, got.SponsorImgURL)
	assert.Empty(t, fs.ops)
}

func TestCreateUploadFailureWritesNoRow(t *testing.T) {
	mgr, fs, db := newTestManager(t)
	fs.failPut = true
	rec := sponsorFixture()

	fh := fileHeader(t, "logo.pdf", []byte("pdf-bytes"))
	err := mgr.Create(context.Background(), rec, "sponsors", Replace(fh))
	require.Error(t, err)
	assert.Equal(t, apperr.KindStoreUnavailable, apperr.KindOf(err))

	var count int64
	require.NoError(t, db.Model(&spModel.Sponsor{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateEmptyFileRejected(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	rec := sponsorFixture()

	fh := fileHeader(t, "empty.png", nil)
	err := mgr.Create(context.Background(), rec, "sponsors", Replace(fh))
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestTwoCreatesWithoutFilesYieldTwoRows(t *testing.T) {
	mgr, _, db := newTestManager(t)

	require.NoError(t, mgr.Create(context.Background(), sponsorFixture(), "sponsors", NoChange()))
	require.NoError(t, mgr.Create(context.Background(), sponsorFixture(), "sponsors", NoChange()))

	var count int64
	require.NoError(t, db.Model(&spModel.Sponsor{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

/* =========================================================
   Update
========================================================= */

func TestUpdateReplaceDeletesOldAfterSave(t *testing.T) {
	mgr, fs, db := newTestManager(t)
	rec := sponsorFixture()
	require.NoError(t, mgr.Create(context.Background(), rec, "sponsors", Replace(fileHeader(t, "old.pdf", []byte("old")))))
	oldLocator := *rec.SponsorImgURL
	oldKey, _ := fs.resolver.KeyFromURL(oldLocator)

	// At the moment the stale object is deleted the row must already point
	// at the replacement.
	fs.onDelete = func(key string) {
		assert.Equal(t, oldKey, key)
		var row spModel.Sponsor
		require.NoError(t, db.First(&row, "sponsor_id = ?", rec.SponsorID).Error)
		require.NotNil(t, row.SponsorImgURL)
		assert.NotEqual(t, oldLocator, *row.SponsorImgURL)
	}

	require.NoError(t, mgr.Update(context.Background(), rec, "sponsors", Replace(fileHeader(t, "new.pdf", []byte("new")))))

	newKey, err := fs.resolver.KeyFromURL(*rec.SponsorImgURL)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), fs.objects[newKey])
	assert.NotContains(t, fs.objects, oldKey)
}

func TestUpdateWithoutFileKeepsObject(t *testing.T) {
	mgr, fs, db := newTestManager(t)
	rec := sponsorFixture()
	require.NoError(t, mgr.Create(context.Background(), rec, "sponsors", Replace(fileHeader(t, "logo.pdf", []byte("v1")))))
	locator := *rec.SponsorImgURL
	opsBefore := len(fs.ops)

	rec.SponsorTier = "platinum"
	require.NoError(t, mgr.Update(context.Background(), rec, "sponsors", NoChange()))

	var got spModel.Sponsor
	require.NoError(t, db.First(&got, "sponsor_id = ?", rec.SponsorID).Error)
	assert.Equal(t, "platinum", got.SponsorTier)
	require.NotNil(t, got.SponsorImgURL)
	assert.Equal(t, locator, *got.SponsorImgURL)
	assert.Len(t, fs.ops, opsBefore)
}

func TestUpdateClearRemovesObjectAndLocator(t *testing.T) {
	mgr, fs, db := newTestManager(t)
	rec := sponsorFixture()
	require.NoError(t, mgr.Create(context.Background(), rec, "sponsors", Replace(fileHeader(t, "logo.pdf", []byte("v1")))))
	key, _ := fs.resolver.KeyFromURL(*rec.SponsorImgURL)

	require.NoError(t, mgr.Update(context.Background(), rec, "sponsors", Clear()))

	var got spModel.Sponsor
	require.NoError(t, db.First(&got, "sponsor_id = ?", rec.SponsorID).Error)
	assert.Nil(t, got.SponsorImgURL)
	assert.NotContains(t, fs.objects, key)
}

func TestUpdateClearEmptyLocatorSkipsStore(t *testing.T) {
	mgr, fs, db := newTestManager(t)
	empty := ""
	rec := sponsorFixture()
	rec.SponsorImgURL = &empty
	require.NoError(t, db.Create(rec).Error)

	require.NoError(t, mgr.Update(context.Background(), rec, "sponsors", Clear()))

	var got spModel.Sponsor
	require.NoError(t, db.First(&got, "sponsor_id = ?", rec.SponsorID).Error)
	assert.Nil(t, got.SponsorImgURL)
	assert.Empty(t, fs.ops)
}

func TestUpdateReplaceEmptyLocatorSkipsStaleDelete(t *testing.T) {
	mgr, fs, _ := newTestManager(t)
	empty := ""
	rec := sponsorFixture()
	rec.SponsorImgURL = &empty
	require.NoError(t, mgr.DB.Create(rec).Error)

	require.NoError(t, mgr.Update(context.Background(), rec, "sponsors", Replace(fileHeader(t, "new.pdf", []byte("new")))))

	require.Len(t, fs.ops, 1)
	assert.True(t, strings.HasPrefix(fs.ops[0], "put:"), "op %q", fs.ops[0])
	require.NotNil(t, rec.SponsorImgURL)
	assert.NotEmpty(t, *rec.SponsorImgURL)
}

func TestUpdateClearWithoutObjectIsNoop(t *testing.T) {
	mgr, fs, _ := newTestManager(t)
	rec := sponsorFixture()
	require.NoError(t, mgr.Create(context.Background(), rec, "sponsors", NoChange()))

	require.NoError(t, mgr.Update(context.Background(), rec, "sponsors", Clear()))
	assert.Empty(t, fs.ops)
}

/* =========================================================
   Delete
========================================================= */

func TestDeleteRemovesRowThenObject(t *testing.T) {
	mgr, fs, db := newTestManager(t)
	rec := sponsorFixture()
	require.NoError(t, mgr.Create(context.Background(), rec, "sponsors", Replace(fileHeader(t, "logo.pdf", []byte("v1")))))
	key, _ := fs.resolver.KeyFromURL(*rec.SponsorImgURL)

	fs.onDelete = func(string) {
		var count int64
		require.NoError(t, db.Model(&spModel.Sponsor{}).Count(&count).Error)
		assert.Zero(t, count, "row must be gone before the object goes")
	}

	require.NoError(t, mgr.Delete(context.Background(), rec))
	assert.NotContains(t, fs.objects, key)
}

func TestDeleteMissingRowIsNotFound(t *testing.T) {
	mgr, fs, _ := newTestManager(t)

	err := mgr.Delete(context.Background(), &spModel.Sponsor{SponsorID: 999})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Empty(t, fs.ops)
}

func TestDeleteSurfacesObjectDeleteFailure(t *testing.T) {
	mgr, fs, db := newTestManager(t)
	rec := sponsorFixture()
	require.NoError(t, mgr.Create(context.Background(), rec, "sponsors", Replace(fileHeader(t, "logo.pdf", []byte("v1")))))
	fs.failDelete = true

	err := mgr.Delete(context.Background(), rec)
	require.Error(t, err)
	assert.Equal(t, apperr.KindStoreUnavailable, apperr.KindOf(err))

	// Row is already gone; the orphaned object is the documented residue.
	var count int64
	require.NoError(t, db.Model(&spModel.Sponsor{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteWithoutObjectSkipsStore(t *testing.T) {
	mgr, fs, _ := newTestManager(t)
	rec := sponsorFixture()
	require.NoError(t, mgr.Create(context.Background(), rec, "sponsors", NoChange()))

	require.NoError(t, mgr.Delete(context.Background(), rec))
	assert.Empty(t, fs.ops)
}
