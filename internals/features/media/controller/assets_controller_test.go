package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gymclub_backend/internals/helpers/apperr"
	"gymclub_backend/internals/helpers/storage"

	"gymclub_backend/internals/features/media"
	regModel "gymclub_backend/internals/features/registrations/model"
	resModel "gymclub_backend/internals/features/resources/model"
	spModel "gymclub_backend/internals/features/sponsors/model"
	prodModel "gymclub_backend/internals/features/store/model"
)

/* =========================================================
   In-memory store + app fixture
========================================================= */

type memStore struct {
	resolver *storage.Resolver
	objects  map[string][]byte
}

func (m *memStore) Put(_ context.Context, key string, body io.Reader, _ string) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", apperr.StoreUnavailable("put", err)
	}
	m.objects[key] = data
	return m.resolver.PublicURL(key), nil
}

func (m *memStore) Delete(_ context.Context, locator string) error {
	key, err := m.resolver.KeyFromURL(locator)
	if err != nil {
		return apperr.StoreUnavailable("delete", err)
	}
	delete(m.objects, key)
	return nil
}

func (m *memStore) List(_ context.Context, prefix string) ([]storage.ObjectInfo, error) {
	var out []storage.ObjectInfo
	for key := range m.objects {
		if strings.HasPrefix(key, prefix) {
			out = append(out, storage.ObjectInfo{Key: key, URL: m.resolver.PublicURL(key)})
		}
	}
	return out, nil
}

func (m *memStore) PresignPut(_ context.Context, key, _ string, ttl time.Duration) (*storage.PresignedUpload, error) {
	return &storage.PresignedUpload{
		UploadURL: m.resolver.PublicURL(key) + "?signed",
		Key:       key,
		MediaURL:  m.resolver.PublicURL(key),
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *memStore) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&spModel.Sponsor{}, &prodModel.Product{}, &resModel.Resource{}, &regModel.Registration{},
	))

	resolver := storage.NewResolver("test-bucket", "us-west-2", "")
	store := &memStore{resolver: resolver, objects: map[string][]byte{}}
	mgr := media.NewManager(db, store, resolver)
	mgr.ConvertImages = false

	ctl := NewAssetsController(db, mgr, store, resolver, 15*time.Minute)

	app := fiber.New()
	app.Get("/assets/:kind", ctl.List)
	app.Post("/assets/:kind", ctl.Create)
	app.Put("/assets/:kind/:id", ctl.Update)
	app.Delete("/assets/:kind/:id", ctl.Delete)
	app.Post("/tryouts", ctl.CreateTryout)
	app.Post("/uploads/presign", ctl.Presign)
	return app, db, store
}

type envelope struct {
	Success bool            `json:"success"`
	Body    json.RawMessage `json:"body"`
	Error   string          `json:"error"`
}

func doJSON(t *testing.T, app *fiber.App, method, target string, payload any) (int, envelope) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func doMultipart(t *testing.T, app *fiber.App, method, target string, fields map[string]string, fileField, fileName string, fileContent []byte) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

/* =========================================================
   Generic surface
========================================================= */

func TestListUnknownKind(t *testing.T) {
	app, _, _ := newTestApp(t)

	code, env := doJSON(t, app, http.MethodGet, "/assets/invoices", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
	assert.Equal(t, "unknown asset kind", env.Error)
}

func TestCreateSponsorWithLogo(t *testing.T) {
	app, db, store := newTestApp(t)

	code, env := doMultipart(t, app, http.MethodPost, "/assets/sponsors",
		map[string]string{"organization": "Acme Gym Supply", "tier": "gold"},
		"media", "logo.pdf", []byte("pdf-bytes"))
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Success, "error: %s", env.Error)

	var created spModel.Sponsor
	require.NoError(t, json.Unmarshal(env.Body, &created))
	require.NotNil(t, created.SponsorImgURL)
	assert.Contains(t, *created.SponsorImgURL, "https://test-bucket.s3.us-west-2.amazonaws.com/sponsors/")

	var row spModel.Sponsor
	require.NoError(t, db.First(&row, "sponsor_id = ?", created.SponsorID).Error)
	key, err := store.resolver.KeyFromURL(*row.SponsorImgURL)
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf-bytes"), store.objects[key])
}

func TestCreateSponsorMissingOrganization(t *testing.T) {
	app, _, _ := newTestApp(t)

	code, env := doJSON(t, app, http.MethodPost, "/assets/sponsors", fiber.Map{"tier": "gold"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestCreateSponsorUnknownTier(t *testing.T) {
	app, _, _ := newTestApp(t)

	code, env := doJSON(t, app, http.MethodPost, "/assets/sponsors",
		fiber.Map{"organization": "Acme", "tier": "diamond"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
}

func TestListSponsorsTierOrder(t *testing.T) {
	app, db, _ := newTestApp(t)
	require.NoError(t, db.Create(&spModel.Sponsor{SponsorOrganization: "Bronze Co", SponsorTier: "bronze"}).Error)
	require.NoError(t, db.Create(&spModel.Sponsor{SponsorOrganization: "Plat Co", SponsorTier: "platinum"}).Error)
	require.NoError(t, db.Create(&spModel.Sponsor{SponsorOrganization: "Gold Co", SponsorTier: "gold"}).Error)

	code, env := doJSON(t, app, http.MethodGet, "/assets/sponsors", nil)
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Success)

	var rows []spModel.Sponsor
	require.NoError(t, json.Unmarshal(env.Body, &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "platinum", rows[0].SponsorTier)
	assert.Equal(t, "gold", rows[1].SponsorTier)
	assert.Equal(t, "bronze", rows[2].SponsorTier)
}

func TestUpdateInvalidID(t *testing.T) {
	app, _, _ := newTestApp(t)

	code, env := doJSON(t, app, http.MethodPut, "/assets/sponsors/abc", fiber.Map{"tier": "gold"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
}

func TestUpdateMissingRow(t *testing.T) {
	app, _, _ := newTestApp(t)

	code, env := doJSON(t, app, http.MethodPut, "/assets/sponsors/999", fiber.Map{"tier": "gold"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
}

func TestUpdateClearMediaDropsObject(t *testing.T) {
	app, db, store := newTestApp(t)

	_, created := doMultipart(t, app, http.MethodPost, "/assets/sponsors",
		map[string]string{"organization": "Acme"},
		"media", "logo.pdf", []byte("v1"))
	var sp spModel.Sponsor
	require.NoError(t, json.Unmarshal(created.Body, &sp))
	require.NotNil(t, sp.SponsorImgURL)

	code, env := doMultipart(t, app, http.MethodPut, "/assets/sponsors/1",
		map[string]string{"clear_media": "true"}, "", "", nil)
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Success, "error: %s", env.Error)

	var row spModel.Sponsor
	require.NoError(t, db.First(&row, "sponsor_id = ?", sp.SponsorID).Error)
	assert.Nil(t, row.SponsorImgURL)
	assert.Empty(t, store.objects)
}

func TestDeleteSponsorRemovesRowAndObject(t *testing.T) {
	app, db, store := newTestApp(t)

	_, created := doMultipart(t, app, http.MethodPost, "/assets/sponsors",
		map[string]string{"organization": "Acme"},
		"media", "logo.pdf", []byte("v1"))
	var sp spModel.Sponsor
	require.NoError(t, json.Unmarshal(created.Body, &sp))

	code, env := doJSON(t, app, http.MethodDelete, "/assets/sponsors/1", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	var count int64
	require.NoError(t, db.Model(&spModel.Sponsor{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, store.objects)
}

func TestDeleteMissingSponsor(t *testing.T) {
	app, _, _ := newTestApp(t)

	code, env := doJSON(t, app, http.MethodDelete, "/assets/sponsors/42", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
}

/* =========================================================
   Tryout form
========================================================= */

func TestCreateTryout(t *testing.T) {
	app, db, _ := newTestApp(t)

	code, env := doMultipart(t, app, http.MethodPost, "/tryouts",
		map[string]string{
			"athlete_name":   "Mia Park",
			"birthdate":      "2015-04-09",
			"level":          "level_4",
			"guardian_name":  "Jordan Park",
			"guardian_email": "jordan@example.com",
		},
		"media", "mia.jpg", []byte("jpg-bytes"))
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Success, "error: %s", env.Error)

	var row regModel.Registration
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, "Mia Park", row.RegistrationAthleteName)
	assert.Equal(t, regModel.StatusPending, row.RegistrationStatus)
	assert.NotNil(t, row.RegistrationImgURL)
}

func TestCreateTryoutBadBirthdate(t *testing.T) {
	app, _, _ := newTestApp(t)

	code, env := doJSON(t, app, http.MethodPost, "/tryouts", fiber.Map{
		"athlete_name":   "Mia Park",
		"birthdate":      "04/09/2015",
		"level":          "level_4",
		"guardian_name":  "Jordan Park",
		"guardian_email": "jordan@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
}

/* =========================================================
   Presign
========================================================= */

func TestPresignSuccess(t *testing.T) {
	app, _, _ := newTestApp(t)

	code, env := doJSON(t, app, http.MethodPost, "/uploads/presign?prefix=gallery",
		fiber.Map{"fileName": "meet photo.jpg", "fileType": "image/jpeg"})
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Success, "error: %s", env.Error)

	var res storage.PresignedUpload
	require.NoError(t, json.Unmarshal(env.Body, &res))
	assert.True(t, strings.HasPrefix(res.Key, "gallery/"), "key %q", res.Key)
	assert.True(t, strings.HasSuffix(res.Key, "-meet_photo.jpg"), "key %q", res.Key)
	assert.NotEmpty(t, res.UploadURL)
	assert.Contains(t, res.MediaURL, "https://test-bucket.s3.us-west-2.amazonaws.com/gallery/")
}

func TestPresignMissingFields(t *testing.T) {
	app, _, _ := newTestApp(t)

	code, env := doJSON(t, app, http.MethodPost, "/uploads/presign", fiber.Map{"fileName": "photo.jpg"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
}
