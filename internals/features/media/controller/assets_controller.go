package controller

import (
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "gymclub_backend/internals/helpers"
	"gymclub_backend/internals/helpers/storage"

	"gymclub_backend/internals/features/media"
)

/* =========================================================
   Generic asset surface: /assets/:kind
========================================================= */

type AssetsController struct {
	DB         *gorm.DB
	Manager    *media.Manager
	Store      storage.ObjectStore
	Resolver   *storage.Resolver
	PresignTTL time.Duration
}

func NewAssetsController(db *gorm.DB, mgr *media.Manager, store storage.ObjectStore, resolver *storage.Resolver, presignTTL time.Duration) *AssetsController {
	return &AssetsController{DB: db, Manager: mgr, Store: store, Resolver: resolver, PresignTTL: presignTTL}
}

func (ctl *AssetsController) kind(c *fiber.Ctx) (media.Kind, bool) {
	return media.KindByName(strings.ToLower(strings.TrimSpace(c.Params("kind"))))
}

func getIDParam(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// fileOrNil tolerates JSON bodies; FormFile errors there simply mean no
// upload accompanies the request.
func fileOrNil(c *fiber.Ctx, field string) *multipart.FileHeader {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return nil
	}
	return fh
}

func (ctl *AssetsController) List(c *fiber.Ctx) error {
	k, ok := ctl.kind(c)
	if !ok {
		return helper.Fail(c, fiber.StatusNotFound, "unknown asset kind")
	}
	return ctl.listKind(c, k)
}

// ListKind fixes the kind at route-registration time for the public aliases
// (/api/public/sponsors and friends).
func (ctl *AssetsController) ListKind(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		k, ok := media.KindByName(name)
		if !ok {
			return helper.Fail(c, fiber.StatusNotFound, "unknown asset kind")
		}
		return ctl.listKind(c, k)
	}
}

func (ctl *AssetsController) listKind(c *fiber.Ctx, k media.Kind) error {
	rows, err := k.List(ctl.DB.WithContext(c.UserContext()))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, rows)
}

func (ctl *AssetsController) Create(c *fiber.Ctx) error {
	k, ok := ctl.kind(c)
	if !ok {
		return helper.Fail(c, fiber.StatusNotFound, "unknown asset kind")
	}
	return ctl.createKind(c, k)
}

func (ctl *AssetsController) createKind(c *fiber.Ctx, k media.Kind) error {
	rec, err := k.DecodeCreate(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	ch := media.NoChange()
	if f := fileOrNil(c, k.FileField); f != nil {
		ch = media.Replace(f)
	}

	if err := ctl.Manager.Create(c.UserContext(), rec, k.KeyPrefix, ch); err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, rec)
}

func (ctl *AssetsController) Update(c *fiber.Ctx) error {
	k, ok := ctl.kind(c)
	if !ok {
		return helper.Fail(c, fiber.StatusNotFound, "unknown asset kind")
	}
	id, err := getIDParam(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	rec, err := k.Find(ctl.DB.WithContext(c.UserContext()), id)
	if err != nil {
		return helper.FromError(c, err)
	}

	clear, err := k.DecodeUpdate(c, rec)
	if err != nil {
		return helper.FromError(c, err)
	}

	// Precedence: an uploaded file wins over clear_media.
	ch := media.NoChange()
	if f := fileOrNil(c, k.FileField); f != nil {
		ch = media.Replace(f)
	} else if clear {
		ch = media.Clear()
	}

	if err := ctl.Manager.Update(c.UserContext(), rec, k.KeyPrefix, ch); err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, rec)
}

func (ctl *AssetsController) Delete(c *fiber.Ctx) error {
	k, ok := ctl.kind(c)
	if !ok {
		return helper.Fail(c, fiber.StatusNotFound, "unknown asset kind")
	}
	id, err := getIDParam(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	rec, err := k.Find(ctl.DB.WithContext(c.UserContext()), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := ctl.Manager.Delete(c.UserContext(), rec); err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, fiber.Map{"id": id})
}

// CreateTryout is the public tryout form bound to the registrations kind.
func (ctl *AssetsController) CreateTryout(c *fiber.Ctx) error {
	k, _ := media.KindByName("registrations")
	return ctl.createKind(c, k)
}

/* =========================================================
   Presigned direct upload
========================================================= */

type presignRequest struct {
	FileName string `json:"fileName" form:"fileName" validate:"required"`
	FileType string `json:"fileType" form:"fileType" validate:"required"`
}

// Presign hands the client a time-boxed PUT URL so large payloads bypass
// the server. Expiry is enforced by the store, not by us.
func (ctl *AssetsController) Presign(c *fiber.Ctx) error {
	var req presignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationFail(c, err)
	}

	prefix := strings.Trim(strings.TrimSpace(c.Query("prefix", "uploads")), "/")
	key := ctl.Resolver.BuildKey(prefix, req.FileName)

	res, err := ctl.Store.PresignPut(c.UserContext(), key, req.FileType, ctl.PresignTTL)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, res)
}
