package controller

import (
	"github.com/gofiber/fiber/v2"

	helper "gymclub_backend/internals/helpers"
	"gymclub_backend/internals/helpers/storage"
)

// Facility photos live directly in the bucket under a fixed prefix; there
// is no database row per photo, so the gallery is a straight bucket
// listing.
const galleryPrefix = "facility/"

type GalleryController struct {
	Store storage.ObjectStore
}

func NewGalleryController(store storage.ObjectStore) *GalleryController {
	return &GalleryController{Store: store}
}

func (ctl *GalleryController) List(c *fiber.Ctx) error {
	objects, err := ctl.Store.List(c.UserContext(), galleryPrefix)
	if err != nil {
		return helper.FromError(c, err)
	}
	if objects == nil {
		objects = []storage.ObjectInfo{}
	}
	return helper.Success(c, objects)
}
