package media

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymclub_backend/internals/helpers/apperr"

	regDTO "gymclub_backend/internals/features/registrations/dto"
	regModel "gymclub_backend/internals/features/registrations/model"
	resDTO "gymclub_backend/internals/features/resources/dto"
	resModel "gymclub_backend/internals/features/resources/model"
	spDTO "gymclub_backend/internals/features/sponsors/dto"
	spModel "gymclub_backend/internals/features/sponsors/model"
	prodDTO "gymclub_backend/internals/features/store/dto"
	prodModel "gymclub_backend/internals/features/store/model"
)

// Kind describes one asset-bearing entity to the generic asset handlers:
// where its objects live in the bucket, which multipart field carries the
// upload, and how its rows are decoded, loaded and listed.
type Kind struct {
	Name      string
	KeyPrefix string
	FileField string

	DecodeCreate func(c *fiber.Ctx) (AssetRecord, error)
	Find         func(db *gorm.DB, id uint) (AssetRecord, error)
	// DecodeUpdate applies partial fields onto the loaded record and
	// reports whether the request selected the Clear asset branch.
	DecodeUpdate func(c *fiber.Ctx, rec AssetRecord) (clear bool, err error)
	List         func(db *gorm.DB) (interface{}, error)
}

func bodyParse(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return apperr.Validation("invalid payload: %v", err)
	}
	return nil
}

func findErr(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(what)
	}
	return apperr.Persistence("load "+what, err)
}

var kinds = map[string]Kind{
	"sponsors": {
		Name:      "sponsors",
		KeyPrefix: "sponsors",
		FileField: "media",
		DecodeCreate: func(c *fiber.Ctx) (AssetRecord, error) {
			var req spDTO.CreateSponsorRequest
			if err := bodyParse(c, &req); err != nil {
				return nil, err
			}
			return req.ToModel()
		},
		Find: func(db *gorm.DB, id uint) (AssetRecord, error) {
			var m spModel.Sponsor
			if err := db.First(&m, "sponsor_id = ?", id).Error; err != nil {
				return nil, findErr(err, "sponsor")
			}
			return &m, nil
		},
		DecodeUpdate: func(c *fiber.Ctx, rec AssetRecord) (bool, error) {
			var req spDTO.UpdateSponsorRequest
			if err := bodyParse(c, &req); err != nil {
				return false, err
			}
			return req.ClearMedia, req.Apply(rec.(*spModel.Sponsor))
		},
		List: func(db *gorm.DB) (interface{}, error) {
			var rows []spModel.Sponsor
			if err := db.Find(&rows).Error; err != nil {
				return nil, apperr.Persistence("list sponsors", err)
			}
			spModel.SortByTier(rows)
			return rows, nil
		},
	},

	"products": {
		Name:      "products",
		KeyPrefix: "products",
		FileField: "media",
		DecodeCreate: func(c *fiber.Ctx) (AssetRecord, error) {
			var req prodDTO.CreateProductRequest
			if err := bodyParse(c, &req); err != nil {
				return nil, err
			}
			return req.ToModel()
		},
		Find: func(db *gorm.DB, id uint) (AssetRecord, error) {
			var m prodModel.Product
			if err := db.First(&m, "product_id = ?", id).Error; err != nil {
				return nil, findErr(err, "product")
			}
			return &m, nil
		},
		DecodeUpdate: func(c *fiber.Ctx, rec AssetRecord) (bool, error) {
			var req prodDTO.UpdateProductRequest
			if err := bodyParse(c, &req); err != nil {
				return false, err
			}
			return req.ClearMedia, req.Apply(rec.(*prodModel.Product))
		},
		List: func(db *gorm.DB) (interface{}, error) {
			var rows []prodModel.Product
			if err := db.Order("product_category, product_name").Find(&rows).Error; err != nil {
				return nil, apperr.Persistence("list products", err)
			}
			return rows, nil
		},
	},

	"resources": {
		Name:      "resources",
		KeyPrefix: "resources",
		FileField: "file",
		DecodeCreate: func(c *fiber.Ctx) (AssetRecord, error) {
			var req resDTO.CreateResourceRequest
			if err := bodyParse(c, &req); err != nil {
				return nil, err
			}
			return req.ToModel()
		},
		Find: func(db *gorm.DB, id uint) (AssetRecord, error) {
			var m resModel.Resource
			if err := db.First(&m, "resource_id = ?", id).Error; err != nil {
				return nil, findErr(err, "resource")
			}
			return &m, nil
		},
		DecodeUpdate: func(c *fiber.Ctx, rec AssetRecord) (bool, error) {
			var req resDTO.UpdateResourceRequest
			if err := bodyParse(c, &req); err != nil {
				return false, err
			}
			return req.ClearMedia, req.Apply(rec.(*resModel.Resource))
		},
		List: func(db *gorm.DB) (interface{}, error) {
			var rows []resModel.Resource
			if err := db.Order("resource_category, resource_title").Find(&rows).Error; err != nil {
				return nil, apperr.Persistence("list resources", err)
			}
			return rows, nil
		},
	},

	"registrations": {
		Name:      "registrations",
		KeyPrefix: "registrations",
		FileField: "media",
		DecodeCreate: func(c *fiber.Ctx) (AssetRecord, error) {
			var req regDTO.CreateRegistrationRequest
			if err := bodyParse(c, &req); err != nil {
				return nil, err
			}
			return req.ToModel()
		},
		Find: func(db *gorm.DB, id uint) (AssetRecord, error) {
			var m regModel.Registration
			if err := db.First(&m, "registration_id = ?", id).Error; err != nil {
				return nil, findErr(err, "registration")
			}
			return &m, nil
		},
		DecodeUpdate: func(c *fiber.Ctx, rec AssetRecord) (bool, error) {
			var req regDTO.UpdateRegistrationRequest
			if err := bodyParse(c, &req); err != nil {
				return false, err
			}
			return req.ClearMedia, req.Apply(rec.(*regModel.Registration))
		},
		List: func(db *gorm.DB) (interface{}, error) {
			var rows []regModel.Registration
			if err := db.Order("registration_created_at DESC").Find(&rows).Error; err != nil {
				return nil, apperr.Persistence("list registrations", err)
			}
			return rows, nil
		},
	},
}

func KindByName(name string) (Kind, bool) {
	k, ok := kinds[name]
	return k, ok
}

// KindNames is exposed for route setup logging.
func KindNames() []string {
	out := make([]string, 0, len(kinds))
	for name := range kinds {
		out = append(out, name)
	}
	return out
}
