package dict

import (
	"hr-personnel-backend/controllers"
	orgunitprovider "hr-personnel-backend/lib/dicts/orgunit"
	apimodels "hr-personnel-backend/models/api"
	dictapimodels "hr-personnel-backend/models/api/dict"

	"github.com/gofiber/fiber/v2"
)

type orgUnitDictApiController struct {
	controllers.BaseAPIController
}

func InitOrgUnitDictApiRouters(app *fiber.App) {
	controller := orgUnitDictApiController{}
	app.Route("api/v1/dict/org-units", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
		})
	})
}

// @Summary Create org unit
// @Tags Dictionary. Org units
// @Description The short code becomes the identifier namespace prefix for the unit
// @Param body body dictapimodels.OrgUnitData true "org unit data"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/org-units [post]
func (c *orgUnitDictApiController) create(ctx *fiber.Ctx) error {
	request := dictapimodels.OrgUnitData{}
	if err := c.BodyParser(ctx, &request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := orgunitprovider.Instance.Create(request)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Org unit details
// @Tags Dictionary. Org units
// @Param id path string true "org unit id"
// @Success 200 {object} apimodels.Response{data=dictapimodels.OrgUnitView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/org-units/{id} [get]
func (c *orgUnitDictApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := orgunitprovider.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Update org unit
// @Tags Dictionary. Org units
// @Param id path string true "org unit id"
// @Param body body dictapimodels.OrgUnitData true "org unit data"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/org-units/{id} [put]
func (c *orgUnitDictApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	request := dictapimodels.OrgUnitData{}
	if err := c.BodyParser(ctx, &request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = orgunitprovider.Instance.Update(id, request)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete org unit
// @Tags Dictionary. Org units
// @Param id path string true "org unit id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/org-units/{id} [delete]
func (c *orgUnitDictApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = orgunitprovider.Instance.Delete(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Org unit list
// @Tags Dictionary. Org units
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.OrgUnitView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/org-units/list [get]
func (c *orgUnitDictApiController) list(ctx *fiber.Ctx) error {
	list, err := orgunitprovider.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
