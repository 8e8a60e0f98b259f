package apiv1

import (
	"hr-personnel-backend/controllers"
	positionhandler "hr-personnel-backend/lib/vacant-position"
	apimodels "hr-personnel-backend/models/api"
	positionapimodels "hr-personnel-backend/models/api/position"

	"github.com/gofiber/fiber/v2"
)

type positionApiController struct {
	controllers.BaseAPIController
}

func InitPositionApiRouters(app *fiber.App) {
	controller := positionApiController{}
	app.Route("api/v1/positions", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("fill", controller.fill)
			idRouter.Delete("", controller.delete)
		})
	})
}

// @Summary Create vacant position
// @Tags Vacant position
// @Description Open a position, allocating an identifier from the same namespace as employees
// @Param body body positionapimodels.PositionData true "position data"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/positions [post]
func (c *positionApiController) create(ctx *fiber.Ctx) error {
	request := positionapimodels.PositionData{}
	if err := c.BodyParser(ctx, &request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := request.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := positionhandler.Instance.Create(ctx.UserContext(), request)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Vacant position details
// @Tags Vacant position
// @Param id path string true "position record id"
// @Success 200 {object} apimodels.Response{data=positionapimodels.PositionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/positions/{id} [get]
func (c *positionApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := positionhandler.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Vacant position list
// @Tags Vacant position
// @Param body body positionapimodels.PositionFilter true "filter"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]positionapimodels.PositionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/positions/list [post]
func (c *positionApiController) list(ctx *fiber.Ctx) error {
	filter := positionapimodels.PositionFilter{}
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := positionhandler.Instance.List(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Fill vacant position
// @Tags Vacant position
// @Param id path string true "position record id"
// @Param body body positionapimodels.PositionFill true "hired employee"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/positions/{id}/fill [put]
func (c *positionApiController) fill(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	request := positionapimodels.PositionFill{}
	if err := c.BodyParser(ctx, &request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := request.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = positionhandler.Instance.Fill(id, request)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete vacant position
// @Tags Vacant position
// @Param id path string true "position record id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/positions/{id} [delete]
func (c *positionApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = positionhandler.Instance.Delete(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
