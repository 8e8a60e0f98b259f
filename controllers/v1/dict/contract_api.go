package dict

import (
	"hr-personnel-backend/controllers"
	contractprovider "hr-personnel-backend/lib/contract"
	apimodels "hr-personnel-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type contractDictApiController struct {
	controllers.BaseAPIController
}

func InitContractDictApiRouters(app *fiber.App) {
	controller := contractDictApiController{}
	app.Route("api/v1/dict/contracts", func(router fiber.Router) {
		router.Get("list", controller.list)
	})
}

// @Summary Contract category configurations
// @Tags Dictionary. Contracts
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/contracts/list [get]
func (c *contractDictApiController) list(ctx *fiber.Ctx) error {
	list, err := contractprovider.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
