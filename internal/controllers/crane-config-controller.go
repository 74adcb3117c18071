package controllers

import (
	"net/http"

	"fleet-system/internal/dto"
	"fleet-system/internal/services"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CraneConfigController struct {
	configService services.CraneConfigServiceInterface
	logger        *zap.Logger
}

func NewCraneConfigController(configService services.CraneConfigServiceInterface, logger *zap.Logger) *CraneConfigController {
	return &CraneConfigController{configService: configService, logger: logger}
}

func (c *CraneConfigController) GetTemplates(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	craneModel := ctx.QueryParam("crane_model")

	templates, err := c.configService.GetTemplates(reqCtx, craneModel)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, templates, "config templates fetched", http.StatusOK)
}

func (c *CraneConfigController) FindTemplate(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	template, err := c.configService.FindTemplate(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, template, "config template found", http.StatusOK)
}

func (c *CraneConfigController) CreateTemplate(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateTemplateDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	template, err := c.configService.CreateTemplate(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, template, "config template created", http.StatusCreated)
}

func (c *CraneConfigController) DeleteTemplate(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.configService.DeleteTemplate(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "config template deleted", http.StatusOK)
}

// UploadDiagram attaches a rigging diagram file to the template.
func (c *CraneConfigController) UploadDiagram(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("file is required"), c.logger)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer file.Close()

	template, err := c.configService.UploadDiagram(reqCtx, id, file, fileHeader.Filename)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, template, "diagram uploaded", http.StatusOK)
}

func (c *CraneConfigController) CheckAvailability(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.configService.CheckAvailability(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "availability checked", http.StatusOK)
}
