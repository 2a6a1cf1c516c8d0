// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/password-auditor/backend/internal/application/usecase/audit"
	domainerror "github.com/password-auditor/backend/internal/domain/error"
	"github.com/password-auditor/backend/internal/integration/entrypoint/dto"
)

// AuditController handles password audit endpoints.
type AuditController struct {
	auditPasswordUseCase *audit.AuditPasswordUseCase
}

// NewAuditController creates a new audit controller instance.
func NewAuditController(auditPasswordUseCase *audit.AuditPasswordUseCase) *AuditController {
	return &AuditController{
		auditPasswordUseCase: auditPasswordUseCase,
	}
}

// AuditPassword handles POST /passwords/audit requests.
// The password is consumed in-memory only: it is never logged, persisted or
// echoed back in the response.
func (c *AuditController) AuditPassword(ctx *gin.Context) {
	var req dto.AuditPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidRequestBody),
		})
		return
	}

	input := audit.AuditPasswordInput{
		Password:        *req.Password,
		SkipBreachCheck: req.SkipBreachCheck,
	}

	output := c.auditPasswordUseCase.Execute(ctx.Request.Context(), input)

	ctx.JSON(http.StatusOK, dto.ToAuditPasswordResponse(output.Audit))
}
