package auth

import (
	"estacionamento-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// EffectiveAdminIDFromCtx resolve, a partir das claims já colocadas nos
// Locals, a identidade de admin do chamador: o próprio id para admins, o
// admin_id herdado para funcionários.
func EffectiveAdminIDFromCtx(c *fiber.Ctx) (*uint, error) {
	role, ok := c.Locals(CtxUserRoleKey).(models.UserRole)
	if !ok {
		return nil, fiber.NewError(fiber.StatusForbidden, "Não foi possível identificar o papel do usuário")
	}

	if role == models.RoleAdmin {
		userID, ok := c.Locals(CtxUserIDKey).(uint)
		if !ok {
			return nil, fiber.NewError(fiber.StatusForbidden, "Não foi possível identificar o usuário")
		}
		return &userID, nil
	}

	adminID, ok := c.Locals(CtxAdminIDKey).(*uint)
	if !ok {
		return nil, fiber.NewError(fiber.StatusForbidden, "Não foi possível identificar o admin do usuário")
	}
	return adminID, nil
}

// AuthorizeEstacionamento nega acesso quando a identidade efetiva de admin do
// chamador não coincide com o admin dono do estacionamento. A existência do
// estacionamento deve ser verificada antes (404 precede 403).
func AuthorizeEstacionamento(c *fiber.Ctx, est *models.Estacionamento) error {
	effective, err := EffectiveAdminIDFromCtx(c)
	if err != nil {
		return err
	}

	if effective == nil || est.AdminID == nil || *effective != *est.AdminID {
		return fiber.NewError(fiber.StatusForbidden, "Você não tem permissão para acessar os dados deste estacionamento")
	}
	return nil
}
