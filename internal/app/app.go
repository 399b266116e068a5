package app

import (
	"strings"

	"estacionamento-backend/internal/acesso"
	"estacionamento-backend/internal/auth"
	"estacionamento-backend/internal/config"
	"estacionamento-backend/internal/dashboard"
	"estacionamento-backend/internal/estacionamento"
	"estacionamento-backend/internal/faturamento"
	"estacionamento-backend/internal/models"
	"estacionamento-backend/internal/usuario"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	log "github.com/sirupsen/logrus"
)

// New monta o app Fiber com o tratamento central de erros e toda a tabela de
// rotas. Separado do main para os testes exercitarem as rotas de verdade.
func New(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Error("Erro inesperado: ", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erro inesperado no servidor",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Públicas
	app.Post("/token", auth.TokenHandler(cfg))
	app.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))

	// Protegidas
	protected := app.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Dashboard
	protected.Get("/dashboard/:estacionamento_id", dashboard.VisaoGeralHandler(cfg))

	// Operação diária (admin ou funcionário do admin dono). Registradas
	// antes do grupo de admin: o RequireRole abaixo tem prefixo vazio e
	// barraria qualquer rota registrada depois dele.
	protected.Get("/estacionamentos", estacionamento.ListHandler())
	protected.Get("/estacionamentos/:id", estacionamento.GetHandler())
	protected.Get("/estacionamentos/:id/acessos", acesso.ListByEstacionamentoHandler())
	protected.Get("/estacionamentos/:id/faturamento", faturamento.ResumoHandler(cfg))
	protected.Post("/acessos/entrada", acesso.EntradaHandler())
	protected.Post("/acessos/:id/saida", acesso.SaidaHandler())

	// Gestão de estacionamentos e funcionários (somente admin)
	adminRoutes := protected.Group("")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	adminRoutes.Post("/estacionamentos", estacionamento.CreateHandler())
	adminRoutes.Put("/estacionamentos/:id", estacionamento.UpdateHandler())
	adminRoutes.Delete("/estacionamentos/:id", estacionamento.DeleteHandler())
	adminRoutes.Post("/funcionarios", usuario.CreateFuncionarioHandler())
	adminRoutes.Get("/funcionarios", usuario.ListFuncionariosHandler())

	return app
}
