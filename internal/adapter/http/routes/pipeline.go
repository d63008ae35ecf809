package routes

import (
	"atelier_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects = "/projects"
	PathQuotes   = "/quotes"
	PathFeed     = "/feed"
	PathPayments = "/payments"
)

func addPipelineRoutes(
	rg *gin.RouterGroup,
	projectHandler *handlers.ProjectHandler,
	quoteHandler *handlers.QuoteHandler,
	feedHandler *handlers.FeedHandler,
	webhookHandler *handlers.PaymentWebhookHandler,
) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("/:id", projectHandler.GetProject)
		projects.GET("/:id/history", projectHandler.GetHistory)
		projects.GET("/:id/durations", projectHandler.GetStageDurations)
		projects.GET("/:id/quotes", quoteHandler.ListProjectQuotes)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id/accept", quoteHandler.AcceptQuote)
		quotes.PATCH("/:id/refuse", quoteHandler.RefuseQuote)
		quotes.PATCH("/:id/settle", quoteHandler.SettleInvoice)
	}

	rg.GET(PathFeed+"/:table", feedHandler.Stream)
	rg.POST(PathPayments+"/webhook", webhookHandler.HandleWebhook)
}
