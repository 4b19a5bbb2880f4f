package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/RitterHou/search-platform/internal/api/docs"
	"github.com/RitterHou/search-platform/internal/api/handler"
	"github.com/RitterHou/search-platform/pkg/router"
)

func RegisterRoutes(r *router.Router, c *handler.Console) {
	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))

	r.GET("/api/v1/sysparams", c.GetSysParams)
	r.POST("/api/v1/sysparams", c.SaveSysParams)
	r.GET("/api/v1/messages", c.ListMessages)
	r.POST("/api/v1/messages", c.SendMessage)

	r.GET("/api/v1/processes", c.ListProcesses)
	r.GET("/api/v1/processes/operations/get_log/host/{host}/name/{name}", c.GetProcessLog)
	r.POST("/api/v1/processes/operations/{action}/host/{host}/name/{name}", c.DoProcessAction)
	r.POST("/api/v1/processes/operations/{action}/host/{host}", c.DoHostAction)
	r.GET("/api/v1/processes/{host}", c.ListHostProcesses)

	r.GET("/api/v1/alerts", c.ListAlerts)
	r.DELETE("/api/v1/alerts/{id}", c.DismissAlert)

	r.GET("/api/v1/sessions", c.ListSessions)
	r.POST("/api/v1/sessions", c.OpenSession)
	// More specific routes first
	r.POST("/api/v1/sessions/{id}/save", c.SaveSession)
	r.POST("/api/v1/sessions/{id}/rows/{grid}", c.AddSessionRow)
	r.DELETE("/api/v1/sessions/{id}/rows/{grid}/{index}", c.DeleteSessionRow)
	r.GET("/api/v1/sessions/{id}", c.GetSession)
	r.PUT("/api/v1/sessions/{id}", c.ReplaceSessionView)
	r.DELETE("/api/v1/sessions/{id}", c.CloseSession)

	// Generic record routes last, {kind} would shadow the routes above
	r.GET("/api/v1/{kind}", c.ListRecords)
	r.POST("/api/v1/{kind}", c.CreateRecord)
	r.GET("/api/v1/{kind}/{name}/view", c.GetRecordView)
	r.GET("/api/v1/{kind}/{name}", c.GetRecord)
	r.PUT("/api/v1/{kind}/{name}", c.UpdateRecord)
	r.DELETE("/api/v1/{kind}/{name}", c.DeleteRecord)
}
